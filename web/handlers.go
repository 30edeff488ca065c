package web

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/mogaika/bindump/binfile"
	"github.com/mogaika/bindump/config"
	"github.com/mogaika/bindump/vfs"
	"github.com/mogaika/bindump/webutils"
)

type StructsResponse struct {
	File    string              `json:"file"`
	Config  string              `json:"config"`
	Structs []binfile.StructDef `json:"structs"`
}

// requestConfig applies ?game= and ?platform= overrides.
func (s *Server) requestConfig(r *http.Request) (config.Config, error) {
	c := s.cfg
	var err error
	q := r.URL.Query()
	if g := q.Get("game"); g != "" {
		if c.Game, err = config.ParseGame(g); err != nil {
			return c, err
		}
	}
	if p := q.Get("platform"); p != "" {
		if c.Platform, err = config.ParsePlatform(p); err != nil {
			return c, err
		}
	}
	return c, nil
}

func (s *Server) readFile(name string) ([]byte, error) {
	f, err := vfs.DirectoryGetFile(s.dir, name)
	if err != nil {
		return nil, err
	}
	return vfs.ReadFile(f)
}

// decode runs one file through a fresh decoder. It returns an http status
// code alongside the error.
func (s *Server) decode(r *http.Request, buf *bytes.Buffer) (string, *binfile.Registry, int, error) {
	file := mux.Vars(r)["file"]

	c, err := s.requestConfig(r)
	if err != nil {
		return file, nil, http.StatusBadRequest, err
	}

	data, err := s.readFile(file)
	if err != nil {
		return file, nil, http.StatusNotFound, err
	}

	var reg *binfile.Registry
	if buf != nil {
		reg, err = binfile.Decode(c, file, data, buf, false)
	} else {
		reg, err = binfile.Decode(c, file, data, ioutil.Discard, false)
	}
	if err != nil {
		s.hub.Error(file, "%v", err)
		return file, reg, http.StatusUnprocessableEntity, errors.Wrapf(err, "Failed to decode %s as %v", file, c)
	}
	s.hub.Info(file, "decoded %d bytes as %v, %d structs", len(data), c, reg.Len())
	return file, reg, http.StatusOK, nil
}

func (s *Server) HandlerFiles(w http.ResponseWriter, r *http.Request) {
	if files, err := s.dir.List(); err != nil {
		webutils.WriteError(w, http.StatusInternalServerError, err)
	} else {
		sort.Strings(files)
		webutils.WriteJson(w, files)
	}
}

func (s *Server) HandlerDump(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if _, _, code, err := s.decode(r, &buf); err != nil {
		webutils.WriteError(w, code, err)
		return
	}
	webutils.WriteText(w, &buf)
}

func (s *Server) HandlerStructs(w http.ResponseWriter, r *http.Request) {
	file, reg, code, err := s.decode(r, nil)
	if err != nil {
		webutils.WriteError(w, code, err)
		return
	}
	c, _ := s.requestConfig(r)
	webutils.WriteJson(w, &StructsResponse{
		File:    file,
		Config:  c.String(),
		Structs: reg.Defs(),
	})
}
