package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mogaika/bindump/config"
	"github.com/mogaika/bindump/status"
	"github.com/mogaika/bindump/vfs"
)

// Server decodes files of a directory on request. Every request gets its
// own decoder, so requests share nothing but the status hub.
type Server struct {
	dir vfs.Directory
	cfg config.Config
	hub *status.Hub
}

func NewServer(d vfs.Directory, cfg config.Config, hub *status.Hub) *Server {
	return &Server{dir: d, cfg: cfg, hub: hub}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/json/files", s.HandlerFiles).Methods(http.MethodGet)
	r.HandleFunc("/json/structs/{file}", s.HandlerStructs).Methods(http.MethodGet)
	r.HandleFunc("/dump/{file}", s.HandlerDump).Methods(http.MethodGet)
	r.Handle("/ws/status", s.hub)
	return r
}

func (s *Server) Handler() http.Handler {
	return handlers.LoggingHandler(os.Stderr, handlers.RecoveryHandler()(s.Router()))
}

func StartServer(addr string, d *vfs.DirectoryDriver, cfg config.Config) error {
	s := NewServer(d, cfg, status.NewHub())

	log.Printf("[web] Starting server %v serving %q (%v)", addr, d.Path(), cfg)

	return http.ListenAndServe(addr, s.Handler())
}
