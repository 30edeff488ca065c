package config

import (
	"bytes"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings mirrors the command line flags so a run can be described by a
// yaml file. Empty fields keep their defaults.
type Settings struct {
	Game     string `yaml:"game,omitempty"`
	Platform string `yaml:"platform,omitempty"`
	Encoding string `yaml:"encoding,omitempty"`
	Color    *bool  `yaml:"color,omitempty"`
	Structs  bool   `yaml:"structs,omitempty"`
	HTTP     string `yaml:"http,omitempty"`
	Dir      string `yaml:"dir,omitempty"`
}

func ReadSettings(r io.Reader) (*Settings, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "Failed to parse settings")
	}
	return &s, nil
}

func LoadSettings(path string) (*Settings, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read settings %q", path)
	}
	return ReadSettings(bytes.NewReader(data))
}

// Merge overwrites fields of s with the non-empty fields of o.
func (s *Settings) Merge(o *Settings) {
	if o.Game != "" {
		s.Game = o.Game
	}
	if o.Platform != "" {
		s.Platform = o.Platform
	}
	if o.Encoding != "" {
		s.Encoding = o.Encoding
	}
	if o.Color != nil {
		s.Color = o.Color
	}
	if o.Structs {
		s.Structs = true
	}
	if o.HTTP != "" {
		s.HTTP = o.HTTP
	}
	if o.Dir != "" {
		s.Dir = o.Dir
	}
}

func (s *Settings) Config() (Config, error) {
	c := Default()
	var err error
	if s.Game != "" {
		if c.Game, err = ParseGame(s.Game); err != nil {
			return c, err
		}
	}
	if s.Platform != "" {
		if c.Platform, err = ParsePlatform(s.Platform); err != nil {
			return c, err
		}
	}
	if s.Encoding != "" {
		if c.Encoding, err = FindEncoding(s.Encoding); err != nil {
			return c, err
		}
	}
	return c, nil
}

func (s *Settings) ColorEnabled() bool {
	return s.Color == nil || *s.Color
}
