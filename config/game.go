package config

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

type Game int

const (
	LegoRacers Game = iota
	Paperboy
	NBA2000
)

var gameNames = [...]string{
	LegoRacers: "legoracers",
	Paperboy:   "paperboy",
	NBA2000:    "nba2000",
}

func (g Game) String() string {
	if g < 0 || int(g) >= len(gameNames) {
		return "unknown"
	}
	return gameNames[g]
}

func ParseGame(name string) (Game, error) {
	for g, n := range gameNames {
		if n == name {
			return Game(g), nil
		}
	}
	return LegoRacers, errors.Errorf("Unknown game '%s'", name)
}

type Platform int

const (
	PC Platform = iota
	N64
	PSX
)

var platformNames = [...]string{
	PC:  "pc",
	N64: "n64",
	PSX: "psx",
}

func (p Platform) String() string {
	if p < 0 || int(p) >= len(platformNames) {
		return "unknown"
	}
	return platformNames[p]
}

func ParsePlatform(name string) (Platform, error) {
	for p, n := range platformNames {
		if n == name {
			return Platform(p), nil
		}
	}
	return PC, errors.Errorf("Unknown platform '%s'", name)
}

// Config selects how token ids are interpreted. It is fixed for a run and
// passed by value into every decoder.
type Config struct {
	Game     Game
	Platform Platform
	Encoding *charmap.Charmap
}

func Default() Config {
	return Config{
		Game:     LegoRacers,
		Platform: PC,
		Encoding: DefaultEncoding,
	}
}

func New(game, platform string) (Config, error) {
	c := Default()
	var err error
	if c.Game, err = ParseGame(game); err != nil {
		return c, err
	}
	if c.Platform, err = ParsePlatform(platform); err != nil {
		return c, err
	}
	return c, nil
}

// IsLegoEngine reports games sharing the Lego Racers token layout.
func (c Config) IsLegoEngine() bool {
	return c.Game == LegoRacers || c.Game == Paperboy
}

func (c Config) IsConsole() bool {
	return c.Platform == N64 || c.Platform == PSX
}

func (c Config) String() string {
	return c.Game.String() + "/" + c.Platform.String()
}
