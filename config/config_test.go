package config

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

var configTests = []struct {
	game, platform string
	out            Config
	fail           bool
}{
	{"legoracers", "pc", Config{Game: LegoRacers, Platform: PC}, false},
	{"paperboy", "n64", Config{Game: Paperboy, Platform: N64}, false},
	{"nba2000", "psx", Config{Game: NBA2000, Platform: PSX}, false},
	{"LegoRacers", "pc", Config{}, true},
	{"legoracers", "ps2", Config{}, true},
	{"", "pc", Config{}, true},
}

func TestNew(t *testing.T) {
	for _, test := range configTests {
		c, err := New(test.game, test.platform)
		if test.fail {
			if err == nil {
				t.Errorf("New(%q,%q) succeeded; expected error", test.game, test.platform)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q,%q) error: %v", test.game, test.platform, err)
			continue
		}
		if c.Game != test.out.Game || c.Platform != test.out.Platform {
			t.Errorf("New(%q,%q)=%v; expected %v", test.game, test.platform, c, test.out)
		}
	}
}

func TestUnknownNamesInMessage(t *testing.T) {
	if _, err := ParseGame("quake"); err == nil || err.Error() != "Unknown game 'quake'" {
		t.Errorf("ParseGame error %v", err)
	}
	if _, err := ParsePlatform("gba"); err == nil || err.Error() != "Unknown platform 'gba'" {
		t.Errorf("ParsePlatform error %v", err)
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if c.Game != LegoRacers || c.Platform != PC || c.Encoding != charmap.Windows1252 {
		t.Errorf("Default()=%v", c)
	}
	if c.String() != "legoracers/pc" {
		t.Errorf("Default().String()=%q", c.String())
	}
}

func TestPredicates(t *testing.T) {
	for _, test := range []struct {
		c             Config
		lego, console bool
	}{
		{Config{Game: LegoRacers, Platform: PC}, true, false},
		{Config{Game: Paperboy, Platform: N64}, true, true},
		{Config{Game: NBA2000, Platform: PSX}, false, true},
	} {
		if test.c.IsLegoEngine() != test.lego || test.c.IsConsole() != test.console {
			t.Errorf("%v: lego=%v console=%v", test.c, test.c.IsLegoEngine(), test.c.IsConsole())
		}
	}
}

func TestFindEncoding(t *testing.T) {
	if cm, err := FindEncoding("Windows 1252"); err != nil || cm != charmap.Windows1252 {
		t.Errorf("FindEncoding(Windows 1252)=%v,%v", cm, err)
	}
	if _, err := FindEncoding("klingon"); err == nil {
		t.Errorf("FindEncoding(klingon) succeeded")
	}
	found := false
	for _, name := range ListEncodings() {
		if name == "ISO 8859-1" {
			found = true
		}
	}
	if !found {
		t.Errorf("ListEncodings() misses ISO 8859-1")
	}
}

func TestSettings(t *testing.T) {
	const doc = `
game: paperboy
platform: psx
encoding: ISO 8859-1
color: false
`
	s, err := ReadSettings(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	c, err := s.Config()
	if err != nil {
		t.Fatal(err)
	}
	if c.Game != Paperboy || c.Platform != PSX || c.Encoding != charmap.ISO8859_1 {
		t.Errorf("Config()=%v", c)
	}
	if s.ColorEnabled() {
		t.Errorf("color expected to be disabled")
	}

	s.Merge(&Settings{Game: "nba2000"})
	if c, _ := s.Config(); c.Game != NBA2000 || c.Platform != PSX {
		t.Errorf("merged Config()=%v", c)
	}
}

func TestSettingsErrors(t *testing.T) {
	if _, err := ReadSettings(strings.NewReader("gmae: paperboy\n")); err == nil {
		t.Errorf("unknown key accepted")
	}
	s, err := ReadSettings(strings.NewReader("platform: dreamcast\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Config(); err == nil {
		t.Errorf("bad platform accepted")
	}
	if s, err := ReadSettings(strings.NewReader("")); err != nil || !s.ColorEnabled() {
		t.Errorf("empty settings: %v %v", s, err)
	}
}
