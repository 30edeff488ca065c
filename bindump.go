package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/bindump/binfile"
	"github.com/mogaika/bindump/config"
	"github.com/mogaika/bindump/utils"
	"github.com/mogaika/bindump/vfs"
	"github.com/mogaika/bindump/web"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (*config.Settings, []string, error) {
	fs := flag.NewFlagSet("bindump", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var settingsPath string
	var listEncodings bool
	var flagSettings config.Settings
	var color bool
	fs.StringVar(&settingsPath, "config", "", "Path to yaml settings file")
	fs.StringVar(&flagSettings.Game, "game", "", "Game: legoracers, paperboy or nba2000 (default legoracers)")
	fs.StringVar(&flagSettings.Platform, "platform", "", "Platform: pc, n64 or psx (default pc)")
	fs.StringVar(&flagSettings.Encoding, "encoding", "", "Charmap of strings (default \"Windows 1252\")")
	fs.BoolVar(&color, "color", true, "Colorize output")
	fs.BoolVar(&flagSettings.Structs, "structs", false, "Dump struct definitions of every file to stderr")
	fs.StringVar(&flagSettings.HTTP, "http", "", "Serve decoded files over http on this address instead of printing")
	fs.StringVar(&flagSettings.Dir, "dir", "", "Directory served by -http (default current directory)")
	fs.BoolVar(&listEncodings, "encodings", false, "List supported charmaps and exit")
	if err := fs.Parse(args); err == flag.ErrHelp {
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, err
	}

	if listEncodings {
		fmt.Fprintln(stderr, strings.Join(config.ListEncodings(), "\n"))
		return nil, nil, nil
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "color" {
			flagSettings.Color = &color
		}
	})

	settings := &config.Settings{}
	if settingsPath != "" {
		fileSettings, err := config.LoadSettings(settingsPath)
		if err != nil {
			return nil, nil, err
		}
		settings = fileSettings
	}
	settings.Merge(&flagSettings)
	return settings, fs.Args(), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	settings, files, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if settings == nil {
		return nil
	}

	cfg, err := settings.Config()
	if err != nil {
		return err
	}

	if settings.HTTP != "" {
		dir := settings.Dir
		if dir == "" {
			dir = "."
		}
		return web.StartServer(settings.HTTP, vfs.NewDirectoryDriver(dir), cfg)
	}

	if len(files) == 0 {
		return errors.New("Expected a filename.")
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	for i, path := range files {
		if i > 0 {
			fmt.Fprintln(out)
		}
		out.Flush()
		fmt.Fprintln(stderr, path)

		data, err := ioutil.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "Failed to open %s", path)
		}

		reg, err := binfile.Decode(cfg, path, data, out, settings.ColorEnabled())
		out.Flush()
		if settings.Structs {
			utils.FDump(stderr, reg.Defs())
		}
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}
	}
	return nil
}
