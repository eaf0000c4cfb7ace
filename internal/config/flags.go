package config

import (
	"errors"
	"flag"
	"io"
	"os"
)

// usageOutput receives the flag help for -h.
var usageOutput io.Writer = os.Stderr

// Flags are command line overrides. Zero values leave the config untouched.
type Flags struct {
	ConfigPath  string
	WorldPath   string
	Debug       bool
	Width       int
	Height      int
	FPSLimit    int
	FirstPerson bool
	WriteConfig string
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet("glitch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.StringVar(&f.WorldPath, "world", "", "Path to world file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.IntVar(&f.FPSLimit, "fps", 0, "Frame rate cap")
	fs.BoolVar(&f.FirstPerson, "first-person", false, "Start in first person")
	fs.StringVar(&f.WriteConfig, "write-config", "", "Write the effective config to this path and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(usageOutput)
			fs.Usage()
		}
		return Flags{}, err
	}
	return f, nil
}

// apply applies CLI flag overrides to the config.
func (f Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.WorldPath != "" {
		cfg.World.Path = f.WorldPath
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.FPSLimit > 0 {
		cfg.Graphics.FPSLimit = f.FPSLimit
	}
	if f.FirstPerson {
		cfg.Camera.Mode = "first_person"
	}
}
