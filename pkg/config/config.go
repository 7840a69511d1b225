package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/qnkhuat/memorice/pkg/game"
	"github.com/qnkhuat/memorice/pkg/gui"
)

// Config gathers every knob of the memorice client. All fields have
// defaults, so the game starts without arguments.
type Config struct {
	LogPath   string
	Seed      int64
	Theme     string
	ThemeFile string
	MoveDelay time.Duration
	HideDelay time.Duration
	AutoPlay  bool
	Headless  bool
}

func Default() Config {
	return Config{
		LogPath:   "./memorice.log",
		Theme:     gui.ThemeBasic.Name,
		MoveDelay: game.DefaultMoveDelay,
		HideDelay: game.DefaultHideDelay,
		AutoPlay:  true,
	}
}

func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.LogPath, "log", c.LogPath, "path to log file")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "board seed (0 picks one from the clock)")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme name")
	fs.StringVar(&c.ThemeFile, "themes", c.ThemeFile, "JSON file with extra themes")
	fs.DurationVar(&c.MoveDelay, "move-delay", c.MoveDelay, "delay between agent moves")
	fs.DurationVar(&c.HideDelay, "hide-delay", c.HideDelay, "how long a mismatched pair stays visible")
	fs.BoolVar(&c.AutoPlay, "autoplay", c.AutoPlay, "let the agent play on its own after solving")
	fs.BoolVar(&c.Headless, "solve", c.Headless, "print the board and its solution, then exit")
}

// Parse builds a Config from command line arguments.
func Parse(name string, args []string) (Config, error) {
	c := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	return c, nil
}

func (c Config) GameOptions() game.Options {
	return game.Options{
		Seed:      c.Seed,
		MoveDelay: c.MoveDelay,
		HideDelay: c.HideDelay,
		AutoPlay:  c.AutoPlay,
	}
}

// LoadThemes reads a JSON array of hex themes.
func LoadThemes(path string) ([]gui.ThemeHex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes: %w", err)
	}

	var themes []gui.ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal themes: %w", err)
	}

	return themes, nil
}

// ResolveTheme picks the configured theme from the theme file first, then
// from the built-in themes.
func (c Config) ResolveTheme() (gui.Theme, error) {
	var themes []gui.ThemeHex
	if c.ThemeFile != "" {
		loaded, err := LoadThemes(c.ThemeFile)
		if err != nil {
			return gui.Theme{}, err
		}
		themes = loaded
	}

	if t, err := gui.ImportThemes(c.Theme, themes); err == nil {
		return t, nil
	}

	return gui.BuiltinTheme(c.Theme)
}
