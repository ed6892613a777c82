// Package config loads board settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"SketchBoard/internal/colorutil"
	"SketchBoard/internal/state"
	"SketchBoard/internal/view"
)

const (
	appDir   = "sketchboard"
	fileName = "config.toml"
)

// Style is the default look of new elements.
type Style struct {
	StrokeColor string  `toml:"stroke_color"`
	FillColor   string  `toml:"fill_color"`
	StrokeWidth float64 `toml:"stroke_width"`
	Roughness   float64 `toml:"roughness"`
	FontFamily  string  `toml:"font_family"`
	Tool        string  `toml:"tool"`
}

// Window is the initial window size and the canvas background.
type Window struct {
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Background string  `toml:"background"`
}

// Config is the whole settings file.
type Config struct {
	Style  Style  `toml:"style"`
	Window Window `toml:"window"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Style: Style{
			StrokeColor: "black",
			StrokeWidth: 1,
			Roughness:   1,
			FontFamily:  "sans-serif",
			Tool:        string(state.KindFreedraw),
		},
		Window: Window{Width: 1024, Height: 768, Background: "white"},
	}
}

// DefaultPath returns the settings file location under the user config
// directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, appDir, fileName)
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the values the board cannot work with.
func (c Config) Validate() error {
	if c.Style.StrokeWidth <= 0 {
		return fmt.Errorf("style.stroke_width must be positive, got %g", c.Style.StrokeWidth)
	}
	if c.Style.Roughness < 0 {
		return fmt.Errorf("style.roughness must not be negative, got %g", c.Style.Roughness)
	}
	if _, err := state.ParseKind(c.Style.Tool); err != nil {
		return fmt.Errorf("style.tool: %w", err)
	}
	if _, err := colorutil.Parse(c.Window.Background); err != nil {
		return fmt.Errorf("window.background: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %gx%g", c.Window.Width, c.Window.Height)
	}
	return nil
}

// Save writes c to path, creating the directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(c)
}

// Transform returns a view transform sized to the configured window.
func (c Config) Transform() *view.Transform {
	return view.NewTransform(c.Window.Width, c.Window.Height)
}
