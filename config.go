package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"zoom-grid/canvas"
)

const (
	// --- Window ---
	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "Zoom Grid"

	// --- Zoom ---
	ZoomLimitMin = 0.5
	ZoomLimitMax = 5.0
	KeyZoomStep  = 1.0 // same as one wheel notch

	// --- Grid ---
	GridX       = 100.0
	GridY       = 100.0
	GridWidth   = 300.0
	GridHeight  = 200.0
	GridSpacing = 10.0

	DefaultConfigFile = "zoomgrid.yaml"
	DefaultFontPath   = "fonts/Roboto-Regular.ttf"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ZoomConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	KeyStep float64 `yaml:"key_step"`
}

type GridConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
}

type Config struct {
	Window        WindowConfig `yaml:"window"`
	Zoom          ZoomConfig   `yaml:"zoom"`
	Grid          GridConfig   `yaml:"grid"`
	Font          string       `yaml:"font"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	// LogEvents prints every scroll and the zoom it produced.
	LogEvents bool `yaml:"log_events"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: DefaultWindowWidth, Height: DefaultWindowHeight, Title: DefaultWindowTitle},
		Zoom:   ZoomConfig{Min: ZoomLimitMin, Max: ZoomLimitMax, KeyStep: KeyZoomStep},
		Grid:   GridConfig{X: GridX, Y: GridY, Width: GridWidth, Height: GridHeight, Spacing: GridSpacing},
		Font:   DefaultFontPath,
	}
}

// LoadConfig reads a YAML config on top of the defaults. A missing file is
// not an error.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !(c.Zoom.Min > 0) {
		return fmt.Errorf("zoom.min must be positive, got %v", c.Zoom.Min)
	}
	if !c.ZoomLimits().Valid() {
		return fmt.Errorf("zoom.min %v and zoom.max %v must be finite with min <= max", c.Zoom.Min, c.Zoom.Max)
	}
	if !finite(c.Zoom.KeyStep) || c.Zoom.KeyStep <= 0 {
		return fmt.Errorf("zoom.key_step must be a positive number, got %v", c.Zoom.KeyStep)
	}
	if !finite(c.Grid.Spacing) || c.Grid.Spacing <= 0 {
		return fmt.Errorf("grid.spacing must be a positive number, got %v", c.Grid.Spacing)
	}
	for _, v := range []float64{c.Grid.X, c.Grid.Y, c.Grid.Width, c.Grid.Height} {
		if !finite(v) {
			return fmt.Errorf("grid bounds must be finite, got %+v", c.Grid)
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c Config) ZoomLimits() canvas.ZoomLimits {
	return canvas.ZoomLimits{Min: c.Zoom.Min, Max: c.Zoom.Max}
}

func (c Config) CanvasGrid() canvas.Grid {
	return canvas.Grid{X: c.Grid.X, Y: c.Grid.Y, W: c.Grid.Width, H: c.Grid.Height, D: c.Grid.Spacing}
}

// Save writes the config as YAML, for seeding a config file.
func (c Config) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&c); err != nil {
		return err
	}
	return enc.Close()
}
