// internal/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"go-hexmap/pkg/canvas"
	"go-hexmap/pkg/render"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480
	TPS          = 10
	MaxDeltaTime = 0.25

	MapRows   = 5
	MapCols   = 5
	HexRadius = 32.0
	LineWidth = 1.0

	RevealRadius = 1   // hexes uncovered around a click
	UnitScale    = 0.7 // marker radius relative to the hex radius
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TransparentKey  = canvas.Magenta
	GridColor       = render.GridColor
	LabelColor      = render.LabelColor
	UnitColor       = color.RGBA{200, 200, 200, 255}
	SelectionColor  = color.RGBA{255, 215, 0, 255}
)

var (
	ErrInvalidMap    = errors.New("rows and cols must be positive")
	ErrInvalidRadius = errors.New("radius must be positive")
	ErrInvalidWindow = errors.New("window size must be positive")
	ErrInvalidTPS    = errors.New("tps must be positive")
	ErrUnknownFormat = errors.New("unknown config format")
)

// Color is a color written as "#rrggbb" or "#rrggbbaa" in config files.
type Color color.RGBA

func (c Color) MarshalText() ([]byte, error) {
	return []byte(canvas.FormatHex(color.RGBA(c))), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	rgba, err := canvas.ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = Color(rgba)
	return nil
}

// Config holds everything the binaries can be told from a file or flags.
type Config struct {
	Rows      int     `json:"rows" toml:"rows"`
	Cols      int     `json:"cols" toml:"cols"`
	Radius    float64 `json:"radius" toml:"radius"`
	Labels    bool    `json:"labels" toml:"labels"`
	LineWidth float64 `json:"line_width" toml:"line_width"`

	TransparentKey Color `json:"transparent_key" toml:"transparent_key"`
	GridColor      Color `json:"grid_color" toml:"grid_color"`
	LabelColor     Color `json:"label_color" toml:"label_color"`

	WindowWidth  int `json:"window_width" toml:"window_width"`
	WindowHeight int `json:"window_height" toml:"window_height"`
	TPS          int `json:"tps" toml:"tps"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rows:           MapRows,
		Cols:           MapCols,
		Radius:         HexRadius,
		LineWidth:      LineWidth,
		TransparentKey: Color(TransparentKey),
		GridColor:      Color(GridColor),
		LabelColor:     Color(LabelColor),
		WindowWidth:    ScreenWidth,
		WindowHeight:   ScreenHeight,
		TPS:            TPS,
	}
}

// Load reads a .json or .toml file on top of the defaults. Keys missing from
// the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to unmarshal %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("map %dx%d: %w", c.Rows, c.Cols, ErrInvalidMap)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("radius %v: %w", c.Radius, ErrInvalidRadius)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.WindowWidth, c.WindowHeight, ErrInvalidWindow)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps %d: %w", c.TPS, ErrInvalidTPS)
	}
	return nil
}

// RenderOptions converts the config into layer renderer options.
func (c Config) RenderOptions() render.Options {
	opts := render.DefaultOptions()
	opts.Radius = c.Radius
	opts.TransparentKey = color.RGBA(c.TransparentKey)
	opts.GridColor = color.RGBA(c.GridColor)
	opts.LabelColor = color.RGBA(c.LabelColor)
	opts.FogColor = canvas.DarkenColor(color.RGBA(c.GridColor))
	opts.LineWidth = c.LineWidth
	opts.Labels = c.Labels
	return opts
}
