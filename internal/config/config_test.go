package config

import (
	"encoding/json"
	"errors"
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"go-hexmap/pkg/canvas"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if cfg.Rows != 5 || cfg.Cols != 5 || cfg.Radius != 32 {
		t.Errorf("Expected a 5x5 map of radius 32, got %dx%d r=%v", cfg.Rows, cfg.Cols, cfg.Radius)
	}
	if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 || cfg.TPS != 10 {
		t.Errorf("Unexpected window defaults %dx%d at %d tps", cfg.WindowWidth, cfg.WindowHeight, cfg.TPS)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "map.json", `{"rows": 7, "radius": 20, "grid_color": "#102030", "labels": true}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rows != 7 || cfg.Radius != 20 || !cfg.Labels {
		t.Errorf("Expected rows 7, radius 20, labels, got %+v", cfg)
	}
	if cfg.Cols != MapCols {
		t.Errorf("Expected missing cols to keep default %d, got %d", MapCols, cfg.Cols)
	}
	if got := color.RGBA(cfg.GridColor); got != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("Expected grid color #102030, got %v", got)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "map.toml", `
rows = 3
cols = 8
transparent_key = "#00800080"
window_width = 800
tps = 30
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rows != 3 || cfg.Cols != 8 || cfg.WindowWidth != 800 || cfg.TPS != 30 {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if got := color.RGBA(cfg.TransparentKey); got != (color.RGBA{0, 0x80, 0, 0x80}) {
		t.Errorf("Expected key #00800080, got %v", got)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"bad size", "a.json", `{"rows": 0}`, ErrInvalidMap},
		{"bad radius", "b.toml", `radius = -1.0`, ErrInvalidRadius},
		{"bad window", "c.json", `{"window_height": 0}`, ErrInvalidWindow},
		{"bad tps", "d.toml", `tps = 0`, ErrInvalidTPS},
		{"unknown format", "e.yaml", `rows: 3`, ErrUnknownFormat},
	}
	for _, c := range cases {
		path := writeFile(t, c.file, c.content)
		if _, err := Load(path); !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := writeFile(t, "color.json", `{"grid_color": "gray"}`)
	if _, err := Load(path); err == nil {
		t.Error("Expected an error for a named color")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}

func TestColorMarshalText(t *testing.T) {
	data, err := json.Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back["transparent_key"] != "#ff00ff" {
		t.Errorf("Expected transparent_key #ff00ff, got %v", back["transparent_key"])
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := Default()
	cfg.Radius = 12
	cfg.Labels = true
	opts := cfg.RenderOptions()
	if opts.Radius != 12 || !opts.Labels || opts.LineWidth != 1 {
		t.Errorf("Unexpected options %+v", opts)
	}
	if !canvas.SameColor(opts.TransparentKey, canvas.Magenta) {
		t.Errorf("Expected magenta key, got %v", opts.TransparentKey)
	}
	if !canvas.SameColor(opts.FogColor, color.RGBA{25, 25, 25, 255}) {
		t.Errorf("Expected fog to darken the grid color, got %v", opts.FogColor)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "map.toml", "rows = 3\ncols = 4\nradius = 10.0\n")
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var f Flags
	f.Register(fs)
	if err := fs.Parse([]string{"-config", path, "-cols", "9", "-labels"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Rows != 3 || cfg.Cols != 9 || cfg.Radius != 10 || !cfg.Labels {
		t.Errorf("Expected rows 3, cols 9, radius 10, labels, got %+v", cfg)
	}
}

func TestFlagsWithoutFile(t *testing.T) {
	cfg, err := Flags{Radius: 8}.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Radius != 8 || cfg.Rows != MapRows {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if _, err := (Flags{Path: "missing.json"}).Resolve(); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
