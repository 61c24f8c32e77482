// internal/config/flags.go
package config

import "flag"

// Flags are the command line options shared by the binaries. Zero values
// leave the file or default value alone.
type Flags struct {
	Path   string
	Rows   int
	Cols   int
	Radius float64
	Labels bool
}

func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Path, "config", "", "path to a .json or .toml config file")
	fs.IntVar(&f.Rows, "rows", 0, "map rows (overrides config)")
	fs.IntVar(&f.Cols, "cols", 0, "map columns (overrides config)")
	fs.Float64Var(&f.Radius, "radius", 0, "hex radius in pixels (overrides config)")
	fs.BoolVar(&f.Labels, "labels", false, "draw cell coordinates")
}

// Resolve loads the config file, if any, and applies the flags on top.
func (f Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.Path != "" {
		loaded, err := Load(f.Path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if f.Rows > 0 {
		cfg.Rows = f.Rows
	}
	if f.Cols > 0 {
		cfg.Cols = f.Cols
	}
	if f.Radius > 0 {
		cfg.Radius = f.Radius
	}
	if f.Labels {
		cfg.Labels = true
	}
	return cfg, cfg.Validate()
}
