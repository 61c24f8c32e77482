// pkg/render/color.go
package render

import (
	"image/color"

	"go-hexmap/pkg/canvas"
)

// Default layer colors.
var (
	GridColor  = color.RGBA{50, 50, 50, 255}
	LabelColor = color.RGBA{120, 120, 120, 255}
	FogColor   = canvas.DarkenColor(GridColor)
)

// Options configures a layer renderer.
type Options struct {
	Radius float64

	// TransparentKey marks pixels that are not part of the layer. It is only
	// applied when the canvas has no key yet.
	TransparentKey color.Color

	GridColor  color.Color
	LabelColor color.Color
	FogColor   color.Color
	LineWidth  float64

	// Labels writes each hex's axial coordinate inside the grid.
	Labels bool
}

// DefaultOptions returns the options of a 16px map with magenta as key.
func DefaultOptions() Options {
	return Options{
		Radius:         16,
		TransparentKey: canvas.Magenta,
		GridColor:      GridColor,
		LabelColor:     LabelColor,
		FogColor:       FogColor,
		LineWidth:      1,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TransparentKey == nil {
		o.TransparentKey = d.TransparentKey
	}
	if o.GridColor == nil {
		o.GridColor = d.GridColor
	}
	if o.LabelColor == nil {
		o.LabelColor = d.LabelColor
	}
	if o.FogColor == nil {
		o.FogColor = d.FogColor
	}
	if o.LineWidth <= 0 {
		o.LineWidth = d.LineWidth
	}
	return o
}
