// pkg/render/grid.go
package render

import (
	"go-hexmap/pkg/canvas"
	"go-hexmap/pkg/hexmap"
)

// GridRenderer draws the outline of every hex on the map.
type GridRenderer struct {
	layer
}

func NewGridRenderer(view MapView, opts Options, newCanvas canvas.NewFunc) (*GridRenderer, error) {
	l, err := newLayer(view, opts, newCanvas)
	if err != nil {
		return nil, err
	}
	return &GridRenderer{layer: l}, nil
}

func (g *GridRenderer) Draw() {
	g.prepare()
	r := g.opts.Radius
	for col := 0; col < g.view.Cols(); col++ {
		// Odd columns sit half a hex lower.
		offset := 0.0
		if col%2 == 1 {
			offset = r * Sqrt3 / 2
		}
		for row := 0; row < g.view.Rows(); row++ {
			top := offset + Sqrt3*float64(row)*r
			left := 1.5 * float64(col) * r
			g.canvas.StrokePolygon(CellPolygon(left, top, r), g.opts.GridColor, g.opts.LineWidth)
			if g.opts.Labels {
				label := hexmap.FromOffset(row, col).String()
				g.canvas.DrawText(label, left+0.5*r+1, top+Sqrt3/2*r-6, g.opts.LabelColor)
			}
		}
	}
}
