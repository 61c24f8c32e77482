// pkg/render/render.go
package render

import (
	"errors"
	"fmt"

	"go-hexmap/pkg/canvas"
	"go-hexmap/pkg/hexmap"
)

var (
	ErrInvalidRadius = errors.New("radius must be positive")
	ErrInvalidSize   = errors.New("rows and cols must be positive")
)

// MapView is the read-only part of a map the renderers need.
type MapView interface {
	Rows() int
	Cols() int
	ValidCell(c hexmap.Cell) bool
	Units() hexmap.Positions
}

// Renderable is a map layer drawn onto a canvas it owns.
type Renderable interface {
	Draw()
	Canvas() canvas.Canvas
	Size() (int, int)
	GetCell(x, y float64) (hexmap.Cell, bool)
}

// layer holds what every renderer shares: the map, its geometry and the
// canvas sized to fit it.
type layer struct {
	view   MapView
	opts   Options
	canvas canvas.Canvas
}

func newLayer(view MapView, opts Options, newCanvas canvas.NewFunc) (layer, error) {
	if opts.Radius <= 0 {
		return layer{}, fmt.Errorf("radius %v: %w", opts.Radius, ErrInvalidRadius)
	}
	if view.Rows() <= 0 || view.Cols() <= 0 {
		return layer{}, fmt.Errorf("map %dx%d: %w", view.Rows(), view.Cols(), ErrInvalidSize)
	}
	opts = opts.withDefaults()
	w, h := CanvasPixels(view.Rows(), view.Cols(), opts.Radius)
	return layer{view: view, opts: opts, canvas: newCanvas(w, h)}, nil
}

// prepare clears the canvas to its transparency key, installing the
// configured key first if the canvas has none.
func (l *layer) prepare() {
	key, ok := l.canvas.ColorKey()
	if !ok {
		key = l.opts.TransparentKey
		l.canvas.SetColorKey(key)
	}
	l.canvas.Fill(key)
}

func (l *layer) Canvas() canvas.Canvas {
	return l.canvas
}

func (l *layer) Radius() float64 {
	return l.opts.Radius
}

func (l *layer) Size() (int, int) {
	return l.canvas.Size()
}

// GetCell maps a point on the layer to the hex under it.
func (l *layer) GetCell(x, y float64) (hexmap.Cell, bool) {
	return GetCell(l.view, x, y, l.opts.Radius)
}

// cellCanvas returns the part of the canvas covered by cell.
func (l *layer) cellCanvas(cell hexmap.Cell) canvas.Canvas {
	return l.canvas.SubCanvas(CellRect(cell, l.opts.Radius).Image())
}

// Compose blits each layer onto dst in order, skipping keyed pixels.
func Compose(dst canvas.Canvas, layers ...Renderable) {
	for _, r := range layers {
		dst.DrawCanvas(r.Canvas(), 0, 0)
	}
}
