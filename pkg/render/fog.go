// pkg/render/fog.go
package render

import (
	"go-hexmap/pkg/canvas"
	"go-hexmap/pkg/hexmap"
)

// FogRenderer covers every hex that has not been revealed.
type FogRenderer struct {
	layer
	visible map[hexmap.Cell]struct{}
}

func NewFogRenderer(view MapView, opts Options, newCanvas canvas.NewFunc) (*FogRenderer, error) {
	l, err := newLayer(view, opts, newCanvas)
	if err != nil {
		return nil, err
	}
	return &FogRenderer{layer: l, visible: make(map[hexmap.Cell]struct{})}, nil
}

// SetVisible replaces the revealed set.
func (f *FogRenderer) SetVisible(cells []hexmap.Cell) {
	f.visible = make(map[hexmap.Cell]struct{}, len(cells))
	f.Reveal(cells...)
}

// Reveal adds cells to the revealed set.
func (f *FogRenderer) Reveal(cells ...hexmap.Cell) {
	for _, c := range cells {
		f.visible[c] = struct{}{}
	}
}

func (f *FogRenderer) Visible(c hexmap.Cell) bool {
	_, ok := f.visible[c]
	return ok
}

func (f *FogRenderer) Draw() {
	f.prepare()
	r := f.opts.Radius
	for col := 0; col < f.view.Cols(); col++ {
		for row := 0; row < f.view.Rows(); row++ {
			cell := hexmap.FromOffset(row, col)
			if f.Visible(cell) {
				continue
			}
			rect := CellRect(cell, r)
			f.canvas.FillPolygon(CellPolygon(rect.Left, rect.Top, r), f.opts.FogColor)
		}
	}
}
