// pkg/render/units.go
package render

import (
	"log"

	"go-hexmap/pkg/canvas"
	"go-hexmap/pkg/hexmap"
)

// UnitRenderer hands each unit on the map the patch of canvas under its hex
// and lets it paint itself there.
type UnitRenderer struct {
	layer
	reported map[hexmap.Cell]bool
}

func NewUnitRenderer(view MapView, opts Options, newCanvas canvas.NewFunc) (*UnitRenderer, error) {
	l, err := newLayer(view, opts, newCanvas)
	if err != nil {
		return nil, err
	}
	return &UnitRenderer{layer: l, reported: make(map[hexmap.Cell]bool)}, nil
}

func (u *UnitRenderer) Draw() {
	u.prepare()
	for pos, unit := range u.view.Units() {
		if unit == nil {
			continue
		}
		if !u.view.ValidCell(pos) {
			if !u.reported[pos] {
				log.Printf("Warning: unit at %v is off the map, not drawn", pos)
				u.reported[pos] = true
			}
			continue
		}
		unit.Paint(u.cellCanvas(pos))
	}
}
