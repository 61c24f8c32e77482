// internal/app/marker.go
package app

import (
	"image/color"

	"go-hexmap/internal/config"
	"go-hexmap/pkg/canvas"
	"go-hexmap/pkg/hexmap"
	"go-hexmap/pkg/render"
)

// Marker is a unit drawn as a filled disc in the middle of its hex.
type Marker struct {
	Color color.Color
}

func NewMarker() *Marker {
	return &Marker{Color: config.UnitColor}
}

func (m *Marker) Paint(dst canvas.Canvas) {
	w, _ := dst.Size()
	r := float64(w) / 2
	dst.FillCircle(r, render.Sqrt3/2*r, r*config.UnitScale, m.Color)
}

// DemoCells are where the demo map puts its markers.
var DemoCells = []hexmap.Cell{{Row: 0, Col: 0}, {Row: 3, Col: 2}, {Row: 5, Col: 3}, {Row: 5, Col: 4}}

// NewDemoMap builds a rows x cols map with a marker on every demo cell that
// fits.
func NewDemoMap(rows, cols int) (*hexmap.Map, error) {
	m, err := hexmap.NewMap(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, c := range DemoCells {
		if !m.ValidCell(c) {
			continue
		}
		if err := m.Place(c, NewMarker()); err != nil {
			return nil, err
		}
	}
	return m, nil
}
