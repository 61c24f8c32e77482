// pkg/hexmap/positions.go
package hexmap

import (
	"fmt"

	"go-hexmap/pkg/canvas"
)

// Positions maps occupied cells to the units standing on them. Units are
// compared with ==, so they should be pointers or other comparable values.
type Positions map[Cell]canvas.Paintable

// Find returns the cell holding unit.
func (p Positions) Find(unit canvas.Paintable) (Cell, bool) {
	for pos, u := range p {
		if u == unit {
			return pos, true
		}
	}
	return Cell{}, false
}

// Place puts unit on c, replacing whatever was there.
func (m *Map) Place(c Cell, unit canvas.Paintable) error {
	if !m.ValidCell(c) {
		return fmt.Errorf("place unit at %v: %w", c, ErrInvalidCell)
	}
	m.Positions[c] = unit
	return nil
}

// Remove clears c and returns the unit that was there, if any.
func (m *Map) Remove(c Cell) canvas.Paintable {
	unit := m.Positions[c]
	delete(m.Positions, c)
	return unit
}

// PositionOf looks up where unit stands on this map.
func (m *Map) PositionOf(unit canvas.Paintable) (Cell, bool) {
	return m.Positions.Find(unit)
}

// UnitsAt returns the occupied subset of cells.
func (m *Map) UnitsAt(cells []Cell) Positions {
	result := make(Positions)
	for _, c := range cells {
		if u, ok := m.Positions[c]; ok && u != nil {
			result[c] = u
		}
	}
	return result
}
