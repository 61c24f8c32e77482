// pkg/hexmap/map.go
package hexmap

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

var (
	ErrInvalidSize = errors.New("map size must be positive")
	ErrInvalidCell = errors.New("cell is outside the map")
)

// Map is a rectangular hex map of Rows x Cols cells and the units on it.
type Map struct {
	rows, cols int
	Positions  Positions
}

// NewMap creates an empty map.
func NewMap(rows, cols int) (*Map, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("new map %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	return &Map{rows: rows, cols: cols, Positions: make(Positions)}, nil
}

func (m *Map) Rows() int { return m.rows }
func (m *Map) Cols() int { return m.cols }

// Size returns (rows, cols).
func (m *Map) Size() (int, int) { return m.rows, m.cols }

// Units returns every occupied position.
func (m *Map) Units() Positions { return m.Positions }

// ValidCell reports whether c lies on the map.
func (m *Map) ValidCell(c Cell) bool {
	if c.Col < 0 || c.Col >= m.cols {
		return false
	}
	r := c.OffsetRow()
	return r >= 0 && r < m.rows
}

// Cells lists every valid cell, column by column.
func (m *Map) Cells() []Cell {
	cells := make([]Cell, 0, m.rows*m.cols)
	for col := 0; col < m.cols; col++ {
		for row := 0; row < m.rows; row++ {
			cells = append(cells, FromOffset(row, col))
		}
	}
	return cells
}

// Neighbors returns the valid cells around center.
func (m *Map) Neighbors(center Cell) []Cell {
	return m.filter(center.AllPossibleNeighbors())
}

// Distance counts the steps between two cells.
func (m *Map) Distance(start, destination Cell) int {
	return start.Distance(destination)
}

// Direction reports the dominant unit step from origin towards destination.
// Components sitting exactly halfway are resolved with rng, or rounded down
// when rng is nil.
func (m *Map) Direction(origin, destination Cell, rng *rand.Rand) Cell {
	offset := destination.Subtract(origin)
	n := origin.Distance(destination)
	if n == 0 {
		return Cell{}
	}
	choose := func(v float64) int {
		if math.Abs(math.Abs(v)-0.5) < 1e-9 {
			if rng == nil || rng.Intn(2) == 0 {
				return int(math.Floor(v))
			}
			return int(math.Ceil(v))
		}
		return int(math.Round(v))
	}
	return Cell{
		Row: choose(float64(offset.Row) / float64(n)),
		Col: choose(float64(offset.Col) / float64(n)),
	}
}

// Spread returns every valid cell within radius steps of center.
func (m *Map) Spread(center Cell, radius int) []Cell {
	if radius < 0 {
		radius = 0
	}
	var result []Cell
	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			c := center.Add(Cell{dr, dc})
			if center.Distance(c) <= radius {
				result = append(result, c)
			}
		}
	}
	return sortCells(m.filter(result))
}

// Slice returns the wedge starting at origin and widening along two
// neighbouring directions: dir and dir+2 as the stepping vector.
//
//	       _____
//	 _____/-1,0 \_____
//	/-1,-1\_____/ 0,1 \
//	\_____/ 0,0 \_____/
//	/0,-1 \_____/ 1,1 \
//	\_____/ 1,0 \_____/
//	      \_____/
//
// From (0,0), direction 0 covers (0,1) and (1,1).
func (m *Map) Slice(origin Cell, dir, length int) []Cell {
	edge, step := direction(dir), direction(dir+2)
	result := []Cell{origin}
	for i := 1; i <= length; i++ {
		start := origin.Add(edge.Scale(i))
		for j := 0; j <= i; j++ {
			result = append(result, start.Add(step.Scale(j)))
		}
	}
	return m.filter(result)
}

// Cone joins the slices for dir and dir+1.
func (m *Map) Cone(origin Cell, dir, length int) []Cell {
	cells := append(m.Slice(origin, dir, length), m.Slice(origin, dir+1, length)...)
	return sortCells(dedupe(cells))
}

// Line returns the cells along a single direction, origin first.
func (m *Map) Line(origin Cell, dir, length int) []Cell {
	offset := direction(dir)
	result := []Cell{origin}
	for i := 1; i <= length; i++ {
		result = append(result, origin.Add(offset.Scale(i)))
	}
	return m.filter(result)
}

func (m *Map) filter(cells []Cell) []Cell {
	valid := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if m.ValidCell(c) {
			valid = append(valid, c)
		}
	}
	return valid
}

func dedupe(cells []Cell) []Cell {
	seen := make(map[Cell]struct{}, len(cells))
	out := cells[:0]
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func sortCells(cells []Cell) []Cell {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}
