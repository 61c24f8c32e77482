// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"
	"strconv"
	"strings"

	"go-hexmap/pkg/utils"
)

// Cell is a hex in axial (Row, Col) coordinates. Col picks the vertical lane;
// Row grows by one every two columns so that neighbours differ by one of
// Directions.
type Cell struct {
	Row, Col int
}

// Directions are the six unit steps, clockwise from "same row, next column".
// The order matters for Slice and Cone.
var Directions = []Cell{
	{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 1, Col: 0},
	{Row: 0, Col: -1}, {Row: -1, Col: -1}, {Row: -1, Col: 0},
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// ParseCell reads the "row,col" form written by String.
func ParseCell(s string) (Cell, error) {
	rowStr, colStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Cell{}, fmt.Errorf("cell %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return Cell{Row: row, Col: col}, nil
}

// Add returns the sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Subtract returns the difference of two cells.
func (c Cell) Subtract(other Cell) Cell {
	return Cell{Row: c.Row - other.Row, Col: c.Col - other.Col}
}

// Scale multiplies a cell vector by a scalar.
func (c Cell) Scale(factor int) Cell {
	return Cell{Row: c.Row * factor, Col: c.Col * factor}
}

// Distance counts the steps between two cells.
func (c Cell) Distance(to Cell) int {
	dr := to.Row - c.Row
	dc := to.Col - c.Col
	return (utils.Abs(dr) + utils.Abs(dc) + utils.Abs(dr-dc)) / 2
}

// AllPossibleNeighbors returns the six surrounding cells, valid or not.
func (c Cell) AllPossibleNeighbors() []Cell {
	return []Cell{
		{c.Row - 1, c.Col},
		{c.Row, c.Col + 1},
		{c.Row + 1, c.Col + 1},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row - 1, c.Col - 1},
	}
}

// OffsetRow is the row within the rectangular layout, i.e. the axial row
// minus ceil(Col/2).
func (c Cell) OffsetRow() int {
	return c.Row - utils.CeilHalf(c.Col)
}

// FromOffset converts a rectangular (row, col) position to an axial cell.
func FromOffset(row, col int) Cell {
	return Cell{Row: row + utils.CeilHalf(col), Col: col}
}

func direction(i int) Cell {
	return Directions[((i%6)+6)%6]
}
