// pkg/render/geometry.go
package render

import (
	"image"
	"math"

	"go-hexmap/pkg/canvas"
	"go-hexmap/pkg/hexmap"
	"go-hexmap/pkg/utils"
)

// Sqrt3 is √3, the ratio between a hex's height and its radius.
const Sqrt3 = 1.7320508075688772935274463415059

// PixelRect is the bounding box of one hex in canvas pixels.
type PixelRect struct {
	Left, Top, Width, Height float64
}

// Image truncates the rectangle to integer pixels the way a surface rect does:
// the origin and the size are truncated separately.
func (r PixelRect) Image() image.Rectangle {
	x, y := int(r.Left), int(r.Top)
	return image.Rect(x, y, x+int(r.Width), y+int(r.Height))
}

// Center returns the middle of the rectangle.
func (r PixelRect) Center() (x, y float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// CanvasSize returns the pixel size needed to hold a rows x cols map, with a
// one pixel margin for the outline of the last hexes. Columns advance by 1.5r
// and the last one is 2r wide.
func CanvasSize(rows, cols int, radius float64) (width, height float64) {
	width = 1.5*radius*float64(cols) + 0.5*radius + 1
	height = (float64(rows)+0.5)*radius*Sqrt3 + 1
	return width, height
}

// CanvasPixels rounds CanvasSize up to whole pixels.
func CanvasPixels(rows, cols int, radius float64) (width, height int) {
	w, h := CanvasSize(rows, cols, radius)
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// CellRect returns the bounding box of cell. Odd columns sit half a hex lower.
func CellRect(cell hexmap.Cell, radius float64) PixelRect {
	width := 2 * radius
	height := radius * Sqrt3

	top := float64(cell.Row-utils.CeilHalf(cell.Col)) * height
	if cell.Col%2 != 0 {
		top += height / 2
	}
	left := 1.5 * radius * float64(cell.Col)

	return PixelRect{Left: left, Top: top, Width: width, Height: height}
}

// CellPolygon returns the outline of a hex whose bounding box starts at
// (left, top): flat top and bottom, pointed left and right.
func CellPolygon(left, top, radius float64) []canvas.Point {
	return []canvas.Point{
		{X: left + 0.5*radius, Y: top},
		{X: left + 1.5*radius, Y: top},
		{X: left + 2*radius, Y: top + Sqrt3/2*radius},
		{X: left + 1.5*radius, Y: top + Sqrt3*radius},
		{X: left + 0.5*radius, Y: top + Sqrt3*radius},
		{X: left, Y: top + Sqrt3/2*radius},
	}
}

// PixelToCell finds the hex under (x, y) without checking it against a map.
//
// The plane is cut into 1.5r x √3r buckets. Each bucket holds most of one hex
// plus slivers of its left-hand neighbours behind the slanted edges, which
// are resolved per column parity.
func PixelToCell(x, y, radius float64) hexmap.Cell {
	h := Sqrt3 * radius
	half := h / 2

	row := int(math.Floor(y / h))
	col := int(math.Floor(x / (1.5 * radius)))

	lx := x - float64(col)*1.5*radius
	ly := y - float64(row)*h

	row += utils.FloorDiv(col+1, 2)

	if col%2 == 0 {
		if ly < half && lx < 0.5*radius && ly < half-lx {
			return hexmap.Cell{Row: row - 1, Col: col - 1}
		} else if ly > half && lx < 0.5*radius && ly > half+lx {
			return hexmap.Cell{Row: row, Col: col - 1}
		}
		return hexmap.Cell{Row: row, Col: col}
	}

	// Odd buckets start halfway down a hex, so the upper half belongs to the
	// hex one row up.
	if lx < 0.5*radius && math.Abs(ly-half) < half-lx {
		return hexmap.Cell{Row: row - 1, Col: col - 1}
	} else if ly < half {
		return hexmap.Cell{Row: row - 1, Col: col}
	}
	return hexmap.Cell{Row: row, Col: col}
}

// GetCell resolves (x, y) to a cell of view. The boolean is false when the
// point is outside every hex of the map.
func GetCell(view MapView, x, y, radius float64) (hexmap.Cell, bool) {
	cell := PixelToCell(x, y, radius)
	if !view.ValidCell(cell) {
		return hexmap.Cell{}, false
	}
	return cell, true
}
