// pkg/canvas/canvas.go
package canvas

import (
	"image"
	"image/color"
)

// Point is a position in canvas-local pixel coordinates.
type Point struct {
	X, Y float64
}

// Canvas is a fixed-size pixel surface. All coordinates are relative to the
// canvas' own top-left corner, including for sub-canvases.
type Canvas interface {
	Size() (width, height int)

	Fill(clr color.Color)

	// ColorKey reports the transparency key, if one is set.
	ColorKey() (color.Color, bool)
	SetColorKey(clr color.Color)

	// SubCanvas returns a view onto r, clipped to this canvas. Drawing on the
	// view changes the parent's pixels.
	SubCanvas(r image.Rectangle) Canvas

	StrokePolygon(points []Point, clr color.Color, width float64)
	FillPolygon(points []Point, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
	DrawText(str string, x, y float64, clr color.Color)

	// DrawCanvas blits src with its top-left corner at (x, y). Pixels of src
	// matching its color key are left untouched on this canvas.
	DrawCanvas(src Canvas, x, y int)
}

// NewFunc allocates a canvas of the given size for a backend.
type NewFunc func(width, height int) Canvas

// Paintable is anything that can draw itself onto a cell-sized canvas.
type Paintable interface {
	Paint(dst Canvas)
}
