// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-hexmap/pkg/canvas"
)

// Button is a clickable labelled rectangle drawn on any canvas.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.Color
	BgColor     color.Color
	HoverColor  color.Color
	BorderColor color.Color
	OnClick     func()
}

func NewButton(rect image.Rectangle, text string, onClick func()) *Button {
	return &Button{
		Rect:        rect,
		Text:        text,
		TextColor:   color.Black,
		BgColor:     color.RGBA{211, 211, 211, 255},
		HoverColor:  color.RGBA{130, 130, 130, 255},
		BorderColor: color.RGBA{80, 80, 80, 255},
		OnClick:     onClick,
	}
}

func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// HandleClick runs OnClick when (x, y) is inside the button and reports
// whether the click was consumed.
func (b *Button) HandleClick(x, y int) bool {
	if !b.Contains(x, y) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw paints the button; the background switches to HoverColor while the
// cursor at (mx, my) is over it.
func (b *Button) Draw(dst canvas.Canvas, mx, my int) {
	bg := b.BgColor
	if b.Contains(mx, my) {
		bg = b.HoverColor
	}
	r := b.Rect
	outline := []canvas.Point{
		{X: float64(r.Min.X), Y: float64(r.Min.Y)},
		{X: float64(r.Max.X), Y: float64(r.Min.Y)},
		{X: float64(r.Max.X), Y: float64(r.Max.Y)},
		{X: float64(r.Min.X), Y: float64(r.Max.Y)},
	}
	dst.FillPolygon(outline, bg)
	dst.StrokePolygon(outline, b.BorderColor, 2)

	// basic 7x13 glyphs
	textX := float64(r.Min.X) + float64(r.Dx()-7*len(b.Text))/2
	textY := float64(r.Min.Y) + float64(r.Dy()-13)/2
	dst.DrawText(b.Text, textX, textY, b.TextColor)
}
