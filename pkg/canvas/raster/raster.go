// pkg/canvas/raster/raster.go
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"go-hexmap/pkg/canvas"
)

// Canvas is a software canvas backed by an *image.RGBA. Sub-canvases are
// zero-origin images whose Pix slices alias the root buffer.
type Canvas struct {
	img    *image.RGBA
	key    color.RGBA
	hasKey bool
	face   font.Face
}

// New allocates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
}

// NewCanvas adapts New to canvas.NewFunc.
func NewCanvas(width, height int) canvas.Canvas {
	return New(width, height)
}

// Image exposes the backing image. For a sub-canvas this is the aliased view.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := draw2dimg.SaveToPngFile(path, c.img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole canvas. Filling with the color key stores transparent
// pixels, so anti-aliased edges drawn afterwards blend against nothing.
func (c *Canvas) Fill(clr color.Color) {
	if c.hasKey && canvas.SameColor(clr, c.key) {
		clr = color.Transparent
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

func (c *Canvas) ColorKey() (color.Color, bool) {
	if !c.hasKey {
		return nil, false
	}
	return c.key, true
}

func (c *Canvas) SetColorKey(clr color.Color) {
	c.key = color.RGBAModel.Convert(clr).(color.RGBA)
	c.hasKey = true
}

func (c *Canvas) SubCanvas(r image.Rectangle) canvas.Canvas {
	r = r.Intersect(c.img.Bounds())
	sub := &Canvas{key: c.key, hasKey: c.hasKey, face: c.face}
	if r.Empty() {
		sub.img = &image.RGBA{Stride: c.img.Stride}
		return sub
	}
	start := c.img.PixOffset(r.Min.X, r.Min.Y)
	end := start + (r.Dy()-1)*c.img.Stride + r.Dx()*4
	sub.img = &image.RGBA{
		Pix:    c.img.Pix[start:end:end],
		Stride: c.img.Stride,
		Rect:   image.Rect(0, 0, r.Dx(), r.Dy()),
	}
	return sub
}

func (c *Canvas) StrokePolygon(points []canvas.Point, clr color.Color, width float64) {
	if len(points) < 2 || c.img.Rect.Empty() {
		return
	}
	gc := draw2dimg.NewGraphicContext(c.img)
	gc.SetStrokeColor(clr)
	gc.SetLineWidth(width)
	tracePolygon(gc, points)
	gc.Stroke()
}

func (c *Canvas) FillPolygon(points []canvas.Point, clr color.Color) {
	if len(points) < 3 || c.img.Rect.Empty() {
		return
	}
	gc := draw2dimg.NewGraphicContext(c.img)
	gc.SetFillColor(clr)
	tracePolygon(gc, points)
	gc.Fill()
}

func (c *Canvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	if radius <= 0 || c.img.Rect.Empty() {
		return
	}
	gc := draw2dimg.NewGraphicContext(c.img)
	gc.SetFillColor(clr)
	draw2dkit.Circle(gc, cx, cy, radius)
	gc.Fill()
}

// DrawText draws str with (x, y) as the top-left of the text box.
func (c *Canvas) DrawText(str string, x, y float64, clr color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(clr),
		Face: c.face,
		Dot:  fixed.P(int(x), int(y)+c.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(str)
}

func (c *Canvas) DrawCanvas(src canvas.Canvas, x, y int) {
	s, ok := src.(*Canvas)
	if !ok {
		panic(fmt.Sprintf("raster: cannot blit %T", src))
	}
	sb := s.img.Bounds()
	db := c.img.Bounds()
	for sy := sb.Min.Y; sy < sb.Max.Y; sy++ {
		dy := y + sy - sb.Min.Y
		if dy < db.Min.Y || dy >= db.Max.Y {
			continue
		}
		for sx := sb.Min.X; sx < sb.Max.X; sx++ {
			dx := x + sx - sb.Min.X
			if dx < db.Min.X || dx >= db.Max.X {
				continue
			}
			p := s.img.RGBAAt(sx, sy)
			if s.hasKey && p == s.key {
				continue
			}
			c.img.SetRGBA(dx, dy, over(p, c.img.RGBAAt(dx, dy)))
		}
	}
}

func tracePolygon(gc *draw2dimg.GraphicContext, points []canvas.Point) {
	gc.BeginPath()
	gc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		gc.LineTo(p.X, p.Y)
	}
	gc.Close()
}

// over composites premultiplied src onto dst.
func over(src, dst color.RGBA) color.RGBA {
	if src.A == 0xff {
		return src
	}
	k := uint32(0xff - src.A)
	return color.RGBA{
		R: src.R + uint8(uint32(dst.R)*k/0xff),
		G: src.G + uint8(uint32(dst.G)*k/0xff),
		B: src.B + uint8(uint32(dst.B)*k/0xff),
		A: src.A + uint8(uint32(dst.A)*k/0xff),
	}
}
