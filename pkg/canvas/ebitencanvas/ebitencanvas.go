// pkg/canvas/ebitencanvas/ebitencanvas.go
package ebitencanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"go-hexmap/pkg/canvas"
)

const labelSize = 10

var (
	whiteImage = func() *ebiten.Image {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		return img
	}()
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	faceOnce sync.Once
	face     text.Face
)

func labelFace() text.Face {
	faceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("Failed to load label font: %v", err)
		}
		face = &text.GoTextFace{Source: src, Size: labelSize}
	})
	return face
}

// Canvas draws onto an ebiten image. Sub-canvases share the parent's image
// through SubImage and translate local coordinates by their origin.
type Canvas struct {
	img    *ebiten.Image
	origin image.Point
	key    color.Color

	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

// New allocates a canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{img: ebiten.NewImage(width, height)}
}

// NewCanvas adapts New to canvas.NewFunc.
func NewCanvas(width, height int) canvas.Canvas {
	return New(width, height)
}

// Wrap exposes an existing image, typically the screen, as a canvas.
func Wrap(img *ebiten.Image) *Canvas {
	return &Canvas{img: img, origin: img.Bounds().Min}
}

// Image returns the underlying ebiten image.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints the whole canvas. Filling with the color key clears the pixels
// instead, so that compositing with DrawImage skips them.
func (c *Canvas) Fill(clr color.Color) {
	if c.key != nil && canvas.SameColor(clr, c.key) {
		c.img.Clear()
		return
	}
	c.img.Fill(clr)
}

func (c *Canvas) ColorKey() (color.Color, bool) {
	return c.key, c.key != nil
}

func (c *Canvas) SetColorKey(clr color.Color) {
	c.key = clr
}

func (c *Canvas) SubCanvas(r image.Rectangle) canvas.Canvas {
	abs := r.Add(c.origin).Intersect(c.img.Bounds())
	sub := c.img.SubImage(abs).(*ebiten.Image)
	return &Canvas{img: sub, origin: abs.Min, key: c.key}
}

func (c *Canvas) path(points []canvas.Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range points {
		x := float32(p.X) + float32(c.origin.X)
		y := float32(p.Y) + float32(c.origin.Y)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return path
}

func (c *Canvas) StrokePolygon(points []canvas.Point, clr color.Color, width float64) {
	if len(points) < 2 {
		return
	}
	path := c.path(points)
	c.strokeVs, c.strokeIs = path.AppendVerticesAndIndicesForStroke(c.strokeVs[:0], c.strokeIs[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinMiter,
	})
	paintVertices(c.strokeVs, clr)
	c.img.DrawTriangles(c.strokeVs, c.strokeIs, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (c *Canvas) FillPolygon(points []canvas.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}
	path := c.path(points)
	c.fillVs, c.fillIs = path.AppendVerticesAndIndicesForFilling(c.fillVs[:0], c.fillIs[:0])
	paintVertices(c.fillVs, clr)
	c.img.DrawTriangles(c.fillVs, c.fillIs, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (c *Canvas) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.img,
		float32(cx)+float32(c.origin.X), float32(cy)+float32(c.origin.Y),
		float32(radius), clr, true)
}

func (c *Canvas) DrawText(str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+float64(c.origin.X), y+float64(c.origin.Y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.img, str, labelFace(), op)
}

func (c *Canvas) DrawCanvas(src canvas.Canvas, x, y int) {
	s, ok := src.(*Canvas)
	if !ok {
		panic(fmt.Sprintf("ebitencanvas: cannot blit %T", src))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x+c.origin.X), float64(y+c.origin.Y))
	c.img.DrawImage(s.img, op)
}

func paintVertices(vs []ebiten.Vertex, clr color.Color) {
	// Vertex colors are straight alpha.
	c := canvas.ToRGBA(clr)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
