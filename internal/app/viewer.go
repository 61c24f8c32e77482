// internal/app/viewer.go
package app

import (
	"fmt"
	"image/color"
	"log"

	"go-hexmap/internal/config"
	"go-hexmap/internal/event"
	"go-hexmap/pkg/canvas"
	"go-hexmap/pkg/hexmap"
	"go-hexmap/pkg/render"
)

// Viewer owns a map, its layers and the selection. It turns clicks into
// events and reacts to them. Input polling lives in the ebiten states.
type Viewer struct {
	Map        *hexmap.Map
	Dispatcher *event.Dispatcher

	grid  *render.GridRenderer
	units *render.UnitRenderer
	fog   *render.FogRenderer
	opts  render.Options

	FogEnabled   bool
	RevealRadius int

	selected    hexmap.Cell
	hasSelected bool
}

// NewViewer builds the three layers on canvases made by newCanvas and draws
// them once.
func NewViewer(m *hexmap.Map, opts render.Options, newCanvas canvas.NewFunc) (*Viewer, error) {
	grid, err := render.NewGridRenderer(m, opts, newCanvas)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid layer: %w", err)
	}
	units, err := render.NewUnitRenderer(m, opts, newCanvas)
	if err != nil {
		return nil, fmt.Errorf("failed to create unit layer: %w", err)
	}
	fog, err := render.NewFogRenderer(m, opts, newCanvas)
	if err != nil {
		return nil, fmt.Errorf("failed to create fog layer: %w", err)
	}

	v := &Viewer{
		Map:          m,
		Dispatcher:   event.NewDispatcher(),
		grid:         grid,
		units:        units,
		fog:          fog,
		opts:         opts,
		RevealRadius: config.RevealRadius,
	}
	v.Dispatcher.Subscribe(event.CellSelected, v)
	v.Dispatcher.Subscribe(event.CellsRevealed, v)
	v.Redraw()
	return v, nil
}

// Redraw repaints every layer.
func (v *Viewer) Redraw() {
	v.grid.Draw()
	v.units.Draw()
	v.fog.Draw()
}

// Size is the pixel size of the layers.
func (v *Viewer) Size() (int, int) {
	return v.grid.Size()
}

func (v *Viewer) Selected() (hexmap.Cell, bool) {
	return v.selected, v.hasSelected
}

func (v *Viewer) Fog() *render.FogRenderer {
	return v.fog
}

// Click resolves a pointer position and dispatches CellSelected or
// MissedClick.
func (v *Viewer) Click(x, y int) {
	cell, ok := v.grid.GetCell(float64(x), float64(y))
	if !ok {
		v.Dispatcher.Dispatch(event.Event{Type: event.MissedClick, Data: event.Point{X: x, Y: y}})
		return
	}
	v.Dispatcher.Dispatch(event.Event{Type: event.CellSelected, Data: event.CellData{Cell: cell, X: x, Y: y}})
}

// MoveSelected moves the unit on the selected hex one step along a free path
// to the hex under (x, y). It reports whether the unit moved.
func (v *Viewer) MoveSelected(x, y int) bool {
	if !v.hasSelected {
		return false
	}
	unit, ok := v.Map.Positions[v.selected]
	if !ok || unit == nil {
		return false
	}
	target, ok := v.grid.GetCell(float64(x), float64(y))
	if !ok || target == v.selected {
		return false
	}
	path := v.Map.Path(v.selected, target, v.Map.Unoccupied)
	if len(path) < 2 || !v.Map.Unoccupied(path[1]) {
		return false
	}

	v.Map.Remove(v.selected)
	if err := v.Map.Place(path[1], unit); err != nil {
		log.Printf("Warning: failed to move unit: %v", err)
		v.Map.Positions[v.selected] = unit
		return false
	}
	log.Printf("Unit moved %v -> %v", v.selected, path[1])
	v.selected = path[1]
	v.units.Draw()
	v.Dispatcher.Dispatch(event.Event{Type: event.CellsRevealed, Data: v.Map.Spread(path[1], v.RevealRadius)})
	return true
}

// ToggleFog switches the fog layer on or off.
func (v *Viewer) ToggleFog() {
	v.FogEnabled = !v.FogEnabled
	log.Printf("Fog enabled: %v", v.FogEnabled)
}

func (v *Viewer) OnEvent(e event.Event) {
	switch e.Type {
	case event.CellSelected:
		data, ok := e.Data.(event.CellData)
		if !ok {
			return
		}
		v.selected, v.hasSelected = data.Cell, true
		log.Printf("Selected cell %v at (%d, %d)", data.Cell, data.X, data.Y)
		v.Dispatcher.Dispatch(event.Event{Type: event.CellsRevealed, Data: v.Map.Spread(data.Cell, v.RevealRadius)})
	case event.CellsRevealed:
		cells, ok := e.Data.([]hexmap.Cell)
		if !ok {
			return
		}
		v.fog.Reveal(cells...)
		v.fog.Draw()
	}
}

// Compose draws the layers onto dst, fog last when enabled, then outlines
// the selected hex.
func (v *Viewer) Compose(dst canvas.Canvas) {
	layers := []render.Renderable{v.grid, v.units}
	if v.FogEnabled {
		layers = append(layers, v.fog)
	}
	render.Compose(dst, layers...)

	if v.hasSelected {
		rect := render.CellRect(v.selected, v.opts.Radius)
		v.highlight(dst, rect, config.SelectionColor)
	}
}

func (v *Viewer) highlight(dst canvas.Canvas, rect render.PixelRect, clr color.Color) {
	width := v.opts.LineWidth * 2
	if width <= 0 {
		width = 2
	}
	dst.StrokePolygon(render.CellPolygon(rect.Left, rect.Top, v.opts.Radius), clr, width)
}
