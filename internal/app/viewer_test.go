package app

import (
	"image/color"
	"testing"

	"go-hexmap/internal/config"
	"go-hexmap/internal/event"
	"go-hexmap/pkg/canvas/raster"
	"go-hexmap/pkg/hexmap"
	"go-hexmap/pkg/render"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func newTestViewer(t *testing.T) *Viewer {
	t.Helper()
	m, err := NewDemoMap(5, 5)
	if err != nil {
		t.Fatalf("NewDemoMap: %v", err)
	}
	v, err := NewViewer(m, config.Default().RenderOptions(), raster.NewCanvas)
	if err != nil {
		t.Fatalf("NewViewer: %v", err)
	}
	return v
}

func center(c hexmap.Cell) (int, int) {
	x, y := render.CellRect(c, config.HexRadius).Center()
	return int(x), int(y)
}

func TestNewDemoMap(t *testing.T) {
	m, err := NewDemoMap(5, 5)
	if err != nil {
		t.Fatalf("NewDemoMap: %v", err)
	}
	if len(m.Units()) != 4 {
		t.Errorf("Expected 4 markers, got %d", len(m.Units()))
	}
	small, err := NewDemoMap(2, 2)
	if err != nil {
		t.Fatalf("NewDemoMap: %v", err)
	}
	if len(small.Units()) != 1 {
		t.Errorf("Expected only (0,0) to fit on a 2x2 map, got %d markers", len(small.Units()))
	}
	if _, err := NewDemoMap(0, 2); err == nil {
		t.Error("Expected an error for an empty map")
	}
}

func TestClickSelectsAndReveals(t *testing.T) {
	v := newTestViewer(t)
	rec := &recorder{}
	v.Dispatcher.Subscribe(event.CellSelected, rec)
	v.Dispatcher.Subscribe(event.CellsRevealed, rec)

	x, y := center(hexmap.Cell{Row: 3, Col: 2})
	v.Click(x, y)

	if got, ok := v.Selected(); !ok || got != (hexmap.Cell{Row: 3, Col: 2}) {
		t.Errorf("Expected 3,2 to be selected, got %v, %v", got, ok)
	}
	seen := make(map[event.EventType]int)
	for _, e := range rec.events {
		seen[e.Type]++
	}
	if len(rec.events) != 2 || seen[event.CellSelected] != 1 || seen[event.CellsRevealed] != 1 {
		t.Fatalf("Expected one CellSelected and one CellsRevealed, got %v", rec.events)
	}
	for _, c := range v.Map.Spread(hexmap.Cell{Row: 3, Col: 2}, config.RevealRadius) {
		if !v.Fog().Visible(c) {
			t.Errorf("Expected %v to be revealed", c)
		}
	}
	if v.Fog().Visible(hexmap.Cell{Row: 0, Col: 0}) {
		t.Error("Expected (0,0) to stay fogged")
	}
}

func TestClickOutsideMap(t *testing.T) {
	v := newTestViewer(t)
	rec := &recorder{}
	v.Dispatcher.Subscribe(event.MissedClick, rec)
	v.Click(0, 0)
	if _, ok := v.Selected(); ok {
		t.Error("Expected no selection")
	}
	if len(rec.events) != 1 || rec.events[0].Data != (event.Point{X: 0, Y: 0}) {
		t.Errorf("Expected one MissedClick at 0,0, got %v", rec.events)
	}
}

func TestMoveSelected(t *testing.T) {
	v := newTestViewer(t)
	if v.MoveSelected(center(hexmap.Cell{Row: 1, Col: 0})) {
		t.Fatal("Expected no move without a selection")
	}

	v.Click(center(hexmap.Cell{Row: 0, Col: 0}))
	if !v.MoveSelected(center(hexmap.Cell{Row: 2, Col: 0})) {
		t.Fatal("Expected the marker to move")
	}
	if got, _ := v.Selected(); got != (hexmap.Cell{Row: 1, Col: 0}) {
		t.Errorf("Expected selection to follow the unit to 1,0, got %v", got)
	}
	if _, ok := v.Map.Positions[hexmap.Cell{Row: 0, Col: 0}]; ok {
		t.Error("Expected (0,0) to be empty")
	}
	if _, ok := v.Map.Positions[hexmap.Cell{Row: 1, Col: 0}]; !ok {
		t.Error("Expected the marker on (1,0)")
	}
	if !v.Fog().Visible(hexmap.Cell{Row: 2, Col: 0}) {
		t.Error("Expected the move to reveal around the unit")
	}
}

func TestMoveSelectedEmptyCell(t *testing.T) {
	v := newTestViewer(t)
	v.Click(center(hexmap.Cell{Row: 1, Col: 0}))
	if v.MoveSelected(center(hexmap.Cell{Row: 2, Col: 0})) {
		t.Error("Expected nothing to move from an empty hex")
	}
}

func TestComposeDrawsMarkerAndSelection(t *testing.T) {
	v := newTestViewer(t)
	w, h := v.Size()
	dst := raster.New(w, h)
	dst.Fill(config.BackgroundColor)
	v.Compose(dst)

	x, y := center(hexmap.Cell{Row: 3, Col: 2})
	if got := dst.Image().RGBAAt(x, y); got != config.UnitColor {
		t.Errorf("Expected marker color at %d,%d, got %v", x, y, got)
	}
	if got := dst.Image().RGBAAt(center(hexmap.Cell{Row: 1, Col: 0})); got != config.BackgroundColor {
		t.Errorf("Expected empty hex to show the background, got %v", got)
	}

	v.FogEnabled = true
	v.Click(center(hexmap.Cell{Row: 3, Col: 2}))
	dst.Fill(config.BackgroundColor)
	v.Compose(dst)
	if got := dst.Image().RGBAAt(center(hexmap.Cell{Row: 0, Col: 0})); got.R >= config.UnitColor.R {
		t.Errorf("Expected the fog to hide the marker on (0,0), got %v", got)
	}
	if got := dst.Image().RGBAAt(x, y); got != config.UnitColor {
		t.Errorf("Expected the revealed marker, got %v", got)
	}
	if got := dst.Image().RGBAAt(128, 110); got == (color.RGBA{}) || got == config.BackgroundColor {
		t.Errorf("Expected the selection outline on the top edge, got %v", got)
	}
}

func TestMarkerPaint(t *testing.T) {
	c := raster.New(64, 55)
	NewMarker().Paint(c)
	if got := c.Image().RGBAAt(32, 27); got != config.UnitColor {
		t.Errorf("Expected disc center %v, got %v", config.UnitColor, got)
	}
	if got := c.Image().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("Expected corner untouched, got %v", got)
	}
}
