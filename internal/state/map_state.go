// internal/state/map_state.go
package state

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-hexmap/internal/app"
	"go-hexmap/internal/config"
	"go-hexmap/internal/ui"
	"go-hexmap/pkg/canvas/ebitencanvas"
)

// MapState shows the map layers and forwards mouse input to the viewer.
//
//	left click     select a hex and reveal around it
//	right click    move the selected unit one step towards the hex
//	F, Fog button  toggle fog
//	P, Escape      pause
type MapState struct {
	sm        *StateMachine
	viewer    *app.Viewer
	fogButton *ui.Button
}

func NewMapState(sm *StateMachine, viewer *app.Viewer) *MapState {
	w, _ := viewer.Size()
	return &MapState{
		sm:        sm,
		viewer:    viewer,
		fogButton: ui.NewButton(image.Rect(w+10, 10, w+90, 34), "Fog", viewer.ToggleFog),
	}
}

func (s *MapState) Enter() {
	s.viewer.Redraw()
}

func (s *MapState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.viewer.ToggleFog()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !s.fogButton.HandleClick(x, y) {
			s.viewer.Click(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.viewer.MoveSelected(ebiten.CursorPosition())
	}
}

func (s *MapState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	dst := ebitencanvas.Wrap(screen)
	s.viewer.Compose(dst)
	mx, my := ebiten.CursorPosition()
	s.fogButton.Draw(dst, mx, my)

	if cell, ok := s.viewer.Selected(); ok {
		_, h := s.viewer.Size()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("cell %v", cell), 4, h+4)
	}
}

func (s *MapState) Exit() {}
