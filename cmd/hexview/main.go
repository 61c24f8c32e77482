// cmd/hexview/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-hexmap/internal/app"
	"go-hexmap/internal/config"
	"go-hexmap/internal/state"
	"go-hexmap/pkg/canvas/ebitencanvas"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	var flags config.Flags
	flags.Register(flag.CommandLine)
	fog := flag.Bool("fog", false, "start with the fog layer enabled")
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	m, err := app.NewDemoMap(cfg.Rows, cfg.Cols)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}
	log.Printf("Map %dx%d\n%s", cfg.Rows, cfg.Cols, m.ASCII(true, true))

	viewer, err := app.NewViewer(m, cfg.RenderOptions(), ebitencanvas.NewCanvas)
	if err != nil {
		log.Fatalf("Failed to create viewer: %v", err)
	}
	viewer.FogEnabled = *fog

	sm := state.NewStateMachine()
	sm.SetState(state.NewMapState(sm, viewer))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.WindowWidth,
		height:         cfg.WindowHeight,
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Hexagonal Map")
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
