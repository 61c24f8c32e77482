// cmd/hexrender/main.go
package main

import (
	"flag"
	"log"

	"go-hexmap/internal/app"
	"go-hexmap/internal/config"
	"go-hexmap/pkg/canvas/raster"
	"go-hexmap/pkg/hexmap"
)

func main() {
	var flags config.Flags
	flags.Register(flag.CommandLine)
	out := flag.String("o", "hexmap.png", "output PNG file")
	fog := flag.Bool("fog", false, "cover the map in fog")
	reveal := flag.String("reveal", "", "comma separated row,col of a hex to reveal around, e.g. 3,2")
	flag.Parse()

	cfg, err := flags.Resolve()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	m, err := app.NewDemoMap(cfg.Rows, cfg.Cols)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}
	viewer, err := app.NewViewer(m, cfg.RenderOptions(), raster.NewCanvas)
	if err != nil {
		log.Fatalf("Failed to create viewer: %v", err)
	}
	viewer.FogEnabled = *fog
	if *reveal != "" {
		cell, err := hexmap.ParseCell(*reveal)
		if err != nil {
			log.Fatalf("Invalid -reveal: %v", err)
		}
		viewer.Fog().SetVisible(m.Spread(cell, viewer.RevealRadius))
		viewer.Fog().Draw()
	}

	w, h := viewer.Size()
	dst := raster.New(w, h)
	dst.Fill(config.BackgroundColor)
	viewer.Compose(dst)
	if err := dst.SavePNG(*out); err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
	log.Printf("Wrote %dx%d map (%dx%d px) to %s", cfg.Rows, cfg.Cols, w, h, *out)
}
