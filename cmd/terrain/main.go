package main

import (
	"flag"
	"log"
	"runtime"
	"wavelab/internal/config"
	"wavelab/internal/game"
	"wavelab/internal/graphics/renderables/debug"
	"wavelab/internal/graphics/renderables/overlay"
	"wavelab/internal/graphics/renderables/terrain"
	"wavelab/internal/sim"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

var (
	width = flag.Int("width", 120, "heightmap cells per side")
	fps   = flag.Int("fps", config.DefaultFPSLimit, "frame rate cap, 0 for none")
)

func main() {
	flag.Parse()
	config.SetTerrainWidth(*width)
	config.SetFPSLimit(*fps)

	defer closer.Close()

	var app *game.App
	closer.Bind(func() {
		if app != nil {
			log.Printf("terrain: %s", app.Summary())
		}
	})

	closer.Checked(func() error {
		var err error
		app, err = game.Start("terrain", game.Options{Mode: sim.ModeFlat},
			terrain.NewTerrain(),
			debug.NewDebug(),
			overlay.NewOverlay(""),
		)
		if err != nil {
			return err
		}
		defer app.Close()

		app.Run()
		return nil
	}, true)
}
