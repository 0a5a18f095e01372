package main

import (
	"context"
	"flag"
	"log"
	"runtime"
	"time"
	"wavelab/internal/config"
	"wavelab/internal/game"
	"wavelab/internal/graphics/renderables/debug"
	"wavelab/internal/graphics/renderables/overlay"
	"wavelab/internal/graphics/renderables/terrain"
	"wavelab/internal/sim"
	"wavelab/internal/stream"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

var (
	width    = flag.Int("width", config.DefaultTerrainWidth, "heightmap cells per side")
	fps      = flag.Int("fps", config.DefaultFPSLimit, "frame rate cap, 0 for none")
	serve    = flag.String("serve", "", "stream snapshots over websocket on this address, e.g. :8080")
	interval = flag.Duration("stream-interval", 100*time.Millisecond, "minimum time between streamed snapshots")
	fontPath = flag.String("font", "", "TrueType font for the overlay label")
)

func main() {
	flag.Parse()
	config.SetTerrainWidth(*width)
	config.SetFPSLimit(*fps)
	config.SetStreamInterval(*interval)

	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var app *game.App
	closer.Bind(func() {
		cancel()
		if app != nil {
			log.Printf("wavefield: %s", app.Summary())
		}
	})

	closer.Checked(func() error {
		opts := game.Options{Mode: sim.ModeWaves}
		if *serve != "" {
			opts.Hub = stream.NewHub()
			go func() {
				if err := stream.Serve(ctx, *serve, opts.Hub); err != nil {
					log.Printf("wavefield: stream: %v", err)
				}
			}()
		}

		var err error
		app, err = game.Start("wavefield", opts,
			terrain.NewTerrain(),
			debug.NewDebug(),
			overlay.NewOverlay(*fontPath),
		)
		if err != nil {
			return err
		}
		defer app.Close()

		app.Run()
		return nil
	}, true)
}
