package main

import (
	"flag"
	"log"
	"runtime"
	"wavelab/internal/config"
	"wavelab/internal/game"
	"wavelab/internal/graphics/renderables/cube"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

var (
	texture = flag.String("texture", "", "PNG to wrap the cube in")
	fps     = flag.Int("fps", config.DefaultFPSLimit, "frame rate cap, 0 for none")
)

func main() {
	flag.Parse()
	config.SetFPSLimit(*fps)

	defer closer.Close()

	var app *game.App
	closer.Bind(func() {
		if app != nil {
			log.Printf("cube: %s", app.Summary())
		}
	})

	closer.Checked(func() error {
		var err error
		app, err = game.Start("cube", game.Options{Static: true}, cube.NewCube(*texture))
		if err != nil {
			return err
		}
		defer app.Close()

		app.Run()
		return nil
	}, true)
}
