package game

import (
	"wavelab/internal/input"
	"wavelab/internal/sim"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// BuildFrameInput turns this frame's input state into what sim.Advance
// consumes. The cursor is in window coordinates, so winW and winH are
// the window size rather than the framebuffer size.
func BuildFrameInput(im *input.Manager, dt, aspect float32, winW, winH int) sim.FrameInput {
	x, y := im.Cursor()
	return sim.FrameInput{
		Dt:     dt,
		Aspect: aspect,
		Cursor: sim.CursorNDC(x, y, winW, winH),

		MouseDown: im.Held(input.ActionMouseLeft),

		ToggleDebug:   im.Pressed(input.ActionToggleDebug),
		ToggleOverlay: im.Pressed(input.ActionToggleOverlay),
		Reset:         im.Pressed(input.ActionReset),

		ZoomIn:      im.Held(input.ActionZoomIn),
		ZoomOut:     im.Held(input.ActionZoomOut),
		RotateLeft:  im.Held(input.ActionRotateLeft),
		RotateRight: im.Held(input.ActionRotateRight),
	}
}

// SetupInputHandlers feeds window events into the app's input manager
// and keeps the renderer in step with the framebuffer size
func SetupInputHandlers(app *App) {
	app.inputManager.SetCallbacks(app.window)

	app.window.SetFramebufferSizeCallback(func(_ *glfw.Window, fbWidth, fbHeight int) {
		app.session.Resize(fbWidth, fbHeight)
	})

	app.window.SetRefreshCallback(func(_ *glfw.Window) {
		app.RefreshRender()
	})
}
