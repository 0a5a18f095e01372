package game

import (
	"fmt"
	"log"
	"time"
	"wavelab/internal/config"
	"wavelab/internal/graphics"
	"wavelab/internal/graphics/renderer"
	"wavelab/internal/input"
	"wavelab/internal/profiling"
	"wavelab/internal/sim"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type App struct {
	window       *glfw.Window
	inputManager *input.Manager
	session      *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	slowFrames int
}

// NewApp wires the window's events to im and session
func NewApp(window *glfw.Window, im *input.Manager, session *Session) *App {
	app := &App{
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	SetupInputHandlers(app)
	return app
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now() // Measure pure processing time
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()
	a.inputManager.Poll()

	if a.session.Update(dt, a.inputManager) {
		a.window.SetShouldClose(true)
	}
	a.session.Render(dt)

	a.window.SwapBuffers()

	processingDuration := time.Since(startTick)
	if processingDuration > config.GetSlowFrameThreshold() {
		a.slowFrames++
		log.Print(slowFrameReport(processingDuration))
	}

	a.fpsLimiter.Wait()
}

// slowFrameReport splits a slow frame into simulation and render time
// and lists the most expensive tracked tasks
func slowFrameReport(d time.Duration) string {
	return fmt.Sprintf("Slow frame: %v (sim %v, render %v). Top tasks: %s",
		d, profiling.SumWithPrefix("sim."), profiling.SumWithPrefix("renderer."), profiling.TopN(5))
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	a.session.RefreshRender()
}

// Summary describes the run so far, for the shutdown log
func (a *App) Summary() string {
	s := a.session
	summary := fmt.Sprintf("%d frames, %d slow", s.Frames, a.slowFrames)
	if s.State != nil {
		summary += fmt.Sprintf(", %d waves, %d/%d stars", len(s.State.Waves), s.Collected, sim.NumStars)
	}
	if s.Dropped > 0 {
		summary += fmt.Sprintf(", %d snapshots dropped", s.Dropped)
	}
	return summary
}

// Start initializes GLFW, opens a window titled title and builds a
// session of rs in it. Close releases everything Start acquired.
func Start(title string, opts Options, rs ...renderer.Renderable) (*App, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	window, err := SetupWindow(title)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: %w", err)
	}

	session, err := NewSession(window, opts, rs...)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	return NewApp(window, input.NewManager(), session), nil
}

// Close disposes the renderables, cached textures and the window
func (a *App) Close() {
	a.session.Cleanup()
	graphics.DeleteTextures()
	a.window.Destroy()
	glfw.Terminate()
}
