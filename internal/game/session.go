package game

import (
	"wavelab/internal/config"
	"wavelab/internal/graphics/renderer"
	"wavelab/internal/input"
	"wavelab/internal/profiling"
	"wavelab/internal/sim"
	"wavelab/internal/stream"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options selects what a session simulates
type Options struct {
	Mode sim.Mode

	// Static sessions run no simulation; their renderables bring their own camera
	Static bool

	// Hub, when set, receives a snapshot of every simulated frame
	Hub *stream.Hub
}

// Session is one window's simulation and the renderer drawing it
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	State    *sim.State

	hub *stream.Hub

	Frames    uint64
	Dropped   uint64
	Collected int
}

func NewSession(window *glfw.Window, opts Options, rs ...renderer.Renderable) (*Session, error) {
	fbWidth, fbHeight := window.GetFramebufferSize()

	r, err := renderer.NewRenderer(fbWidth, fbHeight, rs...)
	if err != nil {
		return nil, err
	}

	s := &Session{
		Window:   window,
		Renderer: r,
		hub:      opts.Hub,
	}
	if !opts.Static {
		state := sim.NewState(opts.Mode, config.GetTerrainWidth())
		s.State = &state
	}
	return s, nil
}

// Update advances the simulation by dt. It returns true when the user asked to quit.
func (s *Session) Update(dt float64, im *input.Manager) bool {
	defer profiling.Track("session.Update")()

	if im.Pressed(input.ActionQuit) {
		return true
	}
	s.Frames++
	if s.State == nil {
		return false
	}

	winW, winH := s.Window.GetSize()
	in := BuildFrameInput(im, float32(dt), s.Renderer.Viewport().Aspect(), winW, winH)

	next := sim.Advance(*s.State, in)
	s.State = &next
	s.Collected = sim.CountCollected(next.Stars)

	if s.hub != nil && !s.hub.Publish(stream.NewSnapshot(s.State)) {
		s.Dropped++
	}
	return false
}

func (s *Session) Render(dt float64) {
	s.Renderer.Render(s.State, dt)
}

// Resize follows a framebuffer size change
func (s *Session) Resize(fbWidth, fbHeight int) {
	s.Renderer.UpdateViewport(fbWidth, fbHeight)
}

// RefreshRender repaints the last frame, e.g. while the window is being resized
func (s *Session) RefreshRender() {
	s.Render(0)
	s.Window.SwapBuffers()
}

func (s *Session) Cleanup() {
	s.Renderer.Dispose()
}
