package renderer

import (
	"wavelab/internal/graphics"
	"wavelab/internal/profiling"
	"wavelab/internal/sim"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	viewport    *graphics.Viewport
}

// NewRenderer creates a new renderer with the given renderables. On an
// Init failure the renderables already initialized are disposed.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	renderer := &Renderer{
		renderables: rs,
		viewport:    graphics.NewViewport(width, height),
	}

	// Initialize all renderables
	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
		r.SetViewport(width, height)
	}

	return renderer, nil
}

// Render draws one frame of s, which may be nil
func (r *Renderer) Render(s *sim.State, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Viewport: r.viewport,
		State:    s,
		DT:       dt,
	}
	// renderables that own their camera run without a simulation
	if s != nil {
		ctx.View, ctx.Proj = s.View, s.Proj
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// Viewport returns the framebuffer viewport
func (r *Renderer) Viewport() *graphics.Viewport {
	return r.viewport
}

// UpdateViewport applies a new framebuffer size to the GL viewport and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	r.viewport.Resize(width, height)
	r.viewport.Apply()
	for _, renderable := range r.renderables {
		renderable.SetViewport(r.viewport.Width, r.viewport.Height)
	}
}
