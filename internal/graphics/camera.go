package graphics

import (
	"wavelab/internal/sim"
	"wavelab/pkg/vmath"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Viewport tracks the framebuffer size used for projection and picking
type Viewport struct {
	Width  int
	Height int
}

func NewViewport(width, height int) *Viewport {
	v := &Viewport{Width: 1, Height: 1}
	v.Resize(width, height)
	return v
}

// Resize updates the size; a zero-sized (minimized) framebuffer keeps the last size
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width, v.Height = width, height
}

func (v *Viewport) Aspect() float32 {
	return float32(v.Width) / float32(v.Height)
}

// CursorNDC converts a cursor position in window pixels to normalized device coordinates
func (v *Viewport) CursorNDC(x, y float64) vmath.Vec2 {
	return sim.CursorNDC(x, y, v.Width, v.Height)
}

// Apply sets the GL viewport to the full framebuffer
func (v *Viewport) Apply() {
	gl.Viewport(0, 0, int32(v.Width), int32(v.Height))
}
