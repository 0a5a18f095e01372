package renderer

import (
	"wavelab/internal/graphics"
	"wavelab/internal/sim"
	"wavelab/pkg/vmath"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Viewport *graphics.Viewport
	State    *sim.State
	DT       float64
	View     vmath.Mat4
	Proj     vmath.Mat4
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
