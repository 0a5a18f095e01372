package debug

import (
	"wavelab/internal/graphics"
	renderer "wavelab/internal/graphics/renderer"
	"wavelab/internal/profiling"
	"wavelab/pkg/vmath"
)

// Debug draws the scene's lines as thin stretched boxes
type Debug struct {
	shader *graphics.Shader
	mesh   *graphics.Mesh
	lines  []Line
}

// NewDebug creates a new debug line renderable
func NewDebug() *Debug {
	return &Debug{}
}

// Init compiles the line shader and uploads the box every line is stretched from
func (d *Debug) Init() error {
	var err error
	d.shader, err = graphics.NewShader(graphics.DebugVertShader, graphics.DebugFragShader)
	if err != nil {
		return err
	}
	d.mesh = graphics.NewCubeMesh()
	return nil
}

// Render draws every line of the current state's debug scene
func (d *Debug) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.debug")()

	d.lines = Scene(ctx.State)
	if len(d.lines) == 0 {
		return
	}

	d.shader.Use()
	d.shader.SetMatrix4("view", ctx.View)
	d.shader.SetMatrix4("proj", ctx.Proj)

	d.mesh.Bind()
	for _, l := range d.lines {
		d.drawLine(l)
	}
}

func (d *Debug) drawLine(l Line) {
	d.shader.SetMatrix4("trans", vmath.StretchFromTo(l.From, l.To, LineThickness))
	d.shader.SetVector3("inColor", l.Color)
	d.mesh.Draw()
}

// Dispose cleans up OpenGL resources
func (d *Debug) Dispose() {
	if d.mesh != nil {
		d.mesh.Delete()
	}
	if d.shader != nil {
		d.shader.Delete()
	}
}

func (d *Debug) SetViewport(width, height int) {}
