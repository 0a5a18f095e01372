package cube

import (
	"math"
	"wavelab/internal/graphics"
	renderer "wavelab/internal/graphics/renderer"
	"wavelab/internal/profiling"
	"wavelab/pkg/vmath"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	Eye  = vmath.V3(1.5, 1.5, 1.5)
	Axis = vmath.V3(0, 1, 0)
)

// RadiansPerSecond is how fast the cube turns
const RadiansPerSecond = 0.5 * math.Pi

// Transform is the cube's model matrix after t seconds
func Transform(t float64) vmath.Mat4 {
	angle := float32(math.Mod(t*RadiansPerSecond, 2*math.Pi))
	return vmath.Rotation(Axis, angle)
}

// Camera returns the fixed view and projection the cube is seen through
func Camera(aspect float32) (view, proj vmath.Mat4) {
	view = vmath.LookAt(Eye, vmath.Zero3, vmath.WorldUp)
	proj = vmath.Perspective(45*vmath.Deg2Rad, aspect, 0.5, 100)
	return view, proj
}

// Cube draws a lit cube spinning about +Y, optionally textured
type Cube struct {
	shader      *graphics.Shader
	mesh        *graphics.Mesh
	texturePath string
	texture     uint32
	elapsed     float64
	aspect      float32
}

// NewCube creates the cube; an empty texturePath draws it untextured
func NewCube(texturePath string) *Cube {
	return &Cube{texturePath: texturePath, aspect: 1}
}

func (c *Cube) Init() error {
	var err error
	c.shader, err = graphics.NewShader(graphics.CubeVertShader, graphics.CubeFragShader)
	if err != nil {
		return err
	}
	c.mesh = graphics.NewCubeMesh()
	if c.texturePath != "" {
		c.texture = graphics.GetTextureOrDefault(c.texturePath)
	}
	return nil
}

func (c *Cube) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.cube")()

	c.elapsed += ctx.DT
	view, proj := Camera(c.aspect)

	c.shader.Use()
	c.shader.SetMatrix4("view", view)
	c.shader.SetMatrix4("proj", proj)
	c.shader.SetMatrix4("trans", Transform(c.elapsed))
	c.shader.SetBool("textured", c.texture != 0)
	if c.texture != 0 {
		c.shader.SetInt("tex", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, c.texture)
	}

	c.mesh.Bind()
	c.mesh.Draw()
}

// Dispose cleans up OpenGL resources. The texture belongs to the cache.
func (c *Cube) Dispose() {
	if c.mesh != nil {
		c.mesh.Delete()
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}

func (c *Cube) SetViewport(width, height int) {
	if width > 0 && height > 0 {
		c.aspect = float32(width) / float32(height)
	}
}
