package overlay

import (
	"fmt"
	"wavelab/internal/graphics"
	renderer "wavelab/internal/graphics/renderer"
	"wavelab/internal/profiling"
	"wavelab/internal/sim"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
)

const (
	// ImageSize is the side of the overlay texture in pixels
	ImageSize = 256
	// Extent is the share of NDC the overlay covers from the top-left corner
	Extent = 0.7
)

// QuadVertices is the overlay quad as x, y, u, v per corner. Image row 0
// is uploaded first, so v=0 is the top edge.
func QuadVertices() []float32 {
	x0, y0 := float32(-1), float32(1)
	x1, y1 := x0+Extent, y0-Extent
	return []float32{
		x0, y0, 0, 0,
		x0, y1, 0, 1,
		x1, y1, 1, 1,
		x1, y0, 1, 0,
	}
}

var quadIndices = []uint32{0, 1, 2, 2, 3, 0}

// Label summarizes the field shown in the overlay
func Label(s *sim.State) string {
	lo, hi, _ := s.Heightmap.Stats()
	if s.Mode == sim.ModeWaves {
		return fmt.Sprintf("%.2f..%.2f  waves %d  stars %d/%d",
			lo, hi, len(s.Waves), sim.CountCollected(s.Stars), sim.NumStars)
	}
	return fmt.Sprintf("%.2f..%.2f", lo, hi)
}

// Overlay shows the heightmap as a grayscale image in the corner of the screen
type Overlay struct {
	shader   *graphics.Shader
	mesh     *graphics.Mesh
	texture  uint32
	face     font.Face
	fontPath string
}

// NewOverlay creates the overlay; fontPath may be empty for the bundled font
func NewOverlay(fontPath string) *Overlay {
	return &Overlay{fontPath: fontPath}
}

func (o *Overlay) Init() error {
	var err error
	o.shader, err = graphics.NewShader(graphics.OverlayVertShader, graphics.OverlayFragShader)
	if err != nil {
		return err
	}
	o.mesh = graphics.NewMesh(QuadVertices(), quadIndices, graphics.Attrib{Location: 0, Size: 2}, graphics.Attrib{Location: 1, Size: 2})
	o.texture = graphics.UploadTexture(graphics.DefaultImage())
	o.face = graphics.LabelFace(o.fontPath, graphics.DefaultLabelPixels)
	return nil
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !ctx.State.Overlay {
		return
	}
	defer profiling.Track("renderer.overlay")()

	img := graphics.OverlayImage(ctx.State.Heightmap, ImageSize, o.face, Label(ctx.State))
	graphics.UpdateTexture(o.texture, img)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	o.shader.Use()
	o.shader.SetInt("tex", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)

	o.mesh.Bind()
	o.mesh.Draw()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (o *Overlay) Dispose() {
	if o.texture != 0 {
		gl.DeleteTextures(1, &o.texture)
		o.texture = 0
	}
	if o.mesh != nil {
		o.mesh.Delete()
	}
	if o.shader != nil {
		o.shader.Delete()
	}
	if o.face != nil {
		_ = o.face.Close()
	}
}

func (o *Overlay) SetViewport(width, height int) {}
