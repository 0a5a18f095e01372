package terrain

import (
	"wavelab/internal/graphics"
	renderer "wavelab/internal/graphics/renderer"
	"wavelab/internal/profiling"
	"wavelab/internal/sim"
)

// Terrain draws one lit box per heightmap cell
type Terrain struct {
	shader *graphics.Shader
	mesh   *graphics.Mesh
}

func NewTerrain() *Terrain {
	return &Terrain{}
}

func (t *Terrain) Init() error {
	var err error
	t.shader, err = graphics.NewShader(graphics.TerrainVertShader, graphics.TerrainFragShader)
	if err != nil {
		return err
	}
	t.mesh = graphics.NewCubeMesh()
	return nil
}

func (t *Terrain) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.terrain")()

	hm := ctx.State.Heightmap

	t.shader.Use()
	t.shader.SetMatrix4("view", ctx.View)
	t.shader.SetMatrix4("proj", ctx.Proj)
	t.shader.SetBool("debug", ctx.State.Debug)

	t.mesh.Bind()
	for row := 0; row < hm.Width; row++ {
		for col := 0; col < hm.Width; col++ {
			t.shader.SetMatrix4("trans", hm.CellTransform(sim.Cell{Row: row, Col: col}))
			t.mesh.Draw()
		}
	}
}

func (t *Terrain) Dispose() {
	if t.mesh != nil {
		t.mesh.Delete()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

func (t *Terrain) SetViewport(width, height int) {}
