package graphics

import (
	"io/fs"
	"path"
	"testing"
)

func TestCubeMesh(t *testing.T) {
	verts, indices := CubeMesh()

	if len(verts) != CubeVertexCount {
		t.Fatalf("expected %d vertices, got %d", CubeVertexCount, len(verts))
	}
	if len(indices) != CubeIndexCount {
		t.Fatalf("expected %d indices, got %d", CubeIndexCount, len(indices))
	}

	for i, v := range verts {
		// every vertex lies on the face its normal points out of
		if d := v.Pos.Dot(v.Normal); d != 0.5 {
			t.Errorf("vertex %d: position %v is not on the face with normal %v", i, v.Pos, v.Normal)
		}
		if v.UV.X < 0 || v.UV.X > 1 || v.UV.Y < 0 || v.UV.Y > 1 {
			t.Errorf("vertex %d: uv %v out of range", i, v.UV)
		}
	}

	for i := 0; i < len(indices); i += 3 {
		for _, idx := range indices[i : i+3] {
			if int(idx) >= len(verts) {
				t.Fatalf("index %d out of range", idx)
			}
		}

		// counter-clockwise seen from outside
		a, b, c := verts[indices[i]], verts[indices[i+1]], verts[indices[i+2]]
		n := b.Pos.Sub(a.Pos).Cross(c.Pos.Sub(a.Pos))
		if n.Dot(a.Normal) <= 0 {
			t.Errorf("triangle %d winds inward", i/3)
		}
	}
}

func TestEmbeddedShaders(t *testing.T) {
	names := []string{
		TerrainVertShader, TerrainFragShader,
		DebugVertShader, DebugFragShader,
		OverlayVertShader, OverlayFragShader,
		CubeVertShader, CubeFragShader,
	}

	for _, name := range names {
		src, err := fs.ReadFile(shaderFiles, path.Join(ShadersDir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if len(src) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
