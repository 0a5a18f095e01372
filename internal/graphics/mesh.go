package graphics

import (
	"wavelab/pkg/vmath"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CubeVertex is one corner of one cube face
type CubeVertex struct {
	Pos    vmath.Vec3
	Normal vmath.Vec3
	UV     vmath.Vec2
}

var cubeCorners = [8]vmath.Vec3{
	{X: -0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: 0.5, Z: -0.5},
	{X: 0.5, Y: -0.5, Z: -0.5},
	{X: -0.5, Y: -0.5, Z: -0.5},
	{X: -0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: -0.5, Z: 0.5},
	{X: -0.5, Y: -0.5, Z: 0.5},
}

// corners of each face, counter-clockwise seen from outside
var cubeFaces = [6]struct {
	corners [4]int
	normal  vmath.Vec3
}{
	{[4]int{0, 1, 2, 3}, vmath.Vec3{X: 0, Y: 0, Z: -1}},
	{[4]int{1, 5, 6, 2}, vmath.Vec3{X: 1, Y: 0, Z: 0}},
	{[4]int{3, 2, 6, 7}, vmath.Vec3{X: 0, Y: -1, Z: 0}},
	{[4]int{0, 3, 7, 4}, vmath.Vec3{X: -1, Y: 0, Z: 0}},
	{[4]int{0, 4, 5, 1}, vmath.Vec3{X: 0, Y: 1, Z: 0}},
	{[4]int{5, 4, 7, 6}, vmath.Vec3{X: 0, Y: 0, Z: 1}},
}

var faceUVs = [4]vmath.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

const (
	CubeVertexCount = 6 * 4
	CubeIndexCount  = 6 * 6
)

// CubeMesh builds the unit cube centered on the origin: four vertices
// per face so every face has its own normal, two triangles per face.
func CubeMesh() ([]CubeVertex, []uint32) {
	verts := make([]CubeVertex, 0, CubeVertexCount)
	indices := make([]uint32, 0, CubeIndexCount)

	for _, f := range cubeFaces {
		a := uint32(len(verts))
		for j, c := range f.corners {
			verts = append(verts, CubeVertex{Pos: cubeCorners[c], Normal: f.normal, UV: faceUVs[j]})
		}
		b, c, d := a+1, a+2, a+3
		indices = append(indices, a, b, c, c, d, a)
	}
	return verts, indices
}

// Attrib describes one float vertex attribute
type Attrib struct {
	Location uint32
	Size     int32
}

// Mesh is an indexed triangle list on the GPU
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// NewMesh uploads interleaved float attributes and indices. The
// attributes are laid out in the order given.
func NewMesh(data []float32, indices []uint32, layout ...Attrib) *Mesh {
	m := &Mesh{count: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	var stride int32
	for _, a := range layout {
		stride += a.Size * 4
	}
	var offset uintptr
	for _, a := range layout {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, offset)
		offset += uintptr(a.Size) * 4
	}

	gl.BindVertexArray(0)
	return m
}

// NewCubeMesh uploads CubeMesh with position, normal and uv at locations 0, 1 and 2
func NewCubeMesh() *Mesh {
	verts, indices := CubeMesh()
	data := make([]float32, 0, len(verts)*8)
	for _, v := range verts {
		data = append(data,
			v.Pos.X, v.Pos.Y, v.Pos.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.UV.X, v.UV.Y,
		)
	}
	return NewMesh(data, indices, Attrib{0, 3}, Attrib{1, 3}, Attrib{2, 2})
}

// Bind makes the mesh current; call once before a run of Draw calls
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// Draw issues the indexed draw for a bound mesh
func (m *Mesh) Draw() {
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
}

// Delete cleans up OpenGL resources
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	*m = Mesh{}
}
