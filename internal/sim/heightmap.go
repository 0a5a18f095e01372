package sim

import (
	"wavelab/pkg/vmath"
)

// FieldScale stretches the unit heightmap square to world size on X and Z
const FieldScale = 6

// Heightmap is a square grid of heights, row-major. Row runs along
// world X, column along world Z.
type Heightmap struct {
	Width int
	Vals  []float32
}

// Cell addresses one heightmap entry
type Cell struct {
	Row, Col int
}

func NewHeightmap(width int) *Heightmap {
	return &Heightmap{
		Width: width,
		Vals:  make([]float32, width*width),
	}
}

func (h *Heightmap) At(row, col int) float32 {
	return h.Vals[row*h.Width+col]
}

func (h *Heightmap) Set(row, col int, v float32) {
	h.Vals[row*h.Width+col] = v
}

func (h *Heightmap) Clear() {
	clear(h.Vals)
}

func (h *Heightmap) Clone() *Heightmap {
	out := NewHeightmap(h.Width)
	copy(out.Vals, h.Vals)
	return out
}

// Contains reports whether c lies on the grid
func (h *Heightmap) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < h.Width && c.Col >= 0 && c.Col < h.Width
}

// norm maps a row or column index into [0, 1)
func (h *Heightmap) norm(i int) float32 {
	return float32(i) / float32(h.Width)
}

func fieldScale() vmath.Mat4 {
	return vmath.Diagonal(FieldScale, 1, FieldScale, 1)
}

// PositionAt returns the world position of a cell at an arbitrary height
func (h *Heightmap) PositionAt(c Cell, height float32) vmath.Vec3 {
	local := vmath.V3(h.norm(c.Row)-0.5, height, h.norm(c.Col)-0.5)
	return fieldScale().MulPoint(local)
}

// CellPosition returns the world position of the top of a cell
func (h *Heightmap) CellPosition(c Cell) vmath.Vec3 {
	return h.PositionAt(c, h.At(c.Row, c.Col))
}

// CellTransform is the model matrix of the box drawn for a cell. The
// unit box is two units tall so that its top face sits at the cell height.
func (h *Heightmap) CellTransform(c Cell) vmath.Mat4 {
	w := 1 / float32(h.Width)

	// translation poked into a scaled base, then scaled with the field
	m := vmath.Diagonal(w, 2, w, 1)
	m[12] = h.norm(c.Row) - 0.5
	m[13] = h.At(c.Row, c.Col) - 1
	m[14] = h.norm(c.Col) - 0.5

	return fieldScale().Mul(m)
}

// CellUnder returns the cell below world position (x, z)
func (h *Heightmap) CellUnder(x, z float32) (Cell, bool) {
	c := Cell{
		Row: int((x/FieldScale + 0.5) * float32(h.Width)),
		Col: int((z/FieldScale + 0.5) * float32(h.Width)),
	}
	return c, h.Contains(c) && x/FieldScale+0.5 >= 0 && z/FieldScale+0.5 >= 0
}

// Stats returns the lowest, highest and mean height
func (h *Heightmap) Stats() (lo, hi, mean float32) {
	if len(h.Vals) == 0 {
		return 0, 0, 0
	}
	lo, hi = h.Vals[0], h.Vals[0]
	var sum float32
	for _, v := range h.Vals {
		lo = min(lo, v)
		hi = max(hi, v)
		sum += v
	}
	return lo, hi, sum / float32(len(h.Vals))
}
