package vmath

import "math"

// Vec3 is a point or direction in 3D space
type Vec3 struct {
	X, Y, Z float32
}

// Vec2 is used for screen and normalized device coordinates
type Vec2 struct {
	X, Y float32
}

var (
	Zero3   = Vec3{0, 0, 0}
	UnitX   = Vec3{1, 0, 0}
	UnitY   = Vec3{0, 1, 0}
	UnitZ   = Vec3{0, 0, 1}
	WorldUp = UnitY
)

func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Mul scales v by s
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Scale is the scalar-on-the-left form of Mul, s*v
func Scale(s float32, v Vec3) Vec3 {
	return v.Mul(s)
}

func (v Vec3) Dot(u Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the right-handed cross product v x u
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize divides every component by the length of v.
// A zero vector has no direction; the result is NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	debugZeroLength(l)
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func (v Vec3) ApproxEqual(u Vec3, eps float32) bool {
	return NearlyEqual(v.X, u.X, eps) && NearlyEqual(v.Y, u.Y, eps) && NearlyEqual(v.Z, u.Z, eps)
}

func (v Vec3) Vec4(w float32) [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, w}
}

func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(u Vec2) Vec2 {
	return Vec2{v.X + u.X, v.Y + u.Y}
}

func (v Vec2) Sub(u Vec2) Vec2 {
	return Vec2{v.X - u.X, v.Y - u.Y}
}

func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(u Vec2) float32 {
	return v.X*u.X + v.Y*u.Y
}

func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	debugZeroLength(l)
	return Vec2{v.X / l, v.Y / l}
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
