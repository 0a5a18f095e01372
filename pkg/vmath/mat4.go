package vmath

import (
	"fmt"
	"strings"
)

/*
Mat4 is a 4x4 matrix stored column first, as OpenGL expects it:

	+-          -+
	| 0  4  8 12 |
	| 1  5  9 13 |
	| 2  6 10 14 |
	| 3  7 11 15 |
	+-          -+

The element at column c, row r lives at index c*4 + r, so the
translation of an affine transform sits in 12, 13 and 14.
*/
type Mat4 [16]float32

func Identity() Mat4 {
	return Diagonal(1, 1, 1, 1)
}

// Diagonal returns a matrix with a, b, c, d on the diagonal and zeros
// elsewhere. Besides plain scaling, callers use it as a base and write a
// translation into 12..14 afterwards; see SetTranslation.
func Diagonal(a, b, c, d float32) Mat4 {
	return Mat4{
		a, 0, 0, 0,
		0, b, 0, 0,
		0, 0, c, 0,
		0, 0, 0, d,
	}
}

func Translation(v Vec3) Mat4 {
	m := Identity()
	m.SetTranslation(v)
	return m
}

func ScaleMat(v Vec3) Mat4 {
	return Diagonal(v.X, v.Y, v.Z, 1)
}

// Rotation returns a rotation of theta radians around the unit vector u.
// Rotations are counter-clockwise when looking from u toward the
// origin, so a quarter turn around +Y takes +X to -Z.
func Rotation(u Vec3, theta float32) Mat4 {
	sin, cos := sincos(theta)
	k := 1 - cos
	x, y, z := u.X, u.Y, u.Z

	return Mat4{
		cos + x*x*k, y*x*k + z*sin, z*x*k - y*sin, 0,
		x*y*k - z*sin, cos + y*y*k, z*y*k + x*sin, 0,
		x*z*k + y*sin, y*z*k - x*sin, cos + z*z*k, 0,
		0, 0, 0, 1,
	}
}

// At returns the element in column col and row row
func (m Mat4) At(col, row int) float32 {
	return m[col*4+row]
}

func (m Mat4) Col(c int) [4]float32 {
	return [4]float32{m[c*4], m[c*4+1], m[c*4+2], m[c*4+3]}
}

func (m *Mat4) SetTranslation(v Vec3) {
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
}

func (m Mat4) Translation() Vec3 {
	return Vec3{m[12], m[13], m[14]}
}

// Ptr returns the address of the first element for glUniformMatrix4fv
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Mul returns m*n. Applied to a column vector v the product acts as
// m*(n*v): n first, then m.
func (m Mat4) Mul(n Mat4) Mat4 {
	var res Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			res[col*4+row] = sum
		}
	}
	return res
}

func (m Mat4) MulVec4(v [4]float32) [4]float32 {
	return [4]float32{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// MulPoint transforms p as the homogeneous point (x, y, z, 1) and
// divides the result by its w. Affine matrices keep w at 1.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	r := m.MulVec4(p.Vec4(1))
	if r[3] != 0 && r[3] != 1 {
		return Vec3{r[0] / r[3], r[1] / r[3], r[2] / r[3]}
	}
	return Vec3{r[0], r[1], r[2]}
}

// MulDir transforms a direction: no translation, no divide
func (m Mat4) MulDir(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z,
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z,
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z,
	}
}

// Transpose swaps rows and columns in place
func (m *Mat4) Transpose() {
	for col := 0; col < 4; col++ {
		for row := col + 1; row < 4; row++ {
			m[col*4+row], m[row*4+col] = m[row*4+col], m[col*4+row]
		}
	}
}

func (m Mat4) Transposed() Mat4 {
	m.Transpose()
	return m
}

// 2x2 minors of the top two and bottom two rows of the array read
// row first. Reading the array the other way round transposes both the
// input and the result, so the same minors serve the column-major layout.
func (m Mat4) minors() (s, c [6]float32) {
	s[0] = m[0]*m[5] - m[4]*m[1]
	s[1] = m[0]*m[6] - m[4]*m[2]
	s[2] = m[0]*m[7] - m[4]*m[3]
	s[3] = m[1]*m[6] - m[5]*m[2]
	s[4] = m[1]*m[7] - m[5]*m[3]
	s[5] = m[2]*m[7] - m[6]*m[3]

	c[0] = m[8]*m[13] - m[12]*m[9]
	c[1] = m[8]*m[14] - m[12]*m[10]
	c[2] = m[8]*m[15] - m[12]*m[11]
	c[3] = m[9]*m[14] - m[13]*m[10]
	c[4] = m[9]*m[15] - m[13]*m[11]
	c[5] = m[10]*m[15] - m[14]*m[11]
	return s, c
}

func (m Mat4) Determinant() float32 {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Inverse returns the adjugate divided by the determinant. A singular
// matrix divides by zero and the result is filled with Inf and NaN.
func (m Mat4) Inverse() Mat4 {
	s, c := m.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	debugSingular(det)
	inv := 1 / det

	return Mat4{
		(m[5]*c[5] - m[6]*c[4] + m[7]*c[3]) * inv,
		(-m[1]*c[5] + m[2]*c[4] - m[3]*c[3]) * inv,
		(m[13]*s[5] - m[14]*s[4] + m[15]*s[3]) * inv,
		(-m[9]*s[5] + m[10]*s[4] - m[11]*s[3]) * inv,

		(-m[4]*c[5] + m[6]*c[2] - m[7]*c[1]) * inv,
		(m[0]*c[5] - m[2]*c[2] + m[3]*c[1]) * inv,
		(-m[12]*s[5] + m[14]*s[2] - m[15]*s[1]) * inv,
		(m[8]*s[5] - m[10]*s[2] + m[11]*s[1]) * inv,

		(m[4]*c[4] - m[5]*c[2] + m[7]*c[0]) * inv,
		(-m[0]*c[4] + m[1]*c[2] - m[3]*c[0]) * inv,
		(m[12]*s[4] - m[13]*s[2] + m[15]*s[0]) * inv,
		(-m[8]*s[4] + m[9]*s[2] - m[11]*s[0]) * inv,

		(-m[4]*c[3] + m[5]*c[1] - m[6]*c[0]) * inv,
		(m[0]*c[3] - m[1]*c[1] + m[2]*c[0]) * inv,
		(-m[12]*s[3] + m[13]*s[1] - m[14]*s[0]) * inv,
		(m[8]*s[3] - m[9]*s[1] + m[10]*s[0]) * inv,
	}
}

func (m Mat4) IsFinite() bool {
	for _, f := range m {
		if !finite(f) {
			return false
		}
	}
	return true
}

func (m Mat4) ApproxEqual(n Mat4, eps float32) bool {
	for i := range m {
		if !NearlyEqual(m[i], n[i], eps) {
			return false
		}
	}
	return true
}

// String prints one column per line
func (m Mat4) String() string {
	var b strings.Builder
	for col := 0; col < 4; col++ {
		fmt.Fprintf(&b, "%f\t%f\t%f\t%f\n", m[col*4], m[col*4+1], m[col*4+2], m[col*4+3])
	}
	return b.String()
}
