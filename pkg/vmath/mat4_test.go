package vmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

func randomMat4(rng *rand.Rand) Mat4 {
	var m Mat4
	for i := range m {
		m[i] = rng.Float32()*2 - 1
	}
	return m
}

// rotation * scale * translation with no degenerate factor
func randomTransform(rng *rand.Rand) Mat4 {
	axis := V3(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
	if axis.Len() < 0.1 {
		axis = UnitZ
	}
	angle := rng.Float32() * 2 * Pi
	scale := V3(0.5+rng.Float32()*1.5, 0.5+rng.Float32()*1.5, 0.5+rng.Float32()*1.5)
	offset := V3(rng.Float32()*10-5, rng.Float32()*10-5, rng.Float32()*10-5)

	return Translation(offset).Mul(Rotation(axis.Normalize(), angle)).Mul(ScaleMat(scale))
}

func TestIdentity(t *testing.T) {
	m := Identity()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			expected := float32(0)
			if col == row {
				expected = 1
			}
			if m.At(col, row) != expected {
				t.Errorf("Identity: expected [%d][%d] = %v, got %v", col, row, expected, m.At(col, row))
			}
		}
	}
	if m != Mat4(mgl32.Ident4()) {
		t.Errorf("Identity differs from mgl32.Ident4:\n%v", m)
	}
}

func TestMat4_MulIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tests := []Mat4{
		Identity(),
		Diagonal(2, 3, 4, 1),
		Translation(V3(1, 2, 3)),
		randomMat4(rng),
		randomTransform(rng),
	}

	for _, m := range tests {
		if r := Identity().Mul(m); !r.ApproxEqual(m, 1e-6) {
			t.Errorf("Identity().Mul(\n%v) = \n%v", m, r)
		}
		if r := m.Mul(Identity()); !r.ApproxEqual(m, 1e-6) {
			t.Errorf("(\n%v).Mul(Identity()) = \n%v", m, r)
		}
	}
}

func TestMat4_MulMatchesMathgl(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a, b := randomMat4(rng), randomMat4(rng)
		got := a.Mul(b)
		want := mgl32.Mat4(a).Mul4(mgl32.Mat4(b))
		if !got.ApproxEqual(Mat4(want), 1e-5) {
			t.Fatalf("Mul mismatch\n%v\nmathgl:\n%v", got, Mat4(want))
		}
	}
}

func TestMat4_MulOrder(t *testing.T) {
	// translate after scaling: (1,1,1) -> (2,2,2) -> (12,2,2)
	m := Translation(V3(10, 0, 0)).Mul(ScaleMat(V3(2, 2, 2)))
	got := m.MulPoint(V3(1, 1, 1))
	if !got.ApproxEqual(V3(12, 2, 2), tolerance) {
		t.Errorf("MulOrder: expected (12,2,2), got %v", got)
	}
}

func TestMat4_PerspectiveViewTranslationPoint(t *testing.T) {
	proj := Perspective(90*Deg2Rad, 1, 1, 100)
	view := LookAt(V3(0, 0, 5), Zero3, UnitY)
	model := Translation(V3(0, 0, 3))

	// model moves the origin to z=3, two units in front of the eye: the
	// point sits between the planes on the view axis
	mvp := proj.Mul(view).Mul(model)
	got := mvp.MulPoint(Zero3)

	want := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0},
		mgl32.Perspective(mgl32.DegToRad(90), 1, 1, 100).
			Mul4(mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})).
			Mul4(mgl32.Translate3D(0, 0, 3)))

	if !got.ApproxEqual(V3(want[0], want[1], want[2]), tolerance) {
		t.Errorf("mvp point: got %v, mathgl %v", got, want)
	}
	if got.X != 0 || got.Y != 0 {
		t.Errorf("point on the view axis should stay centered, got %v", got)
	}
	// view-space depth -2: ((101/-99)(-2) - 200/99) / 2
	if math.Abs(float64(got.Z)-(202.0/99-200.0/99)/2) > tolerance {
		t.Errorf("unexpected NDC depth %v", got.Z)
	}
}

func TestMat4_Inverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		m := randomTransform(rng)
		inv := m.Inverse()

		if r := inv.Mul(m); !r.ApproxEqual(Identity(), tolerance) {
			t.Fatalf("Inverse(M)*M != I for\n%v\ngot\n%v", m, r)
		}
		if r := m.Mul(inv); !r.ApproxEqual(Identity(), tolerance) {
			t.Fatalf("M*Inverse(M) != I for\n%v\ngot\n%v", m, r)
		}
		if want := Mat4(mgl32.Mat4(m).Inv()); !inv.ApproxEqual(want, 1e-3) {
			t.Fatalf("Inverse differs from mathgl\n%v\nmathgl:\n%v", inv, want)
		}
	}
}

func TestMat4_InverseProjection(t *testing.T) {
	vp := Perspective(45*Deg2Rad, 1, 0.5, 100).Mul(LookAt(V3(3, 4, 5), Zero3, UnitY))
	if r := vp.Inverse().Mul(vp); !r.ApproxEqual(Identity(), tolerance) {
		t.Errorf("Inverse of view-projection:\n%v", r)
	}
}

func TestMat4_InverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse().IsFinite() {
		t.Error("inverting the zero matrix should not produce finite values")
	}

	flat := Diagonal(1, 1, 0, 1)
	if flat.Determinant() != 0 {
		t.Errorf("Determinant: expected 0, got %v", flat.Determinant())
	}
}

func TestMat4_Determinant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		m := randomMat4(rng)
		if got, want := m.Determinant(), mgl32.Mat4(m).Det(); math.Abs(float64(got-want)) > 1e-4 {
			t.Errorf("Determinant: got %v, mathgl %v", got, want)
		}
	}
	if d := Diagonal(2, 3, 4, 1).Determinant(); d != 24 {
		t.Errorf("Determinant of diag(2,3,4,1): expected 24, got %v", d)
	}
}

func TestDiagonal(t *testing.T) {
	got := Diagonal(2, 3, 4, 1).MulPoint(V3(1, 1, 1))
	if got != V3(2, 3, 4) {
		t.Errorf("Diagonal: expected (2,3,4), got %v", got)
	}
}

func TestDiagonal_WithTranslation(t *testing.T) {
	m := Diagonal(0.5, 2, 0.5, 1)
	m[12], m[13], m[14] = 1, 2, 3

	if got := m.Translation(); got != V3(1, 2, 3) {
		t.Errorf("Translation: expected (1,2,3), got %v", got)
	}
	if got := m.MulPoint(V3(2, 1, 2)); got != V3(2, 4, 4) {
		t.Errorf("scaled then translated: expected (2,4,4), got %v", got)
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		axis     Vec3
		angle    float32
		in, want Vec3
	}{
		{UnitY, Pi / 2, UnitX, V3(0, 0, -1)},
		{UnitY, Pi / 2, UnitZ, UnitX},
		{UnitZ, Pi / 2, UnitX, UnitY},
		{UnitX, Pi / 2, UnitY, UnitZ},
		{UnitX, Pi, UnitY, V3(0, -1, 0)},
		{UnitY, 0, V3(1, 2, 3), V3(1, 2, 3)},
	}

	for _, c := range tests {
		got := Rotation(c.axis, c.angle).MulPoint(c.in)
		if !got.ApproxEqual(c.want, tolerance) {
			t.Errorf("Rotation(%v, %v) * %v: expected %v, got %v", c.axis, c.angle, c.in, c.want, got)
		}

		ref := mgl32.HomogRotate3D(c.angle, mgl32.Vec3{c.axis.X, c.axis.Y, c.axis.Z})
		if !Rotation(c.axis, c.angle).ApproxEqual(Mat4(ref), 1e-5) {
			t.Errorf("Rotation(%v, %v) differs from mgl32.HomogRotate3D", c.axis, c.angle)
		}
	}
}

func TestMat4_Transpose(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	want := Mat4{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}

	if got := m.Transposed(); got != want {
		t.Errorf("Transposed:\n%v", got)
	}
	if m[1] != 2 {
		t.Error("Transposed must not modify its receiver")
	}

	m.Transpose()
	if m != want {
		t.Errorf("Transpose in place:\n%v", m)
	}
}

func TestMat4_MulPointDivides(t *testing.T) {
	proj := Perspective(90*Deg2Rad, 1, 1, 100)

	// x = 2 at depth 4 is half way to the edge of a 90 degree frustum
	got := proj.MulPoint(V3(2, 0, -4))
	if !NearlyEqual(got.X, 0.5, tolerance) {
		t.Errorf("MulPoint should divide by w: expected x=0.5, got %v", got.X)
	}

	raw := proj.MulVec4(V3(2, 0, -4).Vec4(1))
	if raw[3] != 4 {
		t.Errorf("MulVec4: expected w=4, got %v", raw[3])
	}
}

func TestMat4_MulDir(t *testing.T) {
	m := Translation(V3(5, 5, 5)).Mul(ScaleMat(V3(2, 2, 2)))
	if got := m.MulDir(UnitX); got != V3(2, 0, 0) {
		t.Errorf("MulDir should ignore translation, got %v", got)
	}
}

func TestMat4_String(t *testing.T) {
	want := "1.000000\t0.000000\t0.000000\t0.000000\n" +
		"0.000000\t1.000000\t0.000000\t0.000000\n" +
		"0.000000\t0.000000\t1.000000\t0.000000\n" +
		"4.000000\t5.000000\t6.000000\t1.000000\n"
	if got := Translation(V3(4, 5, 6)).String(); got != want {
		t.Errorf("String:\n%q\nwant\n%q", got, want)
	}
}

func BenchmarkMat4_Mul(b *testing.B) {
	m1 := randomTransform(rand.New(rand.NewSource(1)))
	m2 := randomTransform(rand.New(rand.NewSource(2)))

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4_Inverse(b *testing.B) {
	m := randomTransform(rand.New(rand.NewSource(1)))

	for i := 0; i < b.N; i++ {
		_ = m.Inverse()
	}
}
