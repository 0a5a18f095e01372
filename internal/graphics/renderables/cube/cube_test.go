package cube

import (
	"math"
	"testing"
	"wavelab/pkg/vmath"
)

func TestTransform(t *testing.T) {
	if m := Transform(0); !m.ApproxEqual(vmath.Identity(), 1e-6) {
		t.Errorf("expected identity at t=0, got\n%v", m)
	}

	// a quarter turn takes one second
	got := Transform(1).MulPoint(vmath.V3(1, 0, 0))
	if !got.ApproxEqual(vmath.V3(0, 0, -1), 1e-5) {
		t.Errorf("after one second: expected (0, 0, -1), got %v", got)
	}

	// full turns wrap
	a, b := Transform(0.5), Transform(0.5+2*math.Pi/RadiansPerSecond)
	if !a.ApproxEqual(b, 1e-4) {
		t.Errorf("expected a full turn to wrap around\n%v\n%v", a, b)
	}
}

func TestCamera(t *testing.T) {
	view, proj := Camera(1)

	if o := view.MulPoint(Eye); !o.ApproxEqual(vmath.Zero3, 1e-5) {
		t.Errorf("eye should map to the view origin, got %v", o)
	}
	// the cube center is straight ahead and inside the depth range
	c := proj.MulPoint(view.MulPoint(vmath.Zero3))
	if math.Abs(float64(c.X)) > 1e-5 || math.Abs(float64(c.Y)) > 1e-5 || c.Z <= -1 || c.Z >= 1 {
		t.Errorf("cube center projects to %v", c)
	}
}
