package vmath

import "math"

const (
	Pi      = float32(math.Pi)
	Deg2Rad = Pi / 180
	Rad2Deg = 180 / Pi
)

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

/*
NearlyEqual compares two floats with a relative error margin. Values at
or near zero fall back to an absolute margin of eps.
http://floating-point-gui.de/errors/comparison/
*/
func NearlyEqual(a, b, eps float32) bool {
	// handles infinities
	if a == b {
		return true
	}

	diff := abs32(a - b)
	if a == 0 || b == 0 || diff < eps {
		return diff < eps
	}

	return diff/(abs32(a)+abs32(b)) < eps
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func sincos(theta float32) (float32, float32) {
	s, c := math.Sincos(float64(theta))
	return float32(s), float32(c)
}

func tan(theta float32) float32 {
	return float32(math.Tan(float64(theta)))
}
