package sim

import (
	"math"
	"wavelab/internal/config"
	"wavelab/pkg/vmath"
)

const (
	FovY      = 45 * vmath.Deg2Rad
	NearPlane = 0.5
	FarPlane  = 100
)

// Orbit places the camera on a circle around the origin, above the field
type Orbit struct {
	Distance float32
	Angle    float32 // radians around +Y
}

func DefaultOrbit() Orbit {
	return Orbit{Distance: 5, Angle: 0.1}
}

// Eye returns the camera position. Height grows with the distance so
// the field stays in view when zooming out.
func (o Orbit) Eye() vmath.Vec3 {
	s, c := math.Sincos(float64(o.Angle))
	return vmath.V3(o.Distance*float32(s), 0.7*o.Distance, o.Distance*float32(c))
}

// Zoom moves the camera by delta and clamps to the configured bounds
func (o Orbit) Zoom(delta float32) Orbit {
	lo, hi := config.GetZoomBounds()
	o.Distance = vmath.Clamp(o.Distance+delta, lo, hi)
	return o
}

func (o Orbit) Rotate(delta float32) Orbit {
	o.Angle += delta
	return o
}

// Camera returns the view and projection matrices for an orbit
func Camera(o Orbit, aspect float32) (view, proj vmath.Mat4) {
	view = vmath.LookAt(o.Eye(), vmath.Zero3, vmath.WorldUp)
	proj = vmath.Perspective(FovY, aspect, NearPlane, FarPlane)
	return view, proj
}

// CursorNDC converts a cursor position in window pixels to normalized
// device coordinates, y still pointing down as the window reports it.
func CursorNDC(x, y float64, width, height int) vmath.Vec2 {
	return vmath.V2(
		float32(x/(float64(width)*0.5)-1),
		float32(y/(float64(height)*0.5)-1),
	)
}

// Ray is the world-space line under the cursor. Normal is perpendicular
// to both the ray and the camera's horizontal axis; dragging measures
// heights against it.
type Ray struct {
	Origin vmath.Vec3
	Dir    vmath.Vec3
	Normal vmath.Vec3
}

// MouseRay casts a ray through ndc. The view translation is dropped so
// that unprojecting lands on a direction rather than a point.
func MouseRay(view, proj vmath.Mat4, ndc vmath.Vec2) Ray {
	rotOnly := view
	rotOnly.SetTranslation(vmath.Zero3)

	inv := proj.Mul(rotOnly).Inverse()
	dir := vmath.Unproject(inv, vmath.V2(ndc.X, -ndc.Y), 1).Normalize()

	camX := vmath.V3(rotOnly[0], rotOnly[4], rotOnly[8])

	return Ray{
		Origin: view.Inverse().Translation(),
		Dir:    dir,
		Normal: dir.Cross(camX).Normalize(),
	}
}
