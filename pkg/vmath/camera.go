package vmath

// https://www.khronos.org/opengl/wiki/GluLookAt_code
func LookAt(eye, center, up Vec3) Mat4 {
	forward := center.Sub(eye).Normalize()
	side := forward.Cross(up).Normalize()
	up = side.Cross(forward)

	return Mat4{
		side.X, up.X, -forward.X, 0,
		side.Y, up.Y, -forward.Y, 0,
		side.Z, up.Z, -forward.Z, 0,
		-eye.Dot(side), -eye.Dot(up), eye.Dot(forward), 1,
	}
}

// Perspective builds a symmetric projection with fovY in radians. Depth
// maps to [-1, 1] after the divide by w = -z. far == near or a zero
// aspect divide by zero.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	debugProjection(aspect, near, far)
	f := 1 / tan(fovY/2)
	nmf := near - far

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) / nmf, -1,
		0, 0, (2 * far * near) / nmf, 0,
	}
}

// StretchFromTo places the unit box centered on the origin so that the
// centers of its -Y and +Y faces land on p1 and p2, with thickness as
// its X and Z extent.
func StretchFromTo(p1, p2 Vec3, thickness float32) Mat4 {
	newY := p2.Sub(p1)
	length := newY.Len()
	mid := p1.Add(p2).Mul(0.5)

	if length == 0 {
		m := Diagonal(thickness, 0, thickness, 1)
		m.SetTranslation(mid)
		return m
	}

	dir := newY.Mul(1 / length)
	newX := dir.Cross(WorldUp)
	if newX.Len() < 1e-6 {
		// segment is vertical, any horizontal reference works
		newX = dir.Cross(UnitX)
	}
	newZ := newX.Cross(newY)
	newY = newZ.Cross(newX)

	newX = newX.Normalize()
	newY = newY.Normalize()
	newZ = newZ.Normalize()

	rot := Mat4{
		newX.X, newX.Y, newX.Z, 0,
		newY.X, newY.Y, newY.Z, 0,
		newZ.X, newZ.Y, newZ.Z, 0,
		0, 0, 0, 1,
	}

	return Translation(mid).Mul(rot).Mul(Diagonal(thickness, length, thickness, 1))
}

// Unproject maps a point in normalized device coordinates back through
// the inverse of a view-projection matrix
func Unproject(invViewProj Mat4, ndc Vec2, depth float32) Vec3 {
	return invViewProj.MulPoint(Vec3{ndc.X, ndc.Y, depth})
}
