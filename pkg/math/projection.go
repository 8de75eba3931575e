package math

// Clip describes the view window on the projection plane and the
// front/back distances. Near and Far are positive distances from the eye.
type Clip struct {
	Left, Right, Bottom, Top, Near, Far float64
}

// ClipFromArray converts [left, right, bottom, top, near, far].
func ClipFromArray(a [6]float64) Clip {
	return Clip{Left: a[0], Right: a[1], Bottom: a[2], Top: a[3], Near: a[4], Far: a[5]}
}

// Array returns the clip as [left, right, bottom, top, near, far].
func (c Clip) Array() [6]float64 {
	return [6]float64{c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far}
}

// ZMin returns the z of the near plane in the canonical view volume.
func (c Clip) ZMin() float64 {
	return -c.Near / c.Far
}

// ViewBasis returns the view reference axes for an eye at prp looking at srp.
// n points from srp back to the eye, u is to the right and v is up.
func ViewBasis(prp, srp, vup Vec3) (u, v, n Vec3) {
	n = prp.Sub(srp).Normalize()
	u = vup.Cross(n).Normalize()
	v = n.Cross(u)
	return u, v, n
}

// ViewRotation returns the rotation whose rows are u, v, n.
func ViewRotation(u, v, n Vec3) Mat4 {
	return Mat4{
		u.X, u.Y, u.Z, 0,
		v.X, v.Y, v.Z, 0,
		n.X, n.Y, n.Z, 0,
		0, 0, 0, 1,
	}
}

// PerspectiveView returns the matrix that takes world coordinates into the
// canonical perspective view volume, bounded by x = ±z, y = ±z and
// z in [-1, zmin].
func PerspectiveView(prp, srp, vup Vec3, clip Clip) Mat4 {
	// 1. eye to origin
	translate := Translate(-prp.X, -prp.Y, -prp.Z)

	// 2. align (u, v, n) with (x, y, z)
	u, v, n := ViewBasis(prp, srp, vup)
	rotate := ViewRotation(u, v, n)

	// 3. put the centre of the window on the z axis
	cw := Vec3{(clip.Left + clip.Right) / 2, (clip.Bottom + clip.Top) / 2, -clip.Near}
	shear := ShearXY(-cw.X/cw.Z, -cw.Y/cw.Z)

	// 4. scale to the canonical frustum
	scale := Scale(
		(2*clip.Near)/((clip.Right-clip.Left)*clip.Far),
		(2*clip.Near)/((clip.Top-clip.Bottom)*clip.Far),
		1/clip.Far,
	)

	return Chain(scale, shear, rotate, translate)
}

// ProjectToPlane returns the matrix projecting the canonical volume onto the
// z = -1 plane. Results must be dehomogenized.
func ProjectToPlane() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -1, 0,
	}
}

// Viewport maps the projected [-1, 1] square onto [0, width] x [0, height].
func Viewport(width, height float64) Mat4 {
	return Mat4{
		width / 2, 0, 0, width / 2,
		0, height / 2, 0, height / 2,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
