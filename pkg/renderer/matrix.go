package renderer

import "github.com/Mathematician2000/whitted-raytracer/pkg/core"

// worldUp is the reference up direction for building camera bases.
var worldUp = core.NewVec3(0, 1, 0)

// Matrix is a 4x4 camera-to-world transform in row-vector convention:
// rows 0-2 hold the right/up/forward basis, row 3 the translation.
type Matrix [4][4]float64

// NewMatrix assembles a camera-to-world matrix from an orthonormal basis
// and the camera position.
func NewMatrix(right, up, forward, from core.Vec3) Matrix {
	return Matrix{
		{right.X, right.Y, right.Z, 0},
		{up.X, up.Y, up.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{from.X, from.Y, from.Z, 1},
	}
}

// LookAt builds the camera-to-world transform for a camera at from looking
// toward to. The camera looks down its negative forward axis. When the view
// direction is within eps of the world up, a slightly perturbed up vector
// keeps the cross product from collapsing.
func LookAt(from, to core.Vec3, eps float64) Matrix {
	forward := from.Subtract(to).Normalize()

	up := worldUp
	right := up.Cross(forward)
	if right.Length() < eps {
		up = core.NewVec3(0, 1, 1e-5)
		right = up.Cross(forward)
	}
	right = right.Normalize()

	return NewMatrix(right, forward.Cross(right), forward, from)
}

// VectorMatrixMultiply transforms a direction: rotation only, no
// translation and no perspective divide.
func VectorMatrixMultiply(m Matrix, v core.Vec3) core.Vec3 {
	return core.NewVec3(
		v.X*m[0][0]+v.Y*m[1][0]+v.Z*m[2][0],
		v.X*m[0][1]+v.Y*m[1][1]+v.Z*m[2][1],
		v.X*m[0][2]+v.Y*m[1][2]+v.Z*m[2][2],
	)
}

// PointMatrixMultiply transforms a point: rotation, translation, and a
// homogeneous divide by the transformed w so projective transforms work too.
func PointMatrixMultiply(m Matrix, p core.Vec3) core.Vec3 {
	result := VectorMatrixMultiply(m, p)
	result.AddInPlace(core.NewVec3(m[3][0], m[3][1], m[3][2]))

	w := p.X*m[0][3] + p.Y*m[1][3] + p.Z*m[2][3] + m[3][3]
	return result.Divide(w)
}
