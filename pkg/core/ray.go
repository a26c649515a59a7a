package core

import "math"

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction.
// A Ray's direction always has unit length after construction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Reflect mirrors a direction off a surface with the given normal.
// The normal must face against the incoming direction.
func Reflect(direction, normal Vec3) Vec3 {
	return direction.Subtract(normal.Multiply(2 * direction.Dot(normal)))
}

// Refract bends a direction through a surface with the given normal using
// Snell's law. Eta is the ratio of refraction indices with the initial
// environment's index in the numerator; the normal and eta are flipped
// internally when the ray is exiting the medium. Returns false on total
// internal reflection.
func Refract(direction, normal Vec3, eta float64) (Vec3, bool) {
	cosI := -normal.Dot(direction)
	if cosI < 0 {
		cosI = -cosI
		normal = normal.Negate()
		eta = 1 / eta
	}

	sin2T := eta * eta * (1 - cosI*cosI)
	if sin2T > 1 {
		return Vec3{}, false
	}

	cosT := math.Sqrt(1 - sin2T)
	refracted := direction.Multiply(eta).Add(normal.Multiply(eta*cosI - cosT))
	return refracted.Normalize(), true
}
