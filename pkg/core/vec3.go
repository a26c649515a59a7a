package core

import "math"

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddInPlace adds another vector to this one
func (v *Vec3) AddInPlace(other Vec3) *Vec3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// SubtractInPlace subtracts another vector from this one
func (v *Vec3) SubtractInPlace(other Vec3) *Vec3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyInPlace scales this vector by a scalar
func (v *Vec3) MultiplyInPlace(scalar float64) *Vec3 {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

// Divide returns the vector scaled by the reciprocal of a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// DivideInPlace scales this vector by the reciprocal of a scalar
func (v *Vec3) DivideInPlace(scalar float64) *Vec3 {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Hadamard returns the component-wise product of two vectors.
// Used for RGB color blending; distinct from scalar Multiply.
func (v Vec3) Hadamard(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Normalize returns a unit vector in the same direction.
// The receiver must not be the zero vector; passing one is a caller
// bug, so this panics rather than returning a garbage direction.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		panic("core: cannot normalize a zero-length vector")
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// NormalizeInPlace normalizes this vector to unit length.
// Same zero-vector precondition as Normalize.
func (v *Vec3) NormalizeInPlace() *Vec3 {
	length := v.Length()
	if length == 0 {
		panic("core: cannot normalize a zero-length vector")
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
	return v
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func (v Vec3) Clamp(minVal, maxVal float64) Vec3 {
	return Vec3{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// MaxComponent returns the largest of the three components
func (v Vec3) MaxComponent() float64 {
	return max(v.X, max(v.Y, v.Z))
}

// ApproxEqual reports whether two vectors are equal within eps per component
func (v Vec3) ApproxEqual(other Vec3, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps &&
		math.Abs(v.Y-other.Y) <= eps &&
		math.Abs(v.Z-other.Z) <= eps
}
