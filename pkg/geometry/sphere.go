package geometry

import (
	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

// Intersect tests if a ray intersects with the sphere.
// Substituting P(t) = O + tD into |P-C|^2 = r^2 gives a quadratic in t
// with a = 1 since ray directions are unit length.
func (s *Sphere) Intersect(ray core.Ray) (core.Intersection, bool) {
	oc := ray.Origin.Subtract(s.Center)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	t0, t1, ok, err := core.SolveQuadratic(1, b, c)
	if err != nil {
		// Unreachable with a = 1; a degenerate equation means a broken primitive.
		panic(err)
	}
	if !ok || t1 < 0 {
		return core.Intersection{}, false
	}

	// A negative near root means the ray starts inside the sphere:
	// report the exit point instead.
	t := t0
	if t0 < 0 {
		t = t1
	}

	point := ray.At(t)
	return core.Intersection{
		T:      t,
		Point:  point,
		Normal: s.GetNormal(point),
	}, true
}

// GetNormal returns the outer normal at a point on the surface.
// Dividing by the radius is equivalent to normalizing and cheaper.
func (s *Sphere) GetNormal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Divide(s.Radius)
}

// Material returns the sphere's material
func (s *Sphere) Material() *core.Material {
	return &s.Mat
}

// HasVolume reports that a sphere encloses a volume
func (s *Sphere) HasVolume() bool {
	return true
}
