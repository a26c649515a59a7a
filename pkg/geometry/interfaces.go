package geometry

import "github.com/Mathematician2000/whitted-raytracer/pkg/core"

// Object is the capability contract shared by all scene primitives.
type Object interface {
	// Intersect tests the primitive against a ray. ok is false on a miss.
	Intersect(ray core.Ray) (core.Intersection, bool)
	// Material returns the primitive's material.
	Material() *core.Material
	// HasVolume reports whether the primitive encloses a volume a ray
	// can travel inside (true for spheres, false for triangles).
	HasVolume() bool
}
