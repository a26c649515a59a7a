package core

// Intersection describes a ray-primitive hit. T is the hit distance along
// the ray. Normal is the surface normal the primitive reports (outer for
// spheres, winding-consistent for triangles); the tracing layer flips it
// for exiting rays.
type Intersection struct {
	T      float64
	Point  Vec3
	Normal Vec3
}
