package geometry

import (
	"fmt"

	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
)

const epsilon = 1e-8

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Mat        core.Material
	normal     core.Vec3 // cached unit normal, winding-consistent
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat core.Material) *Triangle {
	t := &Triangle{
		V0:  v0,
		V1:  v1,
		V2:  v2,
		Mat: mat,
	}
	t.computeNormal()
	return t
}

// NewTriangleFromVertices creates a triangle from a vertex slice,
// rejecting any count other than three.
func NewTriangleFromVertices(vertices []core.Vec3, mat core.Material) (*Triangle, error) {
	if len(vertices) != 3 {
		return nil, fmt.Errorf("geometry: triangle requires exactly 3 vertices, got %d", len(vertices))
	}
	return NewTriangle(vertices[0], vertices[1], vertices[2], mat), nil
}

// TriangleArea calculates the area of the triangle spanned by three vertices
func TriangleArea(v0, v1, v2 core.Vec3) float64 {
	return v1.Subtract(v0).Cross(v2.Subtract(v0)).Length() / 2
}

// computeNormal calculates and caches the triangle's normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Area returns the triangle's area
func (t *Triangle) Area() float64 {
	return TriangleArea(t.V0, t.V1, t.V2)
}

// Intersect tests if a ray intersects the triangle using the
// Moller-Trumbore algorithm.
func (t *Triangle) Intersect(ray core.Ray) (core.Intersection, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)

	// A near-zero determinant means the ray lies in the triangle's plane
	if det > -epsilon && det < epsilon {
		return core.Intersection{}, false
	}

	invDet := 1 / det
	tvec := ray.Origin.Subtract(t.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return core.Intersection{}, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return core.Intersection{}, false
	}

	dist := edge2.Dot(qvec) * invDet
	if dist <= epsilon {
		// Behind or effectively at the ray origin
		return core.Intersection{}, false
	}

	return core.Intersection{
		T:      dist,
		Point:  ray.At(dist),
		Normal: t.normal,
	}, true
}

// GetBarycentricCoords finds the barycentric coordinates of a point with
// respect to the triangle, via sub-triangle areas. The weights sum to 1
// for points inside the triangle.
func (t *Triangle) GetBarycentricCoords(point core.Vec3) core.Vec3 {
	total := t.Area()
	return core.NewVec3(
		TriangleArea(point, t.V1, t.V2)/total,
		TriangleArea(t.V0, point, t.V2)/total,
		TriangleArea(t.V0, t.V1, point)/total,
	)
}

// GetNormal returns the triangle's cached unit normal
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}

// Material returns the triangle's material
func (t *Triangle) Material() *core.Material {
	return &t.Mat
}

// HasVolume reports that a triangle encloses no volume
func (t *Triangle) HasVolume() bool {
	return false
}
