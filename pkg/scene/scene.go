package scene

import (
	"math"

	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
	"github.com/Mathematician2000/whitted-raytracer/pkg/geometry"
)

// Scene owns the objects and point lights to render. It is mutable only
// through AddObject/AddLight and read-only while tracing, so any number of
// workers may trace rays against it concurrently.
type Scene struct {
	Objects []geometry.Object
	Lights  []PointLight
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// AddObject appends an object to the scene
func (s *Scene) AddObject(obj geometry.Object) {
	s.Objects = append(s.Objects, obj)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(light PointLight) {
	s.Lights = append(s.Lights, light)
}

// ShadowCache remembers the object that blocked the previous shadow ray.
// Neighboring pixels tend to be shadowed by the same object, so trying it
// first usually short-circuits the scan. The cache is purely advisory:
// results are identical with a nil cache, and each worker must own its own
// instance; it is never shared across goroutines.
type ShadowCache struct {
	lastBlocker geometry.Object
}

// FindClosestIntersection scans all objects and returns the minimum-t hit
// together with the object hit. Exact ties go to the earliest-added object.
func (s *Scene) FindClosestIntersection(ray core.Ray) (core.Intersection, geometry.Object, bool) {
	var closest core.Intersection
	var closestObj geometry.Object
	found := false

	for _, obj := range s.Objects {
		if isect, ok := obj.Intersect(ray); ok {
			if !found || isect.T < closest.T {
				closest = isect
				closestObj = obj
				found = true
			}
		}
	}

	return closest, closestObj, found
}

// IsPointIlluminated casts a shadow ray from point toward the light.
// toLight is the un-normalized difference vector pointing at the light;
// the point is in shadow if any object intersects the ray strictly closer
// than the light itself. cache may be nil.
func (s *Scene) IsPointIlluminated(point, toLight core.Vec3, cache *ShadowCache) bool {
	distance := toLight.Length()
	ray := core.NewRay(point, toLight)

	if cache != nil && cache.lastBlocker != nil {
		if isect, ok := cache.lastBlocker.Intersect(ray); ok && isect.T < distance {
			return false
		}
	}

	for _, obj := range s.Objects {
		if cache != nil && obj == cache.lastBlocker {
			continue
		}
		if isect, ok := obj.Intersect(ray); ok && isect.T < distance {
			if cache != nil {
				cache.lastBlocker = obj
			}
			return false
		}
	}

	return true
}

// GetIntensity evaluates the local shading model at an intersection:
// the material's ambient base color plus, for each light that illuminates
// the point, Lambert diffuse and Phong specular terms weighted by the
// material's local albedo. Inside a volume only the ambient term applies.
func (s *Scene) GetIntensity(ray core.Ray, isect core.Intersection, obj geometry.Object, inside bool, eps float64, cache *ShadowCache) core.Vec3 {
	mat := obj.Material()
	intensity := mat.Ambient

	if mat.Albedo.X <= eps || inside {
		return intensity
	}

	normal := isect.Normal
	viewDir := ray.Direction.Negate()
	// Bias off the surface so the shadow ray does not hit the point itself
	shadowOrigin := isect.Point.Add(normal.Multiply(eps))

	for _, light := range s.Lights {
		toLight := light.Origin.Subtract(shadowOrigin)
		if !s.IsPointIlluminated(shadowOrigin, toLight, cache) {
			continue
		}

		lightDir := toLight.Normalize()

		local := core.Vec3{}
		if diff := normal.Dot(lightDir); diff > 0 {
			local.AddInPlace(mat.Diffuse.Hadamard(light.Intensity).Multiply(diff))
		}
		if spec := core.Reflect(lightDir.Negate(), normal).Dot(viewDir); spec > 0 {
			local.AddInPlace(mat.Specular.Hadamard(light.Intensity).Multiply(math.Pow(spec, mat.SpecularExponent)))
		}

		intensity.AddInPlace(local.Multiply(mat.Albedo.X))
	}

	return intensity
}

// TraceRay traces a ray through the scene recursively, spawning reflected
// and refracted rays while the depth budget lasts. inside tracks whether
// the ray currently travels inside a volume; it flips on every volume
// crossing. Returns false when the ray leaves the scene.
func (s *Scene) TraceRay(ray core.Ray, depth int, inside bool, eps float64, cache *ShadowCache) (core.Vec3, bool) {
	isect, obj, ok := s.FindClosestIntersection(ray)
	if !ok {
		return core.Vec3{}, false
	}

	intensity := s.GetIntensity(ray, isect, obj, inside, eps, cache)
	if depth <= 1 {
		return intensity, true
	}

	mat := obj.Material()

	// Face the normal against the incoming ray for spawning secondary rays
	faceNormal := isect.Normal
	if ray.Direction.Dot(faceNormal) > 0 {
		faceNormal = faceNormal.Negate()
	}

	if !inside && mat.Albedo.Y > eps {
		reflected := core.NewRay(
			isect.Point.Add(faceNormal.Multiply(eps)),
			core.Reflect(ray.Direction, faceNormal),
		)
		if color, ok := s.TraceRay(reflected, depth-1, inside, eps, cache); ok {
			intensity.AddInPlace(color.Multiply(mat.Albedo.Y))
		}
	}

	// Inside a volume the exiting ray carries all remaining energy,
	// so the refraction weight is not applied twice.
	refractionWeight := mat.Albedo.Z
	if inside && obj.HasVolume() {
		refractionWeight = 1
	}
	if refractionWeight > eps {
		// Refract flips the normal and inverts eta itself when exiting,
		// so always pass the primitive's normal and the entering ratio.
		if direction, ok := core.Refract(ray.Direction, isect.Normal, 1/mat.RefractionIndex); ok {
			refracted := core.NewRay(isect.Point.Subtract(faceNormal.Multiply(eps)), direction)
			nextInside := inside
			if obj.HasVolume() {
				nextInside = !inside
			}
			if color, ok := s.TraceRay(refracted, depth-1, nextInside, eps, cache); ok {
				intensity.AddInPlace(color.Multiply(refractionWeight))
			}
		}
	}

	return intensity, true
}
