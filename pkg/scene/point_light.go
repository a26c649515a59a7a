package scene

import "github.com/Mathematician2000/whitted-raytracer/pkg/core"

// PointLight is a point light source with an RGB intensity
type PointLight struct {
	Origin    core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(origin, intensity core.Vec3) PointLight {
	return PointLight{Origin: origin, Intensity: intensity}
}
