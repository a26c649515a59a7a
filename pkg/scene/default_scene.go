package scene

import (
	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
	"github.com/Mathematician2000/whitted-raytracer/pkg/geometry"
)

// NewDefaultScene creates a demo scene: a matte sphere, a glass sphere and
// a mirror sphere above a two-triangle floor, lit by two point lights.
func NewDefaultScene() *Scene {
	s := NewScene()

	matte := core.Material{
		Ambient:          core.NewVec3(0.05, 0.05, 0.1),
		Diffuse:          core.NewVec3(0.4, 0.4, 0.9),
		Specular:         core.NewVec3(0.3, 0.3, 0.3),
		SpecularExponent: 32,
		Albedo:           core.NewVec3(1, 0, 0),
	}
	glass := core.Material{
		Ambient:          core.NewVec3(0.02, 0.02, 0.02),
		Diffuse:          core.NewVec3(0.1, 0.1, 0.1),
		Specular:         core.NewVec3(0.5, 0.5, 0.5),
		SpecularExponent: 96,
		RefractionIndex:  1.5,
		Albedo:           core.NewVec3(0.2, 0.2, 0.8),
	}
	mirror := core.Material{
		Ambient:          core.NewVec3(0.03, 0.03, 0.03),
		Diffuse:          core.NewVec3(0.1, 0.1, 0.1),
		Specular:         core.NewVec3(0.8, 0.8, 0.8),
		SpecularExponent: 128,
		RefractionIndex:  1,
		Albedo:           core.NewVec3(0.4, 0.6, 0),
	}
	floor := core.Material{
		Ambient:          core.NewVec3(0.08, 0.06, 0.04),
		Diffuse:          core.NewVec3(0.6, 0.5, 0.35),
		Specular:         core.NewVec3(0.1, 0.1, 0.1),
		SpecularExponent: 8,
		Albedo:           core.NewVec3(1, 0.05, 0),
	}

	s.AddObject(geometry.NewSphere(core.NewVec3(-1.5, 0, -4), 1, matte))
	s.AddObject(geometry.NewSphere(core.NewVec3(0, -0.25, -2.5), 0.75, glass))
	s.AddObject(geometry.NewSphere(core.NewVec3(1.75, 0.25, -4.5), 1.25, mirror))

	// Floor quad at y=-1, split into two triangles with upward normals
	a := core.NewVec3(-6, -1, -9)
	b := core.NewVec3(6, -1, -9)
	c := core.NewVec3(6, -1, 1)
	d := core.NewVec3(-6, -1, 1)
	s.AddObject(geometry.NewTriangle(a, c, b, floor))
	s.AddObject(geometry.NewTriangle(a, d, c, floor))

	s.AddLight(NewPointLight(core.NewVec3(-3, 4, 0), core.NewVec3(0.9, 0.9, 0.9)))
	s.AddLight(NewPointLight(core.NewVec3(4, 3, -1), core.NewVec3(0.4, 0.35, 0.3)))

	return s
}

// NewSingleSphereScene creates a minimal scene with one unit sphere at the
// origin and a single light above it. Useful for smoke tests.
func NewSingleSphereScene() *Scene {
	s := NewScene()

	mat := core.Material{
		Ambient:          core.NewVec3(0.1, 0.1, 0.1),
		Diffuse:          core.NewVec3(0.7, 0.2, 0.2),
		Specular:         core.NewVec3(0.4, 0.4, 0.4),
		SpecularExponent: 16,
		Albedo:           core.NewVec3(1, 0, 0),
	}
	s.AddObject(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat))
	s.AddLight(NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1)))

	return s
}
