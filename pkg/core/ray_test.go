package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -5))

	if math.Abs(ray.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction, got length %f", ray.Direction.Length())
	}
	if !ray.Direction.ApproxEqual(NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected direction (0,0,-1), got %v", ray.Direction)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1))

	point := ray.At(4)
	if !point.ApproxEqual(NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected (0,0,1), got %v", point)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		normal    Vec3
		expected  Vec3
	}{
		{
			name:      "head-on into a flat mirror",
			direction: NewVec3(0, 0, -1),
			normal:    NewVec3(0, 0, 1),
			expected:  NewVec3(0, 0, 1),
		},
		{
			name:      "45 degree incidence",
			direction: NewVec3(1, -1, 0).Normalize(),
			normal:    NewVec3(0, 1, 0),
			expected:  NewVec3(1, 1, 0).Normalize(),
		},
		{
			name:      "grazing along the surface",
			direction: NewVec3(1, 0, 0),
			normal:    NewVec3(0, 1, 0),
			expected:  NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.direction, tt.normal)
			if !result.ApproxEqual(tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestRefract_IdentityEta(t *testing.T) {
	direction := NewVec3(1, -2, -1).Normalize()
	normal := NewVec3(0, 1, 0)

	refracted, ok := Refract(direction, normal, 1)
	if !ok {
		t.Fatal("Expected refraction with eta=1, got total internal reflection")
	}
	if !refracted.ApproxEqual(direction, 1e-9) {
		t.Errorf("Expected unchanged direction %v, got %v", direction, refracted)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Glass to air (eta=1.5) beyond the critical angle (~41.8 deg)
	direction := NewVec3(1, -0.5, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	if _, ok := Refract(direction, normal, 1.5); ok {
		t.Error("Expected total internal reflection, got a refracted ray")
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// Air to glass at 45 degrees: sin(T) = sin(45)/1.5
	direction := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)
	eta := 1.0 / 1.5

	refracted, ok := Refract(direction, normal, eta)
	if !ok {
		t.Fatal("Expected refraction, got total internal reflection")
	}

	sinT := math.Abs(refracted.X)
	expected := math.Sin(math.Pi/4) * eta
	if math.Abs(sinT-expected) > 1e-9 {
		t.Errorf("Expected sin(T)=%f, got %f", expected, sinT)
	}
	if refracted.Y >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", refracted)
	}
}

func TestRefract_ExitingFlipsNormalAndEta(t *testing.T) {
	// Direction and normal on the same side: the ray is exiting the medium.
	// Straight-out transmission must pass through unchanged.
	direction := NewVec3(0, 1, 0)
	normal := NewVec3(0, 1, 0)

	refracted, ok := Refract(direction, normal, 1.0/1.5)
	if !ok {
		t.Fatal("Expected refraction for normal incidence")
	}
	if !refracted.ApproxEqual(direction, 1e-9) {
		t.Errorf("Expected unchanged direction %v, got %v", direction, refracted)
	}
}
