package core

// Material holds the flat shading parameters of a primitive.
//
// Albedo weights the three light-transport terms: X scales the local
// diffuse+specular contribution, Y the reflected ray, Z the refracted ray.
type Material struct {
	Ambient          Vec3    // base color added unconditionally
	Diffuse          Vec3    // Lambertian color
	Specular         Vec3    // Phong highlight color
	SpecularExponent float64 // Phong exponent
	RefractionIndex  float64 // index of refraction of the volume
	Albedo           Vec3    // (local, reflection, refraction) weights
}
