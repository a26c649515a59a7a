package renderer

import (
	"math"

	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
)

// MissColor marks pixels whose primary ray left the scene. Tone mapping
// replaces it with the background color.
var MissColor = core.NewVec3(-3.14, -3.14, -3.14)

// NewPixelBuffer allocates a height x width buffer of RGB pixels
func NewPixelBuffer(width, height int) [][]core.Vec3 {
	pixels := make([][]core.Vec3, height)
	for j := range pixels {
		pixels[j] = make([]core.Vec3, width)
	}
	return pixels
}

// ToneMapping replaces miss-marked pixels with the background color and
// compresses overexposed pixels by dividing by their maximum channel.
// Operates in place.
func ToneMapping(pixels [][]core.Vec3, background core.Vec3, eps float64) {
	for j := range pixels {
		for i := range pixels[j] {
			if pixels[j][i].ApproxEqual(MissColor, eps) {
				pixels[j][i] = background
				continue
			}
			if maxChannel := pixels[j][i].MaxComponent(); maxChannel > 1 {
				pixels[j][i].DivideInPlace(maxChannel)
			}
		}
	}
}

// GammaCorrection raises every channel to 1/gamma, in place. Pixels whose
// maximum channel is below eps are left alone so pure black stays black.
func GammaCorrection(pixels [][]core.Vec3, gamma, eps float64) {
	invGamma := 1 / gamma
	for j := range pixels {
		for i := range pixels[j] {
			p := &pixels[j][i]
			if p.MaxComponent() < eps {
				continue
			}
			p.X = math.Pow(p.X, invGamma)
			p.Y = math.Pow(p.Y, invGamma)
			p.Z = math.Pow(p.Z, invGamma)
		}
	}
}

// Postprocess applies tone mapping followed by gamma correction, leaving
// every channel in [0, 1].
func Postprocess(pixels [][]core.Vec3, background core.Vec3, gamma, eps float64) {
	ToneMapping(pixels, background, eps)
	GammaCorrection(pixels, gamma, eps)
}
