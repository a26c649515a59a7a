package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
)

// channelToByte converts a [0,1] channel to 8 bits: clamp(0, 255, round(256*c))
func channelToByte(c float64) uint8 {
	return uint8(max(0, min(255, math.Round(256*c))))
}

// ToRGBA converts a postprocessed pixel buffer to an 8-bit RGBA image
func ToRGBA(pixels [][]core.Vec3) *image.RGBA {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			p := pixels[j][i]
			img.SetRGBA(i, j, color.RGBA{
				R: channelToByte(p.X),
				G: channelToByte(p.Y),
				B: channelToByte(p.Z),
				A: 255,
			})
		}
	}
	return img
}
