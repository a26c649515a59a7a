package renderer

import (
	"math"

	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
)

// CameraOptions configures the virtual camera. Immutable once constructed.
type CameraOptions struct {
	ScreenWidth  int
	ScreenHeight int
	FOV          float64 // horizontal field of view, radians
	LookFrom     core.Vec3
	LookTo       core.Vec3
}

// NewCameraOptions creates camera options with the default field of view
// (pi/2) looking down negative z from the origin.
func NewCameraOptions(width, height int) CameraOptions {
	return CameraOptions{
		ScreenWidth:  width,
		ScreenHeight: height,
		FOV:          math.Pi / 2,
		LookFrom:     core.NewVec3(0, 0, 0),
		LookTo:       core.NewVec3(0, 0, -1),
	}
}

// Context holds the state derived once per render from CameraOptions:
// screen geometry, the camera-to-world transform, and the camera origin in
// world space. It is read-only after construction, so any number of workers
// may generate primary rays from it concurrently.
type Context struct {
	Width       int
	Height      int
	AspectRatio float64
	Scale       float64
	CamToWorld  Matrix
	Origin      core.Vec3
}

// NewContext derives the render context from camera options
func NewContext(cam CameraOptions, eps float64) *Context {
	camToWorld := LookAt(cam.LookFrom, cam.LookTo, eps)
	return &Context{
		Width:       cam.ScreenWidth,
		Height:      cam.ScreenHeight,
		AspectRatio: float64(cam.ScreenWidth) / float64(cam.ScreenHeight),
		Scale:       math.Tan(cam.FOV / 2),
		CamToWorld:  camToWorld,
		Origin:      PointMatrixMultiply(camToWorld, core.Vec3{}),
	}
}

// PrimaryRay builds the camera ray through the center of pixel (i, j)
func (c *Context) PrimaryRay(i, j int) core.Ray {
	x := (2*(float64(i)+0.5)/float64(c.Width) - 1) * c.AspectRatio * c.Scale
	y := (1 - 2*(float64(j)+0.5)/float64(c.Height)) * c.Scale

	direction := VectorMatrixMultiply(c.CamToWorld, core.NewVec3(x, y, -1))
	return core.NewRay(c.Origin, direction)
}
