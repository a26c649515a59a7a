package renderer

import (
	"testing"

	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
	"github.com/Mathematician2000/whitted-raytracer/pkg/scene"
)

func singleSphereCamera() CameraOptions {
	cam := NewCameraOptions(21, 21)
	cam.LookFrom = core.NewVec3(0, 0, 5)
	cam.LookTo = core.NewVec3(0, 0, 0)
	return cam
}

func TestRender_SingleSphereEndToEnd(t *testing.T) {
	s := scene.NewSingleSphereScene()
	background := core.Vec3{}

	pixels, stats, err := Render(s, singleSphereCamera(), DefaultConfig())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(pixels) != 21 || len(pixels[0]) != 21 {
		t.Fatalf("Expected a 21x21 buffer, got %dx%d", len(pixels), len(pixels[0]))
	}
	if stats.TotalPixels != 21*21 {
		t.Errorf("Expected %d pixels traced, got %d", 21*21, stats.TotalPixels)
	}

	// The sphere covers the image center
	center := pixels[10][10]
	if center.ApproxEqual(background, 1e-9) {
		t.Error("Expected a non-background pixel at the image center")
	}

	// The corners see past the sphere
	for _, px := range [][2]int{{0, 0}, {20, 0}, {0, 20}, {20, 20}} {
		if !pixels[px[1]][px[0]].ApproxEqual(background, 1e-9) {
			t.Errorf("Expected background at corner %v, got %v", px, pixels[px[1]][px[0]])
		}
	}

	// Postprocessed output stays in range
	for j := range pixels {
		for i := range pixels[j] {
			p := pixels[j][i]
			for _, c := range []float64{p.X, p.Y, p.Z} {
				if c < 0 || c > 1 {
					t.Errorf("Pixel (%d,%d): channel %f outside [0,1]", i, j, c)
				}
			}
		}
	}
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	s := scene.NewDefaultScene()
	cam := NewCameraOptions(32, 24)
	cam.LookFrom = core.NewVec3(0, 1, 2)
	cam.LookTo = core.NewVec3(0, 0, -3)

	sequential := DefaultConfig()
	sequential.NumWorkers = 1
	parallel := DefaultConfig()
	parallel.NumWorkers = 8

	got1, _, err := Render(s, cam, sequential)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	got8, _, err := Render(s, cam, parallel)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for j := range got1 {
		for i := range got1[j] {
			if !got1[j][i].ApproxEqual(got8[j][i], 1e-12) {
				t.Fatalf("Pixel (%d,%d) differs between 1 and 8 workers: %v vs %v",
					i, j, got1[j][i], got8[j][i])
			}
		}
	}
}

func TestRender_RejectsNegativeDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Depth = -1

	if _, _, err := Render(scene.NewScene(), singleSphereCamera(), cfg); err == nil {
		t.Error("Expected an error for a negative recursion depth")
	}
}

func TestRender_EmptySceneIsAllBackground(t *testing.T) {
	background := core.NewVec3(0.2, 0.3, 0.4)
	cfg := DefaultConfig()
	cfg.Background = background

	pixels, stats, err := Render(scene.NewScene(), singleSphereCamera(), cfg)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.PrimaryMisses != 21*21 {
		t.Errorf("Expected all primary rays to miss, got %d misses", stats.PrimaryMisses)
	}

	// Background passes through tone mapping, then gets gamma corrected
	expected := [][]core.Vec3{{background}}
	GammaCorrection(expected, cfg.Gamma, cfg.Eps)
	for j := range pixels {
		for i := range pixels[j] {
			if !pixels[j][i].ApproxEqual(expected[0][0], 1e-9) {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", i, j, expected[0][0], pixels[j][i])
			}
		}
	}
}
