package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
	"github.com/Mathematician2000/whitted-raytracer/pkg/renderer"
	"github.com/Mathematician2000/whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'sphere'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	fov := flag.Float64("fov", 90, "Horizontal field of view in degrees")
	depth := flag.Int("depth", 3, "Recursion depth for reflected/refracted rays")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = all CPUs)")
	output := flag.String("output", "render.png", "Output PNG file")
	flag.Parse()

	var selectedScene *scene.Scene
	cam := renderer.NewCameraOptions(*width, *height)
	cam.FOV = *fov * math.Pi / 180

	switch *sceneType {
	case "sphere":
		selectedScene = scene.NewSingleSphereScene()
		cam.LookFrom = core.NewVec3(0, 0, 5)
		cam.LookTo = core.NewVec3(0, 0, 0)
	case "default":
		selectedScene = scene.NewDefaultScene()
		cam.LookFrom = core.NewVec3(0, 1, 2)
		cam.LookTo = core.NewVec3(0, 0, -3)
	default:
		log.Fatalf("Unknown scene type: %s", *sceneType)
	}

	config := renderer.DefaultConfig()
	config.Depth = *depth
	config.NumWorkers = *workers
	config.Logger = log.New(os.Stderr, "", log.LstdFlags)

	pixels, stats, err := renderer.Render(selectedScene, cam, config)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Error creating %s: %v", *output, err)
	}
	defer file.Close()

	if err := png.Encode(file, renderer.ToRGBA(pixels)); err != nil {
		log.Fatalf("Error encoding PNG: %v", err)
	}

	fmt.Printf("Wrote %s (%dx%d, %d workers, %v)\n",
		*output, *width, *height, stats.Workers, stats.Elapsed)
}
