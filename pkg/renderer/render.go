package renderer

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Mathematician2000/whitted-raytracer/pkg/core"
	"github.com/Mathematician2000/whitted-raytracer/pkg/scene"
)

// Config contains rendering configuration. Zero values select defaults.
type Config struct {
	Background core.Vec3   // color for rays that leave the scene
	Depth      int         // recursion budget, must be positive
	Eps        float64     // geometric and comparison tolerance
	Gamma      float64     // gamma-correction exponent
	NumWorkers int         // row workers; <= 0 means NumCPU
	Logger     core.Logger // optional progress logging
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Depth: 3,
		Eps:   1e-8,
		Gamma: 2.2,
	}
}

func (c *Config) normalize() error {
	if c.Depth < 0 {
		return fmt.Errorf("renderer: depth must be positive, got %d", c.Depth)
	}
	if c.Depth == 0 {
		c.Depth = 3
	}
	if c.Eps == 0 {
		c.Eps = 1e-8
	}
	if c.Gamma == 0 {
		c.Gamma = 2.2
	}
	if c.NumWorkers <= 0 {
		c.NumWorkers = runtime.NumCPU()
	}
	if c.Logger == nil {
		c.Logger = core.NopLogger{}
	}
	return nil
}

// rowWorker traces complete pixel rows. Each worker owns its shadow cache,
// so nothing mutable is shared while tracing; buffer rows are disjoint
// across workers.
type rowWorker struct {
	scene  *scene.Scene
	ctx    *Context
	config Config
	cache  *scene.ShadowCache
	stats  Stats
}

func (w *rowWorker) run(rows <-chan int, pixels [][]core.Vec3, wg *sync.WaitGroup) {
	defer wg.Done()

	for j := range rows {
		for i := 0; i < w.ctx.Width; i++ {
			ray := w.ctx.PrimaryRay(i, j)
			color, ok := w.scene.TraceRay(ray, w.config.Depth, false, w.config.Eps, w.cache)
			if !ok {
				color = MissColor
				w.stats.PrimaryMisses++
			} else {
				w.stats.PrimaryHits++
			}
			w.stats.TotalPixels++
			pixels[j][i] = color
		}
	}
}

// Render traces every pixel of the configured camera view against the scene
// and returns the postprocessed buffer with all channels in [0, 1]. Rows are
// distributed across a pool of workers; the scene and render context are
// read-only throughout.
func Render(s *scene.Scene, cam CameraOptions, config Config) ([][]core.Vec3, Stats, error) {
	if err := config.normalize(); err != nil {
		return nil, Stats{}, err
	}

	start := time.Now()
	ctx := NewContext(cam, config.Eps)
	pixels := NewPixelBuffer(ctx.Width, ctx.Height)

	workers := make([]*rowWorker, config.NumWorkers)
	rows := make(chan int, ctx.Height)
	var wg sync.WaitGroup

	for i := range workers {
		workers[i] = &rowWorker{
			scene:  s,
			ctx:    ctx,
			config: config,
			cache:  &scene.ShadowCache{},
		}
		wg.Add(1)
		go workers[i].run(rows, pixels, &wg)
	}

	for j := 0; j < ctx.Height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	Postprocess(pixels, config.Background, config.Gamma, config.Eps)

	stats := Stats{Workers: config.NumWorkers}
	for _, w := range workers {
		stats.merge(w.stats)
	}
	stats.Elapsed = time.Since(start)

	config.Logger.Printf("rendered %dx%d (%d pixels, %d misses) with %d workers in %v",
		ctx.Width, ctx.Height, stats.TotalPixels, stats.PrimaryMisses, stats.Workers, stats.Elapsed)

	return pixels, stats, nil
}
