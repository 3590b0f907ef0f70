package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/integrator"
	"github.com/lumen-render/lumen/pkg/log"
	"github.com/lumen-render/lumen/pkg/scene"
)

var logger = log.New("renderer")

// Config controls the parallel render driver
type Config struct {
	TileSize   int    // Tile edge length in pixels
	NumWorkers int    // Worker count (0 = CPU count)
	Passes     int    // Progressive passes the sample budget is split over
	Filter     Filter // Pixel reconstruction filter (nil = box)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0,
		Passes:     1,
	}
}

// Renderer drives a full render: it partitions the film into tiles,
// distributes them across a worker pool, and merges statistics.
// The scene must be preprocessed and is shared read-only by all workers.
type Renderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
	film       *Film
}

// NewRenderer creates a renderer for a preprocessed scene
func NewRenderer(sc *scene.Scene, integ integrator.Integrator, config Config) *Renderer {
	if config.TileSize <= 0 {
		config.TileSize = 64
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if config.Passes <= 0 {
		config.Passes = 1
	}

	cfg := sc.SamplingConfig
	return &Renderer{
		scene:      sc,
		integrator: integ,
		config:     config,
		film:       NewFilm(cfg.Width, cfg.Height, config.Filter),
	}
}

// Film exposes the radiance accumulator, including per-pixel sample
// counts for diagnostics
func (r *Renderer) Film() *Film {
	return r.film
}

// Render runs all passes to completion and returns the assembled image.
// Cancellation via ctx is cooperative and checked between tiles: the
// partial image rendered so far is returned together with ctx's error.
// Tiles whose worker panicked are reported in RenderStats.FailedTiles and
// left unrendered; they are not retried.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	cfg := r.scene.SamplingConfig

	tiles := NewTileGrid(cfg.Width, cfg.Height, r.config.TileSize)
	pool := newWorkerPool(len(tiles))
	pool.start(ctx, r.config.NumWorkers, r.renderTile)

	logger.Noticef("rendering %dx%d, %d spp, %d tiles, %d workers",
		cfg.Width, cfg.Height, cfg.SamplesPerPixel, len(tiles), r.config.NumWorkers)

	failedTiles := make(map[int]error)
	cancelled := false

	for pass := 0; pass < r.config.Passes && !cancelled; pass++ {
		startSample := cfg.SamplesPerPixel * pass / r.config.Passes
		endSample := cfg.SamplesPerPixel * (pass + 1) / r.config.Passes
		if endSample == startSample {
			continue
		}

		passStart := time.Now()
		for _, tile := range tiles {
			pool.submit(tileTask{tile: tile, startSample: startSample, endSample: endSample})
		}

		for range tiles {
			result := <-pool.results
			if result.err == nil {
				continue
			}
			if errors.Is(result.err, context.Canceled) || errors.Is(result.err, context.DeadlineExceeded) {
				cancelled = true
				continue
			}
			logger.Errorf("%v", result.err)
			failedTiles[result.tileID] = result.err
		}

		logger.Infof("pass %d/%d completed in %v (samples %d-%d)",
			pass+1, r.config.Passes, time.Since(passStart).Round(time.Millisecond), startSample, endSample)
	}

	pool.stop()

	stats := r.collectStats(failedTiles, time.Since(start))
	img := r.film.ToImage(2.0)

	if err := ctx.Err(); err != nil {
		return img, stats, err
	}
	return img, stats, nil
}

// renderTile renders a sample range for every pixel the tile owns.
// A panic anywhere in the tile is recovered here: the tile's pixels are
// reset to the unrendered sentinel and the failure reported upward.
func (r *Renderer) renderTile(task tileTask) (samples int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.film.ClearRegion(task.tile.Bounds)
			samples = 0
			err = fmt.Errorf("tile %d failed: %v", task.tile.ID, rec)
		}
	}()

	cfg := r.scene.SamplingConfig
	bounds := task.tile.Bounds

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for s := task.startSample; s < task.endSample; s++ {
				sampler := core.NewPixelSampler(x, y, s, cfg.SamplesPerPixel, cfg.Seed)
				jitter := sampler.Get2D()
				lens := sampler.Get2D()

				ray := r.scene.Camera.GetRay(x, y, jitter, lens)
				radiance := r.integrator.RayColor(ray, r.scene, sampler)

				r.film.AddSample(x, y, jitter, radiance)
				samples++
			}
		}
	}

	return samples, nil
}

// collectStats walks the film once to aggregate sample statistics
func (r *Renderer) collectStats(failedTiles map[int]error, elapsed time.Duration) RenderStats {
	stats := RenderStats{
		TotalPixels: r.film.Width * r.film.Height,
		MinSamples:  int(^uint(0) >> 1),
		Elapsed:     elapsed,
	}

	for y := 0; y < r.film.Height; y++ {
		for x := 0; x < r.film.Width; x++ {
			count := r.film.SampleCount(x, y)
			stats.TotalSamples += count
			stats.MinSamples = min(stats.MinSamples, count)
			stats.MaxSamples = max(stats.MaxSamples, count)
		}
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}

	for id := range failedTiles {
		stats.FailedTiles = append(stats.FailedTiles, id)
	}

	return stats
}
