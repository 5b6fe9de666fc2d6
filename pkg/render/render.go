// Package render is the data-parallel per-pixel driver: rows are
// distributed across a bounded worker pool (github.com/alitto/pond/v2),
// each row task gets its own rng.Source, and a single atomic counter
// drives progress reporting. There are no shared-mutable-state hazards
// between pixels: the frame buffer is partitioned by row, and each cell is
// written by exactly one worker.
package render

import (
	"runtime"
	"sync/atomic"

	"github.com/alitto/pond/v2"

	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Options configures a render pass.
type Options struct {
	// NumWorkers caps pool size; 0 means runtime.NumCPU().
	NumWorkers int
	// Deterministic seeds each row's Source from Seed+row*1_000_003 instead of the
	// process entropy pool, for reproducible renders. The seed sequence
	// is otherwise unspecified: no
	// cross-pixel ordering guarantee is implied beyond reproducibility for
	// a fixed Options value.
	Deterministic bool
	Seed          int64
	// Progress, if non-nil, is called after each completed row with the
	// number of rows done so far and the total row count. It may be called
	// concurrently from multiple workers; implementations should use it
	// only for monotonic counters or atomic accumulation.
	Progress func(done, total int)
}

// Render drives cam across its full image, running tracer's MIS path
// tracing for every sample of every pixel, and returns the accumulated
// linear-RGB frame (tonemapping and 8-bit encoding happen downstream in
// pkg/output).
func Render(cam *camera.Camera, tracer *integrator.PathTracer, opts Options) *output.Frame {
	width, height := cam.ImageWidth(), cam.ImageHeight()
	frame := output.NewFrame(width, height)

	numWorkers := opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	pool := pond.NewPool(numWorkers)

	var rowsDone atomic.Int64
	sqrtSPP := cam.SqrtSamplesPerPixel()
	scale := cam.PixelSampleScale()

	for row := 0; row < height; row++ {
		j := row
		pool.Submit(func() {
			var src *rng.Source
			if opts.Deterministic {
				src = rng.NewSeeded(opts.Seed + int64(j)*1_000_003)
			} else {
				src = rng.New()
			}
			renderRow(frame, cam, tracer, j, width, sqrtSPP, scale, src)

			done := rowsDone.Add(1)
			if opts.Progress != nil {
				opts.Progress(int(done), height)
			}
		})
	}

	pool.StopAndWait()
	return frame
}

func renderRow(frame *output.Frame, cam *camera.Camera, tracer *integrator.PathTracer, j, width, sqrtSPP int, scale float64, src *rng.Source) {
	for i := 0; i < width; i++ {
		sum := vec3.Color{}
		for sJ := 0; sJ < sqrtSPP; sJ++ {
			for sI := 0; sI < sqrtSPP; sI++ {
				r := cam.Ray(i, j, sI, sJ, src)
				c := tracer.RayColor(r, src)
				if c.IsFinite() {
					sum = sum.Add(c)
				}
			}
		}
		frame.Set(i, j, sum.Scale(scale))
	}
}
