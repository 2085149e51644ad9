package renderer

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/castlight/go-whitted-raytracer/pkg/geometry"
	"github.com/castlight/go-whitted-raytracer/pkg/world"
)

// Logger interface for render progress output
type Logger interface {
	Printf(format string, args ...interface{})
}

// Renderer traces a world through a camera onto a canvas, splitting
// the work across a pool of row workers.
type Renderer struct {
	workers int
	fuel    int
	logger  Logger
}

// NewRenderer creates a renderer with the given worker count and
// recursion fuel. A worker count of zero uses one worker per CPU.
func NewRenderer(workers, fuel int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{workers: workers, fuel: fuel}
}

// SetLogger enables progress reporting. A nil logger keeps the
// renderer silent.
func (r *Renderer) SetLogger(logger Logger) {
	r.logger = logger
}

// Render traces every pixel and returns the finished canvas. Rows are
// handed to workers through a channel; each worker keeps a private
// intersection ledger and writes to disjoint canvas rows, so no
// locking is needed. Cancelling the context stops the render early
// and returns the partially filled canvas.
func (r *Renderer) Render(ctx context.Context, camera Camera, w *world.World) *Canvas {
	canvas := NewCanvas(camera.HSize, camera.VSize)

	rows := make(chan int, camera.VSize)
	for y := 0; y < camera.VSize; y++ {
		rows <- y
	}
	close(rows)

	logEvery := camera.VSize / 10
	if logEvery < 1 {
		logEvery = 1
	}
	var done int64

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			xs := geometry.NewIntersections()
			for y := range rows {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for x := 0; x < camera.HSize; x++ {
					ray := camera.RayAtPixel(x, y)
					canvas.Write(x, y, w.ColorAt(ray, r.fuel, xs))
				}

				if n := atomic.AddInt64(&done, 1); r.logger != nil && n%int64(logEvery) == 0 {
					r.logger.Printf("Rendered %d/%d rows", n, camera.VSize)
				}
			}
		}()
	}
	wg.Wait()

	return canvas
}

// RenderSerial traces every pixel on the calling goroutine. It
// produces the same image as Render and keeps deterministic tests
// free of scheduling.
func (r *Renderer) RenderSerial(camera Camera, w *world.World) *Canvas {
	canvas := NewCanvas(camera.HSize, camera.VSize)
	xs := geometry.NewIntersections()
	for y := 0; y < camera.VSize; y++ {
		for x := 0; x < camera.HSize; x++ {
			ray := camera.RayAtPixel(x, y)
			canvas.Write(x, y, w.ColorAt(ray, r.fuel, xs))
		}
	}
	return canvas
}
