// Package raster computes escape-time images in parallel, one goroutine per
// band of rows.
package raster

import (
	"errors"
	"fmt"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/willbeason/complex-plane/pkg/geometry"
	"github.com/willbeason/complex-plane/pkg/palette"
	"github.com/willbeason/complex-plane/pkg/transforms"
)

var (
	// ErrWorkerFailed marks a render pass abandoned because a worker panicked.
	ErrWorkerFailed = errors.New("render worker failed")
	// ErrBufferSize is returned when a buffer does not match the raster.
	ErrBufferSize = errors.New("buffer size does not match raster")
)

// A Sample is one pixel of the render buffer.
type Sample struct {
	Pos   geometry.Pixel
	Color color.RGBA
}

// NewBuffer allocates a row-major buffer for a width x height raster with every
// position filled in.
func NewBuffer(width, height int) []Sample {
	buf := make([]Sample, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := geometry.Pixel{X: x, Y: y}
			buf[p.Index(width)].Pos = p
		}
	}
	return buf
}

// Mapper converts raster pixels to plane coordinates.
type Mapper interface {
	Map(p geometry.Pixel) geometry.XY
}

// Rasterizer fills render buffers. Its fields must not change during Render.
type Rasterizer struct {
	Width, Height int

	// Workers is the number of row bands rendered in parallel.
	// Zero means runtime.NumCPU().
	Workers int

	Fractal transforms.Mandelbrot
	Palette palette.Palette
}

func (r *Rasterizer) workers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.NumCPU()
}

// Render colors every sample of buf for the view described by m. It starts one
// goroutine per row band and returns once all of them are done. Bands are
// disjoint so workers write to buf without locking.
//
// If any worker panics the pass is reported as failed with ErrWorkerFailed;
// the contents of buf are then unspecified.
func (r *Rasterizer) Render(buf []Sample, m Mapper) error {
	if len(buf) != r.Width*r.Height {
		return fmt.Errorf("%w: got %d samples for %dx%d", ErrBufferSize, len(buf), r.Width, r.Height)
	}

	var g errgroup.Group
	for _, rows := range Partition(r.Height, r.workers()) {
		if rows.Len() == 0 {
			continue
		}
		rows := rows // per-iteration copy; go directive is below 1.22

		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("%w: rows [%d, %d): %v", ErrWorkerFailed, rows.Start, rows.End, p)
				}
			}()

			r.strip(buf, m, rows)
			return nil
		})
	}

	return g.Wait()
}

func (r *Rasterizer) strip(buf []Sample, m Mapper, rows Rows) {
	maxIter := r.Fractal.MaxIterations

	for y := rows.Start; y < rows.End; y++ {
		for x := 0; x < r.Width; x++ {
			p := geometry.Pixel{X: x, Y: y}
			s := &buf[p.Index(r.Width)]

			s.Pos = p
			count := r.Fractal.Escape(m.Map(p).Complex())
			s.Color = r.Palette(count, maxIter)
		}
	}
}
