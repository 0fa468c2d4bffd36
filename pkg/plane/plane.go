// Package plane is an explorable view of the Mandelbrot set: it owns the view
// state and the render buffer, and re-renders only when the view has changed.
//
// A Plane is driven from one goroutine. Render fans out internally but returns
// only once the whole buffer is complete, so callers never see a partial image.
package plane

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/willbeason/complex-plane/pkg/geometry"
	"github.com/willbeason/complex-plane/pkg/palette"
	"github.com/willbeason/complex-plane/pkg/raster"
	"github.com/willbeason/complex-plane/pkg/transforms"
	"github.com/willbeason/complex-plane/pkg/view"
)

// Title heads the text returned by DescribeView.
const Title = "Mandelbrot Set"

type Plane struct {
	view   *view.View
	raster *raster.Rasterizer

	// front is the completed image; back receives the pass in progress.
	front, back []raster.Sample

	cursor geometry.XY
	passes int

	log *zap.Logger
}

type Option func(*Plane)

// WithLogger sets the logger for render passes. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Plane) {
		p.log = l
	}
}

// New returns a Plane for a width x height raster showing the base view.
// Nothing is rendered until the first call to Render.
func New(width, height int, cfg Config, opts ...Option) (*Plane, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	v, err := view.New(width, height, view.Scale{
		BaseWidth:  cfg.BaseWidth,
		BaseHeight: cfg.BaseHeight,
		Zoom:       cfg.BaseZoom,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	pal, err := palette.ByName(cfg.Palette)
	if err != nil {
		return nil, err
	}

	p := &Plane{
		view: v,
		raster: &raster.Rasterizer{
			Width:   width,
			Height:  height,
			Workers: cfg.Workers,
			Fractal: transforms.Mandelbrot{MaxIterations: cfg.MaxIterations},
			Palette: pal,
		},
		front: raster.NewBuffer(width, height),
		back:  raster.NewBuffer(width, height),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

func (p *Plane) Width() int { return p.view.Width() }

func (p *Plane) Height() int { return p.view.Height() }

func (p *Plane) State() view.State { return p.view.State() }

func (p *Plane) Center() geometry.XY { return p.view.Center() }

func (p *Plane) Extent() geometry.XY { return p.view.Extent() }

func (p *Plane) ZoomLevel() int { return p.view.ZoomLevel() }

// Bounds returns the plane coordinates of the lower-left and upper-right
// corners of the visible region.
func (p *Plane) Bounds() (lo, hi geometry.XY) { return p.view.Bounds() }

// Cursor is the plane coordinate of the last SetCursor call.
func (p *Plane) Cursor() geometry.XY { return p.cursor }

// Passes counts completed render passes.
func (p *Plane) Passes() int { return p.passes }

// ZoomIn zooms in one step. Past the deepest representable extent it returns
// view.ErrZoomLimit and leaves the view as it was.
func (p *Plane) ZoomIn() error { return p.view.ZoomIn() }

// ZoomOut zooms out one step, with the same limit as ZoomIn.
func (p *Plane) ZoomOut() error { return p.view.ZoomOut() }

// Reset returns to the base view.
func (p *Plane) Reset() { p.view.Reset() }

// Recenter moves the view so pixel (x, y) becomes the center.
func (p *Plane) Recenter(x, y int) error {
	return p.view.Recenter(geometry.Pixel{X: x, Y: y})
}

// ZoomInAt zooms in one step and then centers on pixel (x, y), mapped under
// the zoomed extent. It is the response to a primary button press.
func (p *Plane) ZoomInAt(x, y int) error {
	return p.zoomAt(x, y, p.view.ZoomIn)
}

// ZoomOutAt is ZoomInAt in the other direction.
func (p *Plane) ZoomOutAt(x, y int) error {
	return p.zoomAt(x, y, p.view.ZoomOut)
}

func (p *Plane) zoomAt(x, y int, zoom func() error) error {
	px := geometry.Pixel{X: x, Y: y}
	if _, err := p.view.MapChecked(px); err != nil {
		return err
	}

	if err := zoom(); err != nil {
		return err
	}
	return p.view.Recenter(px)
}

// SetCursor records the plane coordinate under pixel (x, y) for DescribeView.
// It does not affect rendering.
func (p *Plane) SetCursor(x, y int) error {
	c, err := p.view.MapChecked(geometry.Pixel{X: x, Y: y})
	if err != nil {
		return err
	}

	p.cursor = c
	return nil
}

// Render recomputes the buffer if the view changed since the last pass and
// does nothing otherwise. A failed pass leaves the previous image in place and
// the view still pending, so the next call retries.
func (p *Plane) Render() error {
	if !p.view.Dirty() {
		return nil
	}

	start := time.Now()
	err := p.raster.Render(p.back, p.view)
	if err != nil {
		p.log.Error("render pass failed",
			zap.Int("zoom", p.view.ZoomLevel()),
			zap.Stringer("center", p.view.Center()),
			zap.Error(err))
		return fmt.Errorf("rendering %s at zoom %d: %w", p.view.Center(), p.view.ZoomLevel(), err)
	}

	p.front, p.back = p.back, p.front
	p.view.MarkDisplaying()
	p.passes++

	p.log.Debug("render pass",
		zap.Int("pass", p.passes),
		zap.Int("zoom", p.view.ZoomLevel()),
		zap.Stringer("center", p.view.Center()),
		zap.Int("workers", p.raster.Workers),
		zap.Duration("took", time.Since(start)))

	return nil
}

// Samples returns a copy of the current image in row-major order.
func (p *Plane) Samples() []raster.Sample {
	out := make([]raster.Sample, len(p.front))
	copy(out, p.front)
	return out
}

// CopyPixels writes the current image into dst as 8-bit RGBA, four bytes per
// pixel in row-major order, the layout of image.RGBA.Pix. It stops at the end
// of dst or of the image, whichever comes first.
func (p *Plane) CopyPixels(dst []byte) {
	for i, s := range p.front {
		j := 4 * i
		if j+3 >= len(dst) {
			return
		}
		dst[j+0] = s.Color.R
		dst[j+1] = s.Color.G
		dst[j+2] = s.Color.B
		dst[j+3] = s.Color.A
	}
}

// DescribeView returns overlay text with the center and cursor coordinates.
func (p *Plane) DescribeView() string {
	var sb strings.Builder
	sb.WriteString(Title + "\n")
	sb.WriteString("Center: " + p.view.Center().String() + "\n")
	sb.WriteString("Cursor: " + p.cursor.String() + "\n")
	sb.WriteString("Left-click to Zoom in\n")
	sb.WriteString("Right-click to Zoom out")
	return sb.String()
}
