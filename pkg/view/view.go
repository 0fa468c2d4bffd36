// Package view tracks which region of the complex plane is visible and maps
// raster pixels onto it.
package view

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/complex-plane/pkg/geometry"
)

var (
	// ErrOutOfRange is returned when a pixel lies outside the raster.
	ErrOutOfRange = errors.New("pixel out of range")
	// ErrInvalid is returned by New for rasters or scales that cannot be mapped.
	ErrInvalid = errors.New("invalid view")
	// ErrZoomLimit is returned when another zoom step would collapse the extent
	// to zero or grow it past the largest float64.
	ErrZoomLimit = errors.New("zoom limit reached")
)

// State says whether the rendered raster matches the current view.
type State int

const (
	// Calculating means the view changed since the last completed render.
	Calculating State = iota
	// Displaying means the last render reflects the current view.
	Displaying
)

func (s State) String() string {
	switch s {
	case Calculating:
		return "calculating"
	case Displaying:
		return "displaying"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Scale holds the plane extent of the view at zoom zero and the factor
// applied per zoom step.
type Scale struct {
	BaseWidth, BaseHeight float64

	// Zoom is in (0, 1). Each step in multiplies the extent by Zoom.
	Zoom float64
}

// View is the visible region of the plane for a raster of fixed size.
//
// A View is not safe for concurrent mutation. Map may be called from many
// goroutines as long as nothing mutates the View meanwhile.
type View struct {
	width, height int
	aspect        float64
	scale         Scale

	center geometry.XY
	zoom   int
	extent geometry.XY
	state  State
}

// New returns a View of the given raster centered on the origin at zoom zero.
// The vertical extent is scaled by height/width so plane units are square.
func New(width, height int, scale Scale) (*View, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raster %dx%d must be positive", ErrInvalid, width, height)
	}
	if !(scale.BaseWidth > 0 && scale.BaseHeight > 0) || math.IsInf(scale.BaseWidth, 0) || math.IsInf(scale.BaseHeight, 0) {
		return nil, fmt.Errorf("%w: base extent %gx%g must be positive and finite", ErrInvalid, scale.BaseWidth, scale.BaseHeight)
	}
	if !(scale.Zoom > 0 && scale.Zoom < 1) {
		return nil, fmt.Errorf("%w: zoom factor %g must be in (0, 1)", ErrInvalid, scale.Zoom)
	}

	v := &View{
		width:  width,
		height: height,
		aspect: float64(height) / float64(width),
		scale:  scale,
	}
	v.Reset()
	return v, nil
}

// Reset returns to the base view.
func (v *View) Reset() {
	v.center = geometry.XY{}
	v.zoom = 0
	v.extent, _ = v.extentAt(0)
	v.state = Calculating
}

func (v *View) Width() int { return v.width }

func (v *View) Height() int { return v.height }

func (v *View) Center() geometry.XY { return v.center }

// Extent is the width and height of the visible region in plane units.
func (v *View) Extent() geometry.XY { return v.extent }

func (v *View) ZoomLevel() int { return v.zoom }

func (v *View) State() State { return v.state }

// Dirty reports whether the view changed since the last completed render.
func (v *View) Dirty() bool { return v.state == Calculating }

// Contains reports whether p lies on the raster, counting the far edges
// x == width and y == height.
func (v *View) Contains(p geometry.Pixel) bool {
	return p.X >= 0 && p.X <= v.width && p.Y >= 0 && p.Y <= v.height
}

// ZoomIn shrinks the extent by one step. At the zoom limit the view is left
// unchanged and ErrZoomLimit is returned.
func (v *View) ZoomIn() error {
	return v.zoomTo(v.zoom + 1)
}

// ZoomOut grows the extent by one step. The zoom level may go negative.
func (v *View) ZoomOut() error {
	return v.zoomTo(v.zoom - 1)
}

func (v *View) zoomTo(zoom int) error {
	extent, ok := v.extentAt(zoom)
	if !ok {
		return fmt.Errorf("%w: extent at zoom %d is %s", ErrZoomLimit, zoom, extent)
	}

	v.zoom = zoom
	v.extent = extent
	v.state = Calculating
	return nil
}

// extentAt reports the extent at a zoom level and whether it is strictly
// positive and finite in both axes.
func (v *View) extentAt(zoom int) (geometry.XY, bool) {
	f := math.Pow(v.scale.Zoom, float64(zoom))
	extent := geometry.XY{
		X: v.scale.BaseWidth * f,
		Y: v.scale.BaseHeight * v.aspect * f,
	}

	ok := extent.X > 0 && extent.Y > 0 && !math.IsInf(extent.X, 0) && !math.IsInf(extent.Y, 0)
	return extent, ok
}

// Recenter moves the center to the plane coordinate of p under the current view.
func (v *View) Recenter(p geometry.Pixel) error {
	c, err := v.MapChecked(p)
	if err != nil {
		return err
	}

	v.center = c
	v.state = Calculating
	return nil
}

// MarkDisplaying records that the raster now reflects the view.
func (v *View) MarkDisplaying() {
	v.state = Displaying
}

// Bounds returns the lower-left and upper-right corners of the visible region.
func (v *View) Bounds() (lo, hi geometry.XY) {
	lo = geometry.XY{X: v.center.X - v.extent.X/2, Y: v.center.Y - v.extent.Y/2}
	hi = geometry.XY{X: v.center.X + v.extent.X/2, Y: v.center.Y + v.extent.Y/2}
	return lo, hi
}

// Map converts a pixel to its plane coordinate. Pixel (0, 0) is the upper-left
// corner of the visible region and (width, height) the lower-right; rows grow
// downward while the imaginary axis grows upward.
func (v *View) Map(p geometry.Pixel) geometry.XY {
	lo, hi := v.Bounds()

	re := float64(p.X)/float64(v.width)*(hi.X-lo.X) + lo.X
	im := (1-float64(p.Y)/float64(v.height))*(hi.Y-lo.Y) + lo.Y

	return geometry.XY{X: re, Y: im}
}

// MapChecked is Map for pixels from outside the rasterizer, such as pointer
// positions. Pixels beyond [0, width] x [0, height] yield ErrOutOfRange.
func (v *View) MapChecked(p geometry.Pixel) (geometry.XY, error) {
	if !v.Contains(p) {
		return geometry.XY{}, fmt.Errorf("%w: (%d, %d) not within %dx%d", ErrOutOfRange, p.X, p.Y, v.width, v.height)
	}
	return v.Map(p), nil
}
