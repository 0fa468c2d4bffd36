package geometry

import "strconv"

// XY is a point on the complex plane, X being the real and Y the imaginary part.
type XY struct {
	X, Y float64
}

func (xy XY) Complex() complex128 {
	return complex(xy.X, xy.Y)
}

// String formats both parts with seven significant digits.
func (xy XY) String() string {
	return "(" + strconv.FormatFloat(xy.X, 'g', 7, 64) + "," + strconv.FormatFloat(xy.Y, 'g', 7, 64) + ")"
}

// A Pixel is an integer raster position. Row 0 is the top of the raster.
type Pixel struct {
	X, Y int
}

// Index is the row-major offset of p in a raster of the given width.
func (p Pixel) Index(width int) int {
	return p.X + p.Y*width
}
