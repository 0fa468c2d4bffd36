// Package palette turns escape-time counts into colors.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/willbeason/complex-plane/pkg/transforms"
)

// ErrUnknown is returned by ByName for names with no registered palette.
var ErrUnknown = errors.New("unknown palette")

// A Palette maps an escape count in [0, maxIter] to a color.
// Implementations depend only on their arguments and give counts for which
// transforms.Mandelbrot.Inside holds a color of their own.
type Palette func(count, maxIter int) color.RGBA

var black = color.RGBA{A: 0xff}

func inside(count, maxIter int) bool {
	return transforms.Mandelbrot{MaxIterations: maxIter}.Inside(count)
}

// Grayscale shades escaping points by how long they took to escape.
// Points inside the set are black. Points escaping immediately are black too,
// since round(255 * 0 / maxIter) is zero.
func Grayscale(count, maxIter int) color.RGBA {
	if inside(count, maxIter) {
		return black
	}

	v := uint8(math.Round(255 * float64(count) / float64(maxIter)))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// HSV walks the hue circle once over [0, maxIter). Points inside the set are black.
func HSV(count, maxIter int) color.RGBA {
	if inside(count, maxIter) {
		return black
	}

	return hsv(float64(count)/float64(maxIter), 1, 1)
}

func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 0xff}
}

var byName = map[string]Palette{
	"grayscale": Grayscale,
	"hsv":       HSV,
}

// ByName returns the palette registered under name.
func ByName(name string) (Palette, error) {
	p, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, want one of %v", ErrUnknown, name, Names())
	}
	return p, nil
}

// Names lists the registered palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
