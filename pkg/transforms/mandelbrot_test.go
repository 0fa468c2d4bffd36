package transforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMandelbrot_Escape(t *testing.T) {
	m := Mandelbrot{MaxIterations: 64}

	tcs := []struct {
		name string
		c    complex128
		want int
	}{
		{name: "origin is interior", c: 0, want: 64},
		{name: "period two bulb", c: -1, want: 64},
		{name: "cusp", c: 0.25, want: 64},
		{name: "far outside", c: complex(2, 2), want: 1},
		{name: "real axis escape", c: 1, want: 2},
		{name: "radius is exclusive", c: -2, want: 1},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Escape(tc.c))
		})
	}
}

func TestMandelbrot_EscapeRange(t *testing.T) {
	m := Mandelbrot{MaxIterations: 16}

	for re := -2.5; re <= 1.5; re += 0.125 {
		for im := -1.5; im <= 1.5; im += 0.125 {
			got := m.Escape(complex(re, im))
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, m.MaxIterations)
		}
	}
}

func TestMandelbrot_ZeroIterations(t *testing.T) {
	m := Mandelbrot{}

	assert.Equal(t, 0, m.Escape(0))
	assert.True(t, m.Inside(m.Escape(0)))
}

func TestMandelbrot_Inside(t *testing.T) {
	m := Mandelbrot{MaxIterations: 8}

	assert.True(t, m.Inside(8))
	assert.False(t, m.Inside(7))
	assert.False(t, m.Inside(0))
}
