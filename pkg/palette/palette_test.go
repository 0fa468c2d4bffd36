package palette

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/complex-plane/pkg/transforms"
)

func TestGrayscale(t *testing.T) {
	tcs := []struct {
		name  string
		count int
		want  uint8
	}{
		{name: "inside", count: 64, want: 0},
		{name: "immediate escape", count: 0, want: 0},
		{name: "one step", count: 1, want: 4},
		{name: "half", count: 32, want: 128},
		{name: "last escaping", count: 63, want: 251},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			want := color.RGBA{R: tc.want, G: tc.want, B: tc.want, A: 0xff}
			assert.Equal(t, want, Grayscale(tc.count, 64))
		})
	}
}

func TestGrayscale_Monotonic(t *testing.T) {
	prev := Grayscale(0, 64).R
	for count := 1; count < 64; count++ {
		got := Grayscale(count, 64).R
		assert.GreaterOrEqual(t, got, prev, "count %d", count)
		prev = got
	}
}

func TestHSV(t *testing.T) {
	assert.Equal(t, color.RGBA{A: 0xff}, HSV(64, 64))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, HSV(0, 64))

	for count := 0; count < 64; count++ {
		assert.NotEqual(t, HSV(64, 64), HSV(count, 64), "count %d", count)
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		p, err := ByName(name)
		require.NoError(t, err)
		assert.Equal(t, color.RGBA{A: 0xff}, p(16, 16))
	}

	_, err := ByName("sepia")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"grayscale", "hsv"}, Names())
}

func TestPalettes_InsideIsBlack(t *testing.T) {
	m := transforms.Mandelbrot{MaxIterations: 20}

	for _, name := range Names() {
		p, err := ByName(name)
		require.NoError(t, err)

		for count := 0; count <= m.MaxIterations+1; count++ {
			if m.Inside(count) {
				assert.Equal(t, black, p(count, m.MaxIterations), "%s count %d", name, count)
			}
		}
		assert.Equal(t, black, p(m.Escape(0), m.MaxIterations), name)
	}
}
