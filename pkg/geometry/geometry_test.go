package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixel_Index(t *testing.T) {
	tcs := []struct {
		name  string
		p     Pixel
		width int
		want  int
	}{
		{name: "origin", p: Pixel{}, width: 10, want: 0},
		{name: "first row", p: Pixel{X: 7}, width: 10, want: 7},
		{name: "second row", p: Pixel{X: 3, Y: 1}, width: 10, want: 13},
		{name: "last", p: Pixel{X: 9, Y: 4}, width: 10, want: 49},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Index(tc.width))
		})
	}
}

func TestXY_String(t *testing.T) {
	assert.Equal(t, "(-0.5,0.25)", XY{X: -0.5, Y: 0.25}.String())
	assert.Equal(t, "(0.3333333,-1)", XY{X: 1.0 / 3.0, Y: -1}.String())
}

func TestXY_Complex(t *testing.T) {
	assert.Equal(t, complex(1.5, -2), XY{X: 1.5, Y: -2}.Complex())
}
