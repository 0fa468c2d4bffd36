package plane

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willbeason/complex-plane/pkg/palette"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 64, cfg.MaxIterations)
	assert.Equal(t, 4.0, cfg.BaseWidth)
	assert.Equal(t, 4.0, cfg.BaseHeight)
	assert.Equal(t, 0.5, cfg.BaseZoom)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "grayscale", cfg.Palette)
}

func TestConfig_ValidatePalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = "mauve"

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, palette.ErrUnknown)

	cfg.Palette = "hsv"
	assert.NoError(t, cfg.Validate())
}
