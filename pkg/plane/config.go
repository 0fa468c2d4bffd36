package plane

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/willbeason/complex-plane/pkg/palette"
)

const (
	DefaultMaxIterations = 64
	DefaultBaseWidth     = 4.0
	DefaultBaseHeight    = 4.0
	DefaultBaseZoom      = 0.5
	DefaultPalette       = "grayscale"
)

// ErrInvalidConfig is returned for configurations or raster sizes that cannot be rendered.
var ErrInvalidConfig = errors.New("invalid plane config")

// Config holds the process-wide render parameters.
type Config struct {
	// MaxIterations caps the escape-time iteration.
	MaxIterations int

	// BaseWidth and BaseHeight are the plane extent at zoom zero, before
	// BaseHeight is scaled by the raster aspect ratio.
	BaseWidth, BaseHeight float64

	// BaseZoom is the extent factor per zoom step, in (0, 1).
	BaseZoom float64

	// Workers is the number of row bands rendered in parallel.
	Workers int

	// Palette names the color mapping, see palette.Names.
	Palette string
}

func DefaultConfig() Config {
	return Config{
		MaxIterations: DefaultMaxIterations,
		BaseWidth:     DefaultBaseWidth,
		BaseHeight:    DefaultBaseHeight,
		BaseZoom:      DefaultBaseZoom,
		Workers:       runtime.NumCPU(),
		Palette:       DefaultPalette,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations %d must be positive", ErrInvalidConfig, c.MaxIterations)
	case c.BaseWidth <= 0 || c.BaseHeight <= 0:
		return fmt.Errorf("%w: base extent %gx%g must be positive", ErrInvalidConfig, c.BaseWidth, c.BaseHeight)
	case c.BaseZoom <= 0 || c.BaseZoom >= 1:
		return fmt.Errorf("%w: base zoom %g must be in (0, 1)", ErrInvalidConfig, c.BaseZoom)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers %d must be positive", ErrInvalidConfig, c.Workers)
	}

	if _, err := palette.ByName(c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
