package plane

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/willbeason/complex-plane/pkg/view"
)

// PassReport times one render pass.
type PassReport struct {
	Pass   int     `json:"pass"`
	Zoom   int     `json:"zoom"`
	Center string  `json:"center"`
	Millis float64 `json:"millis"`
}

// BenchReport collects the passes of one Bench run.
type BenchReport struct {
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Workers       int          `json:"workers"`
	MaxIterations int          `json:"maxIterations"`
	Passes        []PassReport `json:"passes"`
	TotalMillis   float64      `json:"totalMillis"`
}

// Bench renders the current view, then zooms in steps times at pixel (x, y),
// timing every pass. It stops early, without error, at the zoom limit.
func Bench(p *Plane, steps, x, y int, now func() time.Time) (BenchReport, error) {
	if now == nil {
		now = time.Now
	}

	report := BenchReport{
		Width:         p.Width(),
		Height:        p.Height(),
		Workers:       p.raster.Workers,
		MaxIterations: p.raster.Fractal.MaxIterations,
	}

	for step := 0; step <= steps; step++ {
		if step > 0 {
			err := p.ZoomInAt(x, y)
			if errors.Is(err, view.ErrZoomLimit) {
				p.log.Info("bench stopped at zoom limit", zap.Int("zoom", p.ZoomLevel()))
				break
			}
			if err != nil {
				return report, err
			}
		}

		start := now()
		if err := p.Render(); err != nil {
			return report, err
		}
		took := float64(now().Sub(start)) / float64(time.Millisecond)

		report.Passes = append(report.Passes, PassReport{
			Pass:   p.Passes(),
			Zoom:   p.ZoomLevel(),
			Center: p.Center().String(),
			Millis: took,
		})
		report.TotalMillis += took
	}

	return report, nil
}

// WriteJSON encodes r as indented JSON.
func (r BenchReport) WriteJSON(w io.Writer) error {
	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText prints r as a table, one line per pass.
func (r BenchReport) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%dx%d, %d workers, %d iterations\n", r.Width, r.Height, r.Workers, r.MaxIterations)
	if err != nil {
		return err
	}
	for _, pass := range r.Passes {
		_, err = fmt.Fprintf(w, "pass %3d  zoom %3d  center %-32s %8.2fms\n", pass.Pass, pass.Zoom, pass.Center, pass.Millis)
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "total %.2fms\n", r.TotalMillis)
	return err
}
