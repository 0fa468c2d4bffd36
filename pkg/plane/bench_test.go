package plane

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/complex-plane/pkg/view"
)

// tickClock advances by step on every call.
func tickClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestBench(t *testing.T) {
	p := newTestPlane(t, 100, 100)

	report, err := Bench(p, 2, 75, 25, tickClock(5*time.Millisecond))
	require.NoError(t, err)

	assert.Equal(t, 100, report.Width)
	assert.Equal(t, 100, report.Height)
	assert.Equal(t, 3, report.Workers)
	assert.Equal(t, 16, report.MaxIterations)
	assert.Equal(t, []PassReport{
		{Pass: 1, Zoom: 0, Center: "(0,0)", Millis: 5},
		{Pass: 2, Zoom: 1, Center: "(0.5,0.5)", Millis: 5},
		{Pass: 3, Zoom: 2, Center: "(0.75,0.75)", Millis: 5},
	}, report.Passes)
	assert.Equal(t, 15.0, report.TotalMillis)
	assert.Equal(t, view.Displaying, p.State())
}

func TestBench_StopsAtZoomLimit(t *testing.T) {
	p := newTestPlane(t, 16, 16)

	var err error
	for err == nil {
		err = p.ZoomIn()
	}
	require.ErrorIs(t, err, view.ErrZoomLimit)
	require.NoError(t, p.ZoomOut())
	require.NoError(t, p.ZoomOut())
	level := p.ZoomLevel()

	report, err := Bench(p, 10, 8, 8, nil)
	require.NoError(t, err)

	require.Len(t, report.Passes, 3)
	assert.Equal(t, level+2, report.Passes[2].Zoom)
}

func TestBench_OutOfRange(t *testing.T) {
	p := newTestPlane(t, 16, 16)

	_, err := Bench(p, 1, 17, 0, nil)
	assert.ErrorIs(t, err, view.ErrOutOfRange)
}

func testReport() BenchReport {
	return BenchReport{
		Width:         64,
		Height:        48,
		Workers:       2,
		MaxIterations: 16,
		Passes: []PassReport{
			{Pass: 1, Zoom: 0, Center: "(0,0)", Millis: 1.5},
			{Pass: 2, Zoom: 1, Center: "(0.5,-0.25)", Millis: 2.25},
		},
		TotalMillis: 3.75,
	}
}

func TestBenchReport_WriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport().WriteText(&buf))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "64x48, 2 workers, 16 iterations", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "pass   1  zoom   0  center (0,0) "), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "1.50ms"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "pass   2  zoom   1  center (0.5,-0.25) "), lines[2])
	assert.True(t, strings.HasSuffix(lines[2], "2.25ms"), lines[2])
	assert.Equal(t, "total 3.75ms", lines[3])
}

func TestBenchReport_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testReport().WriteJSON(&buf))

	assert.Contains(t, buf.String(), `"maxIterations": 16`)
	assert.Contains(t, buf.String(), `"center": "(0.5,-0.25)"`)

	var got BenchReport
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testReport(), got)
}
