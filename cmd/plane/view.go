package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/willbeason/complex-plane/pkg/plane"
)

func viewCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open a window; left-click zooms in, right-click zooms out",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(readSettings(v))
		},
	}
}

func runView(s settings) error {
	p, log, cleanup, err := setup(s)
	if err != nil {
		return err
	}
	defer cleanup()

	ebiten.SetWindowTitle(plane.Title)
	ebiten.SetWindowSize(p.Width(), p.Height())
	ebiten.SetTPS(60)

	return ebiten.RunGame(newGame(p, log))
}

// game adapts a Plane to ebiten's update/draw loop.
type game struct {
	plane *plane.Plane
	log   *zap.Logger

	img   *ebiten.Image
	pix   []byte
	drawn int

	cursor image.Point
}

func newGame(p *plane.Plane, log *zap.Logger) *game {
	return &game{
		plane:  p,
		log:    log,
		img:    ebiten.NewImage(p.Width(), p.Height()),
		pix:    make([]byte, 4*p.Width()*p.Height()),
		cursor: image.Pt(-1, -1),
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	if pt := image.Pt(x, y); pt != g.cursor {
		g.cursor = pt
		// Pointer positions outside the window are expected while dragging past its edge.
		_ = g.plane.SetCursor(x, y)
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.click("zoom in", g.plane.ZoomInAt, x, y)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.click("zoom out", g.plane.ZoomOutAt, x, y)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.key("zoom in", g.plane.ZoomIn)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.key("zoom out", g.plane.ZoomOut)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.plane.Reset()
	}

	return g.plane.Render()
}

func (g *game) click(action string, zoomAt func(x, y int) error, x, y int) {
	if err := zoomAt(x, y); err != nil {
		g.log.Warn("ignoring click", zap.String("action", action), zap.Error(err))
		return
	}
	g.log.Debug(action, zap.Stringer("center", g.plane.Center()), zap.Int("zoom", g.plane.ZoomLevel()))
}

func (g *game) key(action string, zoom func() error) {
	if err := zoom(); err != nil {
		g.log.Warn("ignoring key", zap.String("action", action), zap.Error(err))
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if n := g.plane.Passes(); n != g.drawn {
		g.plane.CopyPixels(g.pix)
		g.img.WritePixels(g.pix)
		g.drawn = n
	}

	screen.DrawImage(g.img, nil)
	ebitenutil.DebugPrint(screen, g.plane.DescribeView())
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.plane.Width(), g.plane.Height()
}
