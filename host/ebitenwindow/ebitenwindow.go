// Package ebitenwindow hosts a scene in an Ebiten window.
package ebitenwindow

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wirecube/canvas"
	"wirecube/internal/logger"
	"wirecube/scene"
)

// Options configures the window.
type Options struct {
	Title string
	// Scale sizes the window relative to the scene frame. The frame is
	// always rendered at full resolution and scaled by Ebiten.
	Scale float64
	TPS   int
	// HUD prints the loop state and FPS in the top-left corner.
	HUD bool
}

// Run opens a window and blocks until it is closed.
func Run(sc *scene.Scene, opts Options) error {
	if opts.Title == "" {
		opts.Title = "wirecube"
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}

	f := sc.Config().Frame
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(float64(f.Width)*opts.Scale), int(float64(f.Height)*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TPS)

	g := &game{sc: sc, hud: opts.HUD, surf: &surface{bg: sc.Config().Background, width: 1}}
	if g.surf.bg == nil {
		g.surf.bg = color.White
	}
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	sc   *scene.Scene
	surf *surface
	hud  bool
	err  error
}

var keys = map[ebiten.Key]scene.Key{
	ebiten.KeyEnter:       scene.KeyEnter,
	ebiten.KeyNumpadEnter: scene.KeyEnter,
	ebiten.KeyEscape:      scene.KeyEscape,
	ebiten.KeySpace:       scene.KeySpace,
	ebiten.KeyR:           scene.KeyReset,
	ebiten.KeyX:           "x",
	ebiten.KeyY:           "y",
	ebiten.KeyZ:           "z",
	ebiten.KeyDigit1:      "1",
	ebiten.KeyDigit2:      "2",
	ebiten.KeyDigit3:      "3",
	ebiten.KeyDigit4:      "4",
	ebiten.KeyDigit5:      "5",
	ebiten.KeyDigit6:      "6",
	ebiten.KeyDigit7:      "7",
	ebiten.KeyDigit8:      "8",
}

var arrows = map[ebiten.Key]scene.Key{
	ebiten.KeyArrowUp:    scene.KeyArrowUp,
	ebiten.KeyArrowDown:  scene.KeyArrowDown,
	ebiten.KeyArrowLeft:  scene.KeyArrowLeft,
	ebiten.KeyArrowRight: scene.KeyArrowRight,
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for k, name := range keys {
		if inpututil.IsKeyJustPressed(k) {
			g.sc.HandleKey(name)
		}
	}
	for k, name := range arrows {
		if repeating(inpututil.KeyPressDuration(k)) {
			g.sc.HandleKey(name)
		}
	}
	g.sc.Update()
	return nil
}

// repeating reports whether a key held for d ticks should fire: once on
// press, then every 4 ticks after half a second.
func repeating(d int) bool {
	const delay, interval = 30, 4
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surf.dst = screen
	if err := g.sc.Render(g.surf); err != nil {
		logger.L().Error("render failed", "err", err)
		g.err = err
		return
	}
	if g.hud {
		state := "stopped"
		if g.sc.Running() {
			state = "running"
		}
		v, a := 1, scene.AxisX
		if sl := g.sc.Sliders(); sl != nil {
			v, a = sl.Selected()
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  FPS %.0f  slider %d%s\nEnter toggle  Esc stop  Space step  R reset  Q quit",
			state, ebiten.ActualFPS(), v, a))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	f := g.sc.Config().Frame
	return f.Width, f.Height
}

// surface strokes paths with Ebiten's vector package.
type surface struct {
	dst   *ebiten.Image
	bg    color.Color
	width float32
	path  canvas.Polyline
}

var _ canvas.Surface = (*surface)(nil)

func (s *surface) Clear(x, y, w, h float64) error {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h))
	if s.dst.Bounds().In(r) {
		s.dst.Fill(s.bg)
		return nil
	}
	s.dst.SubImage(r).(*ebiten.Image).Fill(s.bg)
	return nil
}

func (s *surface) BeginPath()          { s.path.Begin() }
func (s *surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }
func (s *surface) LineTo(x, y float64) { s.path.LineTo(x, y) }
func (s *surface) ClosePath()          { s.path.Close() }

func (s *surface) Stroke(c color.Color) error {
	s.path.Segments(func(a, b canvas.Vertex) {
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), s.width, c, true)
	})
	s.path.Begin()
	return nil
}
