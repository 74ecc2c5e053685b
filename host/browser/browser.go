//go:build js && wasm

// Package browser hosts a scene on an HTML canvas. Build with
// GOOS=js GOARCH=wasm.
package browser

import (
	"fmt"
	"image/color"
	"strconv"
	"syscall/js"

	"wirecube/canvas"
	"wirecube/internal/logger"
	"wirecube/scene"
)

// Options names the page elements the host binds to.
type Options struct {
	// CanvasID is the id of the <canvas> element.
	CanvasID string
	// DisplayScale sets the CSS size relative to the drawing buffer, so a
	// 1920x1080 frame can be shown at 960x540.
	DisplayScale float64
}

// Run binds sc to the page and blocks forever. Sliders are <input> elements
// with ids slider1x .. slider8z; missing ones are skipped.
func Run(sc *scene.Scene, sliders *scene.Sliders, opts Options) error {
	if opts.CanvasID == "" {
		opts.CanvasID = "screen"
	}
	if opts.DisplayScale <= 0 {
		opts.DisplayScale = 0.5
	}

	doc := js.Global().Get("document")
	el := doc.Call("getElementById", opts.CanvasID)
	if el.IsNull() {
		return fmt.Errorf("canvas #%s not found", opts.CanvasID)
	}

	f := sc.Config().Frame
	el.Set("width", f.Width)
	el.Set("height", f.Height)
	el.Get("style").Set("width", fmt.Sprintf("%dpx", int(float64(f.Width)*opts.DisplayScale)))
	el.Get("style").Set("height", fmt.Sprintf("%dpx", int(float64(f.Height)*opts.DisplayScale)))

	surf := &surface{ctx: el.Call("getContext", "2d"), bg: sc.Config().Background}

	keydown := js.FuncOf(func(this js.Value, args []js.Value) any {
		sc.HandleKey(scene.Key(args[0].Get("key").String()))
		return nil
	})
	doc.Call("addEventListener", "keydown", keydown)

	if sliders != nil {
		bindSliders(doc, sliders, f)
	}

	var renderFrame js.Func
	renderFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if err := sc.Frame(surf); err != nil {
			logger.L().Error("render failed", "err", err)
		}
		js.Global().Call("requestAnimationFrame", renderFrame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", renderFrame)

	logger.L().Info("browser host started", "canvas", opts.CanvasID, "width", f.Width, "height", f.Height)
	select {}
}

func bindSliders(doc js.Value, sliders *scene.Sliders, f canvas.Frame) {
	for v := 1; v <= 8; v++ {
		for _, a := range []scene.Axis{scene.AxisX, scene.AxisY, scene.AxisZ} {
			el := doc.Call("getElementById", fmt.Sprintf("slider%d%s", v, a))
			if el.IsNull() {
				continue
			}
			lo, hi := scene.Bounds(f, a)
			el.Set("min", lo)
			el.Set("max", hi)
			if val, err := sliders.Value(v, a); err == nil {
				el.Set("value", val)
			}

			vertex, axis := v, a
			el.Call("addEventListener", "input", js.FuncOf(func(this js.Value, args []js.Value) any {
				val, err := strconv.ParseFloat(this.Get("value").String(), 64)
				if err != nil {
					return nil
				}
				if err := sliders.Set(vertex, axis, val); err != nil {
					logger.L().Warn("slider input rejected", "err", err)
				}
				return nil
			}))
		}
	}
}

// surface forwards path commands to a CanvasRenderingContext2D.
type surface struct {
	ctx js.Value
	bg  color.Color
}

var _ canvas.Surface = (*surface)(nil)

func (s *surface) Clear(x, y, w, h float64) error {
	if s.bg == nil {
		s.ctx.Call("clearRect", x, y, w, h)
		return nil
	}
	s.ctx.Set("fillStyle", cssColor(s.bg))
	s.ctx.Call("fillRect", x, y, w, h)
	return nil
}

func (s *surface) BeginPath()          { s.ctx.Call("beginPath") }
func (s *surface) MoveTo(x, y float64) { s.ctx.Call("moveTo", x, y) }
func (s *surface) LineTo(x, y float64) { s.ctx.Call("lineTo", x, y) }
func (s *surface) ClosePath()          { s.ctx.Call("closePath") }

func (s *surface) Stroke(c color.Color) error {
	s.ctx.Set("strokeStyle", cssColor(c))
	s.ctx.Call("stroke")
	return nil
}

func cssColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", n.R, n.G, n.B, float64(n.A)/0xFF)
}
