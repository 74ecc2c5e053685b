package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Painter is an anti-aliased Surface backed by a gg drawing context.
type Painter struct {
	Background color.Color

	dc *gg.Context
}

var _ Surface = (*Painter)(nil)

// NewPainter creates a w x h canvas cleared to white with a one pixel pen.
func NewPainter(w, h int) *Painter {
	p := &Painter{
		Background: color.White,
		dc:         gg.NewContext(w, h),
	}
	p.dc.SetLineWidth(1)
	p.dc.ClearWithColor(gg.FromColor(p.Background))
	return p
}

// Width returns the canvas width in pixels.
func (p *Painter) Width() int { return p.dc.Width() }

// Height returns the canvas height in pixels.
func (p *Painter) Height() int { return p.dc.Height() }

// SetLineWidth changes the stroke width used by subsequent strokes.
func (p *Painter) SetLineWidth(w float64) { p.dc.SetLineWidth(w) }

func (p *Painter) Clear(x, y, w, h float64) error {
	if x <= 0 && y <= 0 && x+w >= float64(p.dc.Width()) && y+h >= float64(p.dc.Height()) {
		p.dc.ClearWithColor(gg.FromColor(p.Background))
		return nil
	}
	p.dc.ClearPath()
	p.dc.SetColor(p.Background)
	p.dc.DrawRectangle(x, y, w, h)
	return p.dc.Fill()
}

func (p *Painter) BeginPath()          { p.dc.ClearPath() }
func (p *Painter) MoveTo(x, y float64) { p.dc.MoveTo(x, y) }
func (p *Painter) LineTo(x, y float64) { p.dc.LineTo(x, y) }
func (p *Painter) ClosePath()          { p.dc.ClosePath() }

func (p *Painter) Stroke(c color.Color) error {
	p.dc.SetColor(c)
	return p.dc.Stroke()
}

// Image returns a snapshot of the canvas.
func (p *Painter) Image() image.Image { return p.dc.Image() }

// Close releases the drawing context.
func (p *Painter) Close() error { return p.dc.Close() }
