package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Raster is a dependency-free Surface drawing one pixel wide aliased lines
// into an RGBA image.
type Raster struct {
	Background color.RGBA

	img  *image.RGBA
	path Polyline
}

var _ Surface = (*Raster)(nil)

// NewRaster allocates a w x h image cleared to white.
func NewRaster(w, h int) *Raster {
	r := &Raster{
		Background: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	_ = r.Clear(0, 0, float64(w), float64(h))
	return r
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Clear(x, y, w, h float64) error {
	rect := image.Rect(int(x), int(y), int(math.Ceil(x+w)), int(math.Ceil(y+h))).Intersect(r.img.Bounds())
	draw.Draw(r.img, rect, image.NewUniform(r.Background), image.Point{}, draw.Src)
	return nil
}

func (r *Raster) BeginPath()          { r.path.Begin() }
func (r *Raster) MoveTo(x, y float64) { r.path.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.path.LineTo(x, y) }
func (r *Raster) ClosePath()          { r.path.Close() }

func (r *Raster) Stroke(c color.Color) error {
	col := color.RGBAModel.Convert(c).(color.RGBA)
	r.path.Segments(func(a, b Vertex) {
		DrawLine(r.img, int(math.Round(a.X)), int(math.Round(a.Y)), int(math.Round(b.X)), int(math.Round(b.Y)), col)
	})
	r.path.Begin()
	return nil
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA
// walk. Pixels outside the image are clipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		setPixel(img, int(math.Round(x)), int(math.Round(y)), col)
		x += xInc
		y += yInc
	}
}

func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}
