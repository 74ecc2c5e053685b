package geom

import (
	"errors"
	"fmt"
	"image/color"

	"wirecube/canvas"
	"wirecube/internal/logger"
)

// ErrPointCount is returned when a shape is built from the wrong number of
// points.
var ErrPointCount = errors.New("wrong number of points")

// edgeColor is the colour every edge is drawn in.
var edgeColor color.Color = color.Black

// Drawable is anything the scene can render.
type Drawable interface {
	Draw(s canvas.Surface, d float64, f canvas.Frame) error
}

// Triangle is an ordered triple of points.
type Triangle struct {
	Points [3]Point
}

var _ Drawable = Triangle{}

// NewTriangle builds a triangle from exactly three points.
func NewTriangle(points ...Point) (Triangle, error) {
	var t Triangle
	if err := t.UpdatePoints(points...); err != nil {
		return Triangle{}, err
	}
	return t, nil
}

// DefaultTriangle returns the small triangle the standalone demo draws when
// no points are configured.
func DefaultTriangle() Triangle {
	return Triangle{Points: [3]Point{
		{50.5, 50.5, 100},
		{100.5, 50.5, 100},
		{75.5, 100.5, 100},
	}}
}

// UpdatePoints replaces all three points.
func (t *Triangle) UpdatePoints(points ...Point) error {
	if len(points) != 3 {
		return fmt.Errorf("triangle: %w: got %d, want 3", ErrPointCount, len(points))
	}
	copy(t.Points[:], points)
	return nil
}

// Screen projects the triangle and maps it into screen space: the origin
// moves to the frame centre and y is flipped so +y renders upwards.
func (t Triangle) Screen(d float64, f canvas.Frame) ([3]canvas.Vertex, bool) {
	var out [3]canvas.Vertex
	cx, cy := f.Center()
	for i, p := range t.Points {
		v, ok := p.Project(d)
		if !ok {
			return out, false
		}
		out[i] = canvas.Vertex{X: v.X + cx, Y: -v.Y + cy}
	}
	return out, true
}

// Draw strokes the triangle outline. A triangle with a vertex on the
// projection plane is skipped.
func (t Triangle) Draw(s canvas.Surface, d float64, f canvas.Frame) error {
	v, ok := t.Screen(d, f)
	if !ok {
		logger.L().Debug("skipping unprojectable triangle", "points", t.Points, "distance", d)
		return nil
	}
	s.BeginPath()
	s.MoveTo(v[0].X, v[0].Y)
	s.LineTo(v[1].X, v[1].Y)
	s.LineTo(v[2].X, v[2].Y)
	s.ClosePath()
	return s.Stroke(edgeColor)
}
