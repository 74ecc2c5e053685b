// Package canvas defines the immediate-mode drawing surface the geometry
// draws onto, plus a few in-process implementations of it.
package canvas

import "image/color"

// Surface is a 2-D immediate-mode drawing target. The origin is the top-left
// corner, +x points right and +y points down.
type Surface interface {
	// Clear resets the rectangle to the surface background.
	Clear(x, y, w, h float64) error
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	// Stroke outlines the current path in c and discards it.
	Stroke(c color.Color) error
}

// Frame holds the pixel dimensions of the drawing surface.
type Frame struct {
	Width  int
	Height int
}

// Center returns the screen-space position of the frame centre.
func (f Frame) Center() (x, y float64) {
	return float64(f.Width) / 2, float64(f.Height) / 2
}

// Vertex is a screen-space position.
type Vertex struct {
	X, Y float64
}

// Subpath is one connected run of vertices within a Polyline.
type Subpath struct {
	Points []Vertex
	Closed bool
}

// Polyline accumulates subpaths between BeginPath and Stroke for surfaces
// without a native path model. Like a canvas path, each MoveTo starts a new
// subpath and keeps the earlier ones.
type Polyline struct {
	Subpaths []Subpath
}

// Begin discards the current path.
func (p *Polyline) Begin() {
	p.Subpaths = p.Subpaths[:0]
}

// MoveTo starts a new subpath at (x, y).
func (p *Polyline) MoveTo(x, y float64) {
	p.Subpaths = append(p.Subpaths, Subpath{Points: []Vertex{{x, y}}})
}

// LineTo extends the current subpath. Without a current point it acts like
// MoveTo; after Close it continues from the closed subpath's first vertex.
func (p *Polyline) LineTo(x, y float64) {
	n := len(p.Subpaths)
	if n == 0 {
		p.MoveTo(x, y)
		return
	}
	if last := &p.Subpaths[n-1]; last.Closed {
		start := last.Points[0]
		p.Subpaths = append(p.Subpaths, Subpath{Points: []Vertex{start}})
	}
	cur := &p.Subpaths[len(p.Subpaths)-1]
	cur.Points = append(cur.Points, Vertex{x, y})
}

// Close marks the current subpath closed.
func (p *Polyline) Close() {
	if n := len(p.Subpaths); n > 0 {
		p.Subpaths[n-1].Closed = len(p.Subpaths[n-1].Points) > 1
	}
}

// Segments calls fn for every line segment, including closing edges.
func (p *Polyline) Segments(fn func(a, b Vertex)) {
	for _, sp := range p.Subpaths {
		for i := 1; i < len(sp.Points); i++ {
			fn(sp.Points[i-1], sp.Points[i])
		}
		if sp.Closed {
			fn(sp.Points[len(sp.Points)-1], sp.Points[0])
		}
	}
}
