package geom

import (
	"fmt"

	"wirecube/canvas"
)

// Face is a triangle given as three indices into a cube's vertex array.
type Face [3]int

// Faces is the fixed face-index pattern: two triangles per cube face.
// Vertices 0-3 are the front face and 4-7 the back face.
var Faces = [12]Face{
	{0, 1, 2}, {0, 2, 3}, // front
	{4, 5, 6}, {4, 6, 7}, // back
	{0, 1, 5}, {0, 5, 4}, // bottom
	{2, 3, 7}, {2, 7, 6}, // top
	{0, 3, 7}, {0, 7, 4}, // left
	{1, 2, 6}, {1, 6, 5}, // right
}

// Cube is an 8-vertex solid drawn as 12 triangle outlines. Its triangles are
// resolved from the current vertices on every draw, so they always follow
// UpdatePoints and rotations.
type Cube struct {
	points    [8]Point
	reference [8]Point
}

var _ Drawable = (*Cube)(nil)

// NewCube builds a cube from 8 corners in the fixed corner order.
func NewCube(points []Point) (*Cube, error) {
	c := &Cube{}
	if err := c.UpdatePoints(points); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCubeSized returns the axis-aligned cube with corners at +-half.
func NewCubeSized(half float64) *Cube {
	c, _ := NewCube(CubeCorners(half))
	return c
}

// CubeCorners lists the corners of the +-half cube in the fixed corner order.
func CubeCorners(half float64) []Point {
	h := half
	return []Point{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
}

// UpdatePoints replaces all 8 vertices and makes them the new reference
// pose for Reset.
func (c *Cube) UpdatePoints(points []Point) error {
	if len(points) != len(c.points) {
		return fmt.Errorf("cube: %w: got %d, want %d", ErrPointCount, len(points), len(c.points))
	}
	copy(c.points[:], points)
	c.reference = c.points
	return nil
}

// Points returns a copy of the current vertices.
func (c *Cube) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points[:])
	return out
}

// Point returns vertex i.
func (c *Cube) Point(i int) Point { return c.points[i] }

// Triangles resolves the 12 faces against the current vertices.
func (c *Cube) Triangles() []Triangle {
	out := make([]Triangle, len(Faces))
	for i, f := range Faces {
		out[i] = c.triangle(f)
	}
	return out
}

func (c *Cube) triangle(f Face) Triangle {
	return Triangle{Points: [3]Point{c.points[f[0]], c.points[f[1]], c.points[f[2]]}}
}

// RotateX rotates every vertex around the X axis in place. Rotations
// compound on the current pose, so long sessions drift slightly; Reset
// returns to the reference pose.
func (c *Cube) RotateX(angle float64) {
	for i := range c.points {
		c.points[i].RotateX(angle)
	}
}

// RotateY rotates every vertex around the Y axis in place.
func (c *Cube) RotateY(angle float64) {
	for i := range c.points {
		c.points[i].RotateY(angle)
	}
}

// Reset restores the pose last given to NewCube or UpdatePoints.
func (c *Cube) Reset() {
	c.points = c.reference
}

// Draw strokes all 12 triangles, back faces included.
func (c *Cube) Draw(s canvas.Surface, d float64, f canvas.Frame) error {
	for _, face := range Faces {
		if err := c.triangle(face).Draw(s, d, f); err != nil {
			return err
		}
	}
	return nil
}
