// Package geom holds the wireframe geometry: points, triangles and cubes,
// their perspective projection and rotation.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a mutable 3-D coordinate.
type Point struct {
	X, Y, Z float64
}

// Vec2 is a projected 2-D point, centred on the origin with +y up.
type Vec2 struct {
	X, Y float64
}

// Project applies the pinhole perspective divide for a projection plane at
// distance d. It reports false when d == Z or the result is not finite.
// Choosing d larger than every |Z| in the scene is up to the caller; points
// beyond the plane are mirrored, not rejected.
func (p Point) Project(d float64) (Vec2, bool) {
	den := d - p.Z
	if den == 0 {
		return Vec2{}, false
	}
	v := Vec2{X: p.X * d / den, Y: p.Y * d / den}
	if !finite(v.X) || !finite(v.Y) {
		return Vec2{}, false
	}
	return v, true
}

// RotateX rotates the point around the X axis
func (p *Point) RotateX(angle float64) {
	p.apply(mgl64.Rotate3DX(angle))
}

// RotateY rotates the point around the Y axis, carrying +x towards +z for
// positive angles.
func (p *Point) RotateY(angle float64) {
	p.apply(mgl64.Rotate3DY(-angle))
}

func (p *Point) apply(m mgl64.Mat3) {
	v := m.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	p.X, p.Y, p.Z = v[0], v[1], v[2]
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
