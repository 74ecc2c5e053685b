package geom

import (
	"errors"
	"math"
	"testing"

	"wirecube/canvas"
)

func assertPoints(t *testing.T, got, want []Point, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if !near(g.X, w.X, tol) || !near(g.Y, w.Y, tol) || !near(g.Z, w.Z, tol) {
			t.Errorf("point %d = %v, want %v", i, g, w)
		}
	}
}

func TestNewCube_PointCount(t *testing.T) {
	for _, n := range []int{0, 3, 7, 9} {
		if _, err := NewCube(make([]Point, n)); !errors.Is(err, ErrPointCount) {
			t.Errorf("NewCube(%d points) error = %v, want ErrPointCount", n, err)
		}
	}
	c := NewCubeSized(1)
	if err := c.UpdatePoints(make([]Point, 4)); !errors.Is(err, ErrPointCount) {
		t.Errorf("UpdatePoints(4 points) error = %v, want ErrPointCount", err)
	}
	assertPoints(t, c.Points(), CubeCorners(1), 0)
}

func TestCubeRotate_Identity(t *testing.T) {
	c := NewCubeSized(250)
	c.RotateX(0)
	c.RotateY(0)
	assertPoints(t, c.Points(), CubeCorners(250), 0)
}

func TestCubeRotate_RoundTrip(t *testing.T) {
	for _, theta := range []float64{0.001, 0.5, math.Pi / 3, 2.9, -1.2} {
		c := NewCubeSized(250)
		c.RotateX(theta)
		c.RotateX(-theta)
		c.RotateY(theta)
		c.RotateY(-theta)
		assertPoints(t, c.Points(), CubeCorners(250), 1e-9)
	}
}

func TestCubeReset(t *testing.T) {
	c := NewCubeSized(250)
	for range 1000 {
		c.RotateX(0.001)
		c.RotateY(0.002)
	}
	c.Reset()
	assertPoints(t, c.Points(), CubeCorners(250), 0)
}

func TestCubeUpdatePoints_RebuildsTriangles(t *testing.T) {
	c := NewCubeSized(250)
	pts := make([]Point, 8)
	for i := range pts {
		pts[i] = Point{float64(i), float64(10 * i), float64(100 * i)}
	}
	if err := c.UpdatePoints(pts); err != nil {
		t.Fatalf("UpdatePoints() error = %v", err)
	}

	tris := c.Triangles()
	if len(tris) != 12 {
		t.Fatalf("Triangles() returned %d, want 12", len(tris))
	}
	for i, tri := range tris {
		for j, p := range tri.Points {
			if want := pts[Faces[i][j]]; p != want {
				t.Errorf("triangle %d point %d = %v, want vertex %d %v", i, j, p, Faces[i][j], want)
			}
		}
	}

	// Mutating the caller's slice must not leak into the cube.
	pts[0].X = -1
	if c.Point(0).X != 0 {
		t.Errorf("vertex 0 aliased caller slice")
	}
}

func TestCubeDraw(t *testing.T) {
	c := NewCubeSized(250)
	var rec canvas.Recorder
	if err := c.Draw(&rec, 1000, hd); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	paths := rec.Paths()
	if len(paths) != 12 {
		t.Fatalf("Draw issued %d paths, want 12", len(paths))
	}
	corners := CubeCorners(250)
	for i, p := range paths {
		if !p.Closed || len(p.Points) != 3 {
			t.Fatalf("path %d closed=%v with %d points, want closed with 3", i, p.Closed, len(p.Points))
		}
		for j, v := range p.Points {
			pr, _ := corners[Faces[i][j]].Project(1000)
			if !near(v.X, pr.X+960, eps) || !near(v.Y, -pr.Y+540, eps) {
				t.Errorf("path %d vertex %d = %v, want (%v, %v)", i, j, v, pr.X+960, -pr.Y+540)
			}
		}
	}
}
