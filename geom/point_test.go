package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		d      float64
		want   Vec2
		wantOK bool
	}{
		{"on plane z=0", Point{120, -80, 0}, 1000, Vec2{120, -80}, true},
		{"towards viewer", Point{250, 250, 500}, 1000, Vec2{500, 500}, true},
		{"away from viewer", Point{250, -250, -1000}, 1000, Vec2{125, -125}, true},
		{"on projection plane", Point{1, 1, 1000}, 1000, Vec2{}, false},
		{"overflow", Point{math.MaxFloat64, 0, 999.5}, 1000, Vec2{}, false},
		{"nan coordinate", Point{math.NaN(), 1, 0}, 1000, Vec2{}, false},
		{"nan depth", Point{1, 1, math.NaN()}, 1000, Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.p.Project(tt.d)
			if ok != tt.wantOK {
				t.Fatalf("Project(%v) ok = %v, want %v", tt.d, ok, tt.wantOK)
			}
			if !near(got.X, tt.want.X, eps) || !near(got.Y, tt.want.Y, eps) {
				t.Errorf("Project(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestProject_GrowsTowardsPlane(t *testing.T) {
	const d = 1000
	prev := 0.0
	for _, z := range []float64{0, 500, 900, 990, 999, 999.9, 999.999} {
		v, ok := Point{10, 10, z}.Project(d)
		if !ok {
			t.Fatalf("Project at z=%v not ok", z)
		}
		mag := math.Hypot(v.X, v.Y)
		if mag <= prev {
			t.Errorf("magnitude at z=%v = %v, want > %v", z, mag, prev)
		}
		prev = mag
	}
	if prev < 1e6 {
		t.Errorf("magnitude near plane = %v, want unbounded growth", prev)
	}
}

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name   string
		rotate func(p *Point)
		in     Point
		want   Point
	}{
		{"x quarter turn", func(p *Point) { p.RotateX(math.Pi / 2) }, Point{1, 1, 0}, Point{1, 0, 1}},
		{"y quarter turn", func(p *Point) { p.RotateY(math.Pi / 2) }, Point{1, 1, 0}, Point{0, 1, 1}},
		{"x identity", func(p *Point) { p.RotateX(0) }, Point{3, 4, 5}, Point{3, 4, 5}},
		{"y identity", func(p *Point) { p.RotateY(0) }, Point{3, 4, 5}, Point{3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			tt.rotate(&p)
			if !near(p.X, tt.want.X, eps) || !near(p.Y, tt.want.Y, eps) || !near(p.Z, tt.want.Z, eps) {
				t.Errorf("got %v, want %v", p, tt.want)
			}
		})
	}
}
