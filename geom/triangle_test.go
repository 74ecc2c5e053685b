package geom

import (
	"errors"
	"image/color"
	"testing"

	"wirecube/canvas"
)

var hd = canvas.Frame{Width: 1920, Height: 1080}

func TestNewTriangle(t *testing.T) {
	if _, err := NewTriangle(Point{}, Point{}); !errors.Is(err, ErrPointCount) {
		t.Errorf("NewTriangle(2 points) error = %v, want ErrPointCount", err)
	}
	if _, err := NewTriangle(Point{}, Point{}, Point{}, Point{}); !errors.Is(err, ErrPointCount) {
		t.Errorf("NewTriangle(4 points) error = %v, want ErrPointCount", err)
	}
	tri, err := NewTriangle(Point{1, 2, 3}, Point{4, 5, 6}, Point{7, 8, 9})
	if err != nil {
		t.Fatalf("NewTriangle() error = %v", err)
	}
	if tri.Points[2] != (Point{7, 8, 9}) {
		t.Errorf("Points[2] = %v, want {7 8 9}", tri.Points[2])
	}
}

func TestTriangleDraw(t *testing.T) {
	tri := DefaultTriangle()
	var rec canvas.Recorder
	if err := tri.Draw(&rec, 1000, hd); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	wantOps := []canvas.Op{canvas.OpBeginPath, canvas.OpMoveTo, canvas.OpLineTo, canvas.OpLineTo, canvas.OpClosePath, canvas.OpStroke}
	if len(rec.Commands) != len(wantOps) {
		t.Fatalf("recorded %d commands, want %d", len(rec.Commands), len(wantOps))
	}
	for i, op := range wantOps {
		if rec.Commands[i].Op != op {
			t.Errorf("command %d = %v, want %v", i, rec.Commands[i].Op, op)
		}
	}

	// z=100 at d=1000 scales by 10/9; y is flipped about the centre.
	scale := 1000.0 / 900.0
	first := rec.Commands[1]
	if !near(first.X, 50.5*scale+960, eps) || !near(first.Y, -50.5*scale+540, eps) {
		t.Errorf("moveTo = (%v, %v), want (%v, %v)", first.X, first.Y, 50.5*scale+960, -50.5*scale+540)
	}
	if c := rec.Commands[5].Color; c != color.Black {
		t.Errorf("stroke color = %v, want black", c)
	}
}

func TestTriangleDraw_SkipsPointOnPlane(t *testing.T) {
	tri, _ := NewTriangle(Point{0, 0, 0}, Point{10, 0, 1000}, Point{0, 10, 0})
	var rec canvas.Recorder
	if err := tri.Draw(&rec, 1000, hd); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if len(rec.Commands) != 0 {
		t.Errorf("recorded %d commands, want none", len(rec.Commands))
	}
}
