package scene

import (
	"errors"
	"math"
	"testing"

	"wirecube/canvas"
	"wirecube/geom"
)

func TestBounds(t *testing.T) {
	f := canvas.Frame{Width: 1920, Height: 1080}
	tests := []struct {
		axis   Axis
		lo, hi float64
	}{
		{AxisX, -960, 960},
		{AxisY, -540, 540},
		{AxisZ, -500, 500},
	}
	for _, tt := range tests {
		lo, hi := Bounds(f, tt.axis)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("Bounds(%v) = (%v, %v), want (%v, %v)", tt.axis, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"x": AxisX, "Y": AxisY, "z": AxisZ} {
		got, err := ParseAxis(in)
		if err != nil || got != want {
			t.Errorf("ParseAxis(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseAxis("w"); !errors.Is(err, ErrAxis) {
		t.Errorf("ParseAxis(w) error = %v, want ErrAxis", err)
	}
}

func TestSlidersSet(t *testing.T) {
	cube := geom.NewCubeSized(250)
	sl := NewSliders(cube, canvas.Frame{Width: 1920, Height: 1080})

	if v, _ := sl.Value(7, AxisZ); v != 250 {
		t.Errorf("Value(7, z) = %v, want 250", v)
	}

	if err := sl.Set(1, AxisX, -100); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := cube.Point(0).X; got != -100 {
		t.Errorf("vertex 1 x = %v, want -100", got)
	}

	if err := sl.Set(2, AxisZ, 9000); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := cube.Point(1).Z; got != ZLimit {
		t.Errorf("vertex 2 z = %v, want clamped to %v", got, ZLimit)
	}

	// Every triangle sees the new vertex.
	for i, tri := range cube.Triangles() {
		for j, p := range tri.Points {
			if want := cube.Point(geom.Faces[i][j]); p != want {
				t.Errorf("triangle %d point %d = %v, want %v", i, j, p, want)
			}
		}
	}
}

func TestSlidersErrors(t *testing.T) {
	sl := NewSliders(geom.NewCubeSized(1), canvas.Frame{Width: 100, Height: 100})
	if err := sl.Set(0, AxisX, 1); !errors.Is(err, ErrVertexIndex) {
		t.Errorf("Set(0) error = %v, want ErrVertexIndex", err)
	}
	if err := sl.Set(9, AxisX, 1); !errors.Is(err, ErrVertexIndex) {
		t.Errorf("Set(9) error = %v, want ErrVertexIndex", err)
	}
	if err := sl.Set(1, Axis(5), 1); !errors.Is(err, ErrAxis) {
		t.Errorf("Set(axis 5) error = %v, want ErrAxis", err)
	}
	if err := sl.Set(1, AxisX, math.NaN()); err == nil {
		t.Error("Set(NaN) error = nil, want error")
	}
}

func TestSlidersKeyboard(t *testing.T) {
	cube := geom.NewCubeSized(250)
	s, err := New(DefaultConfig(), cube)
	if err != nil {
		t.Fatal(err)
	}
	sl := NewSliders(cube, s.Config().Frame)
	s.AttachSliders(sl)

	for _, k := range []Key{"3", "y", KeyArrowUp, KeyArrowUp, KeyArrowLeft} {
		if !s.HandleKey(k) {
			t.Fatalf("HandleKey(%q) not consumed", k)
		}
	}
	if v, a := sl.Selected(); v != 3 || a != AxisY {
		t.Errorf("Selected() = (%d, %v), want (3, y)", v, a)
	}
	if got := cube.Point(2).Y; got != 250+NudgeStep {
		t.Errorf("vertex 3 y = %v, want %v", got, 250+NudgeStep)
	}
	if s.Sliders() != sl {
		t.Error("Sliders() did not return the attached bank")
	}
}

func TestNewSliders_ClampsOversizedCube(t *testing.T) {
	cube := geom.NewCubeSized(600)
	sl := NewSliders(cube, canvas.Frame{Width: 1920, Height: 1080})

	want := geom.Point{X: 600, Y: 540, Z: ZLimit}
	if got := cube.Point(6); got != want {
		t.Fatalf("vertex 7 after binding = %v, want %v", got, want)
	}

	if err := sl.Nudge(1, AxisX, 10); err != nil {
		t.Fatalf("Nudge() error = %v", err)
	}
	if got := cube.Point(6); got != want {
		t.Errorf("vertex 7 after editing vertex 1 = %v, want unchanged %v", got, want)
	}
	if got := cube.Point(0).X; got != -590 {
		t.Errorf("vertex 1 x = %v, want -590", got)
	}
}
