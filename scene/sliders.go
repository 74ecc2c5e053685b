package scene

import (
	"errors"
	"fmt"
	"math"

	"wirecube/canvas"
	"wirecube/geom"
	"wirecube/internal/logger"
)

var (
	ErrVertexIndex = errors.New("vertex index out of range")
	ErrAxis        = errors.New("unknown axis")
)

// Axis selects one coordinate of a vertex.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ZLimit bounds the z sliders.
const ZLimit = 500

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis maps "x", "y" or "z" (any case) to an Axis.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrAxis, s)
}

// Bounds returns the slider range for an axis on frame f: half the frame in
// x and y, and +-ZLimit in z.
func Bounds(f canvas.Frame, a Axis) (lo, hi float64) {
	switch a {
	case AxisX:
		return -float64(f.Width) / 2, float64(f.Width) / 2
	case AxisY:
		return -float64(f.Height) / 2, float64(f.Height) / 2
	default:
		return -ZLimit, ZLimit
	}
}

// Sliders is a bank of 24 coordinate inputs (8 vertices by 3 axes) bound to
// one cube. Vertices are numbered 1 to 8 like the input controls.
type Sliders struct {
	cube   *geom.Cube
	frame  canvas.Frame
	values [8][3]float64

	selVertex int
	selAxis   Axis
}

// NewSliders binds a slider bank to cube, loads its current corners and
// applies the bank back to the cube, so a cube reaching outside the bounds
// starts out clamped rather than changing shape on the first edit.
func NewSliders(cube *geom.Cube, f canvas.Frame) *Sliders {
	s := &Sliders{cube: cube, frame: f}
	s.Sync()
	// Eight points always satisfy UpdatePoints.
	_ = s.apply()
	return s
}

// Sync copies the cube's current vertices into the bank, clamped to bounds.
func (s *Sliders) Sync() {
	for i, p := range s.cube.Points() {
		for a, v := range [3]float64{p.X, p.Y, p.Z} {
			s.values[i][a] = s.clamp(Axis(a), v)
		}
	}
}

// Value returns the slider for vertex (1-8) and axis.
func (s *Sliders) Value(vertex int, a Axis) (float64, error) {
	if err := s.check(vertex, a); err != nil {
		return 0, err
	}
	return s.values[vertex-1][a], nil
}

// Set moves one slider, clamped to its bounds, and rebuilds the cube from
// the whole bank.
func (s *Sliders) Set(vertex int, a Axis, v float64) error {
	if err := s.check(vertex, a); err != nil {
		return err
	}
	if math.IsNaN(v) {
		return fmt.Errorf("slider %d%s: value is NaN", vertex, a)
	}
	s.values[vertex-1][a] = s.clamp(a, v)
	logger.L().Debug("slider input", "vertex", vertex, "axis", a.String(), "value", s.values[vertex-1][a])
	return s.apply()
}

// Nudge moves one slider by delta.
func (s *Sliders) Nudge(vertex int, a Axis, delta float64) error {
	v, err := s.Value(vertex, a)
	if err != nil {
		return err
	}
	return s.Set(vertex, a, v+delta)
}

func (s *Sliders) apply() error {
	pts := make([]geom.Point, len(s.values))
	for i, v := range s.values {
		pts[i] = geom.Point{X: v[AxisX], Y: v[AxisY], Z: v[AxisZ]}
	}
	return s.cube.UpdatePoints(pts)
}

func (s *Sliders) clamp(a Axis, v float64) float64 {
	lo, hi := Bounds(s.frame, a)
	return math.Max(lo, math.Min(hi, v))
}

func (s *Sliders) check(vertex int, a Axis) error {
	if vertex < 1 || vertex > len(s.values) {
		return fmt.Errorf("%w: %d", ErrVertexIndex, vertex)
	}
	if a < AxisX || a > AxisZ {
		return fmt.Errorf("%w: %d", ErrAxis, int(a))
	}
	return nil
}

// NudgeStep is how far one arrow key press moves the selected slider.
const NudgeStep = 10

// Selected returns the slider the arrow keys currently move.
func (s *Sliders) Selected() (vertex int, a Axis) {
	if s.selVertex == 0 {
		return 1, s.selAxis
	}
	return s.selVertex, s.selAxis
}

// HandleKey drives the bank from a keyboard: 1-8 select a vertex, x/y/z an
// axis, and the arrow keys move the selection by NudgeStep.
func (s *Sliders) HandleKey(k Key) bool {
	vertex, axis := s.Selected()
	switch k {
	case "1", "2", "3", "4", "5", "6", "7", "8":
		s.selVertex = int(k[0] - '0')
	case "x", "X", "y", "Y", "z", "Z":
		s.selAxis, _ = ParseAxis(string(k))
	case KeyArrowUp, KeyArrowRight:
		return s.nudgeLogged(vertex, axis, NudgeStep)
	case KeyArrowDown, KeyArrowLeft:
		return s.nudgeLogged(vertex, axis, -NudgeStep)
	default:
		return false
	}
	return true
}

func (s *Sliders) nudgeLogged(vertex int, a Axis, delta float64) bool {
	if err := s.Nudge(vertex, a, delta); err != nil {
		logger.L().Warn("slider nudge failed", "vertex", vertex, "axis", a.String(), "err", err)
	}
	return true
}
