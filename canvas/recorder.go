package canvas

import "image/color"

// Op identifies a recorded surface call.
type Op uint8

const (
	OpClear Op = iota
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpClosePath
	OpStroke
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpBeginPath:
		return "beginPath"
	case OpMoveTo:
		return "moveTo"
	case OpLineTo:
		return "lineTo"
	case OpClosePath:
		return "closePath"
	case OpStroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// Command is one recorded call. X/Y carry the coordinates of MoveTo and
// LineTo and the origin of Clear; W/H are only set for Clear.
type Command struct {
	Op         Op
	X, Y, W, H float64
	Color      color.Color
}

// Path is a stroked path reconstructed from the command stream.
type Path struct {
	Points []Vertex
	Closed bool
	Color  color.Color
}

// Recorder is a Surface that only remembers what it was asked to draw.
type Recorder struct {
	Commands []Command
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) Clear(x, y, w, h float64) error {
	r.Commands = append(r.Commands, Command{Op: OpClear, X: x, Y: y, W: w, H: h})
	return nil
}

func (r *Recorder) BeginPath() { r.Commands = append(r.Commands, Command{Op: OpBeginPath}) }

func (r *Recorder) MoveTo(x, y float64) {
	r.Commands = append(r.Commands, Command{Op: OpMoveTo, X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.Commands = append(r.Commands, Command{Op: OpLineTo, X: x, Y: y})
}

func (r *Recorder) ClosePath() { r.Commands = append(r.Commands, Command{Op: OpClosePath}) }

func (r *Recorder) Stroke(c color.Color) error {
	r.Commands = append(r.Commands, Command{Op: OpStroke, Color: c})
	return nil
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Count returns how many commands of kind op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Paths groups the command stream into stroked paths. A path that was begun
// but never stroked is not returned.
func (r *Recorder) Paths() []Path {
	var (
		out []Path
		cur *Path
	)
	for _, c := range r.Commands {
		switch c.Op {
		case OpBeginPath:
			cur = &Path{}
		case OpMoveTo, OpLineTo:
			if cur == nil {
				cur = &Path{}
			}
			cur.Points = append(cur.Points, Vertex{c.X, c.Y})
		case OpClosePath:
			if cur != nil {
				cur.Closed = true
			}
		case OpStroke:
			if cur != nil {
				cur.Color = c.Color
				out = append(out, *cur)
				cur = nil
			}
		}
	}
	return out
}
