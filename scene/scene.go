// Package scene is the frame loop controller: it owns the drawing list and
// the running flag, advances the rotation and renders every frame.
package scene

import (
	"fmt"

	"wirecube/canvas"
	"wirecube/geom"
	"wirecube/internal/logger"
)

// Rotator is a drawable the rotation loop can spin.
type Rotator interface {
	RotateX(angle float64)
	RotateY(angle float64)
}

// Scene renders an ordered list of drawables. It is not safe for concurrent
// use; hosts call it from their single event goroutine.
type Scene struct {
	cfg       Config
	drawables []geom.Drawable
	running   bool
	lastKey   Key
	sliders   *Sliders

	angleX, angleY float64
	frames         uint64
}

// New creates a stopped scene.
func New(cfg Config, drawables ...geom.Drawable) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scene{cfg: cfg, drawables: drawables}, nil
}

// Config returns the scene configuration.
func (s *Scene) Config() Config { return s.cfg }

// Add appends drawables to the end of the drawing list.
func (s *Scene) Add(d ...geom.Drawable) { s.drawables = append(s.drawables, d...) }

// Drawables returns the drawing list in render order.
func (s *Scene) Drawables() []geom.Drawable { return s.drawables }

func (s *Scene) Running() bool { return s.running }

// Start resumes the rotation loop.
func (s *Scene) Start() {
	if s.running {
		return
	}
	logger.L().Info("starting rotation loop", "frame", s.frames)
	s.running = true
}

// Stop freezes the geometry. Frames keep rendering.
func (s *Scene) Stop() {
	if !s.running {
		return
	}
	logger.L().Info("stopping rotation loop", "frame", s.frames, "angle_x", s.angleX, "angle_y", s.angleY)
	s.running = false
}

func (s *Scene) Toggle() {
	if s.running {
		s.Stop()
	} else {
		s.Start()
	}
}

// Angles returns the total rotation applied since the scene was created.
func (s *Scene) Angles() (x, y float64) { return s.angleX, s.angleY }

// Frames returns the number of frames rendered.
func (s *Scene) Frames() uint64 { return s.frames }

// Update advances the rotation by one step while the loop is running.
func (s *Scene) Update() {
	if s.running {
		s.Step()
	}
}

// Step advances the rotation by one step regardless of the running flag.
func (s *Scene) Step() {
	s.angleX += s.cfg.SpinX
	s.angleY += s.cfg.SpinY
	for _, d := range s.drawables {
		if r, ok := d.(Rotator); ok {
			r.RotateX(s.cfg.SpinX)
			r.RotateY(s.cfg.SpinY)
		}
	}
}

// Reset returns every cube to its reference pose and zeroes the angles.
func (s *Scene) Reset() {
	s.angleX, s.angleY = 0, 0
	for _, d := range s.drawables {
		if c, ok := d.(*geom.Cube); ok {
			c.Reset()
		}
	}
	logger.L().Debug("scene reset")
}

// Render clears the whole surface and draws the list in insertion order.
// There is no depth test; hidden edges are drawn too.
func (s *Scene) Render(surf canvas.Surface) error {
	f := s.cfg.Frame
	if err := surf.Clear(0, 0, float64(f.Width), float64(f.Height)); err != nil {
		return fmt.Errorf("clear frame: %w", err)
	}
	for i, d := range s.drawables {
		if err := d.Draw(surf, s.cfg.Distance, f); err != nil {
			return fmt.Errorf("draw %d (%T): %w", i, d, err)
		}
	}
	s.frames++
	return nil
}

// Frame is the per-frame callback: Update, then Render.
func (s *Scene) Frame(surf canvas.Surface) error {
	s.Update()
	return s.Render(surf)
}
