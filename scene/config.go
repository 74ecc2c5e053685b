package scene

import (
	"errors"
	"fmt"
	"image/color"

	"wirecube/canvas"
)

// Defaults match the original 1920x1080 browser demo.
const (
	DefaultWidth    = 1920
	DefaultHeight   = 1080
	DefaultDistance = 1000
	DefaultSpinX    = 0.001
	DefaultSpinY    = 0.002
)

// ErrConfig is returned by Validate for unusable settings.
var ErrConfig = errors.New("invalid scene config")

// Config is everything a Scene needs to know about its host.
type Config struct {
	Frame canvas.Frame
	// Distance is the projection distance used for every draw.
	Distance float64
	// SpinX and SpinY are the per-frame rotation increments in radians.
	SpinX, SpinY float64
	Background   color.Color
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Frame:      canvas.Frame{Width: DefaultWidth, Height: DefaultHeight},
		Distance:   DefaultDistance,
		SpinX:      DefaultSpinX,
		SpinY:      DefaultSpinY,
		Background: color.White,
	}
}

// Validate checks the frame size and projection distance.
func (c Config) Validate() error {
	if c.Frame.Width <= 0 || c.Frame.Height <= 0 {
		return fmt.Errorf("%w: frame %dx%d", ErrConfig, c.Frame.Width, c.Frame.Height)
	}
	if c.Distance <= 0 {
		return fmt.Errorf("%w: projection distance %v", ErrConfig, c.Distance)
	}
	return nil
}
