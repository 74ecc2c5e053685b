package scene

// Key names a key press the scene reacts to. Values follow the browser's
// KeyboardEvent.key names so every host can map onto them directly.
type Key string

const (
	KeyEnter  Key = "Enter"
	KeyEscape Key = "Escape"
	KeySpace  Key = " "
	KeyReset  Key = "r"

	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// HandleKey applies a key press: Enter toggles the rotation loop, Escape
// stops it, Space advances one rotation step and R restores every cube's
// reference pose. Other keys go to the attached slider bank, if any. It
// reports whether the key was consumed.
func (s *Scene) HandleKey(k Key) bool {
	s.lastKey = k
	switch k {
	case KeyEnter:
		s.Toggle()
	case KeyEscape:
		s.Stop()
	case KeySpace:
		s.Step()
	case KeyReset, "R":
		s.Reset()
	default:
		if s.sliders != nil {
			return s.sliders.HandleKey(k)
		}
		return false
	}
	return true
}

// LastKey returns the most recent key passed to HandleKey.
func (s *Scene) LastKey() Key { return s.lastKey }

// AttachSliders routes slider keys to sl.
func (s *Scene) AttachSliders(sl *Sliders) { s.sliders = sl }

// Sliders returns the attached slider bank, or nil.
func (s *Scene) Sliders() *Sliders { return s.sliders }
