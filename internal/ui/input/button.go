package input

// ButtonState is the per-frame lifecycle of a pointer button.
//
// A physical press-release cycle polled once per frame reads as exactly one
// Down, zero or more Press, and exactly one Up, then None.
type ButtonState int

const (
	ButtonNone ButtonState = iota
	// ButtonDown is the first frame the button is held.
	ButtonDown
	// ButtonPress is every following frame it stays held.
	ButtonPress
	// ButtonUp is the frame it was released.
	ButtonUp
)

func (b ButtonState) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonDown:
		return "down"
	case ButtonPress:
		return "press"
	case ButtonUp:
		return "up"
	default:
		return "unknown"
	}
}

// IsHeld reports whether the button is currently held (Down or Press).
func (b ButtonState) IsHeld() bool {
	return b == ButtonDown || b == ButtonPress
}

// next applies one level-triggered sample to b. Only None and Down advance
// on a held sample; a button sampled held on its Up frame stays Up until it
// is sampled released.
func (b ButtonState) next(pressed bool) ButtonState {
	if pressed {
		switch b {
		case ButtonNone:
			return ButtonDown
		case ButtonDown:
			return ButtonPress
		}
		return b
	}
	if b.IsHeld() {
		return ButtonUp
	}
	return ButtonNone
}

// Mouse button indices used by hosts and dispatch.
const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
	MouseX1     = 3
	MouseX2     = 4
)
