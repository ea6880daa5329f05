// Package input turns raw per-frame device samples into the edge-triggered
// state widgets read during dispatch.
//
// The host owns one State, feeds it once per frame in the order
// SetKeyboard, SetMouse, SetButtons, and then hands it to widget dispatch.
// State is not safe for concurrent use; hosts that sample on another
// goroutine must hand the samples to the UI goroutine first.
package input

import (
	"strings"
	"time"

	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// Options configures a State.
type Options struct {
	// Buttons is the number of tracked pointer buttons.
	Buttons int
	// DoubleClickSpeed is the longest gap between two clicks that still
	// counts as a double click.
	DoubleClickSpeed time.Duration
	// MinDragLength is how far, in pixels, the pointer must travel while a
	// button is held before it counts as a drag.
	MinDragLength int
}

// DefaultOptions returns the stock settings: 5 buttons, 250ms double click,
// 4px drag threshold.
func DefaultOptions() Options {
	return Options{
		Buttons:          5,
		DoubleClickSpeed: 250 * time.Millisecond,
		MinDragLength:    4,
	}
}

// State holds the input snapshot for the current frame.
type State struct {
	opts Options

	mouse    geom.Point
	movement geom.Point
	scroll   int
	sampled  bool

	keys []KeyData

	shift bool
	alt   bool
	ctrl  bool

	buttons []ButtonState
}

// New creates an input State. Non-positive option values fall back to the
// defaults.
func New(opts Options) *State {
	def := DefaultOptions()
	if opts.Buttons <= 0 {
		opts.Buttons = def.Buttons
	}
	if opts.DoubleClickSpeed <= 0 {
		opts.DoubleClickSpeed = def.DoubleClickSpeed
	}
	if opts.MinDragLength <= 0 {
		opts.MinDragLength = def.MinDragLength
	}
	return &State{
		opts:    opts,
		keys:    make([]KeyData, 0, 16),
		buttons: make([]ButtonState, opts.Buttons),
	}
}

// Options returns the settings the State was created with.
func (s *State) Options() Options {
	return s.opts
}

// SetMouse records the pointer position and scroll delta for this frame.
// Movement is the difference from the previous call, or zero on the first.
// Coordinates are not clamped; hit-testing owns clipping.
//
// Call once per frame. A second call in the same frame makes Movement
// report only the distance since the first call.
func (s *State) SetMouse(x, y, scroll int) {
	p := geom.Pt(x, y)
	if s.sampled {
		s.movement = p.Sub(s.mouse)
	} else {
		s.movement = geom.Point{}
		s.sampled = true
	}
	s.mouse = p
	s.scroll = scroll
}

// SetKeyboard replaces this frame's key events with the first length
// entries of keys. A negative length, or one past the end, uses all of
// them. Shift, alt and ctrl are latched from the events while copying.
//
// A nil slice is ignored: the previous frame's events and modifier flags
// stay in place.
func (s *State) SetKeyboard(keys []KeyData, length int) {
	if keys == nil {
		return
	}
	if length < 0 || length > len(keys) {
		length = len(keys)
	}

	s.keys = s.keys[:0]
	for _, k := range keys[:length] {
		s.keys = append(s.keys, k)

		switch key := k.Key(); {
		case key.IsShift():
			s.shift = latch(s.shift, k)
		case key.IsAlt():
			s.alt = latch(s.alt, k)
		case key.IsControl():
			s.ctrl = latch(s.ctrl, k)
		}
	}
}

func latch(current bool, k KeyData) bool {
	switch {
	case k.Pressed:
		return true
	case k.Released:
		return false
	default:
		return current
	}
}

// SetButtons advances each tracked button with one sample. Samples past the
// tracked button count are ignored; buttons without a sample keep their
// state.
func (s *State) SetButtons(pressed ...bool) {
	n := min(len(pressed), len(s.buttons))
	for i := 0; i < n; i++ {
		s.buttons[i] = s.buttons[i].next(pressed[i])
	}
}

// Button returns the state of button index, or ButtonNone when the index
// is out of range.
func (s *State) Button(index int) ButtonState {
	if index < 0 || index >= len(s.buttons) {
		return ButtonNone
	}
	return s.buttons[index]
}

// ButtonCount returns the number of tracked buttons.
func (s *State) ButtonCount() int {
	return len(s.buttons)
}

// MousePosition returns the pointer position recorded by SetMouse.
func (s *State) MousePosition() geom.Point {
	return s.mouse
}

// MouseMovement returns the pointer delta since the previous SetMouse.
func (s *State) MouseMovement() geom.Point {
	return s.movement
}

// MouseScroll returns this frame's scroll delta.
func (s *State) MouseScroll() int {
	return s.scroll
}

// ShiftPressed reports whether a shift key is held.
func (s *State) ShiftPressed() bool { return s.shift }

// AltPressed reports whether an alt key is held.
func (s *State) AltPressed() bool { return s.alt }

// CtrlPressed reports whether a control key is held.
func (s *State) CtrlPressed() bool { return s.ctrl }

// KeyEvents returns this frame's key events in the order they were given.
// The slice is only valid until the next SetKeyboard and must not be
// modified.
func (s *State) KeyEvents() []KeyData {
	return s.keys
}

// KeyPressed reports whether key was pressed this frame.
func (s *State) KeyPressed(key Key) bool {
	for _, k := range s.keys {
		if k.Pressed && k.Key() == key {
			return true
		}
	}
	return false
}

// KeyReleased reports whether key was released this frame.
func (s *State) KeyReleased(key Key) bool {
	for _, k := range s.keys {
		if k.Released && k.Key() == key {
			return true
		}
	}
	return false
}

// TextInput returns the characters produced by this frame's key presses.
func (s *State) TextInput() string {
	var b strings.Builder
	for _, k := range s.keys {
		if k.Pressed && k.HasChar {
			b.WriteRune(k.Char)
		}
	}
	return b.String()
}

// IsDragging reports whether button is held and the pointer has moved at
// least MinDragLength away from origin.
func (s *State) IsDragging(button int, origin geom.Point) bool {
	if !s.Button(button).IsHeld() {
		return false
	}
	limit := s.opts.MinDragLength
	return s.mouse.DistanceSquared(origin) >= limit*limit
}
