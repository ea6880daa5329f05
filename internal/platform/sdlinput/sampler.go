// Package sdlinput samples SDL2 keyboard and mouse state once per frame and
// converts it into the raw arrays the input state machine consumes.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-ui/internal/ui/input"
)

// Frame is one frame of sampled input.
type Frame struct {
	Keys    []input.KeyData
	X, Y    int
	Scroll  int
	Buttons []bool
}

// Apply feeds the frame into s in keyboard, mouse, buttons order.
func (f Frame) Apply(s *input.State) {
	s.SetKeyboard(f.Keys, -1)
	s.SetMouse(f.X, f.Y, f.Scroll)
	s.SetButtons(f.Buttons...)
}

// Sampler turns SDL's level-triggered keyboard array into per-frame key
// events by diffing it against the previous frame. Wheel and text input
// only arrive as events, so the host forwards those through HandleEvent.
type Sampler struct {
	prev   []uint8
	scroll int
	text   []rune
}

// NewSampler creates a Sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// HandleEvent records wheel and text events for the next Sample.
func (s *Sampler) HandleEvent(ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.MouseWheelEvent:
		dy := int(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		s.scroll += dy
	case *sdl.TextInputEvent:
		s.text = append(s.text, []rune(e.GetText())...)
	}
}

// Sample reads the current device state and returns this frame's input.
func (s *Sampler) Sample() Frame {
	kb := sdl.GetKeyboardState()
	x, y, mask := sdl.GetMouseState()

	f := Frame{
		Keys:    diffKeyboard(s.prev, kb, s.text),
		X:       int(x),
		Y:       int(y),
		Scroll:  s.scroll,
		Buttons: buttons(mask),
	}

	s.prev = append(s.prev[:0], kb...)
	s.scroll = 0
	s.text = s.text[:0]
	return f
}

// diffKeyboard emits a pressed or released KeyData for every mapped scan
// code whose state changed, followed by one character entry per rune of
// text input.
func diffKeyboard(prev, cur []uint8, text []rune) []input.KeyData {
	keys := make([]input.KeyData, 0, 8+len(text))
	for i, v := range cur {
		was := i < len(prev) && prev[i] != 0
		now := v != 0
		if was == now {
			continue
		}
		k, ok := scancodes[sdl.Scancode(i)]
		if !ok {
			continue
		}
		keys = append(keys, input.KeyData{
			Scancode: int(k),
			Pressed:  now,
			Released: !now,
		})
	}
	for _, r := range text {
		keys = append(keys, input.KeyData{Char: r, HasChar: true, Pressed: true})
	}
	return keys
}

// buttons expands SDL's mouse button mask in left, right, middle, x1, x2
// order to match the toolkit's button indices.
func buttons(mask uint32) []bool {
	order := [...]uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE, sdl.BUTTON_X1, sdl.BUTTON_X2}
	out := make([]bool, len(order))
	for i, b := range order {
		out[i] = mask&(1<<(b-1)) != 0
	}
	return out
}
