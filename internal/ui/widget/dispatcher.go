package widget

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-ui/internal/logger"
	"github.com/Faultbox/midgard-ui/internal/ui/input"
	"github.com/Faultbox/midgard-ui/internal/ui/style"
)

// Dispatcher tracks which widget is hot (under the pointer), pressed
// (holding the primary button) and focused, and fires mouse notifications
// through its Listeners.
type Dispatcher struct {
	input  *input.State
	events *input.Listeners

	hot     Widget
	pressed Widget
	focused Widget
	clicked Widget
}

// NewDispatcher creates a dispatcher reading from in and notifying events.
// A nil events value gets a private Listeners.
func NewDispatcher(in *input.State, events *input.Listeners) *Dispatcher {
	if events == nil {
		events = &input.Listeners{}
	}
	return &Dispatcher{
		input:  in,
		events: events,
	}
}

// Events returns the listeners notified on mouse down and up.
func (d *Dispatcher) Events() *input.Listeners {
	return d.events
}

// Update runs one frame of dispatch over widgets, which are ordered back
// to front: the last widget containing the pointer wins the hit-test.
// Call after the host has fed this frame's input. Only the left button
// is routed; other buttons never reach the mouse listeners.
func (d *Dispatcher) Update(widgets []Widget) {
	d.clicked = nil
	d.hot = d.hitTest(widgets)

	// A pressed widget that vanished or got disabled loses its press.
	if d.pressed != nil && (!contains(widgets, d.pressed) || !d.pressed.Enabled()) {
		d.pressed = nil
	}
	if d.focused != nil && !contains(widgets, d.focused) {
		d.setFocus(nil)
	}

	switch d.input.Button(input.MouseLeft) {
	case input.ButtonDown:
		d.mouseDown()
	case input.ButtonUp:
		d.mouseUp()
	}
}

func (d *Dispatcher) mouseDown() {
	target := d.hot
	if target == nil {
		d.setFocus(nil)
		return
	}

	ev := &input.MouseEvent{Button: input.MouseLeft}
	d.events.FireMouseDown(target, ev)
	if ev.Cancel {
		return
	}

	d.pressed = target
	if target.Focusable() {
		d.setFocus(target)
	}
}

func (d *Dispatcher) mouseUp() {
	target := d.pressed
	d.pressed = nil
	if target == nil {
		return
	}

	ev := &input.MouseEvent{Button: input.MouseLeft}
	d.events.FireMouseUp(target, ev)
	if ev.Cancel {
		return
	}
	if d.hot == target {
		d.clicked = target
	}
}

func (d *Dispatcher) hitTest(widgets []Widget) Widget {
	pos := d.input.MousePosition()
	for i := len(widgets) - 1; i >= 0; i-- {
		w := widgets[i]
		if w.Enabled() && w.Bounds().Contains(pos) {
			return w
		}
	}
	return nil
}

func (d *Dispatcher) setFocus(w Widget) {
	if d.focused == w {
		return
	}
	logger.Debug("focus changed", zap.String("from", idOf(d.focused)), zap.String("to", idOf(w)))
	d.focused = w
}

// Focus moves keyboard focus to w, or clears it when w is nil.
func (d *Dispatcher) Focus(w Widget) {
	if w != nil && (!w.Focusable() || !w.Enabled()) {
		return
	}
	d.setFocus(w)
}

// Hot returns the widget under the pointer, or nil.
func (d *Dispatcher) Hot() Widget { return d.hot }

// Pressed returns the widget holding the primary button, or nil.
func (d *Dispatcher) Pressed() Widget { return d.pressed }

// Focused returns the widget with keyboard focus, or nil.
func (d *Dispatcher) Focused() Widget { return d.focused }

// Clicked reports whether w was clicked this frame: pressed and released
// over it without either notification being cancelled.
func (d *Dispatcher) Clicked(w Widget) bool {
	return w != nil && d.clicked == w
}

// State derives the ControlState w should be drawn with.
func (d *Dispatcher) State(w Widget) style.ControlState {
	base := style.Default
	switch {
	case !w.Enabled():
		base = style.Disabled
	case d.pressed == w && d.hot == w:
		base = style.Pressed
	case d.hot == w && (d.pressed == nil || d.pressed == w):
		base = style.Hot
	case d.focused == w:
		base = style.Focused
	}
	return style.Compose(base, w.Checked(), w.Selected())
}

// Resolve returns the style w should be drawn with from its ControlStyle.
func (d *Dispatcher) Resolve(w Widget, cs *style.ControlStyle) style.Style {
	return cs.Resolve(d.State(w))
}

func contains(widgets []Widget, w Widget) bool {
	for _, c := range widgets {
		if c == w {
			return true
		}
	}
	return false
}

func idOf(w Widget) string {
	if w == nil {
		return ""
	}
	return w.ID()
}
