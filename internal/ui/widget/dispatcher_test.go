package widget

import (
	"testing"

	"github.com/Faultbox/midgard-ui/internal/ui/input"
	"github.com/Faultbox/midgard-ui/internal/ui/style"
	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// frame feeds one frame of pointer input and runs dispatch.
func frame(d *Dispatcher, in *input.State, widgets []Widget, x, y int, left bool) {
	in.SetMouse(x, y, 0)
	in.SetButtons(left)
	d.Update(widgets)
}

func setup() (*Dispatcher, *input.State, *Base, *Base, []Widget) {
	in := input.New(input.DefaultOptions())
	d := NewDispatcher(in, nil)

	back := &Base{Name: "back", Rect: geom.Rect(0, 0, 200, 200)}
	button := &Base{Name: "button", Rect: geom.Rect(10, 10, 50, 20), CanFocus: true}
	return d, in, back, button, []Widget{back, button}
}

func TestHitTestTopmost(t *testing.T) {
	d, in, back, button, widgets := setup()

	frame(d, in, widgets, 15, 15, false)
	if d.Hot() != button {
		t.Errorf("expected button hot, got %v", idOf(d.Hot()))
	}

	frame(d, in, widgets, 100, 100, false)
	if d.Hot() != back {
		t.Errorf("expected back hot, got %v", idOf(d.Hot()))
	}

	frame(d, in, widgets, 500, 500, false)
	if d.Hot() != nil {
		t.Errorf("expected nothing hot, got %v", idOf(d.Hot()))
	}

	button.Disabled = true
	frame(d, in, widgets, 15, 15, false)
	if d.Hot() != back {
		t.Errorf("disabled widget should not be hit, got %v", idOf(d.Hot()))
	}
}

func TestClickSequence(t *testing.T) {
	d, in, _, button, widgets := setup()

	frame(d, in, widgets, 15, 15, false)
	if got := d.State(button); got != style.Hot {
		t.Errorf("hover state = %v, want hot", got)
	}

	frame(d, in, widgets, 15, 15, true)
	if d.Pressed() != button {
		t.Fatal("expected button pressed")
	}
	if d.Focused() != button {
		t.Error("expected focus on press")
	}
	if got := d.State(button); got != style.Pressed {
		t.Errorf("pressed state = %v, want pressed", got)
	}

	frame(d, in, widgets, 15, 15, true)
	if d.Clicked(button) {
		t.Error("click must not fire while held")
	}

	frame(d, in, widgets, 15, 15, false)
	if !d.Clicked(button) {
		t.Error("expected click on release")
	}

	frame(d, in, widgets, 100, 100, false)
	if d.Clicked(button) {
		t.Error("click should last a single frame")
	}
	if got := d.State(button); got != style.Focused {
		t.Errorf("state after leaving = %v, want focused", got)
	}
}

func TestOnlyLeftButtonDispatched(t *testing.T) {
	d, in, _, button, widgets := setup()

	fired := 0
	d.Events().OnMouseDown(func(any, *input.MouseEvent) { fired++ })
	d.Events().OnMouseUp(func(any, *input.MouseEvent) { fired++ })

	for _, pressed := range []bool{true, true, false} {
		in.SetMouse(15, 15, 0)
		in.SetButtons(false, pressed, pressed)
		d.Update(widgets)
	}
	if fired != 0 {
		t.Errorf("right and middle buttons fired %d events, want 0", fired)
	}
	if d.Pressed() != nil || d.Clicked(button) {
		t.Error("non-left buttons should not press or click")
	}
}

func TestWidgetsTrackedByIdentity(t *testing.T) {
	in := input.New(input.DefaultOptions())
	d := NewDispatcher(in, nil)

	a := &Base{Name: "item", Rect: geom.Rect(0, 0, 10, 10), CanFocus: true}
	b := &Base{Name: "item", Rect: geom.Rect(20, 0, 10, 10), CanFocus: true}
	widgets := []Widget{a, b}

	frame(d, in, widgets, 5, 5, true)
	frame(d, in, widgets, 5, 5, false)
	if !d.Clicked(a) || d.Clicked(b) {
		t.Error("click should go to the widget under the pointer only")
	}
	if d.Focused() != a {
		t.Errorf("focused %v, want the first item", d.Focused())
	}

	// b shares a's ID, yet a is gone once it leaves the list.
	d.Update([]Widget{b})
	if d.Focused() != nil {
		t.Error("removed widget should lose focus")
	}
}

func TestReleaseOutsideDoesNotClick(t *testing.T) {
	d, in, _, button, widgets := setup()

	frame(d, in, widgets, 15, 15, true)
	frame(d, in, widgets, 100, 100, true)
	if got := d.State(button); got != style.Focused {
		t.Errorf("dragged-off state = %v, want focused", got)
	}
	frame(d, in, widgets, 100, 100, false)
	if d.Clicked(button) {
		t.Error("release outside should not click")
	}
}

func TestCancelledMouseDown(t *testing.T) {
	d, in, _, button, widgets := setup()

	var seen []string
	d.Events().OnMouseDown(func(source any, ev *input.MouseEvent) {
		seen = append(seen, "cancel")
		ev.Cancel = true
	})
	d.Events().OnMouseDown(func(source any, ev *input.MouseEvent) {
		seen = append(seen, source.(Widget).ID())
	})

	frame(d, in, widgets, 15, 15, true)

	if len(seen) != 2 || seen[1] != "button" {
		t.Errorf("expected both listeners to run, got %v", seen)
	}
	if d.Pressed() != nil {
		t.Error("cancelled press should not capture the widget")
	}
	if d.Focused() == button {
		t.Error("cancelled press should not move focus")
	}
}

func TestCancelledMouseUp(t *testing.T) {
	d, in, _, button, widgets := setup()
	d.Events().OnMouseUp(func(source any, ev *input.MouseEvent) { ev.Cancel = true })

	frame(d, in, widgets, 15, 15, true)
	frame(d, in, widgets, 15, 15, false)
	if d.Clicked(button) {
		t.Error("cancelled release should not click")
	}
}

func TestFocusClearedOnEmptyClick(t *testing.T) {
	d, in, _, button, widgets := setup()

	frame(d, in, widgets, 15, 15, true)
	frame(d, in, widgets, 15, 15, false)
	if d.Focused() != button {
		t.Fatal("expected focus")
	}

	frame(d, in, widgets, 500, 500, false)
	frame(d, in, widgets, 500, 500, true)
	if d.Focused() != nil {
		t.Error("expected focus cleared by clicking empty space")
	}
}

func TestStateModifiers(t *testing.T) {
	d, in, _, button, widgets := setup()

	button.IsChecked = true
	frame(d, in, widgets, 15, 15, false)
	if got := d.State(button); got != style.CheckedHot {
		t.Errorf("state = %v, want checked-hot", got)
	}

	button.IsSelect = true
	if got := d.State(button); got != style.SelectedHot {
		t.Errorf("state = %v, want selected-hot", got)
	}

	button.Disabled = true
	if got := d.State(button); got != style.SelectedDisabled {
		t.Errorf("state = %v, want selected-disabled", got)
	}
}

func TestResolve(t *testing.T) {
	d, in, _, button, widgets := setup()

	cs := style.NewControlStyle()
	cs.SetTexture("button.png")
	cs.Hot().Texture = "button_hot.png"

	frame(d, in, widgets, 100, 100, false)
	if got := d.Resolve(button, cs).Texture; got != "button.png" {
		t.Errorf("idle texture = %q", got)
	}

	frame(d, in, widgets, 15, 15, false)
	if got := d.Resolve(button, cs).Texture; got != "button_hot.png" {
		t.Errorf("hot texture = %q", got)
	}
}

func TestFocusAndRemoval(t *testing.T) {
	d, in, back, button, _ := setup()

	d.Focus(back)
	if d.Focused() != nil {
		t.Error("non-focusable widget should not take focus")
	}

	d.Focus(button)
	if d.Focused() != button {
		t.Fatal("expected explicit focus")
	}

	frame(d, in, []Widget{back}, 100, 100, false)
	if d.Focused() != nil {
		t.Error("focus should drop when the widget is gone")
	}
}
