package style

import "strings"

// ControlState is a widget's interaction state: a base state combined
// with the optional checked or selected modifier.
type ControlState int

const (
	Default ControlState = iota
	Hot
	Pressed
	Disabled
	Focused

	Checked
	CheckedHot
	CheckedPressed
	CheckedDisabled
	CheckedFocused

	Selected
	SelectedHot
	SelectedPressed
	SelectedDisabled
	SelectedFocused

	// StateCount is the number of defined states.
	StateCount
)

// Each modifier block holds one entry per base state.
const baseStates = int(Checked)

var stateNames = [StateCount]string{
	"default", "hot", "pressed", "disabled", "focused",
	"checked", "checked-hot", "checked-pressed", "checked-disabled", "checked-focused",
	"selected", "selected-hot", "selected-pressed", "selected-disabled", "selected-focused",
}

func (s ControlState) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return stateNames[s]
}

// Valid reports whether s is one of the defined states.
func (s ControlState) Valid() bool {
	return s >= 0 && s < StateCount
}

// Base strips the checked and selected modifiers.
func (s ControlState) Base() ControlState {
	if !s.Valid() {
		return Default
	}
	return ControlState(int(s) % baseStates)
}

// IsChecked reports whether s carries the checked modifier.
func (s ControlState) IsChecked() bool {
	return s >= Checked && s < Selected
}

// IsSelected reports whether s carries the selected modifier.
func (s ControlState) IsSelected() bool {
	return s >= Selected && s < StateCount
}

// Compose combines a base state with the modifiers. Selected wins when
// both modifiers are set.
func Compose(base ControlState, checked, selected bool) ControlState {
	b := base.Base()
	switch {
	case selected:
		return b + Selected
	case checked:
		return b + Checked
	default:
		return b
	}
}

// ParseControlState converts a name such as "checked-hot" to a state.
// Names are case-insensitive and may omit the dash.
func ParseControlState(s string) (ControlState, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range stateNames {
		if s == name || s == strings.ReplaceAll(name, "-", "") {
			return ControlState(i), true
		}
	}
	return Default, false
}

// States returns every state in order.
func States() []ControlState {
	out := make([]ControlState, StateCount)
	for i := range out {
		out[i] = ControlState(i)
	}
	return out
}
