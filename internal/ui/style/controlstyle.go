package style

import "github.com/Faultbox/midgard-ui/pkg/geom"

// ControlStyle maps every ControlState to a Style. The table is a fixed
// array, so every state always has a style and lookups never fail.
//
// The bulk setters (SetTint, SetTexture, ...) write the same value into all
// states at once. Apply them before per-state overrides made through the
// named accessors: a bulk setter called later overwrites those overrides.
//
// Skins own shared ControlStyles that are treated as read-only after load.
// Widgets that need to customise one should take a private Copy.
type ControlStyle struct {
	Name string

	states [StateCount]Style
}

// NewControlStyle returns a ControlStyle with DefaultStyle in every state.
func NewControlStyle() *ControlStyle {
	return FromStyle(DefaultStyle())
}

// FromStyle returns a ControlStyle with s copied into every state.
func FromStyle(s Style) *ControlStyle {
	cs := &ControlStyle{}
	cs.PasteStyle(s)
	return cs
}

// Copy returns an independent clone. Changes to the clone never affect c.
func (c *ControlStyle) Copy() *ControlStyle {
	clone := *c
	return &clone
}

// Paste replaces every state with the matching state of other.
func (c *ControlStyle) Paste(other *ControlStyle) {
	if other == nil {
		return
	}
	c.states = other.states
}

// PasteStyle replaces every state with s.
func (c *ControlStyle) PasteStyle(s Style) {
	for i := range c.states {
		c.states[i] = s
	}
}

// Get returns the style for state. Unknown states resolve to Default.
func (c *ControlStyle) Get(state ControlState) Style {
	return *c.At(state)
}

// Resolve is Get; it reads better at render call sites.
func (c *ControlStyle) Resolve(state ControlState) Style {
	return c.Get(state)
}

// Set replaces the style for one state, leaving the others untouched.
func (c *ControlStyle) Set(state ControlState, s Style) {
	if !state.Valid() {
		return
	}
	c.states[state] = s
}

// At returns a pointer to the stored style for in-place edits.
// Unknown states resolve to Default.
func (c *ControlStyle) At(state ControlState) *Style {
	if !state.Valid() {
		state = Default
	}
	return &c.states[state]
}

// Named accessors for individual states.

func (c *ControlStyle) Default() *Style          { return &c.states[Default] }
func (c *ControlStyle) Hot() *Style              { return &c.states[Hot] }
func (c *ControlStyle) Pressed() *Style          { return &c.states[Pressed] }
func (c *ControlStyle) Disabled() *Style         { return &c.states[Disabled] }
func (c *ControlStyle) Focused() *Style          { return &c.states[Focused] }
func (c *ControlStyle) Checked() *Style          { return &c.states[Checked] }
func (c *ControlStyle) CheckedHot() *Style       { return &c.states[CheckedHot] }
func (c *ControlStyle) CheckedPressed() *Style   { return &c.states[CheckedPressed] }
func (c *ControlStyle) CheckedDisabled() *Style  { return &c.states[CheckedDisabled] }
func (c *ControlStyle) CheckedFocused() *Style   { return &c.states[CheckedFocused] }
func (c *ControlStyle) Selected() *Style         { return &c.states[Selected] }
func (c *ControlStyle) SelectedHot() *Style      { return &c.states[SelectedHot] }
func (c *ControlStyle) SelectedPressed() *Style  { return &c.states[SelectedPressed] }
func (c *ControlStyle) SelectedDisabled() *Style { return &c.states[SelectedDisabled] }
func (c *ControlStyle) SelectedFocused() *Style  { return &c.states[SelectedFocused] }

// each applies fn to every state.
func (c *ControlStyle) each(fn func(s *Style)) {
	for i := range c.states {
		fn(&c.states[i])
	}
}

// Bulk setters. Each one writes all states; see the type doc for ordering.

func (c *ControlStyle) SetTint(v Color)      { c.each(func(s *Style) { s.Tint = v }) }
func (c *ControlStyle) SetBackColor(v Color) { c.each(func(s *Style) { s.BackColor = v }) }
func (c *ControlStyle) SetTextColor(v Color) { c.each(func(s *Style) { s.TextColor = v }) }
func (c *ControlStyle) SetOpacity(v float32) { c.each(func(s *Style) { s.Opacity = v }) }
func (c *ControlStyle) SetFont(v string)     { c.each(func(s *Style) { s.Font = v }) }
func (c *ControlStyle) SetTexture(v string)  { c.each(func(s *Style) { s.Texture = v }) }

func (c *ControlStyle) SetTextureRect(v geom.Rectangle) {
	c.each(func(s *Style) { s.TextureRect = v })
}

func (c *ControlStyle) SetGrid(v geom.Margin)        { c.each(func(s *Style) { s.Grid = v }) }
func (c *ControlStyle) SetTiling(v TextureMode)      { c.each(func(s *Style) { s.Tiling = v }) }
func (c *ControlStyle) SetTextAlign(v Alignment)     { c.each(func(s *Style) { s.TextAlign = v }) }
func (c *ControlStyle) SetTextPadding(v geom.Margin) { c.each(func(s *Style) { s.TextPadding = v }) }
