// Package style resolves a widget's interaction state to a drawable appearance.
//
// A Style is one concrete appearance. A ControlStyle maps every ControlState
// to a Style and is what skins and widgets own.
package style

import "github.com/Faultbox/midgard-ui/pkg/geom"

// DefaultFont is the font name new styles start with.
const DefaultFont = "default"

// Style is the appearance of one widget in one state. It is everything a
// renderer needs to draw that widget. Style is a plain value: assigning it
// copies it.
type Style struct {
	// Text
	TextColor   Color
	Font        string
	TextPadding geom.Margin
	TextAlign   Alignment

	// Fill
	Tint      Color
	BackColor Color
	Opacity   float32

	// Texture
	Texture     string
	TextureRect geom.Rectangle
	Grid        geom.Margin
	Tiling      TextureMode
}

// DefaultStyle returns a Style with the toolkit defaults applied.
func DefaultStyle() Style {
	return Style{
		TextColor: ColorWhite,
		Font:      DefaultFont,
		Tint:      ColorWhite,
		Opacity:   1,
	}
}

// Copy returns s. It exists for symmetry with ControlStyle.Copy.
func (s Style) Copy() Style {
	return s
}

// IsTextureDifferent reports whether switching from s to other changes the
// texture state a renderer batches on.
func (s Style) IsTextureDifferent(other Style) bool {
	return s.Texture != other.Texture ||
		s.TextureRect != other.TextureRect ||
		s.Grid != other.Grid ||
		s.Tiling != other.Tiling
}

// IsFontDifferent reports whether switching from s to other changes the
// text state a renderer batches on.
func (s Style) IsFontDifferent(other Style) bool {
	return s.Font != other.Font ||
		s.TextColor != other.TextColor ||
		s.TextPadding != other.TextPadding ||
		s.TextAlign != other.TextAlign
}

// HasTexture reports whether a texture is assigned.
func (s Style) HasTexture() bool {
	return s.Texture != ""
}
