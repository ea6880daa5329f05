package style

import "strings"

// Alignment positions text or content inside a rectangle.
type Alignment int

const (
	AlignTopLeft Alignment = iota
	AlignTopCenter
	AlignTopRight
	AlignMiddleLeft
	AlignMiddleCenter
	AlignMiddleRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

var alignmentNames = [...]string{
	"top-left", "top-center", "top-right",
	"middle-left", "middle-center", "middle-right",
	"bottom-left", "bottom-center", "bottom-right",
}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return "unknown"
	}
	return alignmentNames[a]
}

// Column returns 0, 1 or 2 for left, center and right.
func (a Alignment) Column() int { return int(a) % 3 }

// Row returns 0, 1 or 2 for top, middle and bottom.
func (a Alignment) Row() int { return int(a) / 3 }

// ParseAlignment converts a name such as "middle-center" to an Alignment.
func ParseAlignment(s string) (Alignment, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range alignmentNames {
		if s == name || s == strings.ReplaceAll(name, "-", "") {
			return Alignment(i), true
		}
	}
	return AlignTopLeft, false
}

// TextureMode selects how a texture fills its destination rectangle.
type TextureMode int

const (
	// TextureDefault stretches the texture over the whole rectangle.
	TextureDefault TextureMode = iota
	TextureStretch
	TextureCenter
	// TextureGrid draws a 9-slice using the style's Grid margin.
	TextureGrid
	// TextureGridRepeat is a 9-slice whose edges and center repeat.
	TextureGridRepeat
	TextureRepeat
	TextureRepeatX
	TextureRepeatY
)

var textureModeNames = [...]string{
	"default", "stretch", "center", "grid", "grid-repeat", "repeat", "repeat-x", "repeat-y",
}

func (m TextureMode) String() string {
	if m < 0 || int(m) >= len(textureModeNames) {
		return "unknown"
	}
	return textureModeNames[m]
}

// ParseTextureMode converts a name such as "grid" to a TextureMode.
func ParseTextureMode(s string) (TextureMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range textureModeNames {
		if s == name || s == strings.ReplaceAll(name, "-", "") {
			return TextureMode(i), true
		}
	}
	return TextureDefault, false
}
