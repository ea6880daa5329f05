package style

// Color is a packed 0xAARRGGBB value stored as a signed 32-bit integer,
// so opaque white is -1.
type Color int32

// Predefined colors.
const (
	ColorTransparent Color = 0
	ColorWhite       Color = -1
	ColorBlack       Color = -16777216 // 0xFF000000
)

// ARGB packs 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(int32(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)))
}

// RGB packs 8-bit channels into an opaque Color.
func RGB(r, g, b uint8) Color {
	return ARGB(255, r, g, b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(uint32(c) >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(uint32(c) >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(uint32(c) >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(uint32(c)) }

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a uint8) Color {
	return ARGB(a, c.R(), c.G(), c.B())
}

// Multiply scales the alpha channel by opacity (0.0 to 1.0).
func (c Color) Multiply(opacity float32) Color {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return c.WithAlpha(0)
	}
	return c.WithAlpha(uint8(float32(c.A())*opacity + 0.5))
}

// Floats returns the channels as floats in the 0.0 to 1.0 range,
// in R, G, B, A order as renderers usually expect.
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R()) / 255.0,
		float32(c.G()) / 255.0,
		float32(c.B()) / 255.0,
		float32(c.A()) / 255.0
}
