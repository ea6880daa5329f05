package skin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-ui/internal/ui/style"
	"github.com/Faultbox/midgard-ui/pkg/geom"
)

var namedColors = map[string]style.Color{
	"white":       style.ColorWhite,
	"black":       style.ColorBlack,
	"transparent": style.ColorTransparent,
}

// ParseColor parses "#rgb", "#rrggbb", "#aarrggbb", a packed integer
// ("-1", "0xff336699") or one of the names white, black and transparent.
func ParseColor(s string) (style.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		alpha := uint8(255)
		hex := s
		if len(s) == 9 {
			a, err := strconv.ParseUint(s[1:3], 16, 8)
			if err != nil {
				return 0, fmt.Errorf("invalid alpha in color %q", s)
			}
			alpha = uint8(a)
			hex = "#" + s[3:]
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return style.ARGB(alpha, r, g, b), nil
	}

	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	if v < -1<<31 || v > 1<<32-1 {
		return 0, fmt.Errorf("color %q out of range", s)
	}
	return style.Color(int32(uint32(v))), nil
}

// FormatColor renders a color the way ParseColor reads it back.
func FormatColor(c style.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A(), c.R(), c.G(), c.B())
}

// colorValue holds a color as written in the document. It is parsed when
// the style is built so every bad value can be reported at once.
type colorValue struct {
	raw string
}

func (c *colorValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", node.Line)
	}
	c.raw = node.Value
	return nil
}

// marginValue accepts [all], [horizontal, vertical] or
// [left, top, right, bottom].
type marginValue []int

func (m marginValue) margin() (geom.Margin, error) {
	switch len(m) {
	case 1:
		return geom.Uniform(m[0]), nil
	case 2:
		return geom.Margin{Left: m[0], Top: m[1], Right: m[0], Bottom: m[1]}, nil
	case 4:
		return geom.Margin{Left: m[0], Top: m[1], Right: m[2], Bottom: m[3]}, nil
	default:
		return geom.Margin{}, fmt.Errorf("margin needs 1, 2 or 4 values, got %d", len(m))
	}
}

// rectValue is [x, y, width, height].
type rectValue []int

func (r rectValue) rect() (geom.Rectangle, error) {
	if len(r) != 4 {
		return geom.Rectangle{}, fmt.Errorf("rectangle needs 4 values, got %d", len(r))
	}
	return geom.Rect(r[0], r[1], r[2], r[3]), nil
}
