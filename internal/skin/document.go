package skin

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-ui/internal/ui/style"
)

// document is the YAML layout of a skin file.
type document struct {
	Name   string               `yaml:"name"`
	Styles map[string]entryDocs `yaml:"styles"`
}

type entryDocs struct {
	// Base names another entry this one starts from.
	Base string `yaml:"base"`
	// Style is applied to every state.
	Style *styleDoc `yaml:"style"`
	// States patches individual states after Style.
	States map[string]styleDoc `yaml:"states"`
}

// styleDoc is a sparse Style: only fields present in the document are
// applied.
type styleDoc struct {
	TextColor   *colorValue  `yaml:"text_color"`
	Font        *string      `yaml:"font"`
	TextPadding *marginValue `yaml:"text_padding"`
	TextAlign   *string      `yaml:"text_align"`
	Tint        *colorValue  `yaml:"tint"`
	BackColor   *colorValue  `yaml:"back_color"`
	Opacity     *float32     `yaml:"opacity"`
	Texture     *string      `yaml:"texture"`
	TextureRect *rectValue   `yaml:"texture_rect"`
	Grid        *marginValue `yaml:"grid"`
	Tiling      *string      `yaml:"tiling"`
}

type rawStyleDoc styleDoc

// UnmarshalYAML rejects fields present without a value. An unquoted color
// such as `tint: #ff0000` parses as a comment and would otherwise be
// dropped silently.
func (d *styleDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var missing []string
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind == yaml.ScalarNode && value.ShortTag() == "!!null" {
				missing = append(missing, fmt.Sprintf("line %d: %s has no value (colors must be quoted)", key.Line, key.Value))
			}
		}
		if len(missing) > 0 {
			return &yaml.TypeError{Errors: missing}
		}
	}
	return node.Decode((*rawStyleDoc)(d))
}

// patch returns a function that writes the document's fields into a Style.
// All field errors are collected.
func (d *styleDoc) patch() (func(*style.Style), error) {
	var (
		ops  []func(*style.Style)
		errs error
	)

	color := func(field string, v *colorValue, set func(*style.Style, style.Color)) {
		if v == nil {
			return
		}
		c, err := ParseColor(v.raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", field, err))
			return
		}
		ops = append(ops, func(s *style.Style) { set(s, c) })
	}

	color("text_color", d.TextColor, func(s *style.Style, c style.Color) { s.TextColor = c })
	color("tint", d.Tint, func(s *style.Style, c style.Color) { s.Tint = c })
	color("back_color", d.BackColor, func(s *style.Style, c style.Color) { s.BackColor = c })

	if d.Font != nil {
		font := *d.Font
		ops = append(ops, func(s *style.Style) { s.Font = font })
	}
	if d.Texture != nil {
		tex := *d.Texture
		ops = append(ops, func(s *style.Style) { s.Texture = tex })
	}
	if d.Opacity != nil {
		op := *d.Opacity
		if op < 0 || op > 1 {
			errs = multierr.Append(errs, fmt.Errorf("opacity: %v outside [0, 1]", op))
		} else {
			ops = append(ops, func(s *style.Style) { s.Opacity = op })
		}
	}
	if d.TextPadding != nil {
		m, err := d.TextPadding.margin()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("text_padding: %w", err))
		} else {
			ops = append(ops, func(s *style.Style) { s.TextPadding = m })
		}
	}
	if d.Grid != nil {
		m, err := d.Grid.margin()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("grid: %w", err))
		} else {
			ops = append(ops, func(s *style.Style) { s.Grid = m })
		}
	}
	if d.TextureRect != nil {
		r, err := d.TextureRect.rect()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("texture_rect: %w", err))
		} else {
			ops = append(ops, func(s *style.Style) { s.TextureRect = r })
		}
	}
	if d.TextAlign != nil {
		a, ok := style.ParseAlignment(*d.TextAlign)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("text_align: unknown alignment %q", *d.TextAlign))
		} else {
			ops = append(ops, func(s *style.Style) { s.TextAlign = a })
		}
	}
	if d.Tiling != nil {
		m, ok := style.ParseTextureMode(*d.Tiling)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("tiling: unknown mode %q", *d.Tiling))
		} else {
			ops = append(ops, func(s *style.Style) { s.Tiling = m })
		}
	}

	if errs != nil {
		return nil, errs
	}
	return func(s *style.Style) {
		for _, op := range ops {
			op(s)
		}
	}, nil
}
