package render

import (
	"github.com/Faultbox/midgard-ui/internal/ui/style"
	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// Stats counts what a Painter did during one frame.
type Stats struct {
	Boxes    int
	Textures int
	Texts    int

	// TextureBreaks and FontBreaks count batch restarts caused by a style
	// change that the renderer cannot fold into the current batch.
	TextureBreaks int
	FontBreaks    int
}

// Painter draws resolved styles through a Renderer and restarts the
// renderer's batch only when consecutive styles differ in texture or font
// state.
type Painter struct {
	r Renderer

	lastTexture style.Style
	hasTexture  bool
	lastFont    style.Style
	hasFont     bool

	stats Stats
}

// NewPainter creates a Painter drawing to r.
func NewPainter(r Renderer) *Painter {
	return &Painter{r: r}
}

// Begin starts a frame.
func (p *Painter) Begin() {
	p.hasTexture = false
	p.hasFont = false
	p.stats = Stats{}
	p.r.StartBatch()
}

// End flushes the final batch of the frame.
func (p *Painter) End() {
	p.r.EndBatch(true)
}

// Stats returns the counters for the current frame.
func (p *Painter) Stats() Stats {
	return p.stats
}

func (p *Painter) breakBatch() {
	p.r.EndBatch(false)
	p.r.StartBatch()
}

// DrawStyle draws the background and texture of s into rect. opacity is the
// inherited opacity of the widget's parents and multiplies s.Opacity.
func (p *Painter) DrawStyle(s style.Style, rect geom.Rectangle, opacity float32) {
	if rect.IsEmpty() {
		return
	}
	alpha := s.Opacity * opacity

	if s.BackColor.A() > 0 {
		p.r.DrawBox(rect, s.BackColor.Multiply(alpha))
		p.stats.Boxes++
	}

	if !s.HasTexture() {
		return
	}
	tex := p.r.TextureID(s.Texture)
	if tex < 0 {
		return
	}

	if p.hasTexture && p.lastTexture.IsTextureDifferent(s) {
		p.breakBatch()
		p.stats.TextureBreaks++
	}
	p.lastTexture = s
	p.hasTexture = true

	src := s.TextureRect
	if src.IsEmpty() {
		size := p.r.TextureSize(tex)
		src = geom.Rect(0, 0, size.X, size.Y)
	}
	tint := s.Tint.Multiply(alpha)

	for _, sl := range textureSlices(s, rect, src) {
		p.r.DrawTexture(tex, sl.Dest, sl.Source, tint)
		p.stats.Textures++
	}
}

// textureSlices lays out src inside dst according to the style's tiling.
func textureSlices(s style.Style, dst, src geom.Rectangle) []Slice {
	switch s.Tiling {
	case style.TextureCenter:
		pos := alignIn(dst, src.Size(), style.AlignMiddleCenter)
		return []Slice{{Dest: geom.Rect(pos.X, pos.Y, src.Width, src.Height), Source: src}}
	case style.TextureGrid:
		return NineSlice(dst, src, s.Grid)
	case style.TextureGridRepeat:
		var out []Slice
		for _, sl := range NineSlice(dst, src, s.Grid) {
			if sl.Corner {
				out = append(out, sl)
				continue
			}
			out = append(out, Tile(sl.Dest, sl.Source, true, true)...)
		}
		return out
	case style.TextureRepeat:
		return Tile(dst, src, true, true)
	case style.TextureRepeatX:
		return Tile(dst, src, true, false)
	case style.TextureRepeatY:
		return Tile(dst, src, false, true)
	default:
		return []Slice{{Dest: dst, Source: src}}
	}
}

// DrawText draws text aligned inside rect, inset by the style's padding.
// Text that does not fit is clipped to the padded area.
func (p *Painter) DrawText(s style.Style, rect geom.Rectangle, text string, opacity float32) {
	if text == "" {
		return
	}
	font := p.r.FontID(s.Font)
	if font < 0 {
		font = p.r.FontID(style.DefaultFont)
	}

	if p.hasFont && p.lastFont.IsFontDifferent(s) {
		p.breakBatch()
		p.stats.FontBreaks++
	}
	p.lastFont = s
	p.hasFont = true

	inner := rect.Shrink(s.TextPadding)
	if inner.IsEmpty() {
		return
	}
	size := p.r.TextSize(text, font)
	pos := alignIn(inner, size, s.TextAlign)

	p.r.Scissor(inner)
	p.r.DrawText(text, pos, font, s.TextColor.Multiply(s.Opacity*opacity))
	p.r.Scissor(geom.Rectangle{})
	p.stats.Texts++
}

// alignIn positions an item of the given size inside rect.
func alignIn(rect geom.Rectangle, size geom.Point, align style.Alignment) geom.Point {
	pos := rect.Position()
	switch align.Column() {
	case 1:
		pos.X += (rect.Width - size.X) / 2
	case 2:
		pos.X += rect.Width - size.X
	}
	switch align.Row() {
	case 1:
		pos.Y += (rect.Height - size.Y) / 2
	case 2:
		pos.Y += rect.Height - size.Y
	}
	return pos
}
