package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-ui/internal/ui/style"
	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// boxRenderer is the demo's render.Renderer. It only fills rectangles:
// textures and fonts are reported as unknown, so text is skipped and
// textured styles fall back to their back color.
type boxRenderer struct {
	r *sdl.Renderer
}

func (b *boxRenderer) TextureID(string) int                   { return -1 }
func (b *boxRenderer) FontID(string) int                      { return -1 }
func (b *boxRenderer) TextureSize(int) geom.Point             { return geom.Point{} }
func (b *boxRenderer) TextSize(text string, _ int) geom.Point { return geom.Pt(8*len(text), 8) }

func (b *boxRenderer) DrawBox(rect geom.Rectangle, c style.Color) {
	b.r.SetDrawColor(c.R(), c.G(), c.B(), c.A())
	b.r.FillRect(toSDL(rect))
}

func (b *boxRenderer) DrawTexture(int, geom.Rectangle, geom.Rectangle, style.Color) {}
func (b *boxRenderer) DrawText(string, geom.Point, int, style.Color)                {}

func (b *boxRenderer) Scissor(rect geom.Rectangle) {
	if rect.IsEmpty() {
		b.r.SetClipRect(nil)
		return
	}
	b.r.SetClipRect(toSDL(rect))
}

func (b *boxRenderer) StartBatch()   {}
func (b *boxRenderer) EndBatch(bool) {}

func toSDL(r geom.Rectangle) *sdl.Rect {
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.Width), H: int32(r.Height)}
}
