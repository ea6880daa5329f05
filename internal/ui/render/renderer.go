// Package render defines what the toolkit needs from a rendering backend
// and draws resolved styles through it.
package render

import (
	"github.com/Faultbox/midgard-ui/internal/ui/style"
	"github.com/Faultbox/midgard-ui/pkg/geom"
)

// Renderer is implemented by the host's rendering backend. The toolkit
// never talks to a graphics API directly.
type Renderer interface {
	// TextureID resolves a texture name, or returns -1 when it is unknown.
	TextureID(name string) int
	// FontID resolves a font name, or returns -1 when it is unknown.
	FontID(name string) int
	// TextureSize returns the pixel size of a texture.
	TextureSize(texture int) geom.Point
	// TextSize measures text in the given font.
	TextSize(text string, font int) geom.Point

	DrawBox(rect geom.Rectangle, color style.Color)
	DrawTexture(texture int, rect, source geom.Rectangle, color style.Color)
	DrawText(text string, pos geom.Point, font int, color style.Color)

	// Scissor limits drawing to rect until the next call. An empty rect
	// removes the limit.
	Scissor(rect geom.Rectangle)

	StartBatch()
	EndBatch(final bool)
}
