package render

import "github.com/Faultbox/midgard-ui/pkg/geom"

// Slice pairs a destination rectangle with the texture region drawn into it.
type Slice struct {
	Dest   geom.Rectangle
	Source geom.Rectangle
	// Corner is set on the four fixed-size corner pieces of a 9-slice.
	Corner bool
}

// NineSlice splits dst and src into the corner, edge and center pieces of a
// 9-slice with fixed-size borders given by grid. Pieces with no area are
// omitted, so a zero grid yields just the stretched center. When dst or src
// is smaller than its two borders, the borders shrink in proportion so the
// pieces never overlap.
func NineSlice(dst, src geom.Rectangle, grid geom.Margin) []Slice {
	dl, dr := fitBorders(dst.Width, grid.Left, grid.Right)
	dt, db := fitBorders(dst.Height, grid.Top, grid.Bottom)
	sl, sr := fitBorders(src.Width, grid.Left, grid.Right)
	st, sb := fitBorders(src.Height, grid.Top, grid.Bottom)

	dx := [4]int{dst.X, dst.X + dl, dst.Right() - dr, dst.Right()}
	dy := [4]int{dst.Y, dst.Y + dt, dst.Bottom() - db, dst.Bottom()}
	sx := [4]int{src.X, src.X + sl, src.Right() - sr, src.Right()}
	sy := [4]int{src.Y, src.Y + st, src.Bottom() - sb, src.Bottom()}

	slices := make([]Slice, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			d := geom.Rect(dx[col], dy[row], dx[col+1]-dx[col], dy[row+1]-dy[row])
			s := geom.Rect(sx[col], sy[row], sx[col+1]-sx[col], sy[row+1]-sy[row])
			if d.IsEmpty() || s.IsEmpty() {
				continue
			}
			slices = append(slices, Slice{Dest: d, Source: s, Corner: row != 1 && col != 1})
		}
	}
	return slices
}

// fitBorders scales two opposing borders down to fit size.
func fitBorders(size, a, b int) (int, int) {
	a, b = max(a, 0), max(b, 0)
	size = max(size, 0)
	if a+b <= size {
		return a, b
	}
	a = a * size / (a + b)
	return a, size - a
}

// Tile covers dst with copies of a tileW x tileH tile starting at its
// top-left corner. The last row and column are cropped to dst, and the
// returned source rectangles are cropped to match. repeatX and repeatY
// select which axes repeat; a non-repeating axis stretches.
func Tile(dst, src geom.Rectangle, repeatX, repeatY bool) []Slice {
	if dst.IsEmpty() || src.IsEmpty() {
		return nil
	}

	stepX, stepY := src.Width, src.Height
	if !repeatX {
		stepX = dst.Width
	}
	if !repeatY {
		stepY = dst.Height
	}

	var out []Slice
	for y := dst.Y; y < dst.Bottom(); y += stepY {
		h := min(stepY, dst.Bottom()-y)
		sh := src.Height
		if repeatY {
			sh = h
		}
		for x := dst.X; x < dst.Right(); x += stepX {
			w := min(stepX, dst.Right()-x)
			sw := src.Width
			if repeatX {
				sw = w
			}
			out = append(out, Slice{
				Dest:   geom.Rect(x, y, w, h),
				Source: geom.Rect(src.X, src.Y, sw, sh),
			})
		}
	}
	return out
}
