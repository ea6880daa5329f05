package geom

// Rectangle is an axis-aligned rectangle anchored at its top-left corner.
// Width and Height may be zero or negative; such rectangles are empty.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// Rect is shorthand for Rectangle{x, y, w, h}.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{x, y, w, h}
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point {
	return Point{r.X, r.Y}
}

// Size returns the extent as a point.
func (r Rectangle) Size() Point {
	return Point{r.Width, r.Height}
}

// Right returns the exclusive right edge.
func (r Rectangle) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rectangle) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty reports whether the rectangle covers no area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains checks if a point is inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the overlap of two rectangles.
// The second result is false when they do not overlap.
func (r Rectangle) Intersect(other Rectangle) (Rectangle, bool) {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rectangle{}, false
	}
	return Rectangle{x0, y0, x1 - x0, y1 - y0}, true
}

// Offset returns the rectangle moved by p.
func (r Rectangle) Offset(p Point) Rectangle {
	return Rectangle{r.X + p.X, r.Y + p.Y, r.Width, r.Height}
}

// Shrink returns the rectangle inset by m.
func (r Rectangle) Shrink(m Margin) Rectangle {
	return Rectangle{
		X:      r.X + m.Left,
		Y:      r.Y + m.Top,
		Width:  r.Width - m.Horizontal(),
		Height: r.Height - m.Vertical(),
	}
}

// Expand returns the rectangle grown outward by m.
func (r Rectangle) Expand(m Margin) Rectangle {
	return Rectangle{
		X:      r.X - m.Left,
		Y:      r.Y - m.Top,
		Width:  r.Width + m.Horizontal(),
		Height: r.Height + m.Vertical(),
	}
}
