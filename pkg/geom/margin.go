package geom

// Margin holds per-edge distances, used for padding and 9-slice borders.
type Margin struct {
	Left, Top, Right, Bottom int
}

// Uniform returns a margin with the same value on every edge.
func Uniform(v int) Margin {
	return Margin{v, v, v, v}
}

// Horizontal returns Left + Right.
func (m Margin) Horizontal() int {
	return m.Left + m.Right
}

// Vertical returns Top + Bottom.
func (m Margin) Vertical() int {
	return m.Top + m.Bottom
}

// IsZero reports whether every edge is zero.
func (m Margin) IsZero() bool {
	return m == Margin{}
}
