// Package geom provides integer geometry types for UI layout and clipping.
package geom

// Point is a 2D integer position or offset.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{x, y}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Scale returns p * s.
func (p Point) Scale(s int) Point {
	return Point{p.X * s, p.Y * s}
}

// LengthSquared returns the squared length of p.
func (p Point) LengthSquared() int {
	return p.X*p.X + p.Y*p.Y
}

// DistanceSquared returns the squared distance to another point.
func (p Point) DistanceSquared(other Point) int {
	return p.Sub(other).LengthSquared()
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}
