package grid

import "math"

// Vec represents a 2D offset (a translation, not a position).
type Vec struct {
	X, Y float64
}

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the sum of two offsets.
func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X + w.X, Y: v.Y + w.Y}
}

// Neg returns the negation of the offset.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the rectangle's area, or 0 if it is empty.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.MaxX() && y >= r.Y && y < r.MaxY()
}

// Intersect returns the intersection of two rectangles.
// The result is empty when the rectangles do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.MaxX(), o.MaxX())
	y1 := math.Min(r.MaxY(), o.MaxY())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset returns the rectangle shrunk by the given insets.
// A fully consumed axis collapses to zero size at its center.
func (r Rect) Inset(top, right, bottom, left float64) Rect {
	w := r.W - left - right
	h := r.H - top - bottom
	x := r.X + left
	y := r.Y + top
	if w < 0 {
		x = r.X + r.W/2
		w = 0
	}
	if h < 0 {
		y = r.Y + r.H/2
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Translate returns the rectangle shifted by the offset.
func (r Rect) Translate(v Vec) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}
