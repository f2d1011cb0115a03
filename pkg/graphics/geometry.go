package graphics

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns o translated by d.
func (o Offset) Add(d Offset) Offset {
	return Offset{X: o.X + d.X, Y: o.Y + d.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle stored as origin plus size.
//
// The zero Rect means "not yet arranged" (or collapsed). Producers never emit
// negative sizes; see Normalize.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
// Negative dimensions are clamped to zero.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{X: left, Y: top, Width: width, Height: height}.Normalize()
}

// RectFromOffsetSize constructs a Rect at origin with the given size.
func RectFromOffsetSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Normalize clamps negative dimensions to zero.
func (r Rect) Normalize() Rect {
	r.Width = math.Max(r.Width, 0)
	r.Height = math.Max(r.Height, 0)
	return r
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.X, Y: r.Y}
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside r. Edges are inclusive; an empty
// rect contains nothing.
func (r Rect) Contains(p Offset) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Intersect returns the intersection of two rectangles.
// Returns the zero rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.Right(), other.Right())
	bottom := math.Min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
