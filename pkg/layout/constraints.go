package layout

import (
	"math"

	"github.com/go-fern/fern/pkg/graphics"
)

// Unbounded is the maximum extent of an axis that has no limit.
const Unbounded = math.MaxFloat64

// Constraints is the region a parent offers a child during measurement.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that only allow the given size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to the given size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// UnboundedConstraints places no limit on either axis.
func UnboundedConstraints() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool {
	return c.MaxWidth < Unbounded
}

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool {
	return c.MaxHeight < Unbounded
}

// Biggest returns the largest size allowed. Unbounded axes fall back to the minimum.
func (c Constraints) Biggest() graphics.Size {
	w, h := c.MaxWidth, c.MaxHeight
	if !c.HasBoundedWidth() {
		w = c.MinWidth
	}
	if !c.HasBoundedHeight() {
		h = c.MinHeight
	}
	return graphics.Size{Width: w, Height: h}
}

// Smallest returns the minimum size allowed.
func (c Constraints) Smallest() graphics.Size {
	return graphics.Size{Width: c.MinWidth, Height: c.MinHeight}
}

// Constrain clamps size into the constraints. The result is never negative.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Loosen drops the minimums.
func (c Constraints) Loosen() Constraints {
	c.MinWidth = 0
	c.MinHeight = 0
	return c
}

// Deflate shrinks the constraints by the insets, never below zero.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	h := insets.Horizontal()
	v := insets.Vertical()
	out := Constraints{
		MinWidth:  math.Max(0, c.MinWidth-h),
		MinHeight: math.Max(0, c.MinHeight-v),
		MaxWidth:  c.MaxWidth,
		MaxHeight: c.MaxHeight,
	}
	if c.HasBoundedWidth() {
		out.MaxWidth = math.Max(out.MinWidth, c.MaxWidth-h)
	}
	if c.HasBoundedHeight() {
		out.MaxHeight = math.Max(out.MinHeight, c.MaxHeight-v)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return math.Max(v, 0)
}
