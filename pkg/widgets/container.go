package widgets

import (
	"fmt"
	"math"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
)

// ChildAlignment chooses where a [Container] places its child.
type ChildAlignment int

const (
	// AlignmentNone gives the child the full container rect.
	AlignmentNone ChildAlignment = iota
	// AlignmentCenter centers the child at its measured size.
	AlignmentCenter
)

// String returns a human-readable representation of the alignment.
func (a ChildAlignment) String() string {
	switch a {
	case AlignmentNone:
		return "none"
	case AlignmentCenter:
		return "center"
	default:
		return fmt.Sprintf("ChildAlignment(%d)", int(a))
	}
}

// Container paints a background rect and holds an optional child.
//
// A non-zero Width or Height is used as-is. A zero dimension sizes to the
// child, or fills the available space when there is no child. Inside a
// [Row] or [Column] a zero dimension along an axis makes the container share
// the leftover space on that axis.
//
// X and Y are only used when the container is a scene root.
type Container struct {
	Child     Widget
	X, Y      float64
	Width     float64
	Height    float64
	Color     graphics.Color
	Alignment ChildAlignment

	box
}

func (c *Container) Measure(constraints layout.Constraints) graphics.Size {
	inner := constraints.Loosen()
	if c.Width > 0 {
		inner.MaxWidth = math.Min(inner.MaxWidth, c.Width)
	}
	if c.Height > 0 {
		inner.MaxHeight = math.Min(inner.MaxHeight, c.Height)
	}

	var size graphics.Size
	if c.Child != nil {
		size = c.Child.Measure(inner)
	} else {
		size = constraints.Biggest()
	}
	if c.Width > 0 {
		size.Width = c.Width
	}
	if c.Height > 0 {
		size.Height = c.Height
	}
	return constraints.Constrain(size)
}

func (c *Container) Arrange(rect graphics.Rect) {
	c.setRect(rect)
	if c.Child == nil {
		return
	}
	if c.Alignment == AlignmentCenter {
		size := c.Child.Measure(layout.Loose(c.rect.Size()))
		c.Child.Arrange(layout.AlignmentCenter.WithinRect(c.rect, size))
		return
	}
	c.Child.Arrange(c.rect)
}

func (c *Container) Render(r raster.Rasterizer) {
	if !c.Color.IsTransparent() {
		r.FillRect(c.rect, c.Color)
	}
	if c.Child != nil {
		c.Child.Render(r)
	}
}

func (c *Container) VisitChildren(visitor func(Widget)) {
	if c.Child != nil {
		visitor(c.Child)
	}
}

// Origin implements [Positioned].
func (c *Container) Origin() graphics.Offset {
	return graphics.Offset{X: c.X, Y: c.Y}
}

// ExpandsAlong reports true for each axis whose declared dimension is zero.
func (c *Container) ExpandsAlong(axis layout.Axis) bool {
	if axis == layout.AxisHorizontal {
		return c.Width == 0
	}
	return c.Height == 0
}
