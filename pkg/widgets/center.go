package widgets

import (
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
)

// Center positions its child at the center of its arranged rect.
//
// Center sizes itself to the child unless Expand is set, in which case it
// fills the space offered by its parent. A child larger than the rect
// overflows equally on both sides.
type Center struct {
	Child  Widget
	Expand bool

	box
}

func (c *Center) Measure(constraints layout.Constraints) graphics.Size {
	size := measureChild(c.Child, constraints.Loosen())
	if c.Expand {
		size = fillBounded(size, constraints)
	}
	return constraints.Constrain(size)
}

func (c *Center) Arrange(rect graphics.Rect) {
	c.setRect(rect)
	if c.Child == nil {
		return
	}
	size := c.Child.Measure(layout.Loose(c.rect.Size()))
	c.Child.Arrange(layout.AlignmentCenter.WithinRect(c.rect, size))
}

func (c *Center) Render(r raster.Rasterizer) {
	if c.Child != nil {
		c.Child.Render(r)
	}
}

func (c *Center) VisitChildren(visitor func(Widget)) {
	if c.Child != nil {
		visitor(c.Child)
	}
}

// ExpandsAlong implements [Flexible].
func (c *Center) ExpandsAlong(layout.Axis) bool {
	return c.Expand
}
