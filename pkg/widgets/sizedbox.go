package widgets

import (
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
)

// SizedBox is an invisible spacer.
//
// Non-zero dimensions are rigid. A zero dimension marks the box as
// expanding along that axis: inside a [Row] or [Column] it takes a share of
// the leftover space, elsewhere it measures to the minimum constraint.
//
//	RowOf(a, HSpace(25), b)   // fixed gap
//	RowOf(a, Spacer(), b)     // pushes b to the end
type SizedBox struct {
	Width  float64
	Height float64

	box
}

func (s *SizedBox) Measure(constraints layout.Constraints) graphics.Size {
	size := constraints.Smallest()
	if s.Width > 0 {
		size.Width = s.Width
	}
	if s.Height > 0 {
		size.Height = s.Height
	}
	return constraints.Constrain(size)
}

func (s *SizedBox) Arrange(rect graphics.Rect) { s.setRect(rect) }

func (s *SizedBox) Render(raster.Rasterizer) {}

func (s *SizedBox) VisitChildren(func(Widget)) {}

// ExpandsAlong reports true for each axis whose dimension is zero.
func (s *SizedBox) ExpandsAlong(axis layout.Axis) bool {
	if axis == layout.AxisHorizontal {
		return s.Width == 0
	}
	return s.Height == 0
}
