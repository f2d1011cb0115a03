package widgets

import (
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
)

// Padding adds empty space around its child widget.
//
// The child is measured against the constraints left after the insets and
// arranged inside the deflated rect. Without a child, Padding measures to the
// insets alone.
//
//	Padding{Padding: layout.EdgeInsetsAll(20), Child: column}
//	Padding{Padding: layout.EdgeInsetsSymmetric(24, 12), Child: row}
type Padding struct {
	Child   Widget
	Padding layout.EdgeInsets
	// Expand makes the padding fill the space offered by its parent.
	Expand bool

	box
}

func (p *Padding) Measure(constraints layout.Constraints) graphics.Size {
	inner := constraints.Deflate(p.Padding)
	size := p.Padding.Inflate(measureChild(p.Child, inner))
	if p.Expand {
		size = fillBounded(size, constraints)
	}
	return constraints.Constrain(size)
}

func (p *Padding) Arrange(rect graphics.Rect) {
	p.setRect(rect)
	if p.Child != nil {
		p.Child.Arrange(p.Padding.Deflate(p.rect))
	}
}

func (p *Padding) Render(r raster.Rasterizer) {
	if p.Child != nil {
		p.Child.Render(r)
	}
}

func (p *Padding) VisitChildren(visitor func(Widget)) {
	if p.Child != nil {
		visitor(p.Child)
	}
}

// ExpandsAlong implements [Flexible].
func (p *Padding) ExpandsAlong(layout.Axis) bool {
	return p.Expand
}
