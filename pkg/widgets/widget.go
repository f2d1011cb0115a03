package widgets

import (
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
)

// Widget is a node in the retained tree.
//
// Layout happens in two passes. Measure reports the size the widget wants
// under the given constraints and must not change what Render draws; it may
// be called any number of times per frame. Arrange stores the final rect and
// arranges children inside it; calling it again with the same rect yields the
// same geometry. Render paints from the arranged geometry only.
type Widget interface {
	Measure(constraints layout.Constraints) graphics.Size
	Arrange(rect graphics.Rect)
	Render(r raster.Rasterizer)
	// Bounds returns the last arranged rect, or the zero rect before the
	// first layout.
	Bounds() graphics.Rect
	VisitChildren(visitor func(Widget))
}

// Interactive is implemented by widgets that react to the pointer.
type Interactive interface {
	Widget
	// HitTest reports whether p lies in the arranged rect, edges inclusive.
	HitTest(p graphics.Offset) bool
	// HandlePointer advances the widget's interaction state for one frame and
	// reports whether a click completed.
	HandlePointer(inside, down bool) bool
}

// Positioned is implemented by widgets that carry a declared origin. A
// positioned root is arranged at its origin instead of the buffer corner.
type Positioned interface {
	Origin() graphics.Offset
}

// Flexible is implemented by widgets that can fill leftover space when they
// sit inside a Row or Column.
type Flexible interface {
	ExpandsAlong(axis layout.Axis) bool
}

// Repainter is implemented by widgets whose content can change between
// layouts. NeedsRepaint is cleared by Render.
type Repainter interface {
	NeedsRepaint() bool
}

// Walk visits w and its descendants in paint order. Returning false from
// visit skips the node's children.
func Walk(w Widget, visit func(Widget) bool) {
	if w == nil {
		return
	}
	if !visit(w) {
		return
	}
	w.VisitChildren(func(child Widget) {
		Walk(child, visit)
	})
}

// expands reports whether w fills leftover space along axis.
func expands(w Widget, axis layout.Axis) bool {
	if f, ok := w.(Flexible); ok {
		return f.ExpandsAlong(axis)
	}
	return false
}

// measureChild measures an optional child; a missing child has zero size.
func measureChild(w Widget, constraints layout.Constraints) graphics.Size {
	if w == nil {
		return graphics.Size{}
	}
	return w.Measure(constraints)
}

// box holds the arranged rect shared by every widget.
type box struct {
	rect graphics.Rect
}

// Bounds returns the last arranged rect.
func (b *box) Bounds() graphics.Rect {
	return b.rect
}

func (b *box) setRect(rect graphics.Rect) {
	b.rect = rect.Normalize()
}

// fillBounded replaces each bounded axis of size with the constraint maximum.
func fillBounded(size graphics.Size, constraints layout.Constraints) graphics.Size {
	if constraints.HasBoundedWidth() {
		size.Width = constraints.MaxWidth
	}
	if constraints.HasBoundedHeight() {
		size.Height = constraints.MaxHeight
	}
	return size
}
