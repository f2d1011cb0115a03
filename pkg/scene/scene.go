// Package scene holds the root widgets of the current screen and runs the
// per-frame layout, dispatch and render passes over them.
package scene

import (
	"math"

	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/widgets"
)

// Scene is an ordered list of root widgets. Roots paint in insertion order,
// so the last added root is on top and wins hit tests.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	roots   []widgets.Widget
	size    graphics.Size
	laidOut bool
	changed bool
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Clear discards every root. Build the next screen with Add.
func (s *Scene) Clear() {
	clear(s.roots)
	s.roots = s.roots[:0]
	s.changed = true
}

// Add appends roots. Nil roots are ignored.
func (s *Scene) Add(roots ...widgets.Widget) {
	for _, root := range roots {
		if root != nil {
			s.roots = append(s.roots, root)
			s.changed = true
		}
	}
}

// Roots returns a copy of the root list in paint order.
func (s *Scene) Roots() []widgets.Widget {
	out := make([]widgets.Widget, len(s.roots))
	copy(out, s.roots)
	return out
}

// Len returns the number of roots.
func (s *Scene) Len() int {
	return len(s.roots)
}

// NeedsLayout reports whether roots were added or removed since the last
// Layout, or Layout was never called.
func (s *Scene) NeedsLayout() bool {
	return !s.laidOut || s.changed
}

// Size returns the extent passed to the last Layout.
func (s *Scene) Size() graphics.Size {
	return s.size
}

// Layout measures and arranges every root against size. Positioned roots are
// placed at their origin and keep their declared size even when it runs past
// the buffer edge; the rasterizer clips what falls outside.
func (s *Scene) Layout(size graphics.Size) {
	s.size = size
	for _, root := range s.roots {
		origin, constraints := rootConstraints(root, size)
		measured := root.Measure(constraints)
		root.Arrange(graphics.RectFromOffsetSize(origin, measured))
	}
	s.laidOut = true
	s.changed = false
}

// rootConstraints returns where root is placed and what it is measured
// against. An unpositioned root is offered the whole buffer. A positioned
// root is unbounded on axes with a declared size, offered the space up to the
// far edge on axes it fills, and offered the buffer extent otherwise.
func rootConstraints(root widgets.Widget, size graphics.Size) (graphics.Offset, layout.Constraints) {
	p, ok := root.(widgets.Positioned)
	if !ok {
		return graphics.Offset{}, layout.Loose(size)
	}
	origin := p.Origin()
	limit := func(axis layout.Axis, extent, start float64) float64 {
		f, flexible := root.(widgets.Flexible)
		switch {
		case !flexible:
			return extent
		case f.ExpandsAlong(axis):
			return math.Max(0, extent-start)
		default:
			return layout.Unbounded
		}
	}
	return origin, layout.Constraints{
		MaxWidth:  limit(layout.AxisHorizontal, size.Width, origin.X),
		MaxHeight: limit(layout.AxisVertical, size.Height, origin.Y),
	}
}

// Render paints every root in insertion order and returns how many widgets
// had pending content changes. Rendering a scene whose roots changed since the
// last Layout is a contract violation.
func (s *Scene) Render(r raster.Rasterizer) int {
	if s.NeedsLayout() {
		errors.Violation("scene.Render", "render called before layout (%d roots)", len(s.roots))
		return 0
	}
	repainted := 0
	for _, root := range s.roots {
		widgets.Walk(root, func(w widgets.Widget) bool {
			if rp, ok := w.(widgets.Repainter); ok && rp.NeedsRepaint() {
				repainted++
			}
			return true
		})
		root.Render(r)
	}
	return repainted
}

// Walk visits every widget in paint order. Returning false skips the
// widget's children.
func (s *Scene) Walk(visit func(widgets.Widget) bool) {
	for _, root := range s.roots {
		widgets.Walk(root, visit)
	}
}

// Interactive returns every interactive widget in paint order.
func (s *Scene) Interactive() []widgets.Interactive {
	var out []widgets.Interactive
	s.Walk(func(w widgets.Widget) bool {
		if iw, ok := w.(widgets.Interactive); ok {
			out = append(out, iw)
		}
		return true
	})
	return out
}

// HitTest returns the topmost interactive widget containing p, or nil.
// Later roots are above earlier ones and children are above their parents.
func (s *Scene) HitTest(p graphics.Offset) widgets.Interactive {
	return topmost(s.Interactive(), p)
}

func topmost(candidates []widgets.Interactive, p graphics.Offset) widgets.Interactive {
	for i := len(candidates) - 1; i >= 0; i-- {
		if candidates[i].HitTest(p) {
			return candidates[i]
		}
	}
	return nil
}

// DispatchResult summarizes one Dispatch call.
type DispatchResult struct {
	// Target is the topmost interactive widget under the pointer, if any.
	Target widgets.Interactive
	// Interactive is the number of interactive widgets that were updated.
	Interactive int
	// Clicks is the number of completed clicks.
	Clicks int
}

// Dispatch advances every interactive widget with the pointer sample. Only
// the topmost widget under the pointer sees it as inside, so overlapping
// buttons never react together. Slots may Clear and rebuild the scene; the
// widgets collected before the first slot ran still finish this dispatch.
func (s *Scene) Dispatch(p input.Pointer) DispatchResult {
	candidates := s.Interactive()
	target := topmost(candidates, p.Position())
	res := DispatchResult{Target: target, Interactive: len(candidates)}
	for _, w := range candidates {
		if w.HandlePointer(w == target, p.Down) {
			res.Clicks++
		}
	}
	return res
}
