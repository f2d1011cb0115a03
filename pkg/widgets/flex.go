package widgets

import (
	"fmt"
	"log"
	"math"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
)

// MainAxisAlignment controls how children are positioned along the main axis
// (horizontal for [Row], vertical for [Column]). It only applies when no
// child expands; expanding children consume all free space.
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end (right for Row, bottom for Column).
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between children.
	// No space before the first or after the last child.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround distributes free space evenly, with half-sized
	// spaces at the start and end.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly, including
	// equal space before the first and after the last child.
	MainAxisAlignmentSpaceEvenly
)

// String returns a human-readable representation of the main axis alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	case MainAxisAlignmentSpaceAround:
		return "space_around"
	case MainAxisAlignmentSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children narrower than the flex node are
// positioned along the cross axis. Center is the zero value.
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter CrossAxisAlignment = iota
	// CrossAxisAlignmentStart places children at the start of the cross axis.
	CrossAxisAlignmentStart
	// CrossAxisAlignmentEnd places children at the end of the cross axis.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentStretch stretches children to fill the cross axis.
	CrossAxisAlignmentStretch
)

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossAxisAlignmentStart:
		return "start"
	case CrossAxisAlignmentEnd:
		return "end"
	case CrossAxisAlignmentCenter:
		return "center"
	case CrossAxisAlignmentStretch:
		return "stretch"
	default:
		return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
	}
}

// Row lays out children horizontally from left to right.
//
// Children that expand horizontally (a [SizedBox] or [Container] with zero
// width, or a nested flex node with Expand set) share the width left over
// after the fixed children. With no expanding children, MainAxisAlignment
// distributes the leftover width.
//
//	RowOf(
//	    TextOf("2:14", 1, graphics.ColorGray),
//	    Spacer(),
//	    TextOf("5:30", 1, graphics.ColorGray),
//	)
type Row struct {
	Children           []Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	// Expand makes the row fill the space offered by its parent on both axes.
	Expand bool

	flex flexLayout
}

func (r *Row) config() flexConfig {
	return flexConfig{
		axis:     layout.AxisHorizontal,
		children: r.Children,
		main:     r.MainAxisAlignment,
		cross:    r.CrossAxisAlignment,
		expand:   r.Expand,
	}
}

func (r *Row) Measure(constraints layout.Constraints) graphics.Size {
	return r.flex.measure(r.config(), constraints)
}

func (r *Row) Arrange(rect graphics.Rect)         { r.flex.arrange(r.config(), rect) }
func (r *Row) Render(rs raster.Rasterizer)        { renderAll(r.Children, rs) }
func (r *Row) Bounds() graphics.Rect              { return r.flex.rect }
func (r *Row) VisitChildren(visitor func(Widget)) { visitAll(r.Children, visitor) }

// ExpandsAlong reports whether the row fills leftover space inside a parent
// flex node.
func (r *Row) ExpandsAlong(axis layout.Axis) bool {
	return r.flex.expandsAlong(r.config(), axis)
}

// Column lays out children vertically from top to bottom. It follows the same
// rules as [Row] with the axes swapped.
type Column struct {
	Children           []Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	// Expand makes the column fill the space offered by its parent on both axes.
	Expand bool

	flex flexLayout
}

func (c *Column) config() flexConfig {
	return flexConfig{
		axis:     layout.AxisVertical,
		children: c.Children,
		main:     c.MainAxisAlignment,
		cross:    c.CrossAxisAlignment,
		expand:   c.Expand,
	}
}

func (c *Column) Measure(constraints layout.Constraints) graphics.Size {
	return c.flex.measure(c.config(), constraints)
}

func (c *Column) Arrange(rect graphics.Rect)         { c.flex.arrange(c.config(), rect) }
func (c *Column) Render(rs raster.Rasterizer)        { renderAll(c.Children, rs) }
func (c *Column) Bounds() graphics.Rect              { return c.flex.rect }
func (c *Column) VisitChildren(visitor func(Widget)) { visitAll(c.Children, visitor) }

// ExpandsAlong reports whether the column fills leftover space inside a
// parent flex node.
func (c *Column) ExpandsAlong(axis layout.Axis) bool {
	return c.flex.expandsAlong(c.config(), axis)
}

type flexConfig struct {
	axis     layout.Axis
	children []Widget
	main     MainAxisAlignment
	cross    CrossAxisAlignment
	expand   bool
}

// flexLayout is the layout state shared by Row and Column.
type flexLayout struct {
	rect           graphics.Rect
	overflowWarned bool
}

func (f *flexLayout) expandsAlong(cfg flexConfig, axis layout.Axis) bool {
	if cfg.expand {
		return true
	}
	if axis != cfg.axis {
		return false
	}
	for _, child := range cfg.children {
		if child != nil && expands(child, cfg.axis) {
			return true
		}
	}
	return false
}

func (f *flexLayout) measure(cfg flexConfig, constraints layout.Constraints) graphics.Size {
	childConstraints := constraints.Loosen()
	var fixedMain, maxCross float64
	count := 0
	hasExpanding := false
	for _, child := range cfg.children {
		if child == nil {
			continue
		}
		count++
		size := child.Measure(childConstraints)
		maxCross = math.Max(maxCross, crossOf(cfg.axis, size))
		if expands(child, cfg.axis) {
			hasExpanding = true
			continue
		}
		fixedMain += mainOf(cfg.axis, size)
	}
	if count == 0 {
		return constraints.Smallest()
	}

	mainSize, crossSize := fixedMain, maxCross
	maxMain := mainOf(cfg.axis, graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
	if (cfg.expand || hasExpanding) && maxMain < layout.Unbounded {
		mainSize = maxMain
	}
	if cfg.expand || cfg.cross == CrossAxisAlignmentStretch {
		limit := crossOf(cfg.axis, graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
		if limit < layout.Unbounded {
			crossSize = limit
		}
	}
	return constraints.Constrain(makeSize(cfg.axis, mainSize, crossSize))
}

func (f *flexLayout) arrange(cfg flexConfig, rect graphics.Rect) {
	rect = rect.Normalize()
	f.rect = rect
	mainExtent := mainOf(cfg.axis, rect.Size())
	crossExtent := crossOf(cfg.axis, rect.Size())
	childConstraints := layout.Loose(rect.Size())

	sizes := make([]graphics.Size, len(cfg.children))
	var fixed float64
	count, expanding := 0, 0
	for i, child := range cfg.children {
		if child == nil {
			continue
		}
		count++
		if expands(child, cfg.axis) {
			expanding++
			sizes[i] = child.Measure(childConstraints)
			continue
		}
		sizes[i] = child.Measure(childConstraints)
		fixed += mainOf(cfg.axis, sizes[i])
	}

	if fixed > mainExtent && !f.overflowWarned {
		log.Printf("WARNING: %s flex children need %.1f px but only %.1f px are available; "+
			"children past the end overflow.", cfg.axis, fixed, mainExtent)
		f.overflowWarned = true
	}

	available := math.Max(0, mainExtent-fixed)
	var share, remainder, spacing, cursor float64
	if expanding > 0 {
		share = math.Floor(available / float64(expanding))
		remainder = available - share*float64(expanding)
	} else {
		spacing, cursor = computeSpacing(cfg.main, count, available)
	}

	firstExpanding := true
	for i, child := range cfg.children {
		if child == nil {
			continue
		}
		var main float64
		if expands(child, cfg.axis) {
			main = share
			if firstExpanding {
				main += remainder
				firstExpanding = false
			}
		} else {
			main = mainOf(cfg.axis, sizes[i])
		}

		cross := crossExtent
		crossOffset := 0.0
		if cfg.cross != CrossAxisAlignmentStretch && !expands(child, cfg.axis.Cross()) {
			cross = math.Min(crossOf(cfg.axis, sizes[i]), crossExtent)
			crossOffset = crossAxisOffset(cfg.cross, crossExtent-cross)
		}
		child.Arrange(makeRect(cfg.axis, rect, cursor, crossOffset, main, cross))
		cursor += main + spacing
	}
}

// computeSpacing returns the gap between children and the leading offset for
// a main-axis alignment policy.
func computeSpacing(alignment MainAxisAlignment, n int, freeSpace float64) (spacing, offset float64) {
	switch alignment {
	case MainAxisAlignmentEnd:
		offset = freeSpace
	case MainAxisAlignmentCenter:
		offset = freeSpace * 0.5
	case MainAxisAlignmentSpaceBetween:
		if n > 1 {
			spacing = freeSpace / float64(n-1)
		}
	case MainAxisAlignmentSpaceAround:
		if n > 0 {
			spacing = freeSpace / float64(n)
			offset = spacing * 0.5
		}
	case MainAxisAlignmentSpaceEvenly:
		if n > 0 {
			spacing = freeSpace / float64(n+1)
			offset = spacing
		}
	}
	return
}

func crossAxisOffset(alignment CrossAxisAlignment, freeSpace float64) float64 {
	if freeSpace <= 0 {
		return 0
	}
	switch alignment {
	case CrossAxisAlignmentEnd:
		return freeSpace
	case CrossAxisAlignmentStart:
		return 0
	default:
		return freeSpace * 0.5
	}
}

func mainOf(axis layout.Axis, size graphics.Size) float64 {
	if axis == layout.AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func crossOf(axis layout.Axis, size graphics.Size) float64 {
	if axis == layout.AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func makeSize(axis layout.Axis, main, cross float64) graphics.Size {
	if axis == layout.AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func makeRect(axis layout.Axis, parent graphics.Rect, mainPos, crossPos, main, cross float64) graphics.Rect {
	if axis == layout.AxisHorizontal {
		return graphics.RectFromLTWH(parent.X+mainPos, parent.Y+crossPos, main, cross)
	}
	return graphics.RectFromLTWH(parent.X+crossPos, parent.Y+mainPos, cross, main)
}

func renderAll(children []Widget, r raster.Rasterizer) {
	for _, child := range children {
		if child != nil {
			child.Render(r)
		}
	}
}

func visitAll(children []Widget, visitor func(Widget)) {
	for _, child := range children {
		if child != nil {
			visitor(child)
		}
	}
}
