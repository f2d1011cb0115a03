package layout

import (
	"fmt"

	"github.com/go-fern/fern/pkg/graphics"
)

// Axis represents a layout direction.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

// Alignment positions a child inside a larger rect. X and Y range from -1
// (start) to 1 (end); 0 is centered.
type Alignment struct {
	X float64
	Y float64
}

var (
	AlignmentTopLeft = Alignment{X: -1, Y: -1}
	AlignmentCenter  = Alignment{X: 0, Y: 0}
)

// WithinRect returns the rect of the given size aligned inside rect. A child
// larger than rect overflows equally on both sides when centered.
func (a Alignment) WithinRect(rect graphics.Rect, size graphics.Size) graphics.Rect {
	freeX := rect.Width - size.Width
	freeY := rect.Height - size.Height
	x := rect.X + freeX*(a.X+1)/2
	y := rect.Y + freeY*(a.Y+1)/2
	return graphics.RectFromLTWH(x, y, size.Width, size.Height)
}
