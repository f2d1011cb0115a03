package widgets

import (
	"fmt"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/signal"
)

// ButtonState is the interaction state of a [Button].
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
)

// String returns a human-readable representation of the state.
func (s ButtonState) String() string {
	switch s {
	case ButtonNormal:
		return "normal"
	case ButtonHovered:
		return "hovered"
	case ButtonPressed:
		return "pressed"
	default:
		return fmt.Sprintf("ButtonState(%d)", int(s))
	}
}

// ButtonConfig is the geometry and styling of a [Button].
//
// A zero HoverColor falls back to NormalColor and a zero PressColor falls back
// to the hover color. A zero TextColor draws the label in white.
type ButtonConfig struct {
	X, Y          float64
	Width, Height float64
	NormalColor   graphics.Color
	HoverColor    graphics.Color
	PressColor    graphics.Color
	Label         string
	TextScale     float64
	TextColor     graphics.Color
}

// Button is a clickable rect with a centered label.
//
// Every frame the scene hands the button the pointer state and the button
// moves between Normal, Hovered and Pressed:
//
//	current   inside+down  inside+up            outside
//	Normal    Pressed      Hovered              Normal
//	Hovered   Pressed      Hovered              Normal
//	Pressed   Pressed      Hovered, fires click Normal
//
// OnClick is emitted once per press that is released inside the button.
// Releasing outside cancels the gesture.
type Button struct {
	ButtonConfig

	// OnClick is emitted when a press is released inside the button.
	OnClick signal.Signal
	// OnStateChange is emitted after every state transition; read State in the slot.
	OnStateChange signal.Signal

	box
	state ButtonState
	label Text
}

// State returns the current interaction state.
func (b *Button) State() ButtonState {
	return b.state
}

// Color returns the background color for the current state.
func (b *Button) Color() graphics.Color {
	hover := b.HoverColor
	if hover == graphics.ColorTransparent {
		hover = b.NormalColor
	}
	switch b.state {
	case ButtonHovered:
		return hover
	case ButtonPressed:
		if b.PressColor == graphics.ColorTransparent {
			return hover
		}
		return b.PressColor
	default:
		return b.NormalColor
	}
}

// SetLabel replaces the label text in place and marks it for repaint.
func (b *Button) SetLabel(label string) {
	b.Label = label
	b.label.SetText(label)
}

func (b *Button) syncLabel() {
	b.label.Content = b.Label
	b.label.Scale = b.TextScale
	b.label.Color = b.TextColor
	if b.label.Color == graphics.ColorTransparent {
		b.label.Color = graphics.ColorWhite
	}
}

func (b *Button) Measure(constraints layout.Constraints) graphics.Size {
	return constraints.Constrain(graphics.Size{Width: b.Width, Height: b.Height})
}

func (b *Button) Arrange(rect graphics.Rect) {
	b.setRect(rect)
	b.syncLabel()
	size := b.label.Measure(layout.UnboundedConstraints())
	b.label.Arrange(layout.AlignmentCenter.WithinRect(b.rect, size))
}

func (b *Button) Render(r raster.Rasterizer) {
	if color := b.Color(); !color.IsTransparent() {
		r.FillRect(b.rect, color)
	}
	b.label.Render(r)
}

func (b *Button) VisitChildren(visitor func(Widget)) {
	visitor(&b.label)
}

// Origin implements [Positioned].
func (b *Button) Origin() graphics.Offset {
	return graphics.Offset{X: b.X, Y: b.Y}
}

// HitTest reports whether p lies in the arranged rect, edges inclusive.
func (b *Button) HitTest(p graphics.Offset) bool {
	return b.rect.Contains(p)
}

// HandlePointer advances the state machine and emits OnClick when a press is
// released inside. It reports whether OnClick was emitted.
func (b *Button) HandlePointer(inside, down bool) bool {
	next := b.state
	clicked := false
	switch {
	case !inside:
		next = ButtonNormal
	case down:
		next = ButtonPressed
	default:
		clicked = b.state == ButtonPressed
		next = ButtonHovered
	}
	if next != b.state {
		b.state = next
		b.OnStateChange.Emit()
	}
	if clicked {
		b.OnClick.Emit()
	}
	return clicked
}

// ExpandsAlong reports true for each axis whose declared dimension is zero.
func (b *Button) ExpandsAlong(axis layout.Axis) bool {
	if axis == layout.AxisHorizontal {
		return b.Width == 0
	}
	return b.Height == 0
}
