package widgets

import (
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/signal"
)

// ContainerOf creates a container with a background color, a declared size
// and an optional child.
func ContainerOf(color graphics.Color, width, height float64, child Widget) *Container {
	return &Container{Color: color, Width: width, Height: height, Child: child}
}

// RowOf creates a start-aligned row with the given children.
func RowOf(children ...Widget) *Row {
	return &Row{Children: children}
}

// ColumnOf creates a start-aligned column with the given children.
func ColumnOf(children ...Widget) *Column {
	return &Column{Children: children}
}

// PaddingAll wraps a child with equal padding on every side.
func PaddingAll(value float64, child Widget) *Padding {
	return &Padding{Padding: layout.EdgeInsetsAll(value), Child: child}
}

// PaddingSym wraps a child with symmetric horizontal and vertical padding.
func PaddingSym(horizontal, vertical float64, child Widget) *Padding {
	return &Padding{Padding: layout.EdgeInsetsSymmetric(horizontal, vertical), Child: child}
}

// PaddingOnly wraps a child with per-edge padding.
func PaddingOnly(left, top, right, bottom float64, child Widget) *Padding {
	return &Padding{Padding: layout.EdgeInsetsOnly(left, top, right, bottom), Child: child}
}

// Centered wraps a child in a Center widget.
func Centered(child Widget) *Center {
	return &Center{Child: child}
}

// SizedBoxOf creates a spacer of the given size.
func SizedBoxOf(width, height float64) *SizedBox {
	return &SizedBox{Width: width, Height: height}
}

// Spacer creates a spacer that expands along both axes.
func Spacer() *SizedBox {
	return &SizedBox{}
}

// VSpace creates a fixed-height vertical spacer.
func VSpace(height float64) *SizedBox {
	return &SizedBox{Height: height}
}

// HSpace creates a fixed-width horizontal spacer.
func HSpace(width float64) *SizedBox {
	return &SizedBox{Width: width}
}

// TextAt creates a text widget with a declared origin for use as a root.
func TextAt(x, y float64, content string, scale float64, color graphics.Color) *Text {
	return &Text{X: x, Y: y, Content: content, Scale: scale, Color: color}
}

// TextOf creates a text widget for use inside a layout.
func TextOf(content string, scale float64, color graphics.Color) *Text {
	return &Text{Content: content, Scale: scale, Color: color}
}

// ButtonOf creates a button from its configuration. Its signals are named
// after the button label in panic reports.
func ButtonOf(config ButtonConfig) *Button {
	prefix := "button"
	if config.Label != "" {
		prefix = "button(" + config.Label + ")"
	}
	return &Button{
		ButtonConfig:  config,
		OnClick:       signal.Named(prefix + ".OnClick"),
		OnStateChange: signal.Named(prefix + ".OnStateChange"),
	}
}
