package layout

import "github.com/go-fern/fern/pkg/graphics"

// EdgeInsets is an inset on each of the four sides of a box.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll insets every side by value.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric insets left/right by horizontal and top/bottom by vertical.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly insets each side individually.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Deflate shrinks rect by the insets. The result never has a negative size.
func (e EdgeInsets) Deflate(rect graphics.Rect) graphics.Rect {
	return graphics.RectFromLTWH(
		rect.X+e.Left,
		rect.Y+e.Top,
		rect.Width-e.Horizontal(),
		rect.Height-e.Vertical(),
	)
}

// Inflate grows size by the insets.
func (e EdgeInsets) Inflate(size graphics.Size) graphics.Size {
	return graphics.Size{Width: size.Width + e.Horizontal(), Height: size.Height + e.Vertical()}
}
