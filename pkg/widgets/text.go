package widgets

import (
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
)

// Text draws a single line of bitmap text.
//
// Each glyph of [raster.DefaultFont] is magnified by Scale; a zero Scale
// means 1 and a negative Scale draws nothing. X and Y are the top-left
// corner used when the text is a scene root.
//
// Text is the one widget whose content may change after construction: call
// SetText to update it in place.
type Text struct {
	Content string
	X, Y    float64
	Scale   float64
	Color   graphics.Color

	box
	dirty bool
}

// SetText replaces the content and marks the text for repaint. Setting the
// same content is a no-op.
func (t *Text) SetText(content string) {
	if t.Content == content {
		return
	}
	t.Content = content
	t.dirty = true
}

// NeedsRepaint reports whether the content changed since the last Render.
func (t *Text) NeedsRepaint() bool {
	return t.dirty
}

func (t *Text) scale() float64 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

func (t *Text) Measure(constraints layout.Constraints) graphics.Size {
	return constraints.Constrain(raster.DefaultFont.Measure(t.Content, t.scale()))
}

func (t *Text) Arrange(rect graphics.Rect) { t.setRect(rect) }

func (t *Text) Render(r raster.Rasterizer) {
	t.dirty = false
	if t.Content == "" || t.scale() <= 0 || t.Color.IsTransparent() {
		return
	}
	r.DrawText(t.rect.Origin(), t.Content, t.scale(), t.Color)
}

func (t *Text) VisitChildren(func(Widget)) {}

// Origin implements [Positioned].
func (t *Text) Origin() graphics.Offset {
	return graphics.Offset{X: t.X, Y: t.Y}
}
