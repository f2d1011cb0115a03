package widgets_test

import (
	"testing"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/layout"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/widgets"
)

type step struct {
	inside, down bool
}

func newTestButton() *widgets.Button {
	b := widgets.ButtonOf(widgets.ButtonConfig{
		X: 300, Y: 250, Width: 200, Height: 50,
		NormalColor: graphics.ColorGreen,
		HoverColor:  graphics.ColorLightGreen,
		PressColor:  graphics.ColorDarkGreen,
		Label:       "CLICK ME",
		TextScale:   2,
	})
	b.Arrange(graphics.RectFromLTWH(300, 250, 200, 50))
	return b
}

func TestButton_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		steps      []step
		wantStates []widgets.ButtonState
		wantClicks int
	}{
		{
			name:       "hover then leave",
			steps:      []step{{true, false}, {false, false}},
			wantStates: []widgets.ButtonState{widgets.ButtonHovered, widgets.ButtonNormal},
		},
		{
			name:       "press and release inside",
			steps:      []step{{true, false}, {true, true}, {true, false}},
			wantStates: []widgets.ButtonState{widgets.ButtonHovered, widgets.ButtonPressed, widgets.ButtonHovered},
			wantClicks: 1,
		},
		{
			name:       "press straight from normal",
			steps:      []step{{true, true}, {true, false}},
			wantStates: []widgets.ButtonState{widgets.ButtonPressed, widgets.ButtonHovered},
			wantClicks: 1,
		},
		{
			name:       "release outside cancels",
			steps:      []step{{true, true}, {false, true}, {false, false}},
			wantStates: []widgets.ButtonState{widgets.ButtonPressed, widgets.ButtonNormal, widgets.ButtonNormal},
		},
		{
			name:       "holding does not repeat",
			steps:      []step{{true, true}, {true, true}, {true, true}, {true, false}, {true, false}},
			wantStates: []widgets.ButtonState{widgets.ButtonPressed, widgets.ButtonPressed, widgets.ButtonPressed, widgets.ButtonHovered, widgets.ButtonHovered},
			wantClicks: 1,
		},
		{
			name:       "two gestures",
			steps:      []step{{true, true}, {true, false}, {true, true}, {true, false}},
			wantStates: []widgets.ButtonState{widgets.ButtonPressed, widgets.ButtonHovered, widgets.ButtonPressed, widgets.ButtonHovered},
			wantClicks: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestButton()
			clicks := 0
			b.OnClick.Connect(func() { clicks++ })

			reported := 0
			for i, s := range tt.steps {
				if b.HandlePointer(s.inside, s.down) {
					reported++
				}
				if got := b.State(); got != tt.wantStates[i] {
					t.Errorf("step %d: state = %v, want %v", i, got, tt.wantStates[i])
				}
			}
			if clicks != tt.wantClicks || reported != tt.wantClicks {
				t.Errorf("clicks = %d (reported %d), want %d", clicks, reported, tt.wantClicks)
			}
		})
	}
}

func TestButton_SlotsFireInConnectionOrder(t *testing.T) {
	b := newTestButton()
	var order []string
	b.OnClick.Connect(func() { order = append(order, "first") })
	b.OnClick.Connect(func() { order = append(order, "second") })

	b.HandlePointer(true, true)
	b.HandlePointer(true, false)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v", order)
	}
}

func TestButton_StateChangeSignal(t *testing.T) {
	b := newTestButton()
	var seen []widgets.ButtonState
	b.OnStateChange.Connect(func() { seen = append(seen, b.State()) })

	b.HandlePointer(true, false)
	b.HandlePointer(true, false)
	b.HandlePointer(false, false)

	if len(seen) != 2 || seen[0] != widgets.ButtonHovered || seen[1] != widgets.ButtonNormal {
		t.Errorf("state changes = %v", seen)
	}
}

func TestButton_RendersStateColorAndCenteredLabel(t *testing.T) {
	b := newTestButton()
	rec := &raster.Recorder{}

	b.Render(rec)
	b.HandlePointer(true, false)
	b.Render(rec)
	b.HandlePointer(true, true)
	b.Render(rec)

	var fills []graphics.Color
	for _, op := range rec.Ops() {
		if op.Kind == raster.OpFillRect {
			fills = append(fills, op.Color)
			if op.Rect != graphics.RectFromLTWH(300, 250, 200, 50) {
				t.Errorf("fill rect = %+v", op.Rect)
			}
		}
	}
	want := []graphics.Color{graphics.ColorGreen, graphics.ColorLightGreen, graphics.ColorDarkGreen}
	if len(fills) != 3 || fills[0] != want[0] || fills[1] != want[1] || fills[2] != want[2] {
		t.Errorf("fills = %v, want %v", fills, want)
	}

	label := rec.Ops()[1]
	if label.Kind != raster.OpDrawText || label.Text != "CLICK ME" {
		t.Fatalf("second op = %v, want label text", label)
	}
	// 8 glyphs * 7px * 2 = 112 wide, 26 tall, centered in 200x50.
	if label.Origin != (graphics.Offset{X: 344, Y: 262}) {
		t.Errorf("label origin = %v, want (344, 262)", label.Origin)
	}
	if label.Color != graphics.ColorWhite {
		t.Errorf("label color = %s, want white default", label.Color)
	}
}

func TestButton_SetLabelMarksRepaint(t *testing.T) {
	b := newTestButton()
	rec := &raster.Recorder{}
	b.Render(rec)

	b.SetLabel("DONE")
	var label widgets.Widget
	b.VisitChildren(func(w widgets.Widget) { label = w })
	txt, ok := label.(*widgets.Text)
	if !ok {
		t.Fatalf("child = %T, want *widgets.Text", label)
	}
	if b.Label != "DONE" || txt.Content != "DONE" {
		t.Errorf("label = %q, text = %q", b.Label, txt.Content)
	}
	if !txt.NeedsRepaint() {
		t.Error("SetLabel should mark the label for repaint")
	}

	b.Arrange(b.Bounds())
	rec.Reset()
	b.Render(rec)
	if got := rec.Texts(); len(got) != 1 || got[0] != "DONE" {
		t.Errorf("texts = %v, want [DONE]", got)
	}
	if txt.NeedsRepaint() {
		t.Error("Render should clear the repaint flag")
	}
}

func TestButton_HitTestEdgesInclusive(t *testing.T) {
	b := newTestButton()
	tests := []struct {
		p    graphics.Offset
		want bool
	}{
		{graphics.Offset{X: 300, Y: 250}, true},
		{graphics.Offset{X: 500, Y: 300}, true},
		{graphics.Offset{X: 400, Y: 275}, true},
		{graphics.Offset{X: 299.5, Y: 275}, false},
		{graphics.Offset{X: 400, Y: 300.5}, false},
	}
	for _, tt := range tests {
		if got := b.HitTest(tt.p); got != tt.want {
			t.Errorf("HitTest(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestButton_UnarrangedHitsNothing(t *testing.T) {
	b := widgets.ButtonOf(widgets.ButtonConfig{Width: 10, Height: 10})
	if b.HitTest(graphics.Offset{}) {
		t.Error("a button that was never arranged should not be hit")
	}
	if got := b.Measure(layout.UnboundedConstraints()); got != (graphics.Size{Width: 10, Height: 10}) {
		t.Errorf("Measure = %v", got)
	}
}

func TestButton_ColorFallbacks(t *testing.T) {
	b := &widgets.Button{ButtonConfig: widgets.ButtonConfig{NormalColor: graphics.ColorBlue}}
	b.HandlePointer(true, false)
	if b.Color() != graphics.ColorBlue {
		t.Errorf("hover color = %s, want normal color fallback", b.Color())
	}
	b.HandlePointer(true, true)
	if b.Color() != graphics.ColorBlue {
		t.Errorf("press color = %s, want hover color fallback", b.Color())
	}
}
