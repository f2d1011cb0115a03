package scene_test

import (
	"testing"

	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/scene"
	"github.com/go-fern/fern/pkg/widgets"
)

var screen = graphics.Size{Width: 800, Height: 600}

func button(x, y, w, h float64, label string) *widgets.Button {
	return widgets.ButtonOf(widgets.ButtonConfig{
		X: x, Y: y, Width: w, Height: h,
		NormalColor: graphics.ColorGreen,
		Label:       label,
	})
}

func TestClearThenAdd(t *testing.T) {
	s := scene.New()
	old := button(0, 0, 50, 50, "old")
	s.Add(old)
	s.Layout(screen)

	s.Clear()
	fresh := widgets.TextAt(10, 10, "fresh", 1, graphics.ColorWhite)
	s.Add(fresh, nil)

	roots := s.Roots()
	if len(roots) != 1 || roots[0] != widgets.Widget(fresh) {
		t.Fatalf("roots = %v, want only the new root", roots)
	}
	found := false
	s.Walk(func(w widgets.Widget) bool {
		if w == widgets.Widget(old) {
			t.Error("cleared root is still reachable")
		}
		if w == widgets.Widget(fresh) {
			found = true
		}
		return true
	})
	if !found {
		t.Error("new root not reachable")
	}
	if !s.NeedsLayout() {
		t.Error("scene should need layout after Clear/Add")
	}
}

func TestLayoutPlacesPositionedRootsAtOrigin(t *testing.T) {
	s := scene.New()
	txt := widgets.TextAt(50, 400, "COUNT: 0", 2, graphics.ColorWhite)
	btn := button(300, 250, 200, 50, "CLICK ME")
	row := widgets.RowOf(widgets.HSpace(10))
	s.Add(txt, btn, row)

	s.Layout(screen)

	if got := txt.Bounds(); got != graphics.RectFromLTWH(50, 400, 112, 26) {
		t.Errorf("text bounds = %+v", got)
	}
	if got := btn.Bounds(); got != graphics.RectFromLTWH(300, 250, 200, 50) {
		t.Errorf("button bounds = %+v", got)
	}
	if got := row.Bounds(); got.X != 0 || got.Y != 0 {
		t.Errorf("unpositioned root should sit at the origin, got %+v", got)
	}
	if s.NeedsLayout() {
		t.Error("NeedsLayout after Layout")
	}
}

func TestLayoutKeepsDeclaredSizePastBufferEdge(t *testing.T) {
	s := scene.New()
	btn := button(700, 0, 200, 50, "EDGE")
	off := &widgets.Container{X: 900, Y: 10, Width: 50, Height: 50, Color: graphics.ColorRed}
	fill := &widgets.Container{X: 600, Y: 500, Color: graphics.ColorBlue}
	s.Add(btn, off, fill)
	s.Layout(screen)

	if got := btn.Bounds(); got != graphics.RectFromLTWH(700, 0, 200, 50) {
		t.Errorf("button bounds = %+v, want declared 200x50", got)
	}
	if got := off.Bounds(); got != graphics.RectFromLTWH(900, 10, 50, 50) {
		t.Errorf("off-buffer container bounds = %+v, want declared 50x50", got)
	}
	if got := fill.Bounds(); got != graphics.RectFromLTWH(600, 500, 200, 100) {
		t.Errorf("filling container bounds = %+v, want the space up to the far edges", got)
	}
	if !btn.HitTest(graphics.Offset{X: 799, Y: 25}) {
		t.Error("visible part of the button should hit")
	}

	buf := raster.AllocBuffer(800, 600)
	s.Render(raster.NewCanvas(buf))
	if got := buf.Pixel(799, 5); got != graphics.ColorGreen {
		t.Errorf("pixel at the edge = %s, want the button color", got)
	}
	for _, px := range buf.Pix {
		if graphics.Color(px) == graphics.ColorRed {
			t.Fatal("off-buffer container painted inside the buffer")
		}
	}
}

func TestLayoutFillsWithChildlessContainer(t *testing.T) {
	s := scene.New()
	bg := &widgets.Container{Color: graphics.ColorBlack}
	s.Add(bg)
	s.Layout(screen)
	if got := bg.Bounds(); got != graphics.RectFromLTWH(0, 0, 800, 600) {
		t.Errorf("background = %+v, want the whole screen", got)
	}
}

func TestLastAddedRootWinsHitTest(t *testing.T) {
	s := scene.New()
	below := button(100, 100, 100, 100, "below")
	above := button(150, 150, 100, 100, "above")
	s.Add(below, above)
	s.Layout(screen)

	if got := s.HitTest(graphics.Offset{X: 175, Y: 175}); got != widgets.Interactive(above) {
		t.Errorf("overlap hit = %v, want the last added button", got)
	}
	if got := s.HitTest(graphics.Offset{X: 110, Y: 110}); got != widgets.Interactive(below) {
		t.Errorf("hit = %v, want the lower button", got)
	}
	if got := s.HitTest(graphics.Offset{X: 10, Y: 10}); got != nil {
		t.Errorf("miss = %v, want nil", got)
	}
}

func TestDispatchOnlyTopmostIsInside(t *testing.T) {
	s := scene.New()
	below := button(100, 100, 100, 100, "below")
	above := button(150, 150, 100, 100, "above")
	s.Add(below, above)
	s.Layout(screen)

	res := s.Dispatch(input.Pointer{X: 175, Y: 175})
	if res.Interactive != 2 || res.Target != widgets.Interactive(above) {
		t.Fatalf("result = %+v", res)
	}
	if above.State() != widgets.ButtonHovered || below.State() != widgets.ButtonNormal {
		t.Errorf("states = above %v, below %v", above.State(), below.State())
	}

	s.Dispatch(input.Pointer{X: 175, Y: 175, Down: true})
	res = s.Dispatch(input.Pointer{X: 175, Y: 175})
	if res.Clicks != 1 {
		t.Errorf("clicks = %d, want 1", res.Clicks)
	}
}

func TestDispatchNestedButtonInLayout(t *testing.T) {
	s := scene.New()
	btn := &widgets.Button{ButtonConfig: widgets.ButtonConfig{Width: 80, Height: 40}}
	s.Add(widgets.PaddingAll(20, btn))
	s.Layout(screen)

	clicked := 0
	btn.OnClick.Connect(func() { clicked++ })
	s.Dispatch(input.Pointer{X: 20, Y: 20, Down: true})
	s.Dispatch(input.Pointer{X: 100, Y: 60})
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
}

func TestRenderPaintsInInsertionOrder(t *testing.T) {
	s := scene.New()
	first := &widgets.Container{X: 0, Y: 0, Width: 10, Height: 10, Color: graphics.ColorRed}
	second := &widgets.Container{X: 5, Y: 5, Width: 10, Height: 10, Color: graphics.ColorBlue}
	s.Add(first, second)
	s.Layout(screen)

	rec := &raster.Recorder{}
	s.Render(rec)

	ops := rec.Ops()
	if len(ops) != 2 || ops[0].Color != graphics.ColorRed || ops[1].Color != graphics.ColorBlue {
		t.Errorf("ops = %v", ops)
	}
}

func TestRenderCountsChangedText(t *testing.T) {
	s := scene.New()
	txt := widgets.TextAt(0, 0, "a", 1, graphics.ColorWhite)
	s.Add(txt)
	s.Layout(screen)

	rec := &raster.Recorder{}
	if n := s.Render(rec); n != 0 {
		t.Errorf("repainted = %d on first render, want 0", n)
	}
	txt.SetText("b")
	s.Layout(screen)
	if n := s.Render(rec); n != 1 {
		t.Errorf("repainted = %d after SetText, want 1", n)
	}
	if txt.NeedsRepaint() {
		t.Error("Render should clear the repaint flag")
	}
}

func TestRenderBeforeLayoutIsAContractViolation(t *testing.T) {
	old := errors.DefaultHandler
	errors.SetHandler(&errors.LogHandler{Out: discard{}})
	defer errors.SetHandler(old)

	s := scene.New()
	s.Add(widgets.TextAt(0, 0, "x", 1, graphics.ColorWhite))

	t.Run("strict", func(t *testing.T) {
		defer func() {
			if _, ok := recover().(*errors.ContractError); !ok {
				t.Error("expected a *errors.ContractError panic")
			}
		}()
		s.Render(&raster.Recorder{})
	})

	t.Run("lenient", func(t *testing.T) {
		errors.SetStrict(false)
		defer errors.SetStrict(true)
		rec := &raster.Recorder{}
		s.Render(rec)
		if len(rec.Ops()) != 0 {
			t.Error("lenient mode should skip rendering")
		}
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
