package testing

import (
	"fmt"

	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
)

// MoveTo moves the pointer, keeping the button state, and runs one frame.
func (t *SceneTester) MoveTo(pos graphics.Offset) engine.Stats {
	t.pointer.X, t.pointer.Y = pos.X, pos.Y
	return t.Pump()
}

// PointerDown presses the button at the current position and runs one frame.
func (t *SceneTester) PointerDown() engine.Stats {
	t.pointer.Down = true
	return t.Pump()
}

// PointerUp releases the button at the current position and runs one frame.
func (t *SceneTester) PointerUp() engine.Stats {
	t.pointer.Down = false
	return t.Pump()
}

// Send runs one frame with p as the pointer sample.
func (t *SceneTester) Send(p input.Pointer) engine.Stats {
	t.pointer = p
	return t.Pump()
}

// TapAt presses and releases at pos over two frames and returns the number
// of clicks completed.
func (t *SceneTester) TapAt(pos graphics.Offset) int {
	t.pointer = input.Pointer{X: pos.X, Y: pos.Y, Down: true}
	clicks := t.Pump().Clicks
	t.pointer.Down = false
	return clicks + t.Pump().Clicks
}

// Tap taps the center of the first widget matched by finder.
func (t *SceneTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no widgets: %s", finder.Description())
	}
	bounds := result.First().Bounds()
	if bounds.IsEmpty() {
		return fmt.Errorf("Tap: widget has empty bounds %v: %s", bounds, finder.Description())
	}
	if t.TapAt(bounds.Center()) == 0 {
		return fmt.Errorf("Tap: no click completed at %v: %s", bounds.Center(), finder.Description())
	}
	return nil
}

// DragFrom presses at start, moves by delta, and releases over three frames.
// It returns the number of clicks completed.
func (t *SceneTester) DragFrom(start, delta graphics.Offset) int {
	t.pointer = input.Pointer{X: start.X, Y: start.Y, Down: true}
	clicks := t.Pump().Clicks
	end := start.Add(delta)
	t.pointer.X, t.pointer.Y = end.X, end.Y
	clicks += t.Pump().Clicks
	t.pointer.Down = false
	return clicks + t.Pump().Clicks
}
