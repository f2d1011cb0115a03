package testing

import (
	"testing"

	"github.com/go-fern/fern/pkg/engine"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/scene"
	"github.com/go-fern/fern/pkg/widgets"
)

const (
	// DefaultTestWidth is the default width of the test buffer.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test buffer.
	DefaultTestHeight = 600
)

// SceneTester runs frames against an in-memory buffer. Every frame is
// rendered through a recorder that forwards to the buffer's canvas.
type SceneTester struct {
	scene   *scene.Scene
	buf     *raster.Buffer
	rec     *raster.Recorder
	engine  *engine.Engine
	pointer input.Pointer
	stats   []engine.Stats
}

// NewSceneTester creates a tester with a DefaultTestWidth x DefaultTestHeight
// buffer and an empty scene.
func NewSceneTester() *SceneTester {
	t := &SceneTester{scene: scene.New()}
	t.SetSize(DefaultTestWidth, DefaultTestHeight)
	return t
}

// NewSceneTesterWithT creates a tester that clears its scene via t.Cleanup().
// This is the recommended constructor for tests.
func NewSceneTesterWithT(t *testing.T) *SceneTester {
	tester := NewSceneTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup drops every root and recorded frame.
func (t *SceneTester) Cleanup() {
	t.scene.Clear()
	t.rec.Reset()
	t.stats = nil
}

// SetSize replaces the buffer. Roots are kept and laid out again on the
// next frame.
func (t *SceneTester) SetSize(width, height int) {
	t.buf = raster.AllocBuffer(width, height)
	t.rec = &raster.Recorder{}
	t.engine = engine.New(t.buf, t.scene, engine.WithRecorder(t.rec))
	t.stats = nil
}

// Size returns the buffer size.
func (t *SceneTester) Size() graphics.Size {
	return t.buf.Size()
}

// Add appends roots to the scene and runs one frame.
func (t *SceneTester) Add(roots ...widgets.Widget) engine.Stats {
	t.scene.Add(roots...)
	return t.Pump()
}

// Replace clears the scene, adds roots, and runs one frame.
func (t *SceneTester) Replace(roots ...widgets.Widget) engine.Stats {
	t.scene.Clear()
	return t.Add(roots...)
}

// Pump runs one frame with the current pointer. Recorded ops only cover the
// most recent frame.
func (t *SceneTester) Pump() engine.Stats {
	t.rec.Reset()
	stats := t.engine.Step(t.pointer)
	t.stats = append(t.stats, stats)
	return stats
}

// PumpN runs n frames and returns the stats of the last one.
func (t *SceneTester) PumpN(n int) engine.Stats {
	var stats engine.Stats
	for range n {
		stats = t.Pump()
	}
	return stats
}

// Scene returns the scene under test.
func (t *SceneTester) Scene() *scene.Scene { return t.scene }

// Engine returns the engine driving the scene.
func (t *SceneTester) Engine() *engine.Engine { return t.engine }

// Buffer returns the target buffer.
func (t *SceneTester) Buffer() *raster.Buffer { return t.buf }

// Pointer returns the pointer used by the next frame.
func (t *SceneTester) Pointer() input.Pointer { return t.pointer }

// Ops returns the rasterizer calls of the last frame.
func (t *SceneTester) Ops() []raster.Op { return t.rec.Ops() }

// Texts returns the strings drawn in the last frame.
func (t *SceneTester) Texts() []string { return t.rec.Texts() }

// Pixel returns the buffer color at (x, y).
func (t *SceneTester) Pixel(x, y int) graphics.Color {
	return t.buf.Pixel(x, y)
}

// History returns the stats of every frame since the last SetSize.
func (t *SceneTester) History() []engine.Stats { return t.stats }

// Clicks returns the total clicks across History.
func (t *SceneTester) Clicks() int {
	total := 0
	for _, s := range t.stats {
		total += s.Clicks
	}
	return total
}

// Find evaluates a finder against the current scene.
func (t *SceneTester) Find(finder Finder) FinderResult {
	return FinderResult{
		widgets: finder.Evaluate(t.scene),
		finder:  finder,
	}
}
