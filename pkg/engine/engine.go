// Package engine drives fern frames over a caller-owned pixel buffer.
//
// Each call to Step runs one frame, strictly in this order: take the pointer
// sample, dispatch it to interactive widgets, lay out every root against the
// buffer, clear the buffer and render every root. The engine never blocks and
// never spawns goroutines; the host decides when frames happen.
package engine

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-fern/fern/pkg/errors"
	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/input"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/scene"
)

// DefaultClearColor is the background painted before the widgets when no
// other color is configured.
const DefaultClearColor = graphics.ColorDarkGray

// Stats describes one frame.
type Stats struct {
	// Frame is the 1-based frame number.
	Frame uint64
	// Pointer is the sample dispatched this frame.
	Pointer input.Pointer
	// Roots is the number of scene roots rendered.
	Roots int
	// Interactive is the number of interactive widgets that saw the pointer.
	Interactive int
	// Clicks is the number of clicks completed this frame.
	Clicks int
	// Repainted is the number of widgets whose content changed since the
	// previous frame.
	Repainted int
	// Duration is the wall time spent in the frame.
	Duration time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("frame %d: roots=%d interactive=%d clicks=%d repainted=%d %v (%s)",
		s.Frame, s.Roots, s.Interactive, s.Clicks, s.Repainted, s.Pointer, s.Duration)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClearColor sets the color the buffer is cleared to before each frame.
func WithClearColor(c graphics.Color) Option {
	return func(e *Engine) { e.clearColor = c }
}

// WithRecorder routes widget rendering through rec, which forwards to the
// engine's canvas.
func WithRecorder(rec *raster.Recorder) Option {
	return func(e *Engine) {
		rec.Target = e.canvas
		e.target = rec
	}
}

// WithDiagnostics enables the diagnostics overlay and frame timing history.
func WithDiagnostics(cfg *DiagnosticsConfig) Option {
	return func(e *Engine) { e.SetDiagnostics(cfg) }
}

// Engine owns the per-frame sequence for one scene and one buffer.
// Step, Frame and the setters must be called from one goroutine; only
// Input().Set may be called concurrently.
type Engine struct {
	scene      *scene.Scene
	buf        *raster.Buffer
	canvas     *raster.Canvas
	target     raster.Rasterizer
	feed       input.Feed
	clearColor graphics.Color
	draw       func(c *raster.Canvas)
	frame      uint64
	last       Stats

	diagnostics *DiagnosticsConfig
	timings     *FrameTimingBuffer

	inspecting    atomic.Bool
	snapMu        sync.RWMutex
	snapshot      *Snapshot
	lastPublished Stats
	debug         *debugServer
}

// New creates an engine rendering sc into buf. A nil scene is replaced by an
// empty one. The buffer is validated on every frame, not here.
func New(buf *raster.Buffer, sc *scene.Scene, opts ...Option) *Engine {
	if sc == nil {
		sc = scene.New()
	}
	e := &Engine{
		scene:      sc,
		buf:        buf,
		canvas:     raster.NewCanvas(buf),
		clearColor: DefaultClearColor,
		timings:    NewFrameTimingBuffer(60),
	}
	e.target = e.canvas
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scene returns the scene the engine renders.
func (e *Engine) Scene() *scene.Scene { return e.scene }

// Buffer returns the target buffer.
func (e *Engine) Buffer() *raster.Buffer { return e.buf }

// Canvas returns the canvas over the target buffer.
func (e *Engine) Canvas() *raster.Canvas { return e.canvas }

// Input returns the pointer feed read at the start of each frame.
func (e *Engine) Input() *input.Feed { return &e.feed }

// Stats returns the statistics of the last completed frame.
func (e *Engine) Stats() Stats { return e.last }

// Timings returns the frame duration history.
func (e *Engine) Timings() *FrameTimingBuffer { return e.timings }

// SetClearColor changes the background color.
func (e *Engine) SetClearColor(c graphics.Color) { e.clearColor = c }

// SetDrawCallback installs a hook that runs after the buffer is cleared and
// before the widgets render. Pass nil to remove it.
func (e *Engine) SetDrawCallback(fn func(c *raster.Canvas)) { e.draw = fn }

// Step stores p as the latest pointer sample and runs one frame.
func (e *Engine) Step(p input.Pointer) Stats {
	e.feed.Set(p)
	return e.Frame()
}

// Frame runs one frame with the latest sample in the input feed.
func (e *Engine) Frame() Stats {
	if !e.buf.Valid() {
		errors.Violation("engine.Frame", "target buffer is missing or smaller than its declared size")
		return e.last
	}
	start := time.Now()
	p := e.feed.Latest()
	size := e.buf.Size()

	// Roots added since the last frame have never been arranged; lay them out
	// so the pointer is tested against real rects.
	if e.scene.NeedsLayout() {
		e.scene.Layout(size)
	}
	res := e.scene.Dispatch(p)

	e.scene.Layout(size)

	e.canvas.Clear(e.clearColor)
	if e.draw != nil {
		e.draw(e.canvas)
	}
	repainted := e.scene.Render(e.target)

	e.frame++
	stats := Stats{
		Frame:       e.frame,
		Pointer:     p,
		Roots:       e.scene.Len(),
		Interactive: res.Interactive,
		Clicks:      res.Clicks,
		Repainted:   repainted,
	}
	e.paintDiagnostics()
	stats.Duration = time.Since(start)
	e.timings.Add(stats.Duration)
	e.last = stats
	if e.inspecting.Load() {
		e.publishSnapshot(stats)
	}
	return stats
}

// Run calls Frame at the given rate until ctx is done, passing each frame's
// stats to present. It returns ctx.Err().
func (e *Engine) Run(ctx context.Context, fps int, present func(Stats)) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stats := e.Frame()
			if present != nil {
				present(stats)
			}
		}
	}
}
