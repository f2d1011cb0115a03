package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/raster"
	"github.com/go-fern/fern/pkg/widgets"
)

// DiagnosticsPosition specifies where the frame time readout is displayed.
type DiagnosticsPosition int

const (
	// DiagnosticsTopLeft positions the readout in the top-left corner.
	DiagnosticsTopLeft DiagnosticsPosition = iota
	// DiagnosticsTopRight positions the readout in the top-right corner.
	DiagnosticsTopRight
	// DiagnosticsBottomLeft positions the readout in the bottom-left corner.
	DiagnosticsBottomLeft
	// DiagnosticsBottomRight positions the readout in the bottom-right corner.
	DiagnosticsBottomRight
)

// DiagnosticsConfig controls the overlay painted after the widgets.
type DiagnosticsConfig struct {
	// ShowFrameTime draws the average frame time of recent frames.
	ShowFrameTime bool
	// ShowLayoutBounds outlines the arranged rect of every widget.
	ShowLayoutBounds bool
	// Position controls where the frame time readout is displayed.
	Position DiagnosticsPosition
	// Samples is the number of frames kept in the timing history.
	// Defaults to 60 if zero.
	Samples int
	// TargetFrameTime is the budget above which the readout turns red.
	// Defaults to 16.67ms (60fps) if zero.
	TargetFrameTime time.Duration
}

// DefaultDiagnosticsConfig returns a DiagnosticsConfig with sensible defaults.
func DefaultDiagnosticsConfig() *DiagnosticsConfig {
	return &DiagnosticsConfig{
		ShowFrameTime:   true,
		Position:        DiagnosticsTopRight,
		Samples:         60,
		TargetFrameTime: 16667 * time.Microsecond, // ~16.67ms for 60fps
	}
}

// SetDiagnostics replaces the overlay configuration. Nil disables it.
// The timing buffer is resized in place, so the debug server may keep
// reading it.
func (e *Engine) SetDiagnostics(cfg *DiagnosticsConfig) {
	e.diagnostics = cfg
	if cfg != nil && cfg.Samples > 0 {
		e.timings.Resize(cfg.Samples)
	}
}

var boundsColor = graphics.RGBA8(0xFF, 0x00, 0xFF, 0xA0)

func (e *Engine) paintDiagnostics() {
	cfg := e.diagnostics
	if cfg == nil {
		return
	}
	if cfg.ShowLayoutBounds {
		e.scene.Walk(func(w widgets.Widget) bool {
			outline(e.canvas, w.Bounds(), boundsColor)
			return true
		})
	}
	if cfg.ShowFrameTime {
		e.paintFrameTime(cfg)
	}
}

func (e *Engine) paintFrameTime(cfg *DiagnosticsConfig) {
	avg := e.timings.Average()
	label := fmt.Sprintf("%.2fms", float64(avg)/float64(time.Millisecond))

	target := cfg.TargetFrameTime
	if target <= 0 {
		target = 16667 * time.Microsecond
	}
	color := graphics.ColorGreen
	if avg > target {
		color = graphics.ColorRed
	}

	const margin = 4
	size := e.canvas.Font().Measure(label, 1)
	bufSize := e.buf.Size()
	x, y := float64(margin), float64(margin)
	switch cfg.Position {
	case DiagnosticsTopRight:
		x = bufSize.Width - size.Width - margin
	case DiagnosticsBottomLeft:
		y = bufSize.Height - size.Height - margin
	case DiagnosticsBottomRight:
		x = bufSize.Width - size.Width - margin
		y = bufSize.Height - size.Height - margin
	}
	bg := graphics.RectFromLTWH(x-2, y-2, size.Width+4, size.Height+4)
	e.canvas.FillRect(bg, graphics.ColorBlack.WithAlpha8(0xB0))
	e.canvas.DrawText(graphics.Offset{X: x, Y: y}, label, 1, color)
}

// outline draws a one pixel border inside r.
func outline(c raster.Rasterizer, r graphics.Rect, color graphics.Color) {
	if r.IsEmpty() {
		return
	}
	c.FillRect(graphics.RectFromLTWH(r.X, r.Y, r.Width, 1), color)
	c.FillRect(graphics.RectFromLTWH(r.X, r.Bottom()-1, r.Width, 1), color)
	c.FillRect(graphics.RectFromLTWH(r.X, r.Y, 1, r.Height), color)
	c.FillRect(graphics.RectFromLTWH(r.Right()-1, r.Y, 1, r.Height), color)
}

// FrameTimingBuffer is a ring buffer for storing frame durations.
type FrameTimingBuffer struct {
	mu       sync.RWMutex
	samples  []time.Duration
	index    int
	capacity int
	count    int
}

// NewFrameTimingBuffer creates a new FrameTimingBuffer with the given capacity.
func NewFrameTimingBuffer(capacity int) *FrameTimingBuffer {
	if capacity <= 0 {
		capacity = 60
	}
	return &FrameTimingBuffer{
		samples:  make([]time.Duration, capacity),
		capacity: capacity,
	}
}

// Add records a frame duration to the buffer.
func (b *FrameTimingBuffer) Add(duration time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.samples[b.index] = duration
	b.index = (b.index + 1) % b.capacity
	if b.count < b.capacity {
		b.count++
	}
}

// Resize changes the capacity, keeping the most recent samples.
func (b *FrameTimingBuffer) Resize(capacity int) {
	if capacity <= 0 {
		capacity = 60
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if capacity == b.capacity {
		return
	}
	kept := b.ordered()
	if len(kept) > capacity {
		kept = kept[len(kept)-capacity:]
	}
	b.samples = make([]time.Duration, capacity)
	copy(b.samples, kept)
	b.capacity = capacity
	b.count = len(kept)
	b.index = b.count % capacity
}

// Capacity returns the maximum number of samples kept.
func (b *FrameTimingBuffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.capacity
}

// Samples returns a copy of the frame samples in chronological order.
func (b *FrameTimingBuffer) Samples() []time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ordered()
}

// ordered returns the samples oldest first. The caller holds b.mu.
func (b *FrameTimingBuffer) ordered() []time.Duration {
	if b.count == 0 {
		return nil
	}
	result := make([]time.Duration, b.count)
	if b.count < b.capacity {
		copy(result, b.samples[:b.count])
	} else {
		// Full: the oldest sample is at b.index.
		copy(result, b.samples[b.index:])
		copy(result[b.capacity-b.index:], b.samples[:b.index])
	}
	return result
}

// Average returns the mean of the stored samples, or zero when empty.
func (b *FrameTimingBuffer) Average() time.Duration {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.count == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range b.samples[:b.count] {
		total += d
	}
	return total / time.Duration(b.count)
}

// Count returns the number of samples currently in the buffer.
func (b *FrameTimingBuffer) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.count
}
