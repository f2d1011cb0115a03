// Package input carries host pointer samples into the frame loop.
package input

import (
	"fmt"
	"sync"

	"github.com/go-fern/fern/pkg/graphics"
)

// Pointer is a snapshot of the pointer for one frame: position in buffer
// pixels and whether the primary button is held.
type Pointer struct {
	X    float64
	Y    float64
	Down bool
}

// Position returns the pointer location as an offset.
func (p Pointer) Position() graphics.Offset {
	return graphics.Offset{X: p.X, Y: p.Y}
}

func (p Pointer) String() string {
	state := "up"
	if p.Down {
		state = "down"
	}
	return fmt.Sprintf("Pointer(%g, %g, %s)", p.X, p.Y, state)
}

// Feed holds the latest pointer sample. Hosts may write it from an event
// goroutine while the frame loop reads it once per step; only the most recent
// sample survives, intermediate moves are dropped.
type Feed struct {
	mu      sync.Mutex
	latest  Pointer
	samples uint64
}

// Set replaces the current sample.
func (f *Feed) Set(p Pointer) {
	f.mu.Lock()
	f.latest = p
	f.samples++
	f.mu.Unlock()
}

// Move updates the position and keeps the button state.
func (f *Feed) Move(x, y float64) {
	f.mu.Lock()
	f.latest.X, f.latest.Y = x, y
	f.samples++
	f.mu.Unlock()
}

// Press sets the button state and keeps the position.
func (f *Feed) Press(down bool) {
	f.mu.Lock()
	f.latest.Down = down
	f.samples++
	f.mu.Unlock()
}

// Latest returns the most recent sample.
func (f *Feed) Latest() Pointer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest
}

// Samples returns how many samples have been written.
func (f *Feed) Samples() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.samples
}
