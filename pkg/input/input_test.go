package input

import (
	"sync"
	"testing"
)

func TestFeedKeepsLatest(t *testing.T) {
	var f Feed
	f.Set(Pointer{X: 1, Y: 2})
	f.Set(Pointer{X: 3, Y: 4, Down: true})

	if got := f.Latest(); got != (Pointer{X: 3, Y: 4, Down: true}) {
		t.Errorf("Latest = %v", got)
	}
	if f.Samples() != 2 {
		t.Errorf("Samples = %d, want 2", f.Samples())
	}
}

func TestFeedMoveAndPress(t *testing.T) {
	var f Feed
	f.Press(true)
	f.Move(10, 20)
	if got := f.Latest(); got != (Pointer{X: 10, Y: 20, Down: true}) {
		t.Errorf("Latest = %v", got)
	}
	f.Press(false)
	if got := f.Latest(); got.Down || got.X != 10 {
		t.Errorf("Latest after release = %v", got)
	}
}

func TestFeedConcurrentWriters(t *testing.T) {
	var f Feed
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.Move(float64(i), float64(j))
				_ = f.Latest()
			}
		}(i)
	}
	wg.Wait()
	if f.Samples() != 800 {
		t.Errorf("Samples = %d, want 800", f.Samples())
	}
}

func TestPointerString(t *testing.T) {
	if got := (Pointer{X: 1.5, Y: 2, Down: true}).String(); got != "Pointer(1.5, 2, down)" {
		t.Errorf("String = %q", got)
	}
}
