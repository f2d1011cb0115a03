// Package demo holds the sample scenes shared by the fern hosts.
package demo

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-fern/fern/pkg/graphics"
	"github.com/go-fern/fern/pkg/scene"
)

// Demo builds a sample UI into a scene.
type Demo interface {
	// Install replaces the scene's roots with the demo's widgets, laid out
	// for a buffer of the given size.
	Install(sc *scene.Scene, size graphics.Size)
	// ClearColor is the background painted before the widgets.
	ClearColor() graphics.Color
}

// Sized is implemented by demos laid out for a fixed buffer size. Hosts use
// it instead of the configured surface size unless told otherwise.
type Sized interface {
	PreferredSize() graphics.Size
}

var registry = map[string]func(fontScale float64) Demo{
	"counter": func(s float64) Demo { return NewCounter(s) },
	"player":  func(s float64) Demo { return NewPlayer(s) },
}

// Names returns the registered demo names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns a fresh instance of the named demo. Text in the demo is
// scaled by fontScale; zero means 1.
func Lookup(name string, fontScale float64) (Demo, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	if fontScale <= 0 {
		fontScale = 1
	}
	return ctor(fontScale), nil
}
