package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-fern/fern/pkg/scene"
	"github.com/go-fern/fern/pkg/widgets"
)

// Finder locates widgets in a scene.
type Finder interface {
	// Evaluate returns all matching widgets in paint order (depth-first pre-order).
	Evaluate(sc *scene.Scene) []widgets.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []widgets.Widget
	finder  Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widgets.Widget {
	if len(r.widgets) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() widgets.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widgets.Widget {
	if index < 0 || index >= len(r.widgets) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.widgets), r.description()))
	}
	return r.widgets[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []widgets.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// predicateFinder matches widgets satisfying a predicate.
type predicateFinder struct {
	fn   func(widgets.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(sc *scene.Scene) []widgets.Widget {
	var results []widgets.Widget
	sc.Walk(func(w widgets.Widget) bool {
		if f.fn(w) {
			results = append(results, w)
		}
		return true
	})
	return results
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(widgets.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByType returns a finder that matches widgets of type T, usually a pointer
// type such as *widgets.Button.
func ByType[T widgets.Widget]() Finder {
	t := reflect.TypeFor[T]()
	return &predicateFinder{
		fn:   func(w widgets.Widget) bool { return reflect.TypeOf(w) == t },
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

// ByText returns a finder that matches [widgets.Text] with exact content.
// Button labels are matched too, since a button paints its label as text.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(w widgets.Widget) bool {
			t, ok := w.(*widgets.Text)
			return ok && t.Content == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches [widgets.Text] containing
// the given substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(w widgets.Widget) bool {
			t, ok := w.(*widgets.Text)
			return ok && strings.Contains(t.Content, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// ByLabel returns a finder that matches a [widgets.Button] by label.
func ByLabel(label string) Finder {
	return &predicateFinder{
		fn: func(w widgets.Widget) bool {
			b, ok := w.(*widgets.Button)
			return ok && b.Label == label
		},
		desc: fmt.Sprintf("ByLabel(%q)", label),
	}
}

// ByWidget returns a finder that matches one specific widget instance.
func ByWidget(target widgets.Widget) Finder {
	return &predicateFinder{
		fn:   func(w widgets.Widget) bool { return w == target },
		desc: fmt.Sprintf("ByWidget(%T)", target),
	}
}

// descendantFinder finds widgets matching 'matching' under widgets matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(sc *scene.Scene) []widgets.Widget {
	ancestors := f.of.Evaluate(sc)
	if len(ancestors) == 0 {
		return nil
	}
	candidates := f.matching.Evaluate(sc)
	var results []widgets.Widget
	seen := make(map[widgets.Widget]bool)
	for _, ancestor := range ancestors {
		for _, c := range candidates {
			if !seen[c] && c != ancestor && contains(ancestor, c) {
				seen[c] = true
				results = append(results, c)
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches widgets satisfying 'matching'
// that are descendants of widgets matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// contains reports whether target is in root's subtree.
func contains(root, target widgets.Widget) bool {
	found := false
	widgets.Walk(root, func(w widgets.Widget) bool {
		if w == target {
			found = true
		}
		return !found
	})
	return found
}
