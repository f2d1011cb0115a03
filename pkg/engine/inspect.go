package engine

import (
	"encoding/json"
	"math"
	"reflect"
	"time"

	"github.com/go-fern/fern/pkg/scene"
	"github.com/go-fern/fern/pkg/widgets"
)

// maxTreeDepth limits recursion depth to prevent stack overflow from malformed trees.
const maxTreeDepth = 500

// SafeFloat wraps a float64 to handle Inf/NaN in JSON encoding.
type SafeFloat float64

func (f SafeFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsInf(v, 1) {
		return []byte(`"Infinity"`), nil
	}
	if math.IsInf(v, -1) {
		return []byte(`"-Infinity"`), nil
	}
	if math.IsNaN(v) {
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// SafeRect is a JSON-safe version of graphics.Rect.
type SafeRect struct {
	X      SafeFloat `json:"x"`
	Y      SafeFloat `json:"y"`
	Width  SafeFloat `json:"width"`
	Height SafeFloat `json:"height"`
}

// WidgetNode is one widget in a serialized scene.
type WidgetNode struct {
	Type     string       `json:"type"`
	Bounds   SafeRect     `json:"bounds"`
	Depth    int          `json:"depth"`
	Text     string       `json:"text,omitempty"`
	State    string       `json:"state,omitempty"`
	Children []WidgetNode `json:"children,omitempty"`
}

// Snapshot is the scene as it was at the end of a frame.
type Snapshot struct {
	Frame   uint64       `json:"frame"`
	TakenAt time.Time    `json:"takenAt"`
	Roots   []WidgetNode `json:"roots"`
}

// Snapshot returns the tree captured at the end of the last frame, or nil
// when inspection is off. Inspection is on while the debug server runs.
func (e *Engine) Snapshot() *Snapshot {
	e.snapMu.RLock()
	defer e.snapMu.RUnlock()
	return e.snapshot
}

// publishSnapshot serializes the scene so HTTP handlers never touch live
// widgets from another goroutine.
func (e *Engine) publishSnapshot(stats Stats) {
	snap := &Snapshot{Frame: stats.Frame, TakenAt: time.Now(), Roots: SerializeScene(e.scene)}
	e.snapMu.Lock()
	e.snapshot = snap
	e.lastPublished = stats
	e.snapMu.Unlock()
}

// SerializeScene returns the widget tree of every root in paint order.
func SerializeScene(sc *scene.Scene) []WidgetNode {
	var roots []WidgetNode
	for _, root := range sc.Roots() {
		roots = append(roots, serializeWidget(root, 0))
	}
	return roots
}

func serializeWidget(w widgets.Widget, depth int) WidgetNode {
	r := w.Bounds()
	node := WidgetNode{
		Type:   reflect.TypeOf(w).String(),
		Bounds: SafeRect{X: SafeFloat(r.X), Y: SafeFloat(r.Y), Width: SafeFloat(r.Width), Height: SafeFloat(r.Height)},
		Depth:  depth,
	}
	switch v := w.(type) {
	case *widgets.Text:
		node.Text = v.Content
	case *widgets.Button:
		node.Text = v.Label
		node.State = v.State().String()
	}
	if depth >= maxTreeDepth {
		return node
	}
	w.VisitChildren(func(child widgets.Widget) {
		node.Children = append(node.Children, serializeWidget(child, depth+1))
	})
	return node
}
