package raster

import (
	"fmt"

	"github.com/go-fern/fern/pkg/graphics"
)

// OpKind identifies a recorded rasterizer call.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpDrawText
)

// String returns a human-readable representation of the op kind.
func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "FillRect"
	case OpDrawText:
		return "DrawText"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded rasterizer call.
type Op struct {
	Kind   OpKind
	Rect   graphics.Rect   // FillRect
	Origin graphics.Offset // DrawText
	Text   string          // DrawText
	Scale  float64         // DrawText
	Color  graphics.Color
}

func (o Op) String() string {
	if o.Kind == OpDrawText {
		return fmt.Sprintf("DrawText(%v, %q, %g, %s)", o.Origin, o.Text, o.Scale, o.Color)
	}
	return fmt.Sprintf("FillRect(%v, %s)", o.Rect, o.Color)
}

// Recorder is a Rasterizer that records every call and optionally forwards
// it to Target.
type Recorder struct {
	Target Rasterizer
	ops    []Op
}

// FillRect implements Rasterizer.
func (r *Recorder) FillRect(rect graphics.Rect, color graphics.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Rect: rect, Color: color})
	if r.Target != nil {
		r.Target.FillRect(rect, color)
	}
}

// DrawText implements Rasterizer.
func (r *Recorder) DrawText(origin graphics.Offset, text string, scale float64, color graphics.Color) {
	r.ops = append(r.ops, Op{Kind: OpDrawText, Origin: origin, Text: text, Scale: scale, Color: color})
	if r.Target != nil {
		r.Target.DrawText(origin, text, scale, color)
	}
}

// Ops returns the calls recorded since the last Reset.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Texts returns the text of every DrawText call in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpDrawText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset discards recorded calls.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
