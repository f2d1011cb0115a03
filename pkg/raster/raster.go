// Package raster turns widget paint calls into pixels.
//
// The widget tree only ever talks to a Rasterizer. Canvas is the provided
// implementation over a caller-owned Buffer; Recorder captures the calls for
// tests and diagnostics.
package raster

import "github.com/go-fern/fern/pkg/graphics"

// Rasterizer is the primitive drawing surface widgets render into.
// Clipping to the target is the rasterizer's responsibility.
type Rasterizer interface {
	// FillRect fills rect with color, blending when color is translucent.
	FillRect(rect graphics.Rect, color graphics.Color)
	// DrawText draws text with its top-left corner at origin, each glyph
	// pixel magnified by scale.
	DrawText(origin graphics.Offset, text string, scale float64, color graphics.Color)
}
