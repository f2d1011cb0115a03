package raster

import (
	"image"
	"math"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-fern/fern/pkg/graphics"
)

// Font supplies fixed-advance glyph masks and metrics for bitmap text.
type Font struct {
	face    font.Face
	advance float64
	height  float64
	ascent  float64
}

// DefaultFont is the 7×13 bitmap face every widget measures against.
var DefaultFont = NewFont(basicfont.Face7x13)

// NewFont wraps a font.Face. Metrics are taken from the face's 'M' advance
// and its line metrics.
func NewFont(face font.Face) *Font {
	m := face.Metrics()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		adv = m.Height / 2
	}
	return &Font{
		face:    face,
		advance: fixedToFloat(adv),
		height:  fixedToFloat(m.Height),
		ascent:  fixedToFloat(m.Ascent),
	}
}

// Advance returns the unscaled horizontal advance of one glyph.
func (f *Font) Advance() float64 { return f.advance }

// LineHeight returns the unscaled height of a line.
func (f *Font) LineHeight() float64 { return f.height }

// Measure returns the size of text drawn at scale. Scales at or below zero
// measure as zero.
func (f *Font) Measure(text string, scale float64) graphics.Size {
	if scale <= 0 || text == "" {
		return graphics.Size{}
	}
	n := float64(utf8.RuneCountInString(text))
	return graphics.Size{Width: n * f.advance * scale, Height: f.height * scale}
}

// glyph returns the coverage mask of r positioned relative to the top-left
// corner of its cell.
func (f *Font) glyph(r rune) (image.Rectangle, image.Image, image.Point, bool) {
	dot := fixed.P(0, int(math.Round(f.ascent)))
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok {
		dr, mask, maskp, _, ok = f.face.Glyph(dot, '?')
	}
	return dr, mask, maskp, ok
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
