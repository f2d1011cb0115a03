package raster

import (
	"image/color"
	"math"

	"github.com/go-fern/fern/pkg/graphics"
)

// Canvas rasterizes into a Buffer. Every operation is clipped to the current
// clip rect, which defaults to the whole buffer.
type Canvas struct {
	buf   *Buffer
	font  *Font
	clip  graphics.Rect
	clips []graphics.Rect
}

// NewCanvas returns a canvas drawing into buf with the default font.
func NewCanvas(buf *Buffer) *Canvas {
	c := &Canvas{buf: buf, font: DefaultFont}
	c.clip = c.bufferRect()
	return c
}

// Buffer returns the target buffer.
func (c *Canvas) Buffer() *Buffer { return c.buf }

// Font returns the font used by DrawText.
func (c *Canvas) Font() *Font { return c.font }

// SetFont replaces the font. A nil font restores DefaultFont.
func (c *Canvas) SetFont(f *Font) {
	if f == nil {
		f = DefaultFont
	}
	c.font = f
}

// Clear overwrites the whole buffer with color, ignoring the clip.
func (c *Canvas) Clear(color graphics.Color) {
	c.buf.Fill(color)
}

// PushClip narrows the clip to its intersection with rect.
func (c *Canvas) PushClip(rect graphics.Rect) {
	c.clips = append(c.clips, c.clip)
	c.clip = c.clip.Intersect(rect)
}

// PopClip restores the clip active before the matching PushClip.
func (c *Canvas) PopClip() {
	if len(c.clips) == 0 {
		c.clip = c.bufferRect()
		return
	}
	c.clip = c.clips[len(c.clips)-1]
	c.clips = c.clips[:len(c.clips)-1]
}

// FillRect implements Rasterizer.
func (c *Canvas) FillRect(rect graphics.Rect, color graphics.Color) {
	if color.IsTransparent() {
		return
	}
	x0, y0 := round(rect.X), round(rect.Y)
	x1, y1 := round(rect.Right()), round(rect.Bottom())
	c.fill(x0, y0, x1, y1, color)
}

// DrawText implements Rasterizer. Each glyph pixel becomes a scale×scale
// block; partial glyph coverage is applied as alpha.
func (c *Canvas) DrawText(origin graphics.Offset, text string, scale float64, col graphics.Color) {
	if scale <= 0 || text == "" || col.IsTransparent() {
		return
	}
	advance := c.font.Advance() * scale
	cellX := origin.X
	for _, r := range text {
		if r != ' ' {
			c.drawGlyph(r, cellX, origin.Y, scale, col)
		}
		cellX += advance
	}
}

func (c *Canvas) drawGlyph(r rune, ox, oy, scale float64, col graphics.Color) {
	dr, mask, maskp, ok := c.font.glyph(r)
	if !ok {
		return
	}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		by0 := round(oy + float64(y)*scale)
		by1 := round(oy + float64(y+1)*scale)
		for x := dr.Min.X; x < dr.Max.X; x++ {
			a := coverage(mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y))
			if a == 0 {
				continue
			}
			bx0 := round(ox + float64(x)*scale)
			bx1 := round(ox + float64(x+1)*scale)
			px := col
			if a < 0xFF {
				px = col.WithAlpha8(uint8(uint32(col.A()) * uint32(a) / 0xFF))
			}
			c.fill(bx0, by0, bx1, by1, px)
		}
	}
}

// fill paints the half-open pixel box [x0,x1)×[y0,y1) after clipping.
func (c *Canvas) fill(x0, y0, x1, y1 int, col graphics.Color) {
	if !c.buf.Valid() {
		return
	}
	cx0, cy0 := round(c.clip.X), round(c.clip.Y)
	cx1, cy1 := round(c.clip.Right()), round(c.clip.Bottom())
	x0, y0 = max(x0, cx0), max(y0, cy0)
	x1, y1 = min(x1, cx1), min(y1, cy1)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	w := c.buf.Width
	opaque := col.IsOpaque()
	for y := y0; y < y1; y++ {
		row := c.buf.Pix[y*w : y*w+w]
		for x := x0; x < x1; x++ {
			if opaque {
				row[x] = uint32(col)
			} else {
				row[x] = uint32(col.Blend(graphics.Color(row[x])))
			}
		}
	}
}

func (c *Canvas) bufferRect() graphics.Rect {
	if c.buf == nil {
		return graphics.Rect{}
	}
	return graphics.RectFromLTWH(0, 0, float64(c.buf.Width), float64(c.buf.Height))
}

func coverage(c color.Color) uint8 {
	_, _, _, a := c.RGBA()
	return uint8(a >> 8)
}

func round(v float64) int {
	return int(math.Round(v))
}
