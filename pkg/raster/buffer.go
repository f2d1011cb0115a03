package raster

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-fern/fern/pkg/graphics"
)

// Buffer is a caller-owned block of 0xAARRGGBB pixels, row-major with no
// padding between rows. It implements draw.Image so it can be handed to the
// image encoders and x/image/draw directly.
type Buffer struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewBuffer wraps pix as a width×height surface. The slice is not copied.
func NewBuffer(pix []uint32, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid buffer size %dx%d", width, height)
	}
	if len(pix) < width*height {
		return nil, fmt.Errorf("raster: buffer holds %d pixels, need %d for %dx%d",
			len(pix), width*height, width, height)
	}
	return &Buffer{Pix: pix, Width: width, Height: height}, nil
}

// AllocBuffer allocates a zeroed width×height buffer.
func AllocBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{Pix: make([]uint32, width*height), Width: width, Height: height}
}

// Valid reports whether the buffer has a positive size and enough pixels.
func (b *Buffer) Valid() bool {
	return b != nil && b.Width > 0 && b.Height > 0 && len(b.Pix) >= b.Width*b.Height
}

// Size returns the buffer extent as a graphics.Size.
func (b *Buffer) Size() graphics.Size {
	return graphics.Size{Width: float64(b.Width), Height: float64(b.Height)}
}

// Pixel returns the color at (x, y), or transparent outside the buffer.
func (b *Buffer) Pixel(x, y int) graphics.Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return graphics.ColorTransparent
	}
	return graphics.Color(b.Pix[y*b.Width+x])
}

// SetPixel stores c at (x, y). Out-of-range writes are dropped.
func (b *Buffer) SetPixel(x, y int, c graphics.Color) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pix[y*b.Width+x] = uint32(c)
}

// Fill overwrites every pixel with c.
func (b *Buffer) Fill(c graphics.Color) {
	n := b.Width * b.Height
	for i := range b.Pix[:n] {
		b.Pix[i] = uint32(c)
	}
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color {
	c := b.Pixel(x, y)
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Set implements draw.Image.
func (b *Buffer) Set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	b.SetPixel(x, y, graphics.RGBA8(n.R, n.G, n.B, n.A))
}
