package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
//
// Colors are plain values: equality is bitwise, so two colors built from the
// same channels compare equal with ==.
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha channel as a byte.
func (c Color) A() uint8 { return uint8(c >> 24) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.R()) / maxByte,
		float64(c.G()) / maxByte,
		float64(c.B()) / maxByte,
		float64(c.A()) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(c.A()) / maxByte
}

// IsOpaque reports whether the color fully covers what is beneath it.
func (c Color) IsOpaque() bool {
	return c.A() == 0xFF
}

// IsTransparent reports whether painting the color has no visible effect.
func (c Color) IsTransparent() bool {
	return c.A() == 0
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Blend composites c over dst using source-over and returns an opaque result
// when dst is opaque.
func (c Color) Blend(dst Color) Color {
	switch c.A() {
	case 0xFF:
		return c
	case 0:
		return dst
	}
	a := uint32(c.A())
	inv := 255 - a
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*inv + 127) / 255)
	}
	outA := a + uint32(dst.A())*inv/255
	return RGBA8(mix(c.R(), dst.R()), mix(c.G(), dst.G()), mix(c.B(), dst.B()), uint8(outA))
}

// Hex formats the color as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// String returns the palette name when the color has one, otherwise its hex form.
func (c Color) String() string {
	for name, v := range palette {
		if v == c {
			return name
		}
	}
	return c.Hex()
}

// ParseColor accepts "#RRGGBB", "#AARRGGBB" or a palette name such as
// "darkgray" (case-insensitive, dashes and underscores ignored). Names outside
// the palette fall back to the SVG 1.1 color keywords.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q: %w", s, err)
		}
		switch len(hex) {
		case 6:
			return Color(0xFF000000 | uint32(v)), nil
		case 8:
			return Color(uint32(v)), nil
		default:
			return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", s)
		}
	}
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	if c, ok := palette[key]; ok {
		return c, nil
	}
	if rgba, ok := colornames.Map[key]; ok {
		return RGBA8(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Named colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorYellow      = Color(0xFFFFFF00)
	ColorCyan        = Color(0xFF00FFFF)
	ColorMagenta     = Color(0xFFFF00FF)
	ColorOrange      = Color(0xFFFF8000)
	ColorPurple      = Color(0xFF800080)
	ColorGray        = Color(0xFF808080)
	ColorLightGray   = Color(0xFFC0C0C0)
	ColorDarkGray    = Color(0xFF404040)
	ColorCharcoal    = Color(0xFF2A2A2A)
	ColorLightGreen  = Color(0xFF90EE90)
	ColorDarkGreen   = Color(0xFF006400)
	ColorDarkBlue    = Color(0xFF00008B)
	ColorSkyBlue     = Color(0xFF87CEEB)
)

var palette = map[string]Color{
	"transparent": ColorTransparent,
	"black":       ColorBlack,
	"white":       ColorWhite,
	"red":         ColorRed,
	"green":       ColorGreen,
	"blue":        ColorBlue,
	"yellow":      ColorYellow,
	"cyan":        ColorCyan,
	"magenta":     ColorMagenta,
	"orange":      ColorOrange,
	"purple":      ColorPurple,
	"gray":        ColorGray,
	"lightgray":   ColorLightGray,
	"darkgray":    ColorDarkGray,
	"charcoal":    ColorCharcoal,
	"lightgreen":  ColorLightGreen,
	"darkgreen":   ColorDarkGreen,
	"darkblue":    ColorDarkBlue,
	"skyblue":     ColorSkyBlue,
}
