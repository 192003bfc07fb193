package vcanvas

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a packed 32-bit RGBA color with separate (non-premultiplied) alpha.
// Red occupies bits 31-24, green 23-16, blue 15-8 and alpha 7-0.
type Color uint32

// RGBA8 creates a color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB8 creates an opaque color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xff)
}

// RGBAf creates a color from components in [0, 1]. Values are clamped and
// rounded to the nearest 8-bit step.
func RGBAf(r, g, b, a float64) Color {
	return RGBA8(unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a))
}

// RGBf creates an opaque color from components in [0, 1].
func RGBf(r, g, b float64) Color {
	return RGBAf(r, g, b, 1)
}

// Gray creates an opaque gray with the given lightness in [0, 1].
func Gray(l float64) Color {
	return RGBf(l, l, l)
}

// FromColor converts a standard color.Color, undoing its premultiplication.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA8(n.R, n.G, n.B, n.A)
}

// Hex creates a color from a hex string, returning opaque black for
// malformed input. Supports "RGB", "RGBA", "RRGGBB" and "RRGGBBAA" with an
// optional leading '#'.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses a hex color string in the forms accepted by Hex.
func ParseHex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [8]uint32
	for i := 0; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok || i >= len(v) {
			return 0, Errorf("parse_color", InvalidInput, "malformed hex color %q", hex)
		}
		v[i] = d
	}

	switch len(s) {
	case 3:
		return RGB8(uint8(v[0]*17), uint8(v[1]*17), uint8(v[2]*17)), nil
	case 4:
		return RGBA8(uint8(v[0]*17), uint8(v[1]*17), uint8(v[2]*17), uint8(v[3]*17)), nil
	case 6:
		return RGB8(uint8(v[0]<<4|v[1]), uint8(v[2]<<4|v[3]), uint8(v[4]<<4|v[5])), nil
	case 8:
		return RGBA8(uint8(v[0]<<4|v[1]), uint8(v[2]<<4|v[3]), uint8(v[4]<<4|v[5]), uint8(v[6]<<4|v[7])), nil
	default:
		return 0, Errorf("parse_color", InvalidInput, "malformed hex color %q", hex)
	}
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	}
	return 0, false
}

// AsRGBAU32 returns the packed representation.
func (c Color) AsRGBAU32() uint32 { return uint32(c) }

// RGBA8 returns the four 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	u := uint32(c)
	return uint8(u >> 24), uint8(u >> 16), uint8(u >> 8), uint8(u)
}

// Components extracts normalized channels from the packed value: each 8-bit
// channel divided by 255, in r, g, b, a order. Backends call this at the
// point of use.
func (c Color) Components() (r, g, b, a float64) {
	u := uint32(c)
	r = float64(uint8(u>>24)) / 255
	g = float64(uint8(u>>16)) / 255
	b = float64(uint8(u>>8)) / 255
	a = float64(uint8(u)) / 255
	return r, g, b, a
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(c)&^0xff | uint32(unitToByte(a)))
}

// IsOpaque reports whether alpha is 255.
func (c Color) IsOpaque() bool { return uint8(c) == 0xff }

// RGBA implements color.Color, returning premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}.RGBA()
}

// Premul returns the 8-bit premultiplied form.
func (c Color) Premul() color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// String returns the "#rrggbbaa" form.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

func unitToByte(x float64) uint8 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(math.Round(x * 255))
}

// Common colors
const (
	Black       Color = 0x000000ff
	White       Color = 0xffffffff
	Red         Color = 0xff0000ff
	Lime        Color = 0x00ff00ff
	Green       Color = 0x008000ff
	Blue        Color = 0x0000ffff
	Yellow      Color = 0xffff00ff
	Cyan        Color = 0x00ffffff
	Magenta     Color = 0xff00ffff
	Transparent Color = 0x00000000
)

// HSL creates an opaque color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGBf(r+m, g+m, b+m)
}
