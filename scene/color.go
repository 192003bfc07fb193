package scene

import (
	"strings"

	"github.com/gogpu/vcanvas"
)

var namedColors = map[string]vcanvas.Color{
	"black":       vcanvas.Black,
	"white":       vcanvas.White,
	"red":         vcanvas.Red,
	"lime":        vcanvas.Lime,
	"green":       vcanvas.Green,
	"blue":        vcanvas.Blue,
	"yellow":      vcanvas.Yellow,
	"cyan":        vcanvas.Cyan,
	"magenta":     vcanvas.Magenta,
	"transparent": vcanvas.Transparent,
}

// ParseColor parses a color name or a hex color in one of the forms
// accepted by vcanvas.ParseHex.
func ParseColor(s string) (vcanvas.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return vcanvas.ParseHex(s)
}
