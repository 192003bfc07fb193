package gstate

import (
	"fmt"

	"github.com/gogpu/vcanvas/internal/path"
	"github.com/gogpu/vcanvas/internal/shade"
	"golang.org/x/image/math/f64"
)

// Gradient is an immutable color ramp. Colors interpolate in straight
// (non-premultiplied) components and extend past both ends.
type Gradient struct {
	ramp shade.Ramp
}

// NewGradient creates a gradient from straight RGBA components, four per
// location. Locations must be ascending.
func NewGradient(components, locations []float64) (*Gradient, error) {
	if len(locations) == 0 || len(components) != 4*len(locations) {
		return nil, fmt.Errorf("%w: %d components for %d locations", ErrGradientStops, len(components), len(locations))
	}
	stops := make([]shade.Stop, len(locations))
	for i, pos := range locations {
		if i > 0 && pos < locations[i-1] {
			return nil, fmt.Errorf("%w: locations not ascending at %d", ErrGradientStops, i)
		}
		c := components[4*i : 4*i+4]
		stops[i] = shade.Stop{Pos: pos, R: c[0], G: c[1], B: c[2], A: c[3]}
	}
	return &Gradient{ramp: shade.NewRamp(stops)}, nil
}

// DrawLinearGradient paints g across the clip region, from start (t=0) to
// end (t=1) in user space.
func (c *Context) DrawLinearGradient(g *Gradient, start, end f64.Vec2) {
	inv, ok := path.Invert(c.userToPixel())
	if !ok {
		return
	}
	shade.Fill(c.dst, c.paintMask(), &shade.Linear{P0: start, P1: end, Ramp: g.ramp, Inverse: inv})
}

// DrawRadialGradient paints g across the clip region, interpolating circles
// from (startCenter, startRadius) to (endCenter, endRadius) in user space.
func (c *Context) DrawRadialGradient(g *Gradient, startCenter f64.Vec2, startRadius float64, endCenter f64.Vec2, endRadius float64) {
	inv, ok := path.Invert(c.userToPixel())
	if !ok {
		return
	}
	shade.Fill(c.dst, c.paintMask(), &shade.Radial{
		C0: startCenter, R0: startRadius,
		C1: endCenter, R1: endRadius,
		Ramp: g.ramp, Inverse: inv,
	})
}
