package shade

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/vcanvas/internal/path"
	"golang.org/x/image/math/f64"
)

// Shader is a paint source evaluated at pixel centers.
type Shader interface {
	// Shade returns the premultiplied color of pixel (x, y).
	Shade(x, y int) color.RGBA
}

// Solid paints one color.
type Solid color.RGBA

// Shade implements Shader.
func (s Solid) Shade(int, int) color.RGBA { return color.RGBA(s) }

// Linear paints a linear gradient from P0 to P1 in gradient space.
// Inverse maps pixel coordinates into gradient space.
type Linear struct {
	P0, P1  f64.Vec2
	Ramp    Ramp
	Inverse f64.Aff3
}

// Shade implements Shader.
func (l *Linear) Shade(x, y int) color.RGBA {
	p := path.Apply(l.Inverse, f64.Vec2{float64(x) + 0.5, float64(y) + 0.5})
	dx, dy := l.P1[0]-l.P0[0], l.P1[1]-l.P0[1]
	d2 := dx*dx + dy*dy
	if d2 == 0 {
		return l.Ramp.At(1)
	}
	return l.Ramp.At(((p[0]-l.P0[0])*dx + (p[1]-l.P0[1])*dy) / d2)
}

// Radial paints a two-point conical gradient: circles interpolated from
// (C0, R0) at t=0 to (C1, R1) at t=1. Each pixel takes the largest t whose
// circle passes through it with a non-negative radius.
type Radial struct {
	C0      f64.Vec2
	R0      float64
	C1      f64.Vec2
	R1      float64
	Ramp    Ramp
	Inverse f64.Aff3
}

// Shade implements Shader.
func (g *Radial) Shade(x, y int) color.RGBA {
	p := path.Apply(g.Inverse, f64.Vec2{float64(x) + 0.5, float64(y) + 0.5})
	t, ok := g.param(p)
	if !ok {
		return color.RGBA{}
	}
	return g.Ramp.At(t)
}

// param solves |p - c(t)| = r(t) for t.
func (g *Radial) param(p f64.Vec2) (float64, bool) {
	cdx, cdy := g.C1[0]-g.C0[0], g.C1[1]-g.C0[1]
	pdx, pdy := p[0]-g.C0[0], p[1]-g.C0[1]
	dr := g.R1 - g.R0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.R0*dr
	c := pdx*pdx + pdy*pdy - g.R0*g.R0

	valid := func(t float64) bool { return g.R0+t*dr >= 0 }

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, valid(t)
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (b+sq)/a, (b-sq)/a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if valid(t1) {
		return t1, true
	}
	if valid(t2) {
		return t2, true
	}
	return 0, false
}

// Render evaluates sh over r into a new image with bounds r.
func Render(sh Shader, r image.Rectangle) *image.RGBA {
	img := image.NewRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			c := sh.Shade(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
			i += 4
		}
	}
	return img
}
