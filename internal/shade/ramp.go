// Package shade evaluates paint sources and composites them through
// coverage masks.
package shade

import (
	"image/color"
	"math"
)

// Stop is a gradient color stop with straight (non-premultiplied)
// components in [0, 1].
type Stop struct {
	Pos        float64
	R, G, B, A float64
}

// Ramp maps a gradient parameter to a color. Stops must be sorted by
// position; equal positions produce a hard transition.
type Ramp struct {
	stops []Stop
}

// NewRamp creates a ramp. At least one stop is required.
func NewRamp(stops []Stop) Ramp {
	return Ramp{stops: stops}
}

// Len returns the number of stops.
func (r Ramp) Len() int { return len(r.stops) }

// At returns the premultiplied color at t. Colors are interpolated in
// straight sRGB and padded beyond the first and last stop.
func (r Ramp) At(t float64) color.RGBA {
	s := r.stops
	if len(s) == 0 {
		return color.RGBA{}
	}
	if math.IsNaN(t) || t <= s[0].Pos {
		return premul(s[0].R, s[0].G, s[0].B, s[0].A)
	}
	last := s[len(s)-1]
	if t >= last.Pos {
		return premul(last.R, last.G, last.B, last.A)
	}
	i := 1
	for i < len(s)-1 && s[i].Pos <= t {
		i++
	}
	a, b := s[i-1], s[i]
	span := b.Pos - a.Pos
	if span <= 0 {
		return premul(b.R, b.G, b.B, b.A)
	}
	u := (t - a.Pos) / span
	return premul(
		a.R+(b.R-a.R)*u,
		a.G+(b.G-a.G)*u,
		a.B+(b.B-a.B)*u,
		a.A+(b.A-a.A)*u,
	)
}

func premul(r, g, b, a float64) color.RGBA {
	return color.RGBA{
		R: unit8(r * a),
		G: unit8(g * a),
		B: unit8(b * a),
		A: unit8(a),
	}
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
