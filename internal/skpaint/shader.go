package skpaint

import (
	"fmt"

	"github.com/gogpu/vcanvas/internal/path"
	"github.com/gogpu/vcanvas/internal/shade"
)

// Shader is a paint source defined in the local coordinates active when it
// is drawn. Gradients clamp: colors beyond the end stops repeat the end
// colors.
type Shader interface {
	// pixelShader binds the shader to the local-to-pixel matrix.
	pixelShader(m Matrix) (shade.Shader, bool)
}

type linearGradient struct {
	p0, p1 Point
	ramp   shade.Ramp
}

type conicalGradient struct {
	c0, c1 Point
	r0, r1 float32
	ramp   shade.Ramp
}

// NewLinearGradient returns a shader interpolating colors from pts[0] to
// pts[1]. A nil pos spaces the colors evenly.
func NewLinearGradient(pts [2]Point, colors []Color4f, pos []float32) (Shader, error) {
	ramp, err := makeRamp(colors, pos)
	if err != nil {
		return nil, err
	}
	return &linearGradient{p0: pts[0], p1: pts[1], ramp: ramp}, nil
}

// NewTwoPointConicalGradient returns a shader interpolating circles from
// (start, startRadius) to (end, endRadius).
func NewTwoPointConicalGradient(start Point, startRadius float32, end Point, endRadius float32,
	colors []Color4f, pos []float32) (Shader, error) {
	ramp, err := makeRamp(colors, pos)
	if err != nil {
		return nil, err
	}
	return &conicalGradient{c0: start, r0: startRadius, c1: end, r1: endRadius, ramp: ramp}, nil
}

func (g *linearGradient) pixelShader(m Matrix) (shade.Shader, bool) {
	inv, ok := path.Invert(m.aff3())
	if !ok {
		return nil, false
	}
	return &shade.Linear{P0: vec(g.p0), P1: vec(g.p1), Ramp: g.ramp, Inverse: inv}, true
}

func (g *conicalGradient) pixelShader(m Matrix) (shade.Shader, bool) {
	inv, ok := path.Invert(m.aff3())
	if !ok {
		return nil, false
	}
	return &shade.Radial{
		C0: vec(g.c0), R0: float64(g.r0),
		C1: vec(g.c1), R1: float64(g.r1),
		Ramp: g.ramp, Inverse: inv,
	}, true
}

func makeRamp(colors []Color4f, pos []float32) (shade.Ramp, error) {
	if len(colors) == 0 {
		return shade.Ramp{}, ErrNoColors
	}
	if pos != nil && len(pos) != len(colors) {
		return shade.Ramp{}, fmt.Errorf("%w: %d positions for %d colors", ErrPositions, len(pos), len(colors))
	}
	stops := make([]shade.Stop, len(colors))
	for i, c := range colors {
		var t float32
		switch {
		case pos != nil:
			t = pos[i]
		case len(colors) > 1:
			t = float32(i) / float32(len(colors)-1)
		}
		if !(t >= 0 && t <= 1) || (i > 0 && float64(t) < stops[i-1].Pos) {
			return shade.Ramp{}, fmt.Errorf("%w: position %v at %d", ErrPositions, t, i)
		}
		stops[i] = shade.Stop{Pos: float64(t), R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
	}
	return shade.NewRamp(stops), nil
}

// solidShader adapts a color to the shade package.
func solidShader(c Color4f) shade.Solid {
	return shade.Solid(premul(c))
}
