//go:build !nosk

package sk

import (
	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/bridge"
	"github.com/gogpu/vcanvas/internal/skpaint"
)

// Brush is a solid color or a gradient shader.
type Brush struct {
	kind   vcanvas.BrushKind
	color  vcanvas.Color
	shader skpaint.Shader
}

// Kind implements vcanvas.Brush.
func (b *Brush) Kind() vcanvas.BrushKind { return b.kind }

// MakeBrush implements vcanvas.IntoBrush; a brush resolves to itself.
func (b *Brush) MakeBrush(vcanvas.RenderContext, func() vcanvas.Rect) (vcanvas.Brush, error) {
	return b, nil
}

// paint returns a fill paint carrying the brush.
func (b *Brush) paint() *skpaint.Paint {
	p := skpaint.NewPaint()
	if b.shader != nil {
		p.Shader = b.shader
	} else {
		p.SetColor(color4f(b.color))
	}
	return p
}

func newGradient(g vcanvas.FixedGradient) (*Brush, error) {
	kind, stops, err := bridge.Stops(g)
	if err != nil {
		return nil, err
	}
	colors := make([]skpaint.Color4f, len(stops))
	pos := make([]float32, len(stops))
	for i, s := range stops {
		colors[i] = color4f(s.Color)
		pos[i] = float32(s.Pos)
	}

	var sh skpaint.Shader
	switch g := g.(type) {
	case vcanvas.FixedLinearGradient:
		sh, err = skpaint.NewLinearGradient([2]skpaint.Point{point(g.Start), point(g.End)}, colors, pos)
	case vcanvas.FixedRadialGradient:
		start, r0 := g.StartCircle()
		end, r1 := g.EndCircle()
		sh, err = skpaint.NewTwoPointConicalGradient(point(start), float32(r0), point(end), float32(r1), colors, pos)
	}
	if err != nil {
		return nil, vcanvas.AsBackendError("gradient", err)
	}
	return &Brush{kind: kind, shader: sh}, nil
}

func color4f(c vcanvas.Color) skpaint.Color4f {
	r, g, b, a := c.Components()
	return skpaint.Color4f{R: float32(r), G: float32(g), B: float32(b), A: float32(a)}
}
