package gs

import (
	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/bridge"
	"github.com/gogpu/vcanvas/internal/gstate"
)

// Brush is a solid color or a gradient prepared for the engine.
type Brush struct {
	kind   vcanvas.BrushKind
	color  vcanvas.Color
	grad   *gstate.Gradient
	linear vcanvas.FixedLinearGradient
	radial vcanvas.FixedRadialGradient
}

// Kind implements vcanvas.Brush.
func (b *Brush) Kind() vcanvas.BrushKind { return b.kind }

// MakeBrush implements vcanvas.IntoBrush; a brush resolves to itself.
func (b *Brush) MakeBrush(vcanvas.RenderContext, func() vcanvas.Rect) (vcanvas.Brush, error) {
	return b, nil
}

func newGradient(g vcanvas.FixedGradient) (*Brush, error) {
	kind, stops, err := bridge.Stops(g)
	if err != nil {
		return nil, err
	}
	components := make([]float64, 0, 4*len(stops))
	locations := make([]float64, len(stops))
	for i, s := range stops {
		r, g, b, a := s.Color.Components()
		components = append(components, r, g, b, a)
		locations[i] = s.Pos
	}
	grad, err := gstate.NewGradient(components, locations)
	if err != nil {
		return nil, vcanvas.AsBackendError("gradient", err)
	}

	br := &Brush{kind: kind, grad: grad}
	switch g := g.(type) {
	case vcanvas.FixedLinearGradient:
		br.linear = g
	case vcanvas.FixedRadialGradient:
		br.radial = g
	}
	return br, nil
}
