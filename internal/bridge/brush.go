package bridge

import "github.com/gogpu/vcanvas"

// Resolve turns brush into a brush of the backend type B. A brush made by
// another backend is InvalidInput.
func Resolve[B vcanvas.Brush](rc vcanvas.RenderContext, op string, brush vcanvas.IntoBrush, shape vcanvas.Shape) (B, error) {
	var zero B
	b, err := vcanvas.ResolveBrush(rc, brush, shape)
	if err != nil {
		return zero, err
	}
	own, ok := b.(B)
	if !ok {
		return zero, vcanvas.Errorf(op, vcanvas.InvalidInput, "brush %T belongs to another backend", b)
	}
	return own, nil
}

// Stops validates and sorts the stops of g and returns them with the
// gradient kind. Gradient types other than the fixed linear and radial
// forms are NotSupported.
func Stops(g vcanvas.FixedGradient) (vcanvas.BrushKind, []vcanvas.GradientStop, error) {
	var (
		kind  vcanvas.BrushKind
		stops []vcanvas.GradientStop
	)
	switch g := g.(type) {
	case vcanvas.FixedLinearGradient:
		kind, stops = vcanvas.LinearBrush, g.Stops
	case vcanvas.FixedRadialGradient:
		kind, stops = vcanvas.RadialBrush, g.Stops
	default:
		return 0, nil, vcanvas.Errorf("gradient", vcanvas.NotSupported, "gradient type %T", g)
	}
	sorted, err := vcanvas.NormalizeStops(stops)
	if err != nil {
		return 0, nil, err
	}
	return kind, sorted, nil
}
