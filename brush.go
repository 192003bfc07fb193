package vcanvas

// BrushKind identifies the paint source behind a Brush.
type BrushKind uint8

const (
	// SolidBrush paints a single color.
	SolidBrush BrushKind = iota
	// LinearBrush paints a linear gradient.
	LinearBrush
	// RadialBrush paints a two-circle radial gradient.
	RadialBrush
)

// String returns the kind name.
func (k BrushKind) String() string {
	switch k {
	case SolidBrush:
		return "solid"
	case LinearBrush:
		return "linear"
	case RadialBrush:
		return "radial"
	default:
		return "unknown"
	}
}

// Brush is a paint source resolved for a specific backend. Brushes are
// immutable and only valid with the backend that created them.
type Brush interface {
	IntoBrush
	Kind() BrushKind
}

// IntoBrush is anything that can be resolved into a backend brush.
//
// bbox returns the bounding box of the shape being painted. It is invoked
// only by values whose coordinate space depends on the shape extent, so
// solid colors never pay for the computation.
type IntoBrush interface {
	MakeBrush(rc RenderContext, bbox func() Rect) (Brush, error)
}

// MakeBrush implements IntoBrush; bbox is never invoked.
func (c Color) MakeBrush(rc RenderContext, _ func() Rect) (Brush, error) {
	return rc.SolidBrush(c), nil
}

// ResolveBrush resolves b against rc, computing the shape bounding box lazily
// and at most once.
func ResolveBrush(rc RenderContext, b IntoBrush, shape Shape) (Brush, error) {
	if b == nil {
		return nil, Errorf("make_brush", InvalidInput, "nil brush")
	}
	return b.MakeBrush(rc, shape.BoundingBox)
}
