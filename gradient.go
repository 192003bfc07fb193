package vcanvas

import (
	"math"
	"slices"
)

// GradientStop is a color at a position along a gradient.
type GradientStop struct {
	Pos   float64 // in [0, 1]
	Color Color
}

// EvenStops spreads colors evenly over [0, 1].
func EvenStops(colors ...Color) []GradientStop {
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = GradientStop{Pos: pos, Color: c}
	}
	return stops
}

// NormalizeStops validates stops and returns a copy stable-sorted by
// position. Equal positions keep their relative order, producing a hard
// color transition.
func NormalizeStops(stops []GradientStop) ([]GradientStop, error) {
	if len(stops) == 0 {
		return nil, Errorf("gradient", InvalidInput, "gradient needs at least one stop")
	}
	for i, s := range stops {
		if math.IsNaN(s.Pos) || s.Pos < 0 || s.Pos > 1 {
			return nil, Errorf("gradient", InvalidInput, "stop %d position %v outside [0, 1]", i, s.Pos)
		}
	}
	out := slices.Clone(stops)
	slices.SortStableFunc(out, func(a, b GradientStop) int {
		switch {
		case a.Pos < b.Pos:
			return -1
		case a.Pos > b.Pos:
			return 1
		}
		return 0
	})
	return out, nil
}

// FixedGradient is a gradient whose geometry is given in the local
// coordinate space at paint time.
type FixedGradient interface {
	IntoBrush
	fixedGradient()
}

// FixedLinearGradient paints along the segment from Start to End.
type FixedLinearGradient struct {
	Start, End Point
	Stops      []GradientStop
}

// FixedRadialGradient paints from a zero-radius circle at
// Center+OriginOffset to the circle of Radius around Center.
type FixedRadialGradient struct {
	Center       Point
	OriginOffset Vec2
	Radius       float64
	Stops        []GradientStop
}

func (FixedLinearGradient) fixedGradient() {}
func (FixedRadialGradient) fixedGradient() {}

// MakeBrush implements IntoBrush.
func (g FixedLinearGradient) MakeBrush(rc RenderContext, _ func() Rect) (Brush, error) {
	return rc.Gradient(g)
}

// MakeBrush implements IntoBrush.
func (g FixedRadialGradient) MakeBrush(rc RenderContext, _ func() Rect) (Brush, error) {
	return rc.Gradient(g)
}

// StartCircle returns the center and radius of the inner circle.
func (g FixedRadialGradient) StartCircle() (Point, float64) {
	return g.Center.Add(g.OriginOffset), 0
}

// EndCircle returns the center and radius of the outer circle.
func (g FixedRadialGradient) EndCircle() (Point, float64) {
	return g.Center, g.Radius
}

// UnitPoint is a position relative to a rectangle: (0,0) is the top-left
// corner and (1,1) the bottom-right.
type UnitPoint struct {
	U, V float64
}

// Common unit points.
var (
	UnitTopLeft     = UnitPoint{0, 0}
	UnitTop         = UnitPoint{0.5, 0}
	UnitTopRight    = UnitPoint{1, 0}
	UnitLeft        = UnitPoint{0, 0.5}
	UnitCenter      = UnitPoint{0.5, 0.5}
	UnitRight       = UnitPoint{1, 0.5}
	UnitBottomLeft  = UnitPoint{0, 1}
	UnitBottom      = UnitPoint{0.5, 1}
	UnitBottomRight = UnitPoint{1, 1}
)

// Resolve maps the unit point into r.
func (u UnitPoint) Resolve(r Rect) Point {
	return Pt(r.X0+u.U*r.Width(), r.Y0+u.V*r.Height())
}

// LinearGradient is a linear gradient positioned relative to the bounding
// box of the painted shape.
type LinearGradient struct {
	Start, End UnitPoint
	Stops      []GradientStop
}

// NewLinearGradient creates a relative linear gradient.
func NewLinearGradient(start, end UnitPoint, stops []GradientStop) LinearGradient {
	return LinearGradient{Start: start, End: end, Stops: stops}
}

// Fix resolves the gradient against a bounding box.
func (g LinearGradient) Fix(bbox Rect) FixedLinearGradient {
	return FixedLinearGradient{Start: g.Start.Resolve(bbox), End: g.End.Resolve(bbox), Stops: g.Stops}
}

// MakeBrush implements IntoBrush, invoking bbox once.
func (g LinearGradient) MakeBrush(rc RenderContext, bbox func() Rect) (Brush, error) {
	return rc.Gradient(g.Fix(bbox()))
}

// RadialGradient is a radial gradient positioned relative to the bounding
// box of the painted shape. OriginOffset is a fraction of the box size and
// Radius a fraction of its shorter side.
type RadialGradient struct {
	Center       UnitPoint
	OriginOffset Vec2
	Radius       float64
	Stops        []GradientStop
}

// NewRadialGradient creates a relative radial gradient centered in the box.
func NewRadialGradient(radius float64, stops []GradientStop) RadialGradient {
	return RadialGradient{Center: UnitCenter, Radius: radius, Stops: stops}
}

// Fix resolves the gradient against a bounding box.
func (g RadialGradient) Fix(bbox Rect) FixedRadialGradient {
	scale := math.Min(bbox.Width(), bbox.Height())
	return FixedRadialGradient{
		Center:       g.Center.Resolve(bbox),
		OriginOffset: V2(g.OriginOffset.X*bbox.Width(), g.OriginOffset.Y*bbox.Height()),
		Radius:       g.Radius * scale,
		Stops:        g.Stops,
	}
}

// MakeBrush implements IntoBrush, invoking bbox once.
func (g RadialGradient) MakeBrush(rc RenderContext, bbox func() Rect) (Brush, error) {
	return rc.Gradient(g.Fix(bbox()))
}
