package vcanvas

import "math"

// Rect is an axis-aligned rectangle given by two corners.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectFromOrigin creates a rectangle from its top-left corner and size.
func RectFromOrigin(origin Point, size Size) Rect {
	return Rect{X0: origin.X, Y0: origin.Y, X1: origin.X + size.Width, Y1: origin.Y + size.Height}
}

// RectFromPoints creates the rectangle spanned by two points.
func RectFromPoints(p, q Point) Rect {
	return Rect{X0: p.X, Y0: p.Y, X1: q.X, Y1: q.Y}.Abs()
}

// Width returns X1 - X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Size returns the width and height.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// Origin returns the (X0, Y0) corner.
func (r Rect) Origin() Point { return Point{X: r.X0, Y: r.Y0} }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// Abs returns the rectangle with X0 <= X1 and Y0 <= Y1.
func (r Rect) Abs() Rect {
	return Rect{
		X0: math.Min(r.X0, r.X1), Y0: math.Min(r.Y0, r.Y1),
		X1: math.Max(r.X0, r.X1), Y1: math.Max(r.Y0, r.Y1),
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return !(r.X1 > r.X0 && r.Y1 > r.Y0)
}

// Contains reports whether p lies inside r (half-open on the max edges).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, o.X0), Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1), Y1: math.Max(r.Y1, o.Y1),
	}
}

// UnionPoint grows r to include p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		X0: math.Min(r.X0, p.X), Y0: math.Min(r.Y0, p.Y),
		X1: math.Max(r.X1, p.X), Y1: math.Max(r.Y1, p.Y),
	}
}

// Intersect returns the overlap, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		X0: math.Max(r.X0, o.X0), Y0: math.Max(r.Y0, o.Y0),
		X1: math.Min(r.X1, o.X1), Y1: math.Min(r.Y1, o.Y1),
	}
}

// Inset moves every edge inward by d; negative d grows the rectangle.
func (r Rect) Inset(d float64) Rect {
	return Rect{X0: r.X0 + d, Y0: r.Y0 + d, X1: r.X1 - d, Y1: r.Y1 - d}
}

// BoundingBox implements Shape.
func (r Rect) BoundingBox() Rect { return r.Abs() }

// AsRect implements Shape; a Rect is always exactly a rectangle.
func (r Rect) AsRect() (Rect, bool) { return r, true }

// PathElements implements Shape. The corners are visited as
// (X0,Y0), (X1,Y0), (X1,Y1), (X0,Y1).
func (r Rect) PathElements(float64) PathSeq {
	return func(yield func(PathEl) bool) {
		_ = yield(MoveTo{P: Pt(r.X0, r.Y0)}) &&
			yield(LineTo{P: Pt(r.X1, r.Y0)}) &&
			yield(LineTo{P: Pt(r.X1, r.Y1)}) &&
			yield(LineTo{P: Pt(r.X0, r.Y1)}) &&
			yield(ClosePath{})
	}
}

// Corners returns the corners in path order.
func (r Rect) Corners() [4]Point {
	return [4]Point{Pt(r.X0, r.Y0), Pt(r.X1, r.Y0), Pt(r.X1, r.Y1), Pt(r.X0, r.Y1)}
}
