package vcanvas

import "iter"

// DefaultTolerance is the flattening tolerance used when a shape is turned
// into path elements for a backend.
const DefaultTolerance = 1e-3

// PathEl is one element of a path: MoveTo, LineTo, QuadTo, CurveTo or
// ClosePath.
type PathEl interface {
	isPathEl()
}

// MoveTo starts a new subpath at P.
type MoveTo struct{ P Point }

// LineTo draws a straight segment to P.
type LineTo struct{ P Point }

// QuadTo draws a quadratic Bézier with control P1 ending at P2.
type QuadTo struct{ P1, P2 Point }

// CurveTo draws a cubic Bézier with controls P1, P2 ending at P3.
type CurveTo struct{ P1, P2, P3 Point }

// ClosePath closes the current subpath.
type ClosePath struct{}

func (MoveTo) isPathEl()    {}
func (LineTo) isPathEl()    {}
func (QuadTo) isPathEl()    {}
func (CurveTo) isPathEl()   {}
func (ClosePath) isPathEl() {}

// PathSeq is a lazy, finite and restartable sequence of path elements.
type PathSeq = iter.Seq[PathEl]

// Shape is anything that can be drawn, filled or used as a clip.
type Shape interface {
	// BoundingBox returns the exact bounds of the shape.
	BoundingBox() Rect
	// PathElements returns the outline as path elements. Curves that have no
	// exact Bézier form are approximated within tolerance.
	PathElements(tolerance float64) PathSeq
	// AsRect reports whether the shape is exactly an axis-aligned rectangle,
	// enabling rectangle fast paths.
	AsRect() (Rect, bool)
}

// ToBezPath collects a shape's path elements.
func ToBezPath(s Shape, tolerance float64) BezPath {
	var p BezPath
	for el := range s.PathElements(tolerance) {
		p = append(p, el)
	}
	return p
}
