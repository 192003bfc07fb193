package vcanvas

import "math"

// BezPath is an arbitrary path built from path elements.
//
// The zero value is an empty path ready to use:
//
//	var p vcanvas.BezPath
//	p.MoveTo(vcanvas.Pt(10, 10))
//	p.LineTo(vcanvas.Pt(90, 10))
//	p.QuadTo(vcanvas.Pt(90, 90), vcanvas.Pt(10, 90))
//	p.ClosePath()
type BezPath []PathEl

// MoveTo starts a new subpath.
func (p *BezPath) MoveTo(pt Point) { *p = append(*p, MoveTo{P: pt}) }

// LineTo appends a line segment.
func (p *BezPath) LineTo(pt Point) { *p = append(*p, LineTo{P: pt}) }

// QuadTo appends a quadratic Bézier.
func (p *BezPath) QuadTo(p1, p2 Point) { *p = append(*p, QuadTo{P1: p1, P2: p2}) }

// CurveTo appends a cubic Bézier.
func (p *BezPath) CurveTo(p1, p2, p3 Point) { *p = append(*p, CurveTo{P1: p1, P2: p2, P3: p3}) }

// ClosePath closes the current subpath.
func (p *BezPath) ClosePath() { *p = append(*p, ClosePath{}) }

// PathElements implements Shape.
func (p BezPath) PathElements(float64) PathSeq {
	return func(yield func(PathEl) bool) {
		for _, el := range p {
			if !yield(el) {
				return
			}
		}
	}
}

// AsRect implements Shape; arbitrary paths never take rectangle fast paths.
func (BezPath) AsRect() (Rect, bool) { return Rect{}, false }

// BoundingBox implements Shape. Curve extrema are solved exactly rather than
// taken from control points.
func (p BezPath) BoundingBox() Rect {
	var (
		bbox    Rect
		started bool
		cur     Point
	)
	add := func(pt Point) {
		if !started {
			bbox = Rect{X0: pt.X, Y0: pt.Y, X1: pt.X, Y1: pt.Y}
			started = true
			return
		}
		bbox = bbox.UnionPoint(pt)
	}
	for _, el := range p {
		switch e := el.(type) {
		case MoveTo:
			cur = e.P
			add(cur)
		case LineTo:
			add(e.P)
			cur = e.P
		case QuadTo:
			add(e.P2)
			for _, t := range quadExtrema(cur, e.P1, e.P2) {
				add(evalQuad(cur, e.P1, e.P2, t))
			}
			cur = e.P2
		case CurveTo:
			add(e.P3)
			for _, t := range cubicExtrema(cur, e.P1, e.P2, e.P3) {
				add(evalCubic(cur, e.P1, e.P2, e.P3, t))
			}
			cur = e.P3
		}
	}
	return bbox
}

func evalQuad(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Pt(
		mt*mt*p0.X+2*mt*t*p1.X+t*t*p2.X,
		mt*mt*p0.Y+2*mt*t*p1.Y+t*t*p2.Y,
	)
}

func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Pt(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}

func quadExtrema(p0, p1, p2 Point) []float64 {
	var ts []float64
	for _, c := range [2][3]float64{{p0.X, p1.X, p2.X}, {p0.Y, p1.Y, p2.Y}} {
		den := c[0] - 2*c[1] + c[2]
		if den == 0 {
			continue
		}
		if t := (c[0] - c[1]) / den; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

func cubicExtrema(p0, p1, p2, p3 Point) []float64 {
	var ts []float64
	for _, c := range [2][4]float64{{p0.X, p1.X, p2.X, p3.X}, {p0.Y, p1.Y, p2.Y, p3.Y}} {
		// Derivative coefficients of the cubic in this axis.
		a := -c[0] + 3*c[1] - 3*c[2] + c[3]
		b := 2 * (c[0] - 2*c[1] + c[2])
		d := c[1] - c[0]
		for _, t := range solveQuadratic(a, b, d) {
			if t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	return ts
}

// solveQuadratic returns the real roots of a*t^2 + b*t + c.
func solveQuadratic(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
