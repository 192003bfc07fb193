package vcanvas

import "math"

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle creates a circle.
func NewCircle(center Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// BoundingBox implements Shape.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{X0: c.Center.X - r, Y0: c.Center.Y - r, X1: c.Center.X + r, Y1: c.Center.Y + r}
}

// AsRect implements Shape.
func (Circle) AsRect() (Rect, bool) { return Rect{}, false }

// PathElements implements Shape.
func (c Circle) PathElements(tolerance float64) PathSeq {
	return Ellipse{Center: c.Center, Radii: V2(c.Radius, c.Radius)}.PathElements(tolerance)
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center Point
	Radii  Vec2
}

// NewEllipse creates the ellipse inscribed in r.
func NewEllipse(r Rect) Ellipse {
	r = r.Abs()
	return Ellipse{Center: r.Center(), Radii: V2(r.Width()/2, r.Height()/2)}
}

// BoundingBox implements Shape.
func (e Ellipse) BoundingBox() Rect {
	rx, ry := math.Abs(e.Radii.X), math.Abs(e.Radii.Y)
	return Rect{X0: e.Center.X - rx, Y0: e.Center.Y - ry, X1: e.Center.X + rx, Y1: e.Center.Y + ry}
}

// AsRect implements Shape.
func (Ellipse) AsRect() (Rect, bool) { return Rect{}, false }

// PathElements implements Shape.
func (e Ellipse) PathElements(tolerance float64) PathSeq {
	return func(yield func(PathEl) bool) {
		start := Pt(e.Center.X+e.Radii.X, e.Center.Y)
		if !yield(MoveTo{P: start}) {
			return
		}
		if !appendArc(yield, e.Center, e.Radii, 0, 2*math.Pi, tolerance) {
			return
		}
		yield(ClosePath{})
	}
}

// RoundedRect is a rectangle whose corners are quarter circles of Radius.
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

// NewRoundedRect creates a rounded rectangle.
func NewRoundedRect(x0, y0, x1, y1, radius float64) RoundedRect {
	return RoundedRect{Rect: NewRect(x0, y0, x1, y1), Radius: radius}
}

// BoundingBox implements Shape.
func (r RoundedRect) BoundingBox() Rect { return r.Rect.Abs() }

// AsRect implements Shape; only a zero radius is exactly a rectangle.
func (r RoundedRect) AsRect() (Rect, bool) {
	if r.clampedRadius() <= 0 {
		return r.Rect.Abs(), true
	}
	return Rect{}, false
}

func (r RoundedRect) clampedRadius() float64 {
	b := r.Rect.Abs()
	return math.Max(0, math.Min(r.Radius, math.Min(b.Width(), b.Height())/2))
}

// PathElements implements Shape.
func (r RoundedRect) PathElements(tolerance float64) PathSeq {
	rad := r.clampedRadius()
	if rad <= 0 {
		return r.Rect.Abs().PathElements(tolerance)
	}
	b := r.Rect.Abs()
	radii := V2(rad, rad)
	return func(yield func(PathEl) bool) {
		_ = yield(MoveTo{P: Pt(b.X0+rad, b.Y0)}) &&
			yield(LineTo{P: Pt(b.X1-rad, b.Y0)}) &&
			appendArc(yield, Pt(b.X1-rad, b.Y0+rad), radii, -math.Pi/2, math.Pi/2, tolerance) &&
			yield(LineTo{P: Pt(b.X1, b.Y1-rad)}) &&
			appendArc(yield, Pt(b.X1-rad, b.Y1-rad), radii, 0, math.Pi/2, tolerance) &&
			yield(LineTo{P: Pt(b.X0+rad, b.Y1)}) &&
			appendArc(yield, Pt(b.X0+rad, b.Y1-rad), radii, math.Pi/2, math.Pi/2, tolerance) &&
			yield(LineTo{P: Pt(b.X0, b.Y0+rad)}) &&
			appendArc(yield, Pt(b.X0+rad, b.Y0+rad), radii, math.Pi, math.Pi/2, tolerance) &&
			yield(ClosePath{})
	}
}

// Line is a single straight segment. Filling a line draws nothing.
type Line struct {
	P0, P1 Point
}

// NewLine creates a line segment.
func NewLine(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1}
}

// BoundingBox implements Shape.
func (l Line) BoundingBox() Rect { return RectFromPoints(l.P0, l.P1) }

// AsRect implements Shape.
func (Line) AsRect() (Rect, bool) { return Rect{}, false }

// PathElements implements Shape.
func (l Line) PathElements(float64) PathSeq {
	return func(yield func(PathEl) bool) {
		_ = yield(MoveTo{P: l.P0}) && yield(LineTo{P: l.P1})
	}
}

// arcErrorQuarter is the relative radial error of a single cubic
// approximating a quarter circle.
const arcErrorQuarter = 2.7e-4

// appendArc emits cubic segments approximating the elliptical arc starting
// at angle start and sweeping by sweep radians. The current point must
// already be the arc's start point.
func appendArc(yield func(PathEl) bool, c Point, radii Vec2, start, sweep, tolerance float64) bool {
	n := arcSegments(math.Max(math.Abs(radii.X), math.Abs(radii.Y)), sweep, tolerance)
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	a0 := start
	s0, c0 := math.Sincos(a0)
	for i := 0; i < n; i++ {
		a1 := start + step*float64(i+1)
		s1, c1 := math.Sincos(a1)
		p0 := Pt(c.X+radii.X*c0, c.Y+radii.Y*s0)
		p3 := Pt(c.X+radii.X*c1, c.Y+radii.Y*s1)
		p1 := Pt(p0.X-k*radii.X*s0, p0.Y+k*radii.Y*c0)
		p2 := Pt(p3.X+k*radii.X*s1, p3.Y-k*radii.Y*c1)
		if !yield(CurveTo{P1: p1, P2: p2, P3: p3}) {
			return false
		}
		s0, c0 = s1, c1
	}
	return true
}

// arcSegments returns how many cubics keep the arc within tolerance. The
// approximation error grows with the sixth power of the segment angle.
func arcSegments(radius, sweep, tolerance float64) int {
	sweep = math.Abs(sweep)
	minN := int(math.Ceil(sweep/(math.Pi/2) - 1e-9))
	if minN < 1 {
		minN = 1
	}
	if tolerance <= 0 || radius <= 0 {
		return minN
	}
	maxAngle := math.Pi / 2 * math.Pow(tolerance/(arcErrorQuarter*radius), 1.0/6)
	n := int(math.Ceil(sweep / maxAngle))
	return max(n, minN)
}
