package stroke

import (
	"math"

	"github.com/gogpu/vcanvas/internal/path"
	"golang.org/x/image/math/f64"
)

// Cap specifies the shape of open subpath ends.
type Cap int

const (
	// CapButt specifies a flat line cap.
	CapButt Cap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

// Join specifies the shape of line joins.
type Join int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter Join = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Style defines the stroke geometry.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64

	// Dash holds alternating dash and gap lengths; empty means solid.
	Dash       []float64
	DashOffset float64
}

// Reach returns how far the outline of a solid stroke extends from the
// path it strokes, in the units of Width.
func (s Style) Reach() float64 {
	if !(s.Width > 0) {
		return 0
	}
	k := 1.0
	if s.Cap == CapSquare {
		k = math.Sqrt2
	}
	if s.Join == JoinMiter {
		k = math.Max(k, s.MiterLimit)
	}
	return s.Width / 2 * k
}

// Expander converts polylines into stroke polygons.
type Expander struct {
	style     Style
	half      float64
	tolerance float64
	out       []path.Subpath
}

// NewExpander creates an expander. tolerance bounds the error of round
// joins and caps, in the units of the input.
func NewExpander(style Style, tolerance float64) *Expander {
	if !(tolerance > 0) {
		tolerance = path.Tolerance
	}
	if style.MiterLimit < 1 {
		style.MiterLimit = 1
	}
	return &Expander{style: style, half: style.Width / 2, tolerance: tolerance}
}

// Expand returns the stroke outline of subpaths as closed polygons to be
// filled with the non-zero rule. A non-positive width yields nothing.
func (e *Expander) Expand(subpaths []path.Subpath) []path.Subpath {
	e.out = nil
	if !(e.half > 0) {
		return nil
	}
	for _, sp := range subpaths {
		pts := dedup(sp.Points)
		closed := sp.Closed && len(pts) > 2
		if closed && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(e.style.Dash) > 0 {
			if pieces, ok := Dash(pts, closed, e.style.Dash, e.style.DashOffset, e.tolerance); ok {
				for _, piece := range pieces {
					e.polyline(dedup(piece), false)
				}
				continue
			}
		}
		e.polyline(pts, closed)
	}
	return e.out
}

func (e *Expander) polyline(pts []f64.Vec2, closed bool) {
	switch {
	case len(pts) == 0:
		return
	case len(pts) == 1:
		e.dot(pts[0])
		return
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		e.segment(pts[i], pts[(i+1)%n])
	}

	// interior joins
	for i := 1; i < n-1; i++ {
		e.join(pts[i-1], pts[i], pts[i+1])
	}
	if closed {
		e.join(pts[n-2], pts[n-1], pts[0])
		e.join(pts[n-1], pts[0], pts[1])
		return
	}
	e.cap(pts[0], unit(sub(pts[0], pts[1])))
	e.cap(pts[n-1], unit(sub(pts[n-1], pts[n-2])))
}

// segment emits the rectangle covering one segment.
func (e *Expander) segment(a, b f64.Vec2) {
	n := scale(perp(unit(sub(b, a))), e.half)
	e.emit([]f64.Vec2{add(a, n), add(b, n), sub(b, n), sub(a, n)})
}

// join emits the corner polygon at b between segments a-b and b-c.
func (e *Expander) join(a, b, c f64.Vec2) {
	d0 := unit(sub(b, a))
	d1 := unit(sub(c, b))
	cross := d0[0]*d1[1] - d0[1]*d1[0]
	dot := d0[0]*d1[0] + d0[1]*d1[1]
	if math.Abs(cross) < 1e-12 && dot > 0 {
		return
	}
	if e.style.Join == JoinRound {
		e.disc(b)
		return
	}
	// outer side is opposite to the turn direction
	side := -1.0
	if cross < 0 {
		side = 1
	}
	n0 := scale(perp(d0), e.half*side)
	n1 := scale(perp(d1), e.half*side)
	p0, p1 := add(b, n0), add(b, n1)

	if e.style.Join == JoinMiter {
		// cos of half the angle between the offset normals
		cosHalf := math.Sqrt(math.Max(0, (1+dot)/2))
		if cosHalf > 0 && 1/cosHalf <= e.style.MiterLimit {
			bis := unit(add(n0, n1))
			tip := add(b, scale(bis, e.half/cosHalf))
			e.emit([]f64.Vec2{b, p0, tip, p1})
			return
		}
	}
	e.emit([]f64.Vec2{b, p0, p1})
}

// cap emits the end cap at p; dir points outward along the stroke.
func (e *Expander) cap(p, dir f64.Vec2) {
	switch e.style.Cap {
	case CapRound:
		e.disc(p)
	case CapSquare:
		n := scale(perp(dir), e.half)
		ext := scale(dir, e.half)
		e.emit([]f64.Vec2{add(p, n), add(add(p, n), ext), add(sub(p, n), ext), sub(p, n)})
	}
}

// dot handles a zero-length subpath: only round and square caps draw.
func (e *Expander) dot(p f64.Vec2) {
	switch e.style.Cap {
	case CapRound:
		e.disc(p)
	case CapSquare:
		h := e.half
		e.emit([]f64.Vec2{{p[0] - h, p[1] - h}, {p[0] + h, p[1] - h}, {p[0] + h, p[1] + h}, {p[0] - h, p[1] + h}})
	}
}

func (e *Expander) disc(c f64.Vec2) {
	e.emit(Circle(c, e.half, e.tolerance))
}

// emit appends poly with positive orientation, dropping degenerate ones.
func (e *Expander) emit(poly []f64.Vec2) {
	var area float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		area += p[0]*q[1] - q[0]*p[1]
	}
	if math.Abs(area) < 1e-12 {
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	e.out = append(e.out, path.Subpath{Points: poly, Closed: true})
}

// Circle returns a polygon approximating a circle within tolerance.
func Circle(c f64.Vec2, r, tolerance float64) []f64.Vec2 {
	n := 8
	if r > tolerance {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-tolerance/r))))
	}
	pts := make([]f64.Vec2, n)
	for i := range pts {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = f64.Vec2{c[0] + r*co, c[1] + r*s}
	}
	return pts
}

func dedup(pts []f64.Vec2) []f64.Vec2 {
	out := make([]f64.Vec2, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

func add(a, b f64.Vec2) f64.Vec2            { return f64.Vec2{a[0] + b[0], a[1] + b[1]} }
func sub(a, b f64.Vec2) f64.Vec2            { return f64.Vec2{a[0] - b[0], a[1] - b[1]} }
func scale(a f64.Vec2, s float64) f64.Vec2 { return f64.Vec2{a[0] * s, a[1] * s} }
func perp(a f64.Vec2) f64.Vec2              { return f64.Vec2{-a[1], a[0]} }

func unit(a f64.Vec2) f64.Vec2 {
	l := math.Hypot(a[0], a[1])
	if l == 0 {
		return f64.Vec2{}
	}
	return f64.Vec2{a[0] / l, a[1] / l}
}
