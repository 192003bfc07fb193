// Package path flattens curve paths into polylines.
//
// Points are golang.org/x/image/math/f64 vectors so that the engines can
// share one representation with the x/image affine helpers.
package path

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Tolerance is the default maximum distance, in device pixels, between a
// curve and its flattened polyline.
const Tolerance = 0.1

// maxDepth bounds curve subdivision for degenerate input.
const maxDepth = 16

// maxViewDepth bounds subdivision of curve pieces that reach the view of a
// culling flattener and are no smaller than it. Past maxDepth only those
// pieces are split further.
const maxViewDepth = 40

// Subpath is a flattened subpath.
type Subpath struct {
	Points []f64.Vec2
	Closed bool
}

// Flattener accumulates path segments as polylines.
//
// It follows PostScript current-point rules: LineTo without a current point
// starts at the origin, and drawing after Close starts a new subpath at the
// closed subpath's first point.
type Flattener struct {
	tolerance float64
	subpaths  []Subpath
	open      bool
	start     f64.Vec2
	cur       f64.Vec2

	culling bool
	view    f64.Aff3
	lo, hi  f64.Vec2
}

// New creates a flattener. A non-positive tolerance selects Tolerance.
func New(tolerance float64) *Flattener {
	if !(tolerance > 0) {
		tolerance = Tolerance
	}
	return &Flattener{tolerance: tolerance}
}

// SetView makes the flattener cull against the rectangle [lo, hi], given in
// the space m maps points into. A curve piece whose control points all map
// outside the rectangle is emitted as its chord. The region between such a
// piece and its chord lies outside the rectangle, so fills rasterized
// within it are unchanged. Strokes need the rectangle inflated by their
// reach.
func (f *Flattener) SetView(m f64.Aff3, lo, hi f64.Vec2) {
	f.culling = true
	f.view, f.lo, f.hi = m, lo, hi
}

// Reset clears all subpaths, keeping the tolerance and view.
func (f *Flattener) Reset() {
	f.subpaths = f.subpaths[:0]
	f.open = false
	f.start, f.cur = f64.Vec2{}, f64.Vec2{}
}

// CurrentPoint returns the pen position.
func (f *Flattener) CurrentPoint() f64.Vec2 { return f.cur }

// MoveTo starts a new subpath at p.
func (f *Flattener) MoveTo(p f64.Vec2) {
	f.subpaths = append(f.subpaths, Subpath{Points: []f64.Vec2{p}})
	f.open = true
	f.start, f.cur = p, p
}

func (f *Flattener) ensureOpen() {
	if !f.open {
		f.MoveTo(f.cur)
	}
}

func (f *Flattener) push(p f64.Vec2) {
	sp := &f.subpaths[len(f.subpaths)-1]
	sp.Points = append(sp.Points, p)
	f.cur = p
}

// LineTo adds a straight segment.
func (f *Flattener) LineTo(p f64.Vec2) {
	f.ensureOpen()
	f.push(p)
}

// QuadTo adds a quadratic Bézier segment.
func (f *Flattener) QuadTo(c, p f64.Vec2) {
	f.ensureOpen()
	f.quad(f.cur, c, p, 0)
}

// CubicTo adds a cubic Bézier segment.
func (f *Flattener) CubicTo(c1, c2, p f64.Vec2) {
	f.ensureOpen()
	f.cubic(f.cur, c1, c2, p, 0)
}

// Close closes the current subpath.
func (f *Flattener) Close() {
	if !f.open {
		return
	}
	f.subpaths[len(f.subpaths)-1].Closed = true
	f.open = false
	f.cur = f.start
}

// Subpaths returns the flattened subpaths. Subpaths with a single point are
// kept: strokes draw caps for them.
func (f *Flattener) Subpaths() []Subpath {
	return f.subpaths
}

func (f *Flattener) quad(p0, p1, p2 f64.Vec2, depth int) {
	if f.flat(depth, distanceToLine(p1, p0, p2), []f64.Vec2{p0, p1, p2}) {
		f.push(p2)
		return
	}
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(q0, q1, 0.5)
	f.quad(p0, q0, q2, depth+1)
	f.quad(q2, q1, p2, depth+1)
}

func (f *Flattener) cubic(p0, p1, p2, p3 f64.Vec2, depth int) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if f.flat(depth, d, []f64.Vec2{p0, p1, p2, p3}) {
		f.push(p3)
		return
	}
	// de Casteljau split at t = 0.5
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)
	f.cubic(p0, q0, r0, s, depth+1)
	f.cubic(s, r1, q2, p3, depth+1)
}

// flat reports whether a curve piece with control points ctrl, deviating
// dev from its chord, is emitted as a line.
func (f *Flattener) flat(depth int, dev float64, ctrl []f64.Vec2) bool {
	if dev < f.tolerance {
		return true
	}
	if !f.culling {
		return depth >= maxDepth
	}
	visible, large := f.visible(ctrl)
	if !visible {
		return true
	}
	return depth >= maxDepth && (!large || depth >= maxViewDepth)
}

// visible reports whether the hull of ctrl may reach the view, and whether
// it is at least as large as the view. Pieces with non-finite points are
// never visible.
func (f *Flattener) visible(ctrl []f64.Vec2) (visible, large bool) {
	lo := f64.Vec2{math.Inf(1), math.Inf(1)}
	hi := f64.Vec2{math.Inf(-1), math.Inf(-1)}
	for _, p := range ctrl {
		q := Apply(f.view, p)
		if math.IsNaN(q[0]) || math.IsNaN(q[1]) || math.IsInf(q[0], 0) || math.IsInf(q[1], 0) {
			return false, false
		}
		lo[0], lo[1] = math.Min(lo[0], q[0]), math.Min(lo[1], q[1])
		hi[0], hi[1] = math.Max(hi[0], q[0]), math.Max(hi[1], q[1])
	}
	visible = hi[0] >= f.lo[0] && lo[0] <= f.hi[0] && hi[1] >= f.lo[1] && lo[1] <= f.hi[1]
	large = math.Max(hi[0]-lo[0], hi[1]-lo[1]) >= math.Max(f.hi[0]-f.lo[0], f.hi[1]-f.lo[1])
	return visible, large
}

// Transform applies m to every point of subpaths in place.
func Transform(subpaths []Subpath, m f64.Aff3) {
	for i := range subpaths {
		pts := subpaths[i].Points
		for j, p := range pts {
			pts[j] = Apply(m, p)
		}
	}
}

// Clone deep-copies subpaths.
func Clone(subpaths []Subpath) []Subpath {
	out := make([]Subpath, len(subpaths))
	for i, sp := range subpaths {
		out[i] = Subpath{Points: append([]f64.Vec2(nil), sp.Points...), Closed: sp.Closed}
	}
	return out
}

// Bounds returns the bounding box of all points as (min, max). ok is false
// when there are no points.
func Bounds(subpaths []Subpath) (lo, hi f64.Vec2, ok bool) {
	lo = f64.Vec2{math.Inf(1), math.Inf(1)}
	hi = f64.Vec2{math.Inf(-1), math.Inf(-1)}
	for _, sp := range subpaths {
		for _, p := range sp.Points {
			lo[0], lo[1] = math.Min(lo[0], p[0]), math.Min(lo[1], p[1])
			hi[0], hi[1] = math.Max(hi[0], p[0]), math.Max(hi[1], p[1])
			ok = true
		}
	}
	return lo, hi, ok
}

// Apply transforms p by the row-major affine m.
func Apply(m f64.Aff3, p f64.Vec2) f64.Vec2 {
	return f64.Vec2{
		m[0]*p[0] + m[1]*p[1] + m[2],
		m[3]*p[0] + m[4]*p[1] + m[5],
	}
}

// Mul returns a*b, applying b first.
func Mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Invert returns the inverse of m. ok is false for singular matrices.
func Invert(m f64.Aff3) (inv f64.Aff3, ok bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity, false
	}
	id := 1 / det
	return f64.Aff3{
		m[4] * id, -m[1] * id, (m[1]*m[5] - m[4]*m[2]) * id,
		-m[3] * id, m[0] * id, (m[3]*m[2] - m[0]*m[5]) * id,
	}, true
}

// MaxScale returns the largest stretch factor of m's linear part.
func MaxScale(m f64.Aff3) float64 {
	s := m[0]*m[0] + m[1]*m[1] + m[3]*m[3] + m[4]*m[4]
	d := m[0]*m[4] - m[1]*m[3]
	return math.Sqrt((s + math.Sqrt(math.Max(0, s*s-4*d*d))) / 2)
}

// Identity is the identity transform.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

func lerp(p, q f64.Vec2, t float64) f64.Vec2 {
	return f64.Vec2{p[0] + (q[0]-p[0])*t, p[1] + (q[1]-p[1])*t}
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b f64.Vec2) float64 {
	abx, aby := b[0]-a[0], b[1]-a[1]
	l2 := abx*abx + aby*aby
	if l2 < 1e-20 {
		return math.Hypot(p[0]-a[0], p[1]-a[1])
	}
	t := ((p[0]-a[0])*abx + (p[1]-a[1])*aby) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p[0]-(a[0]+abx*t), p[1]-(a[1]+aby*t))
}
