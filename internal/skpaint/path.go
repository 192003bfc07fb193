package skpaint

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/vcanvas/internal/path"
	"golang.org/x/image/math/f64"
)

// FillType selects the rule deciding which regions of a path are inside.
type FillType uint8

const (
	// FillWinding fills regions with a non-zero winding number.
	FillWinding FillType = iota
	// FillEvenOdd fills regions with an odd winding number.
	FillEvenOdd
)

// String returns the fill type name.
func (f FillType) String() string {
	if f == FillEvenOdd {
		return "EvenOdd"
	}
	return "Winding"
}

// Verb is one path command.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad
	VerbCubic
	VerbClose
)

// pointCount is the number of points each verb consumes.
var pointCount = [...]int{VerbMove: 1, VerbLine: 1, VerbQuad: 2, VerbCubic: 3, VerbClose: 0}

// Path is a sequence of verbs and their points. The zero value is an empty
// path with the winding fill type.
type Path struct {
	verbs    []Verb
	pts      []Point
	fillType FillType
}

// MoveTo starts a new contour.
func (p *Path) MoveTo(x, y float32) {
	p.verbs = append(p.verbs, VerbMove)
	p.pts = append(p.pts, Point{x, y})
}

// LineTo adds a line from the last point.
func (p *Path) LineTo(x, y float32) {
	p.verbs = append(p.verbs, VerbLine)
	p.pts = append(p.pts, Point{x, y})
}

// QuadTo adds a quadratic Bézier with control (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float32) {
	p.verbs = append(p.verbs, VerbQuad)
	p.pts = append(p.pts, Point{x1, y1}, Point{x2, y2})
}

// CubicTo adds a cubic Bézier.
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	p.verbs = append(p.verbs, VerbCubic)
	p.pts = append(p.pts, Point{x1, y1}, Point{x2, y2}, Point{x3, y3})
}

// Close closes the current contour.
func (p *Path) Close() {
	p.verbs = append(p.verbs, VerbClose)
}

// AddRect adds r as a closed clockwise contour starting at the top-left
// corner.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// SetFillType sets the fill rule.
func (p *Path) SetFillType(f FillType) { p.fillType = f }

// FillType returns the fill rule.
func (p *Path) FillType() FillType { return p.fillType }

// Reset removes every verb, keeping the fill type.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.pts = p.pts[:0]
}

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool { return len(p.verbs) == 0 }

// CountVerbs returns the number of verbs.
func (p *Path) CountVerbs() int { return len(p.verbs) }

// Bounds returns the bounds of every point, control points included.
func (p *Path) Bounds() Rect {
	if len(p.pts) == 0 {
		return Rect{}
	}
	r := Rect{Left: p.pts[0].X, Top: p.pts[0].Y, Right: p.pts[0].X, Bottom: p.pts[0].Y}
	for _, q := range p.pts[1:] {
		r.Left = math32.Min(r.Left, q.X)
		r.Top = math32.Min(r.Top, q.Y)
		r.Right = math32.Max(r.Right, q.X)
		r.Bottom = math32.Max(r.Bottom, q.Y)
	}
	return r
}

// Iter calls fn for every verb with the points it consumes.
func (p *Path) Iter(fn func(v Verb, pts []Point)) {
	i := 0
	for _, v := range p.verbs {
		n := pointCount[v]
		fn(v, p.pts[i:i+n])
		i += n
	}
}

// flatten converts the path to polylines in its own coordinates using f.
func (p *Path) flatten(f *path.Flattener) []path.Subpath {
	p.Iter(func(v Verb, pts []Point) {
		switch v {
		case VerbMove:
			f.MoveTo(vec(pts[0]))
		case VerbLine:
			f.LineTo(vec(pts[0]))
		case VerbQuad:
			f.QuadTo(vec(pts[0]), vec(pts[1]))
		case VerbCubic:
			f.CubicTo(vec(pts[0]), vec(pts[1]), vec(pts[2]))
		case VerbClose:
			f.Close()
		}
	})
	return f.Subpaths()
}

func vec(p Point) f64.Vec2 { return f64.Vec2{float64(p.X), float64(p.Y)} }
