package skpaint

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f64"
)

// Point is a position in float32 coordinates.
type Point struct {
	X, Y float32
}

// Rect is bounded by its edges. Left <= Right and Top <= Bottom for a
// sorted rect.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// MakeLTRB returns the rect with the given edges.
func MakeLTRB(l, t, r, b float32) Rect {
	return Rect{Left: l, Top: t, Right: r, Bottom: b}
}

// MakeXYWH returns the rect at (x, y) with size w x h.
func MakeXYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// IsEmpty reports whether r encloses no area.
func (r Rect) IsEmpty() bool { return !(r.Left < r.Right && r.Top < r.Bottom) }

// Sort returns r with swapped edges put in order.
func (r Rect) Sort() Rect {
	return Rect{
		Left:   math32.Min(r.Left, r.Right),
		Top:    math32.Min(r.Top, r.Bottom),
		Right:  math32.Max(r.Left, r.Right),
		Bottom: math32.Max(r.Top, r.Bottom),
	}
}

// Matrix is a 2x3 affine transform:
//
//	x' = SX*x + KX*y + TX
//	y' = KY*x + SY*y + TY
type Matrix struct {
	SX, KX, TX float32
	KY, SY, TY float32
}

// MakeIdentity returns the identity matrix.
func MakeIdentity() Matrix { return Matrix{SX: 1, SY: 1} }

// MakeTrans returns a translation.
func MakeTrans(dx, dy float32) Matrix { return Matrix{SX: 1, SY: 1, TX: dx, TY: dy} }

// MakeScale returns a scale about the origin.
func MakeScale(sx, sy float32) Matrix { return Matrix{SX: sx, SY: sy} }

// MakeAll returns the matrix with the given coefficients.
func MakeAll(sx, kx, tx, ky, sy, ty float32) Matrix {
	return Matrix{SX: sx, KX: kx, TX: tx, KY: ky, SY: sy, TY: ty}
}

// Concat returns m * o: o is applied first.
func (m Matrix) Concat(o Matrix) Matrix {
	return Matrix{
		SX: m.SX*o.SX + m.KX*o.KY,
		KX: m.SX*o.KX + m.KX*o.SY,
		TX: m.SX*o.TX + m.KX*o.TY + m.TX,
		KY: m.KY*o.SX + m.SY*o.KY,
		SY: m.KY*o.KX + m.SY*o.SY,
		TY: m.KY*o.TX + m.SY*o.TY + m.TY,
	}
}

// MapPoint transforms p.
func (m Matrix) MapPoint(p Point) Point {
	return Point{
		X: m.SX*p.X + m.KX*p.Y + m.TX,
		Y: m.KY*p.X + m.SY*p.Y + m.TY,
	}
}

// MapRect returns the bounds of r transformed by m.
func (m Matrix) MapRect(r Rect) Rect {
	pts := [4]Point{
		m.MapPoint(Point{r.Left, r.Top}),
		m.MapPoint(Point{r.Right, r.Top}),
		m.MapPoint(Point{r.Right, r.Bottom}),
		m.MapPoint(Point{r.Left, r.Bottom}),
	}
	out := Rect{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		out.Left = math32.Min(out.Left, p.X)
		out.Top = math32.Min(out.Top, p.Y)
		out.Right = math32.Max(out.Right, p.X)
		out.Bottom = math32.Max(out.Bottom, p.Y)
	}
	return out
}

// Invert returns the inverse of m. ok is false for a singular matrix.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.SX*m.SY - m.KX*m.KY
	if det == 0 || math32.IsNaN(det) || math32.IsInf(det, 0) {
		return Matrix{}, false
	}
	id := 1 / det
	return Matrix{
		SX: m.SY * id,
		KX: -m.KX * id,
		TX: (m.KX*m.TY - m.SY*m.TX) * id,
		KY: -m.KY * id,
		SY: m.SX * id,
		TY: (m.KY*m.TX - m.SX*m.TY) * id,
	}, true
}

// MaxScale returns the largest factor by which m stretches a vector.
func (m Matrix) MaxScale() float32 {
	a := m.SX*m.SX + m.KY*m.KY
	b := m.SX*m.KX + m.KY*m.SY
	c := m.KX*m.KX + m.SY*m.SY
	mid := (a + c) / 2
	d := math32.Sqrt((a-c)*(a-c)/4 + b*b)
	return math32.Sqrt(mid + d)
}

// IsIdentity reports whether m leaves every point unchanged.
func (m Matrix) IsIdentity() bool { return m == MakeIdentity() }

// aff3 widens m for the rasterizer.
func (m Matrix) aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m.SX), float64(m.KX), float64(m.TX),
		float64(m.KY), float64(m.SY), float64(m.TY),
	}
}
