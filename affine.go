package vcanvas

import "math"

// Affine is a 2D affine transformation in the coefficient order
// [A B C D E F] shared by most native engines:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// NewAffine creates a transformation from its six coefficients.
func NewAffine(c [6]float64) Affine {
	return Affine{A: c[0], B: c[1], C: c[2], D: c[3], E: c[4], F: c[5]}
}

// Translate creates a translation.
func Translate(x, y float64) Affine {
	return Affine{A: 1, D: 1, E: x, F: y}
}

// Scale creates a non-uniform scale.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate creates a rotation by theta radians. With y pointing down the
// rotation is clockwise on screen.
func Rotate(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// Skew creates a shear transformation.
func Skew(kx, ky float64) Affine {
	return Affine{A: 1, B: ky, C: kx, D: 1}
}

// Coeffs returns the six coefficients.
func (a Affine) Coeffs() [6]float64 {
	return [6]float64{a.A, a.B, a.C, a.D, a.E, a.F}
}

// Mul returns a composed with b, so that b is applied first:
// a.Mul(b).Apply(p) == a.Apply(b.Apply(p)).
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Apply transforms a point.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a.A*p.X + a.C*p.Y + a.E,
		Y: a.B*p.X + a.D*p.Y + a.F,
	}
}

// ApplyVec transforms a displacement, ignoring translation.
func (a Affine) ApplyVec(v Vec2) Vec2 {
	return Vec2{
		X: a.A*v.X + a.C*v.Y,
		Y: a.B*v.X + a.D*v.Y,
	}
}

// Determinant returns A*D - B*C.
func (a Affine) Determinant() float64 {
	return a.A*a.D - a.B*a.C
}

// Inverse returns the inverse transformation. ok is false when the
// transformation is singular.
func (a Affine) Inverse() (inv Affine, ok bool) {
	det := a.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	id := 1 / det
	return Affine{
		A: a.D * id,
		B: -a.B * id,
		C: -a.C * id,
		D: a.A * id,
		E: (a.C*a.F - a.D*a.E) * id,
		F: (a.B*a.E - a.A*a.F) * id,
	}, true
}

// IsIdentity reports whether a is exactly the identity.
func (a Affine) IsIdentity() bool {
	return a == Identity()
}

// IsAxisAligned reports whether a maps axis-aligned rectangles onto
// axis-aligned rectangles without rotation.
func (a Affine) IsAxisAligned() bool {
	return a.B == 0 && a.C == 0
}

// TransformRectBBox returns the bounding box of the transformed rectangle.
func (a Affine) TransformRectBBox(r Rect) Rect {
	p0 := a.Apply(Pt(r.X0, r.Y0))
	p1 := a.Apply(Pt(r.X1, r.Y0))
	p2 := a.Apply(Pt(r.X1, r.Y1))
	p3 := a.Apply(Pt(r.X0, r.Y1))
	return Rect{
		X0: min(p0.X, p1.X, p2.X, p3.X),
		Y0: min(p0.Y, p1.Y, p2.Y, p3.Y),
		X1: max(p0.X, p1.X, p2.X, p3.X),
		Y1: max(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// MaxScale returns the largest factor by which a stretches any unit vector.
func (a Affine) MaxScale() float64 {
	// Singular values of the 2x2 linear part.
	s := a.A*a.A + a.B*a.B + a.C*a.C + a.D*a.D
	d := a.Determinant()
	disc := math.Sqrt(math.Max(0, s*s-4*d*d))
	return math.Sqrt((s + disc) / 2)
}
