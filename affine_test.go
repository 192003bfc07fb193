package vcanvas

import (
	"math"
	"testing"
)

const eps = 1e-9

func pointNear(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestAffineMulOrder(t *testing.T) {
	tr := Translate(10, 0)
	sc := Scale(2, 3)
	p := Pt(1, 1)

	// b is applied first
	if got := tr.Mul(sc).Apply(p); !pointNear(got, Pt(12, 3)) {
		t.Errorf("Translate.Mul(Scale) = %v, want (12, 3)", got)
	}
	if got := sc.Mul(tr).Apply(p); !pointNear(got, Pt(22, 3)) {
		t.Errorf("Scale.Mul(Translate) = %v, want (22, 3)", got)
	}
}

func TestAffineFlip(t *testing.T) {
	const h = 100.0
	flip := Translate(0, h).Mul(Scale(1, -1))
	tests := []struct {
		in, want Point
	}{
		{Pt(0, 0), Pt(0, h)},
		{Pt(5, h), Pt(5, 0)},
		{Pt(3, 25), Pt(3, 75)},
	}
	for _, tt := range tests {
		if got := flip.Apply(tt.in); !pointNear(got, tt.want) {
			t.Errorf("flip(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if flip.Coeffs() != [6]float64{1, 0, 0, -1, 0, h} {
		t.Errorf("flip coefficients = %v", flip.Coeffs())
	}
}

func TestAffineInverse(t *testing.T) {
	a := Translate(3, -4).Mul(Rotate(0.7)).Mul(Scale(2, 0.5))
	inv, ok := a.Inverse()
	if !ok {
		t.Fatal("Inverse reported singular")
	}
	p := Pt(7, 11)
	if got := inv.Apply(a.Apply(p)); !pointNear(got, p) {
		t.Errorf("inv(a(p)) = %v, want %v", got, p)
	}
	if _, ok := Scale(0, 1).Inverse(); ok {
		t.Error("zero scale should be singular")
	}
}

func TestAffineMaxScale(t *testing.T) {
	tests := []struct {
		name string
		a    Affine
		want float64
	}{
		{"identity", Identity(), 1},
		{"scale", Scale(2, 5), 5},
		{"rotate", Rotate(1.1), 1},
		{"flip", Scale(1, -1), 1},
	}
	for _, tt := range tests {
		if got := tt.a.MaxScale(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: MaxScale = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTransformRectBBox(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	got := Rotate(math.Pi / 4).TransformRectBBox(r)
	d := 10 * math.Sqrt2 / 2
	want := Rect{X0: -d, Y0: 0, X1: d, Y1: 2 * d}
	if math.Abs(got.X0-want.X0) > eps || math.Abs(got.X1-want.X1) > eps || math.Abs(got.Y1-want.Y1) > eps {
		t.Errorf("TransformRectBBox = %+v, want %+v", got, want)
	}
}
