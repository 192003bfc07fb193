package bridge

import (
	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/typeset"
	"golang.org/x/image/math/f64"
)

// Emit streams the outline of shape into sink.
func Emit(shape vcanvas.Shape, sink typeset.PathSink) {
	for el := range shape.PathElements(vcanvas.DefaultTolerance) {
		switch el := el.(type) {
		case vcanvas.MoveTo:
			sink.MoveTo(el.P.X, el.P.Y)
		case vcanvas.LineTo:
			sink.LineTo(el.P.X, el.P.Y)
		case vcanvas.QuadTo:
			sink.QuadTo(el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case vcanvas.CurveTo:
			sink.CubicTo(el.P1.X, el.P1.Y, el.P2.X, el.P2.Y, el.P3.X, el.P3.Y)
		case vcanvas.ClosePath:
			sink.Close()
		}
	}
}

// Aff3 converts a to the row-major form used by the engines.
func Aff3(a vcanvas.Affine) f64.Aff3 {
	return f64.Aff3{a.A, a.C, a.E, a.B, a.D, a.F}
}

// Affine converts a row-major matrix back to vcanvas form.
func Affine(m f64.Aff3) vcanvas.Affine {
	return vcanvas.Affine{A: m[0], B: m[3], C: m[1], D: m[4], E: m[2], F: m[5]}
}
