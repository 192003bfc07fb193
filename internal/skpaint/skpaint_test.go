package skpaint

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func newTestCanvas(w, h int) (*Canvas, *image.RGBA) {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	return NewCanvas(dst), dst
}

func solidPaint(c Color4f) *Paint {
	p := NewPaint()
	p.SetColor(c)
	return p
}

var (
	red   = Color4f{R: 1, A: 1}
	blue  = Color4f{B: 1, A: 1}
	black = Color4f{A: 1}
	white = Color4f{R: 1, G: 1, B: 1, A: 1}

	redPix = color.RGBA{R: 255, A: 255}
)

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestMatrix(t *testing.T) {
	m := MakeTrans(10, 0).Concat(MakeScale(2, 2))
	if got := m.MapPoint(Point{1, 1}); got != (Point{12, 2}) {
		t.Errorf("trans*scale maps (1,1) to %v, want (12,2)", got)
	}

	a := MakeAll(2, 0, 10, 0, 4, -8)
	inv, ok := a.Invert()
	if !ok {
		t.Fatal("invertible matrix reported singular")
	}
	p := inv.MapPoint(a.MapPoint(Point{3, -7}))
	if !near(p.X, 3) || !near(p.Y, -7) {
		t.Errorf("round trip = %v", p)
	}
	if _, ok := MakeScale(0, 1).Invert(); ok {
		t.Error("singular matrix inverted")
	}

	tests := []struct {
		name string
		m    Matrix
		want float32
	}{
		{"identity", MakeIdentity(), 1},
		{"scale", MakeScale(3, -2), 3},
		{"rotate", MakeAll(0, -1, 0, 1, 0, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MaxScale(); !near(got, tt.want) {
				t.Errorf("MaxScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMapRect(t *testing.T) {
	r := MakeScale(1, -1).MapRect(MakeLTRB(1, 2, 3, 4))
	if r != MakeLTRB(1, -4, 3, -2) {
		t.Errorf("MapRect = %v", r)
	}
}

func TestPathAddRect(t *testing.T) {
	var p Path
	p.AddRect(MakeXYWH(1, 2, 3, 4))

	var verbs []Verb
	var pts []Point
	p.Iter(func(v Verb, q []Point) {
		verbs = append(verbs, v)
		pts = append(pts, q...)
	})
	wantVerbs := []Verb{VerbMove, VerbLine, VerbLine, VerbLine, VerbClose}
	wantPts := []Point{{1, 2}, {4, 2}, {4, 6}, {1, 6}}
	if len(verbs) != len(wantVerbs) || len(pts) != len(wantPts) {
		t.Fatalf("verbs %v pts %v", verbs, pts)
	}
	for i := range wantVerbs {
		if verbs[i] != wantVerbs[i] {
			t.Errorf("verb %d = %v, want %v", i, verbs[i], wantVerbs[i])
		}
	}
	for i := range wantPts {
		if pts[i] != wantPts[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], wantPts[i])
		}
	}
	if b := p.Bounds(); b != MakeLTRB(1, 2, 4, 6) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestDrawRectIsYDown(t *testing.T) {
	c, dst := newTestCanvas(4, 4)
	c.DrawRect(MakeXYWH(0, 0, 2, 1), solidPaint(red))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.RGBA{}
			if y == 0 && x < 2 {
				want = redPix
			}
			if got := dst.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawRectMatchesPath(t *testing.T) {
	r := MakeLTRB(1.3, 0.7, 7.6, 5.2)
	c1, d1 := newTestCanvas(10, 10)
	c2, d2 := newTestCanvas(10, 10)
	c1.Concat(MakeAll(1, 0.2, 0, 0.1, 1, 0))
	c2.Concat(MakeAll(1, 0.2, 0, 0.1, 1, 0))

	c1.DrawRect(r, solidPaint(blue))
	var p Path
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
	c2.DrawPath(&p, solidPaint(blue))

	for i := range d1.Pix {
		if d1.Pix[i] != d2.Pix[i] {
			t.Fatalf("byte %d differs: %d vs %d", i, d1.Pix[i], d2.Pix[i])
		}
	}
}

func TestFillType(t *testing.T) {
	tests := []struct {
		fill   FillType
		center uint8
	}{
		{FillWinding, 255},
		{FillEvenOdd, 0},
	}
	for _, tt := range tests {
		t.Run(tt.fill.String(), func(t *testing.T) {
			c, dst := newTestCanvas(10, 10)
			var p Path
			p.AddRect(MakeLTRB(0, 0, 10, 10))
			p.AddRect(MakeLTRB(3, 3, 7, 7))
			p.SetFillType(tt.fill)
			c.DrawPath(&p, solidPaint(red))
			if got := dst.RGBAAt(5, 5).A; got != tt.center {
				t.Errorf("center alpha = %d, want %d", got, tt.center)
			}
			if got := dst.RGBAAt(1, 1).A; got != 255 {
				t.Errorf("ring alpha = %d, want 255", got)
			}
		})
	}
}

func TestStroke(t *testing.T) {
	c, dst := newTestCanvas(10, 10)
	p := solidPaint(red)
	p.Style = StyleStroke
	p.StrokeWidth = 2
	c.DrawRect(MakeLTRB(2, 2, 8, 8), p)
	if got := dst.RGBAAt(2, 5); got != redPix {
		t.Errorf("edge pixel = %v", got)
	}
	if got := dst.RGBAAt(5, 5).A; got != 0 {
		t.Errorf("interior alpha = %d, want 0", got)
	}

	c2, dst2 := newTestCanvas(10, 10)
	p.StrokeWidth = 0
	c2.DrawRect(MakeLTRB(2, 2, 8, 8), p)
	for i, v := range dst2.Pix {
		if v != 0 {
			t.Fatalf("zero-width stroke painted byte %d", i)
		}
	}
}

func TestSaveRestore(t *testing.T) {
	c, _ := newTestCanvas(4, 4)
	if err := c.Restore(); !errors.Is(err, ErrRestoreUnderflow) {
		t.Fatalf("Restore() on empty stack = %v", err)
	}
	if n := c.Save(); n != 1 {
		t.Errorf("Save() = %d, want 1", n)
	}
	c.Translate(3, 4)
	c.ClipRect(MakeLTRB(0, 0, 1, 1))
	if c.SaveCount() != 2 || c.ClipMask() == nil {
		t.Fatalf("SaveCount() = %d, clip %v", c.SaveCount(), c.ClipMask())
	}
	if err := c.Restore(); err != nil {
		t.Fatal(err)
	}
	if !c.TotalMatrix().IsIdentity() || c.ClipMask() != nil {
		t.Errorf("state not restored: %v", c.TotalMatrix())
	}

	c.Save()
	c.Save()
	c.Save()
	c.RestoreToCount(0)
	if c.SaveCount() != 1 {
		t.Errorf("SaveCount() after RestoreToCount(0) = %d", c.SaveCount())
	}
}

func TestClipRectLimitsPaint(t *testing.T) {
	c, dst := newTestCanvas(4, 4)
	c.ClipRect(MakeLTRB(1, 1, 3, 3))
	c.DrawPaint(solidPaint(red))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			if got := dst.RGBAAt(x, y).A == 255; got != inside {
				t.Errorf("pixel (%d,%d) painted = %v", x, y, got)
			}
		}
	}
}

func TestClearIgnoresClipAndMatrix(t *testing.T) {
	c, dst := newTestCanvas(3, 3)
	c.ClipRect(MakeLTRB(0, 0, 1, 1))
	c.Scale(5, 5)
	c.Clear(Color4f{R: 1, A: 1})
	for i := 0; i < len(dst.Pix); i += 4 {
		if got := [4]uint8(dst.Pix[i : i+4]); got != [4]uint8{255, 0, 0, 255} {
			t.Fatalf("byte %d = %v", i, got)
		}
	}
}

func TestLinearGradient(t *testing.T) {
	sh, err := NewLinearGradient([2]Point{{0, 0}, {10, 0}}, []Color4f{black, white}, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, dst := newTestCanvas(20, 1)
	c.Translate(10, 0)
	p := NewPaint()
	p.Shader = sh
	c.DrawPaint(p)

	if got := dst.RGBAAt(5, 0).R; got != 0 {
		t.Errorf("pixel before start = %d, want 0", got)
	}
	prev := -1
	for x := 10; x < 20; x++ {
		v := int(dst.RGBAAt(x, 0).R)
		if v <= prev {
			t.Errorf("pixel %d = %d, not above %d", x, v, prev)
		}
		prev = v
	}
}

func TestConicalGradient(t *testing.T) {
	sh, err := NewTwoPointConicalGradient(Point{5, 5}, 0, Point{5, 5}, 5, []Color4f{black, white}, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, dst := newTestCanvas(10, 10)
	p := NewPaint()
	p.Shader = sh
	c.DrawRect(MakeLTRB(0, 0, 10, 10), p)

	center, mid, corner := dst.RGBAAt(5, 5).R, dst.RGBAAt(7, 5).R, dst.RGBAAt(0, 0).R
	if !(center < mid && mid < corner) || corner != 255 {
		t.Errorf("radial falloff: center %d mid %d corner %d", center, mid, corner)
	}
}

func TestGradientErrors(t *testing.T) {
	pts := [2]Point{{0, 0}, {1, 0}}
	two := []Color4f{black, white}
	tests := []struct {
		name   string
		colors []Color4f
		pos    []float32
		want   error
	}{
		{"no colors", nil, nil, ErrNoColors},
		{"count mismatch", two, []float32{0}, ErrPositions},
		{"descending", two, []float32{0.5, 0.2}, ErrPositions},
		{"out of range", two, []float32{0, 1.5}, ErrPositions},
		{"nan", two, []float32{float32(math.NaN()), 1}, ErrPositions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLinearGradient(pts, tt.colors, tt.pos); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if _, err := NewLinearGradient(pts, []Color4f{red}, nil); err != nil {
		t.Errorf("single color: %v", err)
	}
}

func TestDrawImageRectCrops(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, redPix)
	src.SetRGBA(1, 0, color.RGBA{B: 255, A: 255})

	for _, q := range []FilterQuality{FilterNone, FilterHigh} {
		t.Run(q.String(), func(t *testing.T) {
			c, dst := newTestCanvas(4, 4)
			c.DrawImageRect(NewImage(src), MakeLTRB(1, 0, 2, 1), MakeLTRB(0, 0, 4, 4), q)
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if got := dst.RGBAAt(x, y); got != (color.RGBA{B: 255, A: 255}) {
						t.Fatalf("pixel (%d,%d) = %v, want blue", x, y, got)
					}
				}
			}
		})
	}
}

func TestTextBlob(t *testing.T) {
	if MakeTextBlob(&Path{}) != nil {
		t.Error("empty path should give a nil blob")
	}

	var p Path
	p.MoveTo(0, 0)
	p.LineTo(2, 0)
	p.LineTo(2, 2)
	p.LineTo(0, 2)
	b := MakeTextBlob(&p)
	p.Reset()
	if got := b.Bounds(); got != MakeLTRB(0, 0, 2, 2) {
		t.Errorf("bounds = %v", got)
	}

	c, dst := newTestCanvas(4, 4)
	c.DrawTextBlob(b, 1, 1, solidPaint(red))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			inside := x >= 1 && x < 3 && y >= 1 && y < 3
			a := dst.RGBAAt(x, y).A
			if inside && a < 250 || !inside && a != 0 {
				t.Errorf("pixel (%d,%d) alpha = %d, inside %v", x, y, a, inside)
			}
		}
	}
}

func TestClipTextBlobMatchesDraw(t *testing.T) {
	var p Path
	p.MoveTo(1.3, 0.7)
	p.LineTo(9.6, 2.2)
	p.QuadTo(6, 5, 4.4, 9.1)
	p.Close()
	b := MakeTextBlob(&p)

	drawn, want := newTestCanvas(12, 12)
	drawn.DrawTextBlob(b, 0.25, 0.5, solidPaint(red))

	clipped, got := newTestCanvas(12, 12)
	n := clipped.Save()
	clipped.ClipTextBlob(b, 0.25, 0.5)
	clipped.DrawPaint(solidPaint(red))
	clipped.RestoreToCount(n)

	for i := range want.Pix {
		if got.Pix[i] != want.Pix[i] {
			t.Fatalf("byte %d: clipped %d, drawn %d", i, got.Pix[i], want.Pix[i])
		}
	}
	if clipped.ClipMask() != nil {
		t.Error("clip outlived RestoreToCount")
	}
}

func TestBlurMaskFilter(t *testing.T) {
	c, dst := newTestCanvas(30, 30)
	p := solidPaint(red)
	p.MaskFilter = &BlurMaskFilter{Sigma: 2}
	c.DrawRect(MakeLTRB(10, 10, 20, 20), p)
	if got := dst.RGBAAt(8, 15).A; got == 0 {
		t.Error("blur should spread coverage outside the rect")
	}
	if got := dst.RGBAAt(15, 15).A; got < 240 {
		t.Errorf("center alpha = %d", got)
	}
	if got := dst.RGBAAt(2, 2).A; got != 0 {
		t.Errorf("far pixel alpha = %d", got)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{StyleFill.String(), "Fill"},
		{StyleStroke.String(), "Stroke"},
		{CapSquare.String(), "Square"},
		{JoinBevel.String(), "Bevel"},
		{FilterNone.String(), "None"},
		{FilterMedium.String(), "Medium"},
		{FillEvenOdd.String(), "EvenOdd"},
		{Cap(9).String(), "Cap(9)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestFillPath(t *testing.T) {
	var src Path
	src.MoveTo(2, 2)
	src.LineTo(10, 6)
	src.LineTo(3, 12)

	fill := NewPaint()
	if FillPath(&src, fill, 1) != &src {
		t.Error("fill paint should return the source path")
	}

	st := solidPaint(red)
	st.Style = StyleStroke
	st.StrokeWidth = 3
	st.Join = JoinRound
	outline := FillPath(&src, st, 1)
	if outline.IsEmpty() {
		t.Fatal("stroke outline is empty")
	}

	c1, d1 := newTestCanvas(16, 16)
	c2, d2 := newTestCanvas(16, 16)
	c1.DrawPath(&src, st)
	c2.DrawPath(outline, solidPaint(red))
	for i := range d1.Pix {
		if diff := int(d1.Pix[i]) - int(d2.Pix[i]); diff < -1 || diff > 1 {
			t.Fatalf("byte %d: stroke %d, outline fill %d", i, d1.Pix[i], d2.Pix[i])
		}
	}
}
