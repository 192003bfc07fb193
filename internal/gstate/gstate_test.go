package gstate

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/vcanvas/internal/stroke"
	"golang.org/x/image/math/f64"
)

func newTestContext(w, h int) (*Context, *image.RGBA) {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	return NewContext(dst), dst
}

func pixel(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

var (
	red    = color.RGBA{R: 255, A: 255}
	blue   = color.RGBA{B: 255, A: 255}
	clearC = color.RGBA{}
)

func TestDeviceSpaceIsYUp(t *testing.T) {
	c, dst := newTestContext(4, 4)
	c.SetRGBFillColor(1, 0, 0, 1)
	c.FillRect(Rect{X: 0, Y: 0, W: 2, H: 1})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := clearC
			if y == 3 && x < 2 {
				want = red
			}
			if got := pixel(dst, x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestClearIgnoresClipAndCTM(t *testing.T) {
	c, dst := newTestContext(3, 3)
	c.ClipToRect(Rect{X: 0, Y: 0, W: 1, H: 1})
	c.ConcatCTM(f64.Aff3{2, 0, 5, 0, 2, 5})
	c.Clear(0, 0, 1, 1)
	for i := 0; i < len(dst.Pix); i += 4 {
		if got := [4]uint8(dst.Pix[i : i+4]); got != [4]uint8{0, 0, 255, 255} {
			t.Fatalf("byte %d = %v", i, got)
		}
	}
}

func TestSaveRestore(t *testing.T) {
	c, _ := newTestContext(4, 4)
	if err := c.RestoreGState(); !errors.Is(err, ErrUnbalancedRestore) {
		t.Fatalf("RestoreGState on empty stack = %v", err)
	}

	before := c.CTM()
	c.SaveGState()
	c.ConcatCTM(f64.Aff3{1, 0, 3, 0, 1, 4})
	c.SetLineWidth(7)
	c.ClipToRect(Rect{W: 1, H: 1})
	if c.GStateDepth() != 1 {
		t.Fatalf("GStateDepth() = %d", c.GStateDepth())
	}
	if err := c.RestoreGState(); err != nil {
		t.Fatal(err)
	}
	if c.CTM() != before || c.st.lineWidth != 1 || c.st.clip != nil {
		t.Errorf("state not restored: ctm %v width %v clip %v", c.CTM(), c.st.lineWidth, c.st.clip)
	}
}

func TestConcatCTMOrder(t *testing.T) {
	c, _ := newTestContext(1, 1)
	c.ConcatCTM(f64.Aff3{1, 0, 10, 0, 1, 0}) // translate
	c.ConcatCTM(f64.Aff3{2, 0, 0, 0, 2, 0})  // then scale, applied first
	if got := c.CTM(); got != (f64.Aff3{2, 0, 10, 0, 2, 0}) {
		t.Errorf("CTM() = %v", got)
	}
}

func TestClipLimitsPaint(t *testing.T) {
	c, dst := newTestContext(4, 4)
	c.ClipToRect(Rect{X: 1, Y: 1, W: 2, H: 2})
	c.SetRGBFillColor(1, 0, 0, 1)
	c.Paint()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := clearC
			if x >= 1 && x < 3 && y >= 1 && y < 3 {
				want = red
			}
			if got := pixel(dst, x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := c.ClipBoundingBox(); got != image.Rect(1, 1, 3, 3) {
		t.Errorf("ClipBoundingBox() = %v", got)
	}
}

func TestEOFill(t *testing.T) {
	c, dst := newTestContext(6, 6)
	c.SetRGBFillColor(1, 0, 0, 1)
	c.AddRect(Rect{X: 0, Y: 0, W: 6, H: 6})
	c.AddRect(Rect{X: 2, Y: 2, W: 2, H: 2})
	c.EOFillPath()
	if got := pixel(dst, 3, 3); got != clearC {
		t.Errorf("hole = %v", got)
	}
	if got := pixel(dst, 0, 0); got != red {
		t.Errorf("ring = %v", got)
	}
	if !c.IsPathEmpty() {
		t.Error("painting should consume the path")
	}
}

func TestStrokedPathMatchesStroke(t *testing.T) {
	draw := func(replace bool) *image.RGBA {
		c, dst := newTestContext(20, 20)
		c.SetLineWidth(3)
		c.SetLineJoin(stroke.JoinRound)
		c.SetRGBFillColor(0, 0, 1, 1)
		c.SetRGBStrokeColor(0, 0, 1, 1)
		c.MoveTo(3, 3)
		c.AddLineTo(15, 4)
		c.AddQuadCurveTo(18, 18, 4, 16)
		if replace {
			c.ReplacePathWithStrokedPath()
			c.FillPath()
		} else {
			c.StrokePath()
		}
		return dst
	}
	a, b := draw(false), draw(true)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("byte %d: stroke %d, stroked path %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestLinearGradientFollowsCTM(t *testing.T) {
	c, dst := newTestContext(1, 100)
	g, err := NewGradient([]float64{0, 0, 0, 1, 1, 1, 1, 1}, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	// flip to y-down so t grows with the pixel row
	c.ConcatCTM(f64.Aff3{1, 0, 0, 0, -1, 100})
	c.DrawLinearGradient(g, f64.Vec2{0, 0}, f64.Vec2{0, 100})

	prev := -1
	for y := 0; y < 100; y++ {
		v := int(pixel(dst, 0, y).R)
		if v < prev {
			t.Fatalf("row %d = %d after %d", y, v, prev)
		}
		prev = v
	}
	if top, bottom := pixel(dst, 0, 0).R, pixel(dst, 0, 99).R; top > 5 || bottom < 250 {
		t.Errorf("top %d bottom %d", top, bottom)
	}
}

func TestNewGradientErrors(t *testing.T) {
	tests := []struct {
		name       string
		components []float64
		locations  []float64
	}{
		{"empty", nil, nil},
		{"short components", []float64{1, 0, 0}, []float64{0}},
		{"descending", []float64{1, 0, 0, 1, 0, 0, 1, 1}, []float64{1, 0}},
	}
	for _, tt := range tests {
		if _, err := NewGradient(tt.components, tt.locations); !errors.Is(err, ErrGradientStops) {
			t.Errorf("%s: error = %v", tt.name, err)
		}
	}
}

func TestDrawImageUpright(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(0, 1, blue)

	c, dst := newTestContext(1, 2)
	c.SetInterpolationQuality(InterpolationNone)
	c.DrawImage(Rect{W: 1, H: 2}, src)
	if got := pixel(dst, 0, 0); got != red {
		t.Errorf("top = %v, want red", got)
	}
	if got := pixel(dst, 0, 1); got != blue {
		t.Errorf("bottom = %v, want blue", got)
	}
}

func TestDrawImageRegionCrops(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, red)
	src.SetRGBA(1, 0, blue)
	src.SetRGBA(0, 1, blue)
	src.SetRGBA(1, 1, blue)

	c, dst := newTestContext(4, 4)
	c.SetInterpolationQuality(InterpolationNone)
	c.DrawImageRegion(Rect{W: 4, H: 4}, src, Rect{W: 1, H: 1})
	for i := 0; i < len(dst.Pix); i += 4 {
		if got := [4]uint8(dst.Pix[i : i+4]); got != [4]uint8{255, 0, 0, 255} {
			t.Fatalf("byte %d = %v, want red everywhere", i, got)
		}
	}
}

func TestBlurredRectMask(t *testing.T) {
	c, _ := newTestContext(40, 40)
	sharp := c.BlurredRectMask(Rect{X: 10, Y: 10, W: 20, H: 20}, 0)
	soft := c.BlurredRectMask(Rect{X: 10, Y: 10, W: 20, H: 20}, 3)

	at := func(m *image.Alpha, x, y int) uint8 {
		if !image.Pt(x, y).In(m.Rect) {
			return 0
		}
		return m.AlphaAt(x, y).A
	}
	if at(sharp, 8, 20) != 0 || at(sharp, 20, 20) != 255 {
		t.Fatalf("sharp mask wrong: %d %d", at(sharp, 8, 20), at(sharp, 20, 20))
	}
	if at(soft, 8, 20) == 0 {
		t.Error("blur should spread coverage outside the rect")
	}
	if v := at(soft, 20, 20); v < 250 {
		t.Errorf("center coverage = %d", v)
	}
}
