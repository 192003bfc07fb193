package gs

import (
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/gstate"
	"github.com/gogpu/vcanvas/internal/typeset"
)

var (
	fontsOnce sync.Once
	fonts     *typeset.Collection
	fontsErr  error
)

func newTestContext(t *testing.T, w, h int) (*RenderContext, *image.RGBA) {
	t.Helper()
	fontsOnce.Do(func() { fonts, fontsErr = typeset.NewCollection() })
	if fontsErr != nil {
		t.Fatalf("NewCollection: %v", fontsErr)
	}
	tg, err := NewTarget(w, h, 1, fonts)
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	return tg.RenderContext().(*RenderContext), tg.Pixels()
}

func samePixels(t *testing.T, a, b *image.RGBA) {
	t.Helper()
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("byte %d differs: %d vs %d", i, a.Pix[i], b.Pix[i])
		}
	}
}

var redPix = color.RGBA{R: 255, A: 255}

func TestFlipInstalled(t *testing.T) {
	rc, _ := newTestContext(t, 10, 20)
	want := vcanvas.Affine{A: 1, D: -1, F: 20}
	if got := rc.CurrentTransform(); got != want {
		t.Errorf("CurrentTransform() = %+v, want %+v", got, want)
	}

	pix := image.NewRGBA(image.Rect(0, 0, 10, 20))
	flipped := NewRenderContext(gstate.NewContext(pix), fonts, WithFlipped(true))
	if got := flipped.CurrentTransform(); got != vcanvas.Identity() {
		t.Errorf("flipped CurrentTransform() = %+v", got)
	}
}

func TestFillIsTopLeft(t *testing.T) {
	rc, pix := newTestContext(t, 4, 4)
	rc.Fill(vcanvas.NewRect(0, 0, 2, 1), vcanvas.Red)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := color.RGBA{}
			if y == 0 && x < 2 {
				want = redPix
			}
			if got := pix.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRectFastPathMatchesPath(t *testing.T) {
	r := vcanvas.NewRect(1.25, 0.5, 6.75, 5.5)
	asPath := vcanvas.ToBezPath(r, vcanvas.DefaultTolerance)

	tests := []struct {
		name string
		draw func(rc *RenderContext, s vcanvas.Shape)
	}{
		{"fill", func(rc *RenderContext, s vcanvas.Shape) { rc.Fill(s, vcanvas.Blue) }},
		{"stroke", func(rc *RenderContext, s vcanvas.Shape) { rc.Stroke(s, vcanvas.Blue, 1.5) }},
		{"clip", func(rc *RenderContext, s vcanvas.Shape) {
			rc.Clip(s)
			rc.Fill(vcanvas.NewRect(0, 0, 8, 8), vcanvas.Blue)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc1, p1 := newTestContext(t, 8, 8)
			rc2, p2 := newTestContext(t, 8, 8)
			rc1.Transform(vcanvas.Rotate(0.1))
			rc2.Transform(vcanvas.Rotate(0.1))
			tt.draw(rc1, r)
			tt.draw(rc2, asPath)
			samePixels(t, p1, p2)
		})
	}
}

func TestStatus(t *testing.T) {
	rc, _ := newTestContext(t, 4, 4)
	if err := rc.Status(); err != nil {
		t.Fatalf("fresh Status() = %v", err)
	}

	rc.Fill(vcanvas.NewRect(0, 0, 1, 1), foreignBrush{})
	if err := rc.Status(); !errors.Is(err, vcanvas.ErrInvalidInput) {
		t.Errorf("foreign brush: Status() = %v", err)
	}
	if err := rc.Status(); err != nil {
		t.Errorf("Status() did not clear: %v", err)
	}

	rc.Fill(vcanvas.NewRect(0, 0, 1, 1), nil)
	rc.DrawImage(foreignImage{}, vcanvas.NewRect(0, 0, 1, 1), vcanvas.Linear)
	if err := rc.Finish(); !errors.Is(err, vcanvas.ErrInvalidInput) {
		t.Errorf("Finish() = %v", err)
	}
}

type foreignBrush struct{}

func (foreignBrush) Kind() vcanvas.BrushKind { return vcanvas.SolidBrush }
func (b foreignBrush) MakeBrush(vcanvas.RenderContext, func() vcanvas.Rect) (vcanvas.Brush, error) {
	return b, nil
}

type foreignImage struct{}

func (foreignImage) Size() vcanvas.Size { return vcanvas.Sz(1, 1) }

func TestRestoreWithoutSave(t *testing.T) {
	rc, _ := newTestContext(t, 4, 4)
	if err := rc.Restore(); vcanvas.KindOf(err) != vcanvas.InvalidInput {
		t.Errorf("Restore() = %v", err)
	}
	if err := vcanvas.WithSave(rc, func() error {
		rc.Transform(vcanvas.Translate(3, 3))
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if got := rc.CurrentTransform(); got != (vcanvas.Affine{A: 1, D: -1, F: 4}) {
		t.Errorf("transform leaked out of WithSave: %+v", got)
	}
}

func TestDrawImageUpright(t *testing.T) {
	rc, pix := newTestContext(t, 2, 2)
	buf := []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
	img, err := rc.MakeImage(2, 2, buf, vcanvas.RGBASeparate)
	if err != nil {
		t.Fatal(err)
	}
	rc.DrawImage(img, vcanvas.NewRect(0, 0, 2, 2), vcanvas.NearestNeighbor)
	for i := range buf {
		if pix.Pix[i] != buf[i] {
			t.Fatalf("byte %d = %d, want %d", i, pix.Pix[i], buf[i])
		}
	}
}

func TestDrawImageAreaCrops(t *testing.T) {
	rc, pix := newTestContext(t, 4, 4)
	buf := []byte{255, 0, 0, 255, 0, 0, 255, 255}
	img, err := rc.MakeImage(2, 1, buf, vcanvas.RGBAPremul)
	if err != nil {
		t.Fatal(err)
	}
	rc.DrawImageArea(img, vcanvas.NewRect(1, 0, 2, 1), vcanvas.NewRect(0, 0, 4, 4), vcanvas.Linear)
	for i := 0; i < len(pix.Pix); i += 4 {
		if got := [4]uint8(pix.Pix[i : i+4]); got != [4]uint8{0, 0, 255, 255} {
			t.Fatalf("byte %d = %v, want blue", i, got)
		}
	}
}

func TestMakeImageErrors(t *testing.T) {
	rc, _ := newTestContext(t, 1, 1)
	tests := []struct {
		name   string
		buf    []byte
		format vcanvas.ImageFormat
		kind   vcanvas.ErrorKind
	}{
		{"grayscale", make([]byte, 4), vcanvas.Grayscale, vcanvas.NotSupported},
		{"short buffer", make([]byte, 15), vcanvas.RGBAPremul, vcanvas.InvalidInput},
		{"rgb length", make([]byte, 16), vcanvas.RGB, vcanvas.InvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := rc.MakeImage(2, 2, tt.buf, tt.format); vcanvas.KindOf(err) != tt.kind {
				t.Errorf("MakeImage() = %v, want %v", err, tt.kind)
			}
		})
	}
}

func TestDrawText(t *testing.T) {
	rc, pix := newTestContext(t, 60, 30)
	f, err := rc.Text().NewFontByName("", 16).Build()
	if err != nil {
		t.Fatal(err)
	}
	l, err := rc.Text().NewTextLayout(f, "Hi", vcanvas.NoWidth).Build()
	if err != nil {
		t.Fatal(err)
	}
	pos := vcanvas.Pt(5, 5)
	rc.DrawText(l, pos, vcanvas.Black)
	if err := rc.Status(); err != nil {
		t.Fatal(err)
	}

	box := vcanvas.RectFromOrigin(pos, l.Size())
	inked := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 60; x++ {
			if pix.RGBAAt(x, y).A == 0 {
				continue
			}
			inked++
			if !box.Inset(-1).Contains(vcanvas.Pt(float64(x)+0.5, float64(y)+0.5)) {
				t.Errorf("ink at (%d,%d) outside %v", x, y, box)
			}
		}
	}
	if inked == 0 {
		t.Error("no glyph pixels drawn")
	}

	grad := vcanvas.NewLinearGradient(vcanvas.UnitTop, vcanvas.UnitBottom, vcanvas.EvenStops(vcanvas.Red, vcanvas.Blue))
	rc.DrawText(l, pos, grad)
	if err := rc.Status(); err != nil {
		t.Errorf("gradient text: %v", err)
	}
}

func TestBlurredRect(t *testing.T) {
	rc, pix := newTestContext(t, 30, 30)
	rc.BlurredRect(vcanvas.NewRect(10, 10, 20, 20), 2, vcanvas.Red)
	if pix.RGBAAt(8, 15).A == 0 {
		t.Error("blur should spread outside the rect")
	}
	if a := pix.RGBAAt(15, 15).A; a < 240 {
		t.Errorf("center alpha = %d", a)
	}
}

func TestNewTargetErrors(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		scale float64
	}{
		{"zero width", 0, 4, 1},
		{"negative height", 4, -1, 1},
		{"zero scale", 4, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTarget(tt.w, tt.h, tt.scale, fonts); vcanvas.KindOf(err) != vcanvas.InvalidInput {
				t.Errorf("NewTarget() = %v", err)
			}
		})
	}
}
