package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		buf    []byte
		want   []byte
	}{
		{"premul", FormatRGBAPremul, []byte{10, 20, 30, 40}, []byte{10, 20, 30, 40}},
		{"rgb", FormatRGB8, []byte{1, 2, 3}, []byte{1, 2, 3, 255}},
		{"separate", FormatRGBA8, []byte{255, 128, 0, 128}, []byte{128, 64, 0, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(1, 1, tt.buf, tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(img.Pix, tt.want) {
				t.Errorf("pixels = %v, want %v", img.Pix, tt.want)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		buf  []byte
		f    Format
		want error
	}{
		{"short", 2, 2, make([]byte, 15), FormatRGBAPremul, ErrDataSize},
		{"long", 1, 1, make([]byte, 4), FormatRGB8, ErrDataSize},
		{"negative", -1, 1, nil, FormatRGB8, ErrInvalidDimensions},
		{"gray", 1, 1, []byte{0}, FormatGray8, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.w, tt.h, tt.buf, tt.f); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	buf := []byte{
		255, 0, 0, 255, 0, 128, 0, 128,
		0, 0, 0, 0, 10, 20, 30, 40,
	}
	img, err := Decode(2, 2, buf, FormatRGBAPremul)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Encode(img, FormatRGBAPremul)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, buf) {
		t.Errorf("round trip = %v, want %v", out, buf)
	}
	for _, f := range []Format{FormatGray8, FormatRGB8, FormatRGBA8} {
		if _, err := Encode(img, f); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Encode(%v) err = %v, want ErrUnsupportedFormat", f, err)
		}
	}
}

func TestDrawCropsSource(t *testing.T) {
	// 2x1 source: red | blue. Drawing only the right half must never show red.
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{B: 255, A: 255})
	for _, interp := range []Interp{Nearest, Bilinear} {
		dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
		Draw(dst, src, DrawParams{
			SrcRect:   image.Rect(1, 0, 2, 1),
			Transform: Scale(1, 0, 2, 1, 0, 0, 4, 4),
			Interp:    interp,
		})
		for i := 0; i < len(dst.Pix); i += 4 {
			if dst.Pix[i] != 0 || dst.Pix[i+2] != 255 {
				t.Fatalf("interp %d: pixel %d = %v, want pure blue", interp, i/4, dst.Pix[i:i+4])
			}
		}
	}
}

func TestDrawMask(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{G: 255, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))
	mask := image.NewAlpha(dst.Rect)
	mask.SetAlpha(1, 0, color.Alpha{A: 255})
	Draw(dst, src, DrawParams{SrcRect: src.Rect, Transform: f64.Aff3{2, 0, 0, 0, 1, 0}, Mask: mask})
	if dst.Pix[1] != 0 || dst.Pix[5] != 255 {
		t.Errorf("mask not honored: %v", dst.Pix)
	}
}

func TestCrop(t *testing.T) {
	b := image.Rect(0, 0, 10, 10)
	if got := Crop(2.5, 3.2, 7.1, 12, b); got != image.Rect(2, 3, 8, 10) {
		t.Errorf("Crop = %v", got)
	}
	if got := Crop(5, 5, 1, 1, b); got != image.Rect(1, 1, 5, 5) {
		t.Errorf("reversed Crop = %v", got)
	}
}
