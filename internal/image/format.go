// Package image converts raw pixel buffers to and from premultiplied
// surfaces and draws images onto them.
package image

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidDimensions is returned when width or height is negative or
	// the pixel count overflows.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataSize is returned when a buffer length does not match the
	// dimensions and format.
	ErrDataSize = errors.New("image: buffer size mismatch")

	// ErrUnsupportedFormat is returned for formats a conversion cannot handle.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// Format represents a raw pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// FormatRGBAPremul is 32-bit RGBA with premultiplied alpha.
	FormatRGBAPremul

	// FormatRGBA8 is 32-bit RGBA with straight alpha.
	FormatRGBA8
)

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatGray8:
		return 1
	case FormatRGB8:
		return 3
	default:
		return 4
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	case FormatRGBAPremul:
		return "RGBAPremul"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return "Unknown"
	}
}

// ImageBytes returns the buffer length for an image of the given size.
func (f Format) ImageBytes(width, height int) int {
	return width * height * f.BytesPerPixel()
}

// Decode copies a tightly packed, row-major buffer into a new premultiplied
// RGBA image. Grayscale input is not accepted.
func Decode(width, height int, buf []byte, f Format) (*image.RGBA, error) {
	if width < 0 || height < 0 || (width > 0 && height > (1<<31-1)/width/4) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if f == FormatGray8 || f > FormatRGBA8 {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if want := f.ImageBytes(width, height); len(buf) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDataSize, len(buf), want)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	dst := img.Pix
	switch f {
	case FormatRGBAPremul:
		copy(dst, buf)
	case FormatRGB8:
		for i, j := 0, 0; i < len(buf); i, j = i+3, j+4 {
			dst[j], dst[j+1], dst[j+2], dst[j+3] = buf[i], buf[i+1], buf[i+2], 0xff
		}
	case FormatRGBA8:
		for i := 0; i < len(buf); i += 4 {
			a := buf[i+3]
			dst[i] = Premultiply(buf[i], a)
			dst[i+1] = Premultiply(buf[i+1], a)
			dst[i+2] = Premultiply(buf[i+2], a)
			dst[i+3] = a
		}
	}
	return img, nil
}

// Encode returns the pixels of img in format f. Only FormatRGBAPremul is
// extractable.
func Encode(img *image.RGBA, f Format) ([]byte, error) {
	if f != FormatRGBAPremul {
		return nil, fmt.Errorf("%w: cannot extract %v", ErrUnsupportedFormat, f)
	}
	b := img.Rect
	out := make([]byte, 0, b.Dx()*b.Dy()*4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		out = append(out, img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]...)
	}
	return out, nil
}

// Premultiply scales a color channel by alpha with rounding.
func Premultiply(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}
