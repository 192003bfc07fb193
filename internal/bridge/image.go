package bridge

import (
	"errors"
	"image"

	"github.com/gogpu/vcanvas"
	vimage "github.com/gogpu/vcanvas/internal/image"
)

// Format maps a vcanvas image format to the raw pixel format.
func Format(f vcanvas.ImageFormat) (vimage.Format, bool) {
	switch f {
	case vcanvas.Grayscale:
		return vimage.FormatGray8, true
	case vcanvas.RGB:
		return vimage.FormatRGB8, true
	case vcanvas.RGBAPremul:
		return vimage.FormatRGBAPremul, true
	case vcanvas.RGBASeparate:
		return vimage.FormatRGBA8, true
	}
	return 0, false
}

// DecodeImage copies buf into a premultiplied image. Grayscale and unknown
// formats are NotSupported; bad sizes are InvalidInput.
func DecodeImage(width, height int, buf []byte, format vcanvas.ImageFormat) (*image.RGBA, error) {
	f, ok := Format(format)
	if !ok {
		return nil, vcanvas.Errorf("make_image", vcanvas.NotSupported, "image format %v", format)
	}
	img, err := vimage.Decode(width, height, buf, f)
	switch {
	case errors.Is(err, vimage.ErrUnsupportedFormat):
		return nil, vcanvas.NewError("make_image", vcanvas.NotSupported, err)
	case err != nil:
		return nil, vcanvas.NewError("make_image", vcanvas.InvalidInput, err)
	}
	return img, nil
}

// EncodePixels extracts the pixels of img. Only RGBAPremul is extractable;
// every other format is NotSupported.
func EncodePixels(img *image.RGBA, format vcanvas.ImageFormat) ([]byte, error) {
	f, ok := Format(format)
	if !ok {
		return nil, vcanvas.Errorf("into_raw_pixels", vcanvas.NotSupported, "image format %v", format)
	}
	buf, err := vimage.Encode(img, f)
	if err != nil {
		return nil, vcanvas.NewError("into_raw_pixels", vcanvas.NotSupported, err)
	}
	return buf, nil
}
