package scene

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"
	"path/filepath"

	"github.com/gogpu/vcanvas"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
	_ "golang.org/x/image/webp" // register WebP decoding
)

// loadImage decodes the image file at path into premultiplied RGBA.
func loadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path) //nolint:gosec // document-provided path
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene: decode %s: %w", filepath.Base(path), err)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	vcanvas.Logger().Debug("scene: image loaded", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	return dst, nil
}
