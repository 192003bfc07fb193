//go:build !nopng

package device

import (
	"image/png"
	"io"
	"os"

	"github.com/gogpu/vcanvas"
)

// SaveToFile writes the surface to path as a PNG. The render context must
// have been finished.
func (b *BitmapTarget) SaveToFile(path string) error {
	if _, err := b.pixels("save_to_file"); err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return vcanvas.NewError("save_to_file", vcanvas.BackendError, err)
	}
	if err := b.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return vcanvas.NewError("save_to_file", vcanvas.BackendError, err)
	}
	return nil
}

// WritePNG encodes the surface as a PNG into w.
func (b *BitmapTarget) WritePNG(w io.Writer) error {
	pix, err := b.pixels("write_png")
	if err != nil {
		return err
	}
	if err := png.Encode(w, pix); err != nil {
		return vcanvas.NewError("write_png", vcanvas.BackendError, err)
	}
	return nil
}
