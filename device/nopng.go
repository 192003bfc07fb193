//go:build nopng

package device

import (
	"errors"
	"io"

	"github.com/gogpu/vcanvas"
)

var errNoPNG = errors.New("device: built without PNG support")

// SaveToFile reports MissingFeature: the build excludes PNG encoding.
func (b *BitmapTarget) SaveToFile(string) error {
	return vcanvas.NewError("save_to_file", vcanvas.MissingFeature, errNoPNG)
}

// WritePNG reports MissingFeature: the build excludes PNG encoding.
func (b *BitmapTarget) WritePNG(io.Writer) error {
	return vcanvas.NewError("write_png", vcanvas.MissingFeature, errNoPNG)
}
