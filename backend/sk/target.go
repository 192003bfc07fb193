//go:build !nosk

package sk

import (
	"image"
	"math"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/backend"
	"github.com/gogpu/vcanvas/internal/skpaint"
	"github.com/gogpu/vcanvas/internal/typeset"
)

func init() {
	backend.Register(backend.SK, NewTarget)
}

type target struct {
	pix *image.RGBA
	rc  *RenderContext
}

// NewTarget allocates a width x height bitmap and a canvas context drawing
// into it, scaled by pixScale. A nil collection selects the bundled fonts.
func NewTarget(width, height int, pixScale float64, fonts *typeset.Collection) (backend.Target, error) {
	if width <= 0 || height <= 0 {
		return nil, vcanvas.Errorf("bitmap_target", vcanvas.InvalidInput, "size %dx%d", width, height)
	}
	if !(pixScale > 0) || math.IsInf(pixScale, 0) {
		return nil, vcanvas.Errorf("bitmap_target", vcanvas.InvalidInput, "pixel scale %v", pixScale)
	}
	if fonts == nil {
		var err error
		if fonts, err = typeset.NewCollection(); err != nil {
			return nil, vcanvas.AsBackendError("bitmap_target", err)
		}
	}

	pix := image.NewRGBA(image.Rect(0, 0, width, height))
	canvas := skpaint.NewCanvas(pix)
	if pixScale != 1 {
		canvas.Scale(float32(pixScale), float32(pixScale))
	}
	vcanvas.Logger().Debug("sk: bitmap target", "width", width, "height", height, "scale", pixScale)
	return &target{pix: pix, rc: NewRenderContext(canvas, fonts)}, nil
}

func (t *target) RenderContext() vcanvas.RenderContext { return t.rc }
func (t *target) Finished() bool                       { return t.rc.finished }
func (t *target) Pixels() *image.RGBA                  { return t.pix }
