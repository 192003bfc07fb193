package device

import (
	"image"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/backend"
	"github.com/gogpu/vcanvas/internal/bridge"
	"github.com/gogpu/vcanvas/internal/typeset"
)

// Device creates bitmap targets on one backend. Targets of a device share
// its font collection.
type Device struct {
	name    string
	factory backend.Factory
	fonts   *typeset.Collection
}

// New resolves the backend and loads the font collection.
//
// An unregistered backend name is NotSupported; a backend excluded from the
// build is MissingFeature.
func New(opts ...Option) (*Device, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		name    = cfg.backend
		factory backend.Factory
		err     error
	)
	if name == "" {
		name, factory, err = backend.Default()
	} else {
		factory, err = backend.Get(name)
	}
	if err != nil {
		return nil, err
	}

	fonts, err := typeset.NewCollection(cfg.text...)
	if err != nil {
		return nil, vcanvas.AsBackendError("device", err)
	}
	vcanvas.Logger().Debug("device: created", "backend", name)
	return &Device{name: name, factory: factory, fonts: fonts}, nil
}

// Backend returns the name of the backend in use.
func (d *Device) Backend() string { return d.name }

// BitmapTarget allocates a width x height surface in device pixels. Logical
// coordinates are multiplied by pixScale.
func (d *Device) BitmapTarget(width, height int, pixScale float64) (*BitmapTarget, error) {
	t, err := d.factory(width, height, pixScale, d.fonts)
	if err != nil {
		return nil, err
	}
	return &BitmapTarget{target: t}, nil
}

// BitmapTarget is a bitmap surface with its render context.
type BitmapTarget struct {
	target backend.Target
}

// RenderContext returns the context drawing into the target. Every call
// returns the same context.
func (b *BitmapTarget) RenderContext() vcanvas.RenderContext {
	return b.target.RenderContext()
}

// Size returns the surface size in device pixels.
func (b *BitmapTarget) Size() (width, height int) {
	r := b.target.Pixels().Rect
	return r.Dx(), r.Dy()
}

// IntoRawPixels returns a copy of the surface, top row first. Only
// vcanvas.RGBAPremul is supported. The render context must have been
// finished.
func (b *BitmapTarget) IntoRawPixels(format vcanvas.ImageFormat) ([]byte, error) {
	pix, err := b.pixels("into_raw_pixels")
	if err != nil {
		return nil, err
	}
	return bridge.EncodePixels(pix, format)
}

func (b *BitmapTarget) pixels(op string) (*image.RGBA, error) {
	if !b.target.Finished() {
		return nil, vcanvas.Errorf(op, vcanvas.InvalidInput, "render context not finished")
	}
	return b.target.Pixels(), nil
}
