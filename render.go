package vcanvas

// RenderContext is the drawing surface every backend implements.
//
// Coordinates are logical: origin at the top-left, y increasing downward.
// Drawing verbs never return errors; a failure is recorded and reported by
// the next call to Status or Finish. A context is not safe for concurrent
// use.
type RenderContext interface {
	// Clear fills the whole surface with color, ignoring clip and transform.
	Clear(color Color)

	// SolidBrush creates a brush painting a single color.
	SolidBrush(color Color) Brush

	// Gradient creates a brush from a gradient description. Malformed stops
	// are InvalidInput; gradient kinds the backend cannot paint are
	// NotSupported.
	Gradient(g FixedGradient) (Brush, error)

	// Fill fills shape with the nonzero winding rule.
	Fill(shape Shape, brush IntoBrush)

	// FillEvenOdd fills shape with the even-odd rule.
	FillEvenOdd(shape Shape, brush IntoBrush)

	// Stroke strokes shape with the given width and default style.
	Stroke(shape Shape, brush IntoBrush, width float64)

	// StrokeStyled strokes shape with an explicit style. The style only
	// applies to this call.
	StrokeStyled(shape Shape, brush IntoBrush, width float64, style *StrokeStyle)

	// Clip intersects the current clip with shape (nonzero rule).
	Clip(shape Shape)

	// Save pushes the graphics state: transform and clip.
	Save() error

	// Restore pops the state pushed by the matching Save. Restore without a
	// matching Save returns an InvalidInput error.
	Restore() error

	// Transform concatenates t onto the current transform (ctm = ctm * t).
	Transform(t Affine)

	// CurrentTransform returns the accumulated transform from logical to
	// device pixels, including any orientation flip installed at creation.
	CurrentTransform() Affine

	// Text returns the text factory bound to this context.
	Text() Text

	// DrawText draws layout with the top-left corner of its first line box at pos.
	DrawText(layout TextLayout, pos Point, brush IntoBrush)

	// MakeImage creates an image from a raw pixel buffer.
	MakeImage(width, height int, buf []byte, format ImageFormat) (Image, error)

	// DrawImage draws the whole image scaled into dst.
	DrawImage(img Image, dst Rect, interp InterpolationMode)

	// DrawImageArea draws the src region of the image scaled into dst.
	DrawImageArea(img Image, src, dst Rect, interp InterpolationMode)

	// BlurredRect fills rect with the brush through a Gaussian-blurred mask.
	BlurredRect(rect Rect, blurRadius float64, brush IntoBrush)

	// Status returns and clears the first error recorded since the last call.
	Status() error

	// Finish flushes pending drawing to the surface. It is idempotent and
	// reports any recorded error.
	Finish() error
}

// WithSave runs fn between Save and Restore. Restore runs on every exit
// path, including a panic in fn. The error of fn takes precedence over the
// error of Restore.
func WithSave(rc RenderContext, fn func() error) (err error) {
	if err := rc.Save(); err != nil {
		return err
	}
	defer func() {
		rerr := rc.Restore()
		if err == nil {
			err = rerr
		}
	}()
	return fn()
}
