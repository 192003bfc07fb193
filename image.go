package vcanvas

// ImageFormat describes the layout of a raw pixel buffer. Buffers are always
// row-major with a top-left origin and no row padding.
type ImageFormat uint8

const (
	// Grayscale is one byte of luminance per pixel.
	Grayscale ImageFormat = iota
	// RGB is three bytes per pixel, no alpha.
	RGB
	// RGBAPremul is four bytes per pixel with color premultiplied by alpha.
	RGBAPremul
	// RGBASeparate is four bytes per pixel with straight alpha.
	RGBASeparate
)

// BytesPerPixel returns the number of bytes one pixel occupies.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case Grayscale:
		return 1
	case RGB:
		return 3
	default:
		return 4
	}
}

// String returns the format name.
func (f ImageFormat) String() string {
	switch f {
	case Grayscale:
		return "Grayscale"
	case RGB:
		return "RGB"
	case RGBAPremul:
		return "RGBAPremul"
	case RGBASeparate:
		return "RGBASeparate"
	default:
		return "ImageFormat(?)"
	}
}

// InterpolationMode selects the sampling filter used when an image is
// scaled onto the surface.
type InterpolationMode uint8

const (
	// NearestNeighbor picks the closest source pixel.
	NearestNeighbor InterpolationMode = iota
	// Linear blends the four closest source pixels.
	Linear
)

// String returns the mode name.
func (m InterpolationMode) String() string {
	if m == Linear {
		return "Linear"
	}
	return "NearestNeighbor"
}

// Image is a backend-owned bitmap created by RenderContext.MakeImage.
// Images are immutable and only valid with the backend that created them.
type Image interface {
	// Size returns the natural size in pixels.
	Size() Size
}
