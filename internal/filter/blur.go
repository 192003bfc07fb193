// Package filter provides mask filters applied before compositing.
package filter

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/convolution"
)

// BlurMask returns a copy of mask blurred by a Gaussian with standard
// deviation sigma pixels, with the same bounds. Pixels beyond the mask edge
// repeat the edge, so callers leave a Margin(sigma) border of zero coverage
// around the shape and clamp sigma with ClampSigma first.
func BlurMask(mask *image.Alpha, sigma float64) *image.Alpha {
	b := mask.Rect
	out := image.NewAlpha(b)
	if b.Empty() {
		return out
	}
	// convolution expects a zero origin
	src := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(src.Pix[y*src.Stride:y*src.Stride+b.Dx()], mask.Pix[mask.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	if !(sigma > 0) {
		copy(out.Pix, src.Pix)
		return out
	}

	// The red channel carries the coverage; Bias rounds each pass.
	k := gaussian(sigma)
	opts := &convolution.Options{Bias: 0.5, KeepAlpha: true}
	blurred := convolution.Convolve(src, k, opts)
	blurred = convolution.Convolve(blurred, k.Transposed(), opts)
	for y := 0; y < b.Dy(); y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+b.Dx()]
		for x := range row {
			row[x] = blurred.Pix[y*blurred.Stride+x*4]
		}
	}
	return out
}

// gaussian returns a normalized 1-D kernel of 2*Margin(sigma)+1 taps.
func gaussian(sigma float64) convolution.Matrix {
	r := Margin(sigma)
	k := convolution.NewKernel(2*r+1, 1)
	for i := range k.Matrix {
		x := float64(i - r)
		k.Matrix[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	return k.Normalized()
}

// ClampSigma limits sigma to the diagonal of bounds. Non-positive and NaN
// values become zero.
func ClampSigma(sigma float64, bounds image.Rectangle) float64 {
	if !(sigma > 0) {
		return 0
	}
	return min(sigma, math.Hypot(float64(bounds.Dx()), float64(bounds.Dy())))
}

// Margin returns how far a blur of standard deviation sigma spreads
// coverage: three deviations, rounded up.
func Margin(sigma float64) int {
	if !(sigma > 0) {
		return 0
	}
	return int(math.Ceil(3 * sigma))
}
