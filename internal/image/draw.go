package image

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Interp selects the resampling filter.
type Interp uint8

const (
	// Nearest picks the closest source pixel.
	Nearest Interp = iota
	// Bilinear blends neighboring source pixels.
	Bilinear
)

func (i Interp) interpolator() draw.Interpolator {
	if i == Bilinear {
		return draw.BiLinear
	}
	return draw.NearestNeighbor
}

// DrawParams describes one image draw.
type DrawParams struct {
	// SrcRect is the source region to sample, in source pixels. Samples
	// never read outside it.
	SrcRect image.Rectangle

	// Transform maps source pixel coordinates to destination pixels.
	Transform f64.Aff3

	// Mask limits the destination pixels drawn to; nil draws everywhere.
	Mask *image.Alpha

	Interp Interp
}

// Draw composites src over dst.
func Draw(dst *image.RGBA, src image.Image, p DrawParams) {
	sr := p.SrcRect.Intersect(src.Bounds())
	if sr.Empty() {
		return
	}
	opts := &draw.Options{}
	if p.Mask != nil {
		opts.DstMask = p.Mask
	}
	p.Interp.interpolator().Transform(dst, p.Transform, src, sr, draw.Over, opts)
}

// Crop returns the integer source rectangle enclosing the fractional region
// (x0, y0)-(x1, y1), clamped to bounds.
func Crop(x0, y0, x1, y1 float64, bounds image.Rectangle) image.Rectangle {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	r := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	return r.Intersect(bounds)
}

// Fill sets every pixel of dst to c, ignoring any clip.
func Fill(dst *image.RGBA, c color.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Scale returns the source-to-destination transform mapping the region
// (sx0, sy0)-(sx1, sy1) onto (dx0, dy0)-(dx1, dy1).
func Scale(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 float64) f64.Aff3 {
	kx := (dx1 - dx0) / (sx1 - sx0)
	ky := (dy1 - dy0) / (sy1 - sy0)
	return f64.Aff3{kx, 0, dx0 - sx0*kx, 0, ky, dy0 - sy0*ky}
}
