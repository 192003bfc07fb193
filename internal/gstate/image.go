package gstate

import (
	"image"

	vimage "github.com/gogpu/vcanvas/internal/image"
	"github.com/gogpu/vcanvas/internal/path"
	"github.com/gogpu/vcanvas/internal/raster"
	"golang.org/x/image/math/f64"
)

// DrawImage draws img scaled into r. As in every y-up graphics state, the
// first image row lands on the r.Y+r.H edge.
func (c *Context) DrawImage(r Rect, img image.Image) {
	b := img.Bounds()
	c.DrawImageRegion(r, img, Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), W: float64(b.Dx()), H: float64(b.Dy())})
}

// DrawImageRegion draws the src region of img, in image pixels, scaled
// into r. Fractional src edges are honored: the destination is limited to
// r while whole source pixels are sampled.
func (c *Context) DrawImageRegion(r Rect, img image.Image, src Rect) {
	if src.W <= 0 || src.H <= 0 || r.W == 0 || r.H == 0 {
		return
	}
	sr := vimage.Crop(src.X, src.Y, src.X+src.W, src.Y+src.H, img.Bounds())
	if sr.Empty() {
		return
	}

	// image pixels -> user space, flipping rows onto the y-up rect
	kx, ky := r.W/src.W, r.H/src.H
	toUser := f64.Aff3{kx, 0, r.X - src.X*kx, 0, -ky, r.Y + r.H + src.Y*ky}
	s2d := path.Mul(c.userToPixel(), toUser)

	c.BeginPath()
	c.AddRect(r)
	mask := c.coverage(c.pixelSubpaths(c.path.Subpaths()), raster.FillRuleNonZero)
	c.BeginPath()
	c.st.clip.Apply(mask)

	interp := vimage.Bilinear
	if c.st.interp == InterpolationNone {
		interp = vimage.Nearest
	}
	vimage.Draw(c.dst, img, vimage.DrawParams{
		SrcRect:   sr,
		Transform: s2d,
		Mask:      mask,
		Interp:    interp,
	})
}
