package gstate

import (
	"image"

	"github.com/gogpu/vcanvas/internal/filter"
	"github.com/gogpu/vcanvas/internal/path"
	"github.com/gogpu/vcanvas/internal/raster"
	"github.com/gogpu/vcanvas/internal/shade"
)

// coverage rasterizes pixel-space subpaths without applying the clip.
func (c *Context) coverage(subpaths []path.Subpath, rule raster.FillRule) *image.Alpha {
	c.ras.Reset()
	c.ras.AddSubpaths(subpaths)
	return c.ras.Mask(rule)
}

func (c *Context) fill(subpaths []path.Subpath, rule raster.FillRule) {
	m := c.coverage(c.pixelSubpaths(subpaths), rule)
	c.st.clip.Apply(m)
	shade.Fill(c.dst, m, shade.Solid(c.st.fill))
}

// FillPath fills the current path with the non-zero rule and clears it.
func (c *Context) FillPath() {
	c.fill(c.path.Subpaths(), raster.FillRuleNonZero)
	c.BeginPath()
}

// EOFillPath fills the current path with the even-odd rule and clears it.
func (c *Context) EOFillPath() {
	c.fill(c.path.Subpaths(), raster.FillRuleEvenOdd)
	c.BeginPath()
}

// StrokePath strokes the current path with the stroke color and clears it.
func (c *Context) StrokePath() {
	m := c.coverage(c.pixelSubpaths(c.strokeOutline()), raster.FillRuleNonZero)
	c.st.clip.Apply(m)
	shade.Fill(c.dst, m, shade.Solid(c.st.stroke))
	c.BeginPath()
}

// FillRect fills r. It discards the current path.
func (c *Context) FillRect(r Rect) {
	c.BeginPath()
	c.AddRect(r)
	c.FillPath()
}

// StrokeRect strokes r. It discards the current path.
func (c *Context) StrokeRect(r Rect) {
	c.BeginPath()
	c.AddRect(r)
	c.StrokePath()
}

// Clip intersects the clip with the current path (non-zero) and clears it.
func (c *Context) Clip() {
	c.clipPath(raster.FillRuleNonZero)
}

// EOClip intersects the clip with the current path (even-odd) and clears it.
func (c *Context) EOClip() {
	c.clipPath(raster.FillRuleEvenOdd)
}

func (c *Context) clipPath(rule raster.FillRule) {
	m := c.coverage(c.pixelSubpaths(c.path.Subpaths()), rule)
	c.st.clip = c.st.clip.Intersect(m)
	c.BeginPath()
}

// ClipToRect intersects the clip with r. It discards the current path.
func (c *Context) ClipToRect(r Rect) {
	c.BeginPath()
	c.AddRect(r)
	c.Clip()
}

// ClipToMask intersects the clip with a coverage mask in pixel coordinates.
// Pixels outside the mask bounds are clipped away.
func (c *Context) ClipToMask(m *image.Alpha) {
	c.st.clip = c.st.clip.Intersect(m)
}

// ClipBoundingBox returns the pixel bounds that painting can reach.
func (c *Context) ClipBoundingBox() image.Rectangle {
	if c.st.clip == nil {
		return c.dst.Bounds()
	}
	return shade.MaskBounds(c.st.clip.Alpha())
}

// paintMask returns the clip as a draw mask, or an opaque surface mask.
func (c *Context) paintMask() *image.Alpha {
	if a := c.st.clip.Alpha(); a != nil {
		return a
	}
	if c.full == nil {
		c.full = image.NewAlpha(c.dst.Bounds())
		for i := range c.full.Pix {
			c.full.Pix[i] = 0xff
		}
	}
	return c.full
}

// Paint fills the whole clip region with the fill color.
func (c *Context) Paint() {
	shade.Fill(c.dst, c.paintMask(), shade.Solid(c.st.fill))
}

// BlurredRectMask returns the coverage of r under the CTM blurred with a
// Gaussian whose standard deviation is sigma user units. The mask spans the
// blurred region only.
func (c *Context) BlurredRectMask(r Rect, sigma float64) *image.Alpha {
	c.BeginPath()
	c.AddRect(r)
	subs := c.pixelSubpaths(c.path.Subpaths())
	c.BeginPath()

	px := filter.ClampSigma(sigma*path.MaxScale(c.st.ctm), c.dst.Bounds())
	lo, hi, ok := path.Bounds(subs)
	if !ok {
		return image.NewAlpha(image.Rectangle{})
	}
	pad := filter.Margin(px)
	region := image.Rect(int(lo[0])-pad-1, int(lo[1])-pad-1, int(hi[0])+pad+1, int(hi[1])+pad+1).
		Intersect(c.dst.Bounds())
	if region.Empty() {
		return image.NewAlpha(image.Rectangle{})
	}
	cov := c.coverage(subs, raster.FillRuleNonZero).SubImage(region).(*image.Alpha)
	return filter.BlurMask(cov, px)
}
