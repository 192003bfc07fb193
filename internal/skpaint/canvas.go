package skpaint

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/gogpu/vcanvas/internal/clip"
	"github.com/gogpu/vcanvas/internal/filter"
	vimage "github.com/gogpu/vcanvas/internal/image"
	"github.com/gogpu/vcanvas/internal/path"
	"github.com/gogpu/vcanvas/internal/raster"
	"github.com/gogpu/vcanvas/internal/shade"
	"github.com/gogpu/vcanvas/internal/stroke"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// Image is an immutable premultiplied bitmap.
type Image struct {
	pix *image.RGBA
}

// NewImage wraps pix. The image takes ownership of it.
func NewImage(pix *image.RGBA) *Image { return &Image{pix: pix} }

func (i *Image) Width() int  { return i.pix.Rect.Dx() }
func (i *Image) Height() int { return i.pix.Rect.Dy() }

type canvasState struct {
	matrix Matrix
	clip   *clip.Mask
}

// Canvas draws into an RGBA bitmap.
type Canvas struct {
	dst   *image.RGBA
	st    canvasState
	saved []canvasState

	ras    *raster.Rasterizer
	glyphs *vector.Rasterizer
	full   *image.Alpha
}

// NewCanvas returns a canvas drawing into dst with an identity matrix and
// no clip.
func NewCanvas(dst *image.RGBA) *Canvas {
	b := dst.Bounds()
	return &Canvas{
		dst:    dst,
		st:     canvasState{matrix: MakeIdentity()},
		ras:    raster.NewRasterizer(b.Max.X, b.Max.Y),
		glyphs: vector.NewRasterizer(b.Max.X, b.Max.Y),
	}
}

func (c *Canvas) Width() int  { return c.dst.Rect.Dx() }
func (c *Canvas) Height() int { return c.dst.Rect.Dy() }

// Save pushes the matrix and clip. It returns the save count before the
// call.
func (c *Canvas) Save() int {
	n := c.SaveCount()
	c.saved = append(c.saved, c.st)
	return n
}

// Restore pops the state pushed by the matching Save.
func (c *Canvas) Restore() error {
	n := len(c.saved)
	if n == 0 {
		return ErrRestoreUnderflow
	}
	c.st = c.saved[n-1]
	c.saved = c.saved[:n-1]
	return nil
}

// SaveCount returns one more than the number of saved states.
func (c *Canvas) SaveCount() int { return len(c.saved) + 1 }

// RestoreToCount pops states until SaveCount returns count. Counts below one
// restore everything.
func (c *Canvas) RestoreToCount(count int) {
	for c.SaveCount() > max(count, 1) {
		_ = c.Restore()
	}
}

// Concat pre-multiplies the matrix by m: m applies before the current
// matrix.
func (c *Canvas) Concat(m Matrix) { c.st.matrix = c.st.matrix.Concat(m) }

// Translate concatenates a translation.
func (c *Canvas) Translate(dx, dy float32) { c.Concat(MakeTrans(dx, dy)) }

// Scale concatenates a scale.
func (c *Canvas) Scale(sx, sy float32) { c.Concat(MakeScale(sx, sy)) }

// TotalMatrix returns the local-to-device matrix.
func (c *Canvas) TotalMatrix() Matrix { return c.st.matrix }

// Clear replaces every pixel with col, ignoring the matrix and clip.
func (c *Canvas) Clear(col Color4f) {
	vimage.Fill(c.dst, premul(col))
}

// ClipRect intersects the clip with r.
func (c *Canvas) ClipRect(r Rect) {
	var p Path
	p.AddRect(r)
	c.ClipPath(&p)
}

// ClipPath intersects the clip with the interior of p under its fill type.
func (c *Canvas) ClipPath(p *Path) {
	m := c.coverage(c.toPixels(p.flatten(c.flattener(0))), rule(p.fillType))
	c.st.clip = c.st.clip.Intersect(m)
}

// ClipMask returns the clip coverage, or nil when the canvas is unclipped.
func (c *Canvas) ClipMask() *image.Alpha { return c.st.clip.Alpha() }

// DrawPaint fills the clip with paint, ignoring its style.
func (c *Canvas) DrawPaint(p *Paint) {
	sh, ok := c.shaderFor(p)
	if !ok {
		return
	}
	shade.Fill(c.dst, c.paintMask(), sh)
}

// DrawRect draws r with p. It rasterizes exactly as a path holding r.
func (c *Canvas) DrawRect(r Rect, p *Paint) {
	var pt Path
	pt.AddRect(r)
	c.DrawPath(&pt, p)
}

// DrawPath fills or strokes pt with p. A stroke width of zero draws nothing.
func (c *Canvas) DrawPath(pt *Path, p *Paint) {
	reach := 0.0
	if p.Style == StyleStroke {
		reach = -1
		if st := strokeStyle(p); len(st.Dash) == 0 {
			reach = st.Reach()
		}
	}
	subs := pt.flatten(c.flattener(reach))
	fr := rule(pt.fillType)
	if p.Style == StyleStroke {
		subs = strokeOutline(subs, p, c.tolerance())
		fr = raster.FillRuleNonZero
	}
	m := c.coverage(c.toPixels(subs), fr)
	c.drawMask(m, p)
}

// DrawImageRect draws the src region of img, in image pixels, scaled into
// dst. Only pixels inside src are sampled.
func (c *Canvas) DrawImageRect(img *Image, src, dst Rect, q FilterQuality) {
	src, dst = src.Sort(), dst.Sort()
	if src.IsEmpty() || dst.IsEmpty() {
		return
	}
	sr := vimage.Crop(float64(src.Left), float64(src.Top), float64(src.Right), float64(src.Bottom), img.pix.Rect)
	if sr.Empty() {
		return
	}
	toLocal := vimage.Scale(
		float64(src.Left), float64(src.Top), float64(src.Right), float64(src.Bottom),
		float64(dst.Left), float64(dst.Top), float64(dst.Right), float64(dst.Bottom),
	)

	var pt Path
	pt.AddRect(dst)
	mask := c.coverage(c.toPixels(pt.flatten(c.flattener(0))), raster.FillRuleNonZero)
	c.st.clip.Apply(mask)

	interp := vimage.Bilinear
	if q == FilterNone {
		interp = vimage.Nearest
	}
	vimage.Draw(c.dst, img.pix, vimage.DrawParams{
		SrcRect:   sr,
		Transform: path.Mul(c.st.matrix.aff3(), toLocal),
		Mask:      mask,
		Interp:    interp,
	})
}

// drawMask applies the mask filter and clip to coverage m and paints it.
func (c *Canvas) drawMask(m *image.Alpha, p *Paint) {
	if p.MaskFilter != nil && p.MaskFilter.Sigma > 0 {
		m = c.blur(m, p.MaskFilter.Sigma)
	}
	c.st.clip.Apply(m)
	sh, ok := c.shaderFor(p)
	if !ok {
		return
	}
	shade.Fill(c.dst, m, sh)
}

func (c *Canvas) blur(m *image.Alpha, sigma float32) *image.Alpha {
	px := filter.ClampSigma(float64(sigma*c.st.matrix.MaxScale()), c.dst.Bounds())
	b := shade.MaskBounds(m)
	if b.Empty() {
		return m
	}
	pad := filter.Margin(px) + 1
	region := b.Inset(-pad).Intersect(m.Rect)
	return filter.BlurMask(m.SubImage(region).(*image.Alpha), px)
}

func (c *Canvas) shaderFor(p *Paint) (shade.Shader, bool) {
	if p.Shader == nil {
		return solidShader(p.Color), true
	}
	return p.Shader.pixelShader(c.st.matrix)
}

// tolerance is the flattening tolerance in local units.
func (c *Canvas) tolerance() float64 {
	tol := path.Tolerance
	if s := c.st.matrix.MaxScale(); s > 0 {
		tol /= float64(s)
	}
	return tol
}

// flattener returns a flattener for local paths that keeps curve pieces
// farther than reach local units outside the device as chords. A negative
// reach disables culling.
func (c *Canvas) flattener(reach float64) *path.Flattener {
	f := path.New(c.tolerance())
	if reach < 0 {
		return f
	}
	m := 1 + reach*float64(c.st.matrix.MaxScale())
	b := c.dst.Bounds()
	f.SetView(c.st.matrix.aff3(),
		f64.Vec2{float64(b.Min.X) - m, float64(b.Min.Y) - m},
		f64.Vec2{float64(b.Max.X) + m, float64(b.Max.Y) + m})
	return f
}

func (c *Canvas) toPixels(subs []path.Subpath) []path.Subpath {
	path.Transform(subs, c.st.matrix.aff3())
	return subs
}

func (c *Canvas) coverage(subs []path.Subpath, fr raster.FillRule) *image.Alpha {
	c.ras.Reset()
	c.ras.AddSubpaths(subs)
	return c.ras.Mask(fr)
}

func (c *Canvas) paintMask() *image.Alpha {
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

func rule(f FillType) raster.FillRule {
	if f == FillEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

func premul(c Color4f) color.RGBA {
	a := unit(c.A)
	return color.RGBA{
		R: uint8(math32.Round(unit(c.R) * a * 255)),
		G: uint8(math32.Round(unit(c.G) * a * 255)),
		B: uint8(math32.Round(unit(c.B) * a * 255)),
		A: uint8(math32.Round(a * 255)),
	}
}

func unit(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return math32.Min(v, 1)
}

func strokeOutline(subs []path.Subpath, p *Paint, tolerance float64) []path.Subpath {
	return stroke.NewExpander(strokeStyle(p), tolerance).Expand(subs)
}

func strokeStyle(p *Paint) stroke.Style {
	st := stroke.Style{
		Width:      float64(p.StrokeWidth),
		Cap:        stroke.Cap(p.Cap),
		Join:       stroke.Join(p.Join),
		MiterLimit: float64(p.Miter),
	}
	if d := p.Dash; d != nil && len(d.Intervals) > 0 && len(d.Intervals)%2 == 0 {
		st.Dash = make([]float64, len(d.Intervals))
		for i, v := range d.Intervals {
			st.Dash[i] = float64(v)
		}
		st.DashOffset = float64(d.Phase)
	}
	return st
}
