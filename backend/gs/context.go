package gs

import (
	"image"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/backend"
	"github.com/gogpu/vcanvas/internal/bridge"
	"github.com/gogpu/vcanvas/internal/gstate"
	"github.com/gogpu/vcanvas/internal/stroke"
	"github.com/gogpu/vcanvas/internal/typeset"
	"golang.org/x/image/math/f64"
)

// RenderContext draws onto a gstate.Context.
type RenderContext struct {
	ctx      *gstate.Context
	text     *Text
	status   bridge.Recorder
	finished bool
}

var _ vcanvas.RenderContext = (*RenderContext)(nil)

// NewRenderContext wraps ctx. Unless WithFlipped(true) is given, the
// context installs the y-down flip for the surface height.
func NewRenderContext(ctx *gstate.Context, fonts *typeset.Collection, opts ...Option) *RenderContext {
	cfg := config{match: typeset.MatchBest}
	for _, opt := range opts {
		opt(&cfg)
	}
	rc := &RenderContext{
		ctx:    ctx,
		text:   NewText(fonts, cfg.match),
		status: bridge.Recorder{Backend: backend.GS},
	}
	if !cfg.flipped {
		h := float64(ctx.Height())
		ctx.ConcatCTM(f64.Aff3{1, 0, 0, 0, 1, h})
		ctx.ConcatCTM(f64.Aff3{1, 0, 0, 0, -1, 0})
	}
	return rc
}

// Clear implements vcanvas.RenderContext.
func (rc *RenderContext) Clear(color vcanvas.Color) {
	rc.ctx.Clear(color.Components())
}

// SolidBrush implements vcanvas.RenderContext.
func (rc *RenderContext) SolidBrush(color vcanvas.Color) vcanvas.Brush {
	return &Brush{kind: vcanvas.SolidBrush, color: color}
}

// Gradient implements vcanvas.RenderContext.
func (rc *RenderContext) Gradient(g vcanvas.FixedGradient) (vcanvas.Brush, error) {
	return newGradient(g)
}

// Fill implements vcanvas.RenderContext.
func (rc *RenderContext) Fill(shape vcanvas.Shape, brush vcanvas.IntoBrush) {
	rc.fill("fill", shape, brush, false)
}

// FillEvenOdd implements vcanvas.RenderContext.
func (rc *RenderContext) FillEvenOdd(shape vcanvas.Shape, brush vcanvas.IntoBrush) {
	rc.fill("fill_even_odd", shape, brush, true)
}

func (rc *RenderContext) fill(op string, shape vcanvas.Shape, brush vcanvas.IntoBrush, evenOdd bool) {
	b, ok := rc.brush(op, brush, shape)
	if !ok {
		return
	}
	c := rc.ctx
	if b.kind == vcanvas.SolidBrush {
		c.SetRGBFillColor(b.color.Components())
		if r, ok := shape.AsRect(); ok && !evenOdd {
			c.FillRect(rect(r))
			return
		}
		rc.setPath(shape)
		if evenOdd {
			c.EOFillPath()
		} else {
			c.FillPath()
		}
		return
	}
	rc.setPath(shape)
	if evenOdd {
		rc.paintThrough(b, c.EOClip)
	} else {
		rc.paintThrough(b, c.Clip)
	}
}

// Stroke implements vcanvas.RenderContext.
func (rc *RenderContext) Stroke(shape vcanvas.Shape, brush vcanvas.IntoBrush, width float64) {
	rc.stroke("stroke", shape, brush, width)
}

func (rc *RenderContext) stroke(op string, shape vcanvas.Shape, brush vcanvas.IntoBrush, width float64) {
	b, ok := rc.brush(op, brush, shape)
	if !ok {
		return
	}
	c := rc.ctx
	c.SetLineWidth(width)
	if b.kind == vcanvas.SolidBrush {
		c.SetRGBStrokeColor(b.color.Components())
		if r, ok := shape.AsRect(); ok {
			c.StrokeRect(rect(r))
			return
		}
		rc.setPath(shape)
		c.StrokePath()
		return
	}
	rc.setPath(shape)
	c.ReplacePathWithStrokedPath()
	rc.paintThrough(b, c.Clip)
}

// StrokeStyled implements vcanvas.RenderContext. The style is applied inside
// a saved graphics state and dropped afterwards.
func (rc *RenderContext) StrokeStyled(shape vcanvas.Shape, brush vcanvas.IntoBrush, width float64, style *vcanvas.StrokeStyle) {
	c := rc.ctx
	c.SaveGState()
	defer func() { _ = c.RestoreGState() }()

	c.SetLineCap(stroke.Cap(style.Cap()))
	c.SetLineJoin(stroke.Join(style.Join()))
	c.SetMiterLimit(style.Miter())
	if d := style.DashPattern(); d != nil {
		c.SetLineDash(d.Offset, d.Effective())
	} else {
		c.SetLineDash(0, nil)
	}
	rc.stroke("stroke_styled", shape, brush, width)
}

// Clip implements vcanvas.RenderContext.
func (rc *RenderContext) Clip(shape vcanvas.Shape) {
	if r, ok := shape.AsRect(); ok {
		rc.ctx.ClipToRect(rect(r))
		return
	}
	rc.setPath(shape)
	rc.ctx.Clip()
}

// Save implements vcanvas.RenderContext.
func (rc *RenderContext) Save() error {
	rc.ctx.SaveGState()
	return nil
}

// Restore implements vcanvas.RenderContext.
func (rc *RenderContext) Restore() error {
	if err := rc.ctx.RestoreGState(); err != nil {
		return vcanvas.NewError("restore", vcanvas.InvalidInput, err)
	}
	return nil
}

// Transform implements vcanvas.RenderContext.
func (rc *RenderContext) Transform(t vcanvas.Affine) {
	rc.ctx.ConcatCTM(bridge.Aff3(t))
}

// CurrentTransform implements vcanvas.RenderContext.
func (rc *RenderContext) CurrentTransform() vcanvas.Affine {
	return bridge.Affine(rc.ctx.CTM())
}

// Text implements vcanvas.RenderContext.
func (rc *RenderContext) Text() vcanvas.Text { return rc.text }

// DrawText implements vcanvas.RenderContext.
func (rc *RenderContext) DrawText(layout vcanvas.TextLayout, pos vcanvas.Point, brush vcanvas.IntoBrush) {
	l, ok := layout.(*TextLayout)
	if !ok {
		rc.status.Record(vcanvas.Errorf("draw_text", vcanvas.InvalidInput, "layout %T belongs to another backend", layout))
		return
	}
	b, ok := rc.brush("draw_text", brush, vcanvas.RectFromOrigin(pos, l.Size()))
	if !ok {
		return
	}

	c := rc.ctx
	c.SaveGState()
	defer func() { _ = c.RestoreGState() }()

	// glyphs are emitted y-up about the layout origin
	local := f64.Aff3{1, 0, pos.X, 0, -1, pos.Y}
	c.ConcatCTM(local)
	c.BeginPath()
	l.Outline(pathSink{c}, true)

	if b.kind == vcanvas.SolidBrush {
		c.SetRGBFillColor(b.color.Components())
		c.FillPath()
		return
	}
	rc.paintThrough(b, func() {
		c.Clip()
		c.ConcatCTM(f64.Aff3{1, 0, -pos.X, 0, -1, pos.Y})
	})
}

// MakeImage implements vcanvas.RenderContext.
func (rc *RenderContext) MakeImage(width, height int, buf []byte, format vcanvas.ImageFormat) (vcanvas.Image, error) {
	pix, err := bridge.DecodeImage(width, height, buf, format)
	if err != nil {
		return nil, err
	}
	return &Image{pix: pix}, nil
}

// DrawImage implements vcanvas.RenderContext.
func (rc *RenderContext) DrawImage(img vcanvas.Image, dst vcanvas.Rect, interp vcanvas.InterpolationMode) {
	im, ok := rc.image("draw_image", img)
	if !ok {
		return
	}
	b := im.pix.Bounds()
	rc.drawImage(im.pix, gstate.Rect{W: float64(b.Dx()), H: float64(b.Dy())}, dst, interp)
}

// DrawImageArea implements vcanvas.RenderContext. Only the src region of
// the image is sampled.
func (rc *RenderContext) DrawImageArea(img vcanvas.Image, src, dst vcanvas.Rect, interp vcanvas.InterpolationMode) {
	im, ok := rc.image("draw_image_area", img)
	if !ok {
		return
	}
	rc.drawImage(im.pix, rect(src.Abs()), dst, interp)
}

func (rc *RenderContext) drawImage(pix *image.RGBA, src gstate.Rect, dst vcanvas.Rect, interp vcanvas.InterpolationMode) {
	c := rc.ctx
	c.SaveGState()
	defer func() { _ = c.RestoreGState() }()

	if interp == vcanvas.NearestNeighbor {
		c.SetInterpolationQuality(gstate.InterpolationNone)
	} else {
		c.SetInterpolationQuality(gstate.InterpolationHigh)
	}
	dst = dst.Abs()
	// the engine puts the first row at the top edge of y-up space
	c.ConcatCTM(f64.Aff3{1, 0, 0, 0, -1, dst.Y0 + dst.Y1})
	c.DrawImageRegion(rect(dst), pix, src)
}

// BlurredRect implements vcanvas.RenderContext. blurRadius is the standard
// deviation of the blur in local units.
func (rc *RenderContext) BlurredRect(r vcanvas.Rect, blurRadius float64, brush vcanvas.IntoBrush) {
	b, ok := rc.brush("blurred_rect", brush, r)
	if !ok {
		return
	}
	c := rc.ctx
	mask := c.BlurredRectMask(rect(r.Abs()), blurRadius)
	rc.paintThrough(b, func() { c.ClipToMask(mask) })
}

// Status implements vcanvas.RenderContext.
func (rc *RenderContext) Status() error { return rc.status.Take() }

// Finish implements vcanvas.RenderContext. Painting is immediate, so Finish
// only reports pending errors.
func (rc *RenderContext) Finish() error {
	rc.finished = true
	return rc.status.Take()
}

// brush resolves brush, recording any failure.
func (rc *RenderContext) brush(op string, brush vcanvas.IntoBrush, shape vcanvas.Shape) (*Brush, bool) {
	b, err := bridge.Resolve[*Brush](rc, op, brush, shape)
	if err != nil {
		rc.status.Record(err)
		return nil, false
	}
	return b, true
}

func (rc *RenderContext) image(op string, img vcanvas.Image) (*Image, bool) {
	im, ok := img.(*Image)
	if !ok {
		rc.status.Record(vcanvas.Errorf(op, vcanvas.InvalidInput, "image %T belongs to another backend", img))
	}
	return im, ok
}

// setPath replaces the engine's current path with the outline of shape.
func (rc *RenderContext) setPath(shape vcanvas.Shape) {
	rc.ctx.BeginPath()
	bridge.Emit(shape, pathSink{rc.ctx})
}

// paintThrough installs a clip with clip and paints b across it, inside a
// saved graphics state. Every non-solid paint goes through here.
func (rc *RenderContext) paintThrough(b *Brush, clip func()) {
	c := rc.ctx
	c.SaveGState()
	defer func() { _ = c.RestoreGState() }()

	clip()
	switch b.kind {
	case vcanvas.SolidBrush:
		c.SetRGBFillColor(b.color.Components())
		c.Paint()
	case vcanvas.LinearBrush:
		g := b.linear
		c.DrawLinearGradient(b.grad, vec(g.Start), vec(g.End))
	case vcanvas.RadialBrush:
		g := b.radial
		start, r0 := g.StartCircle()
		end, r1 := g.EndCircle()
		c.DrawRadialGradient(b.grad, vec(start), r0, vec(end), r1)
	}
}

// Image is a decoded bitmap.
type Image struct {
	pix *image.RGBA
}

// Size implements vcanvas.Image.
func (i *Image) Size() vcanvas.Size {
	b := i.pix.Bounds()
	return vcanvas.Sz(float64(b.Dx()), float64(b.Dy()))
}

func rect(r vcanvas.Rect) gstate.Rect {
	return gstate.Rect{X: r.X0, Y: r.Y0, W: r.X1 - r.X0, H: r.Y1 - r.Y0}
}

func vec(p vcanvas.Point) f64.Vec2 { return f64.Vec2{p.X, p.Y} }
