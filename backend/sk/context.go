//go:build !nosk

package sk

import (
	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/backend"
	"github.com/gogpu/vcanvas/internal/bridge"
	"github.com/gogpu/vcanvas/internal/skpaint"
	"github.com/gogpu/vcanvas/internal/typeset"
)

// RenderContext draws onto a skpaint.Canvas.
type RenderContext struct {
	canvas   *skpaint.Canvas
	text     *Text
	status   bridge.Recorder
	finished bool
}

var _ vcanvas.RenderContext = (*RenderContext)(nil)

// NewRenderContext wraps canvas. The canvas is already y-down, so its
// matrix is left as is.
func NewRenderContext(canvas *skpaint.Canvas, fonts *typeset.Collection, opts ...Option) *RenderContext {
	cfg := config{match: typeset.MatchBest}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &RenderContext{
		canvas: canvas,
		text:   NewText(fonts, cfg.match),
		status: bridge.Recorder{Backend: backend.SK},
	}
}

// Clear implements vcanvas.RenderContext.
func (rc *RenderContext) Clear(color vcanvas.Color) {
	rc.canvas.Clear(color4f(color))
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
	rc.fill("fill", shape, brush, skpaint.FillWinding)
}

// FillEvenOdd implements vcanvas.RenderContext.
func (rc *RenderContext) FillEvenOdd(shape vcanvas.Shape, brush vcanvas.IntoBrush) {
	rc.fill("fill_even_odd", shape, brush, skpaint.FillEvenOdd)
}

func (rc *RenderContext) fill(op string, shape vcanvas.Shape, brush vcanvas.IntoBrush, ft skpaint.FillType) {
	b, ok := rc.brush(op, brush, shape)
	if !ok {
		return
	}
	c := rc.canvas
	if b.kind == vcanvas.SolidBrush {
		if r, ok := shape.AsRect(); ok && ft == skpaint.FillWinding {
			c.DrawRect(rect(r), b.paint())
			return
		}
		c.DrawPath(toPath(shape, ft), b.paint())
		return
	}
	p := toPath(shape, ft)
	rc.paintThrough(b, func() { c.ClipPath(p) })
}

// Stroke implements vcanvas.RenderContext.
func (rc *RenderContext) Stroke(shape vcanvas.Shape, brush vcanvas.IntoBrush, width float64) {
	rc.stroke("stroke", shape, brush, width, nil)
}

// StrokeStyled implements vcanvas.RenderContext. The canvas state is saved
// around the draw so nothing of the style outlives the call.
func (rc *RenderContext) StrokeStyled(shape vcanvas.Shape, brush vcanvas.IntoBrush, width float64, style *vcanvas.StrokeStyle) {
	c := rc.canvas
	n := c.Save()
	defer c.RestoreToCount(n)
	rc.stroke("stroke_styled", shape, brush, width, style)
}

func (rc *RenderContext) stroke(op string, shape vcanvas.Shape, brush vcanvas.IntoBrush, width float64, style *vcanvas.StrokeStyle) {
	b, ok := rc.brush(op, brush, shape)
	if !ok {
		return
	}
	p := b.paint()
	p.Style = skpaint.StyleStroke
	p.StrokeWidth = float32(width)
	p.Cap = skpaint.Cap(style.Cap())
	p.Join = skpaint.Join(style.Join())
	p.Miter = float32(style.Miter())
	if d := style.DashPattern(); d != nil {
		eff := d.Effective()
		p.Dash = &skpaint.DashEffect{Intervals: make([]float32, len(eff)), Phase: float32(d.Offset)}
		for i, v := range eff {
			p.Dash.Intervals[i] = float32(v)
		}
	}

	c := rc.canvas
	if b.kind == vcanvas.SolidBrush {
		if r, ok := shape.AsRect(); ok {
			c.DrawRect(rect(r), p)
			return
		}
		c.DrawPath(toPath(shape, skpaint.FillWinding), p)
		return
	}
	outline := skpaint.FillPath(toPath(shape, skpaint.FillWinding), p, c.TotalMatrix().MaxScale())
	rc.paintThrough(b, func() { c.ClipPath(outline) })
}

// Clip implements vcanvas.RenderContext.
func (rc *RenderContext) Clip(shape vcanvas.Shape) {
	if r, ok := shape.AsRect(); ok {
		rc.canvas.ClipRect(rect(r))
		return
	}
	rc.canvas.ClipPath(toPath(shape, skpaint.FillWinding))
}

// Save implements vcanvas.RenderContext.
func (rc *RenderContext) Save() error {
	rc.canvas.Save()
	return nil
}

// Restore implements vcanvas.RenderContext.
func (rc *RenderContext) Restore() error {
	if err := rc.canvas.Restore(); err != nil {
		return vcanvas.NewError("restore", vcanvas.InvalidInput, err)
	}
	return nil
}

// Transform implements vcanvas.RenderContext.
func (rc *RenderContext) Transform(t vcanvas.Affine) {
	rc.canvas.Concat(skpaint.MakeAll(
		float32(t.A), float32(t.C), float32(t.E),
		float32(t.B), float32(t.D), float32(t.F),
	))
}

// CurrentTransform implements vcanvas.RenderContext.
func (rc *RenderContext) CurrentTransform() vcanvas.Affine {
	m := rc.canvas.TotalMatrix()
	return vcanvas.Affine{
		A: float64(m.SX), B: float64(m.KY),
		C: float64(m.KX), D: float64(m.SY),
		E: float64(m.TX), F: float64(m.TY),
	}
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
	blob := l.textBlob()
	if blob == nil {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	if b.kind == vcanvas.SolidBrush {
		rc.canvas.DrawTextBlob(blob, x, y, b.paint())
		return
	}
	rc.paintThrough(b, func() { rc.canvas.ClipTextBlob(blob, x, y) })
}

// MakeImage implements vcanvas.RenderContext.
func (rc *RenderContext) MakeImage(width, height int, buf []byte, format vcanvas.ImageFormat) (vcanvas.Image, error) {
	pix, err := bridge.DecodeImage(width, height, buf, format)
	if err != nil {
		return nil, err
	}
	return &Image{img: skpaint.NewImage(pix)}, nil
}

// DrawImage implements vcanvas.RenderContext.
func (rc *RenderContext) DrawImage(img vcanvas.Image, dst vcanvas.Rect, interp vcanvas.InterpolationMode) {
	im, ok := rc.image("draw_image", img)
	if !ok {
		return
	}
	src := skpaint.MakeXYWH(0, 0, float32(im.img.Width()), float32(im.img.Height()))
	rc.canvas.DrawImageRect(im.img, src, rect(dst), quality(interp))
}

// DrawImageArea implements vcanvas.RenderContext. Only the src region of
// the image is sampled.
func (rc *RenderContext) DrawImageArea(img vcanvas.Image, src, dst vcanvas.Rect, interp vcanvas.InterpolationMode) {
	im, ok := rc.image("draw_image_area", img)
	if !ok {
		return
	}
	rc.canvas.DrawImageRect(im.img, rect(src), rect(dst), quality(interp))
}

// BlurredRect implements vcanvas.RenderContext. blurRadius is the standard
// deviation of the blur in local units. The brush is painted through the
// blurred coverage directly, without an intermediate clip.
func (rc *RenderContext) BlurredRect(r vcanvas.Rect, blurRadius float64, brush vcanvas.IntoBrush) {
	b, ok := rc.brush("blurred_rect", brush, r)
	if !ok {
		return
	}
	p := b.paint()
	if blurRadius > 0 {
		p.MaskFilter = &skpaint.BlurMaskFilter{Sigma: float32(blurRadius)}
	}
	rc.canvas.DrawRect(rect(r.Abs()), p)
}

// Status implements vcanvas.RenderContext.
func (rc *RenderContext) Status() error { return rc.status.Take() }

// Finish implements vcanvas.RenderContext. The canvas paints immediately,
// so Finish only reports pending errors.
func (rc *RenderContext) Finish() error {
	rc.finished = true
	return rc.status.Take()
}

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

// paintThrough clips with clip and floods the clip with b, inside a saved
// canvas state.
func (rc *RenderContext) paintThrough(b *Brush, clip func()) {
	c := rc.canvas
	n := c.Save()
	defer c.RestoreToCount(n)

	clip()
	c.DrawPaint(b.paint())
}

// Image is a decoded bitmap.
type Image struct {
	img *skpaint.Image
}

// Size implements vcanvas.Image.
func (i *Image) Size() vcanvas.Size {
	return vcanvas.Sz(float64(i.img.Width()), float64(i.img.Height()))
}

func toPath(shape vcanvas.Shape, ft skpaint.FillType) *skpaint.Path {
	var p skpaint.Path
	bridge.Emit(shape, pathSink{&p})
	p.SetFillType(ft)
	return &p
}

func rect(r vcanvas.Rect) skpaint.Rect {
	return skpaint.MakeLTRB(float32(r.X0), float32(r.Y0), float32(r.X1), float32(r.Y1))
}

func point(p vcanvas.Point) skpaint.Point {
	return skpaint.Point{X: float32(p.X), Y: float32(p.Y)}
}

func quality(interp vcanvas.InterpolationMode) skpaint.FilterQuality {
	if interp == vcanvas.NearestNeighbor {
		return skpaint.FilterNone
	}
	return skpaint.FilterLow
}
