package scene

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/device"
)

// Render draws the document onto a new target of dev, sized
// Width*Scale x Height*Scale device pixels, and finishes it.
func (d *Document) Render(dev *device.Device) (*device.BitmapTarget, error) {
	w := int(math.Ceil(d.Width * d.Scale))
	h := int(math.Ceil(d.Height * d.Scale))
	bt, err := dev.BitmapTarget(w, h, d.Scale)
	if err != nil {
		return nil, err
	}
	rc := bt.RenderContext()
	if d.Background != "" {
		c, err := ParseColor(d.Background)
		if err != nil {
			return nil, err
		}
		rc.Clear(c)
	}
	drawErr := d.Draw(rc)
	if err := rc.Finish(); drawErr == nil {
		drawErr = err
	}
	if drawErr != nil {
		return nil, drawErr
	}
	return bt, nil
}

// Draw replays the operations onto rc. It stops at the first operation
// that fails to build and otherwise returns rc.Status. Saves left open by
// the document are restored before returning.
func (d *Document) Draw(rc vcanvas.RenderContext) error {
	r := &replayer{
		rc:     rc,
		dir:    d.dir,
		images: make(map[string]vcanvas.Image),
	}
	defer r.unwind()

	for i, op := range d.Ops {
		if err := r.apply(op); err != nil {
			if vcanvas.KindOf(err) == 0 {
				err = vcanvas.NewError("scene", vcanvas.InvalidInput, err)
			}
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	return rc.Status()
}

type replayer struct {
	rc     vcanvas.RenderContext
	dir    string
	depth  int
	images map[string]vcanvas.Image
}

func (r *replayer) unwind() {
	for ; r.depth > 0; r.depth-- {
		_ = r.rc.Restore()
	}
}

func (r *replayer) apply(op Op) error {
	rc := r.rc
	switch op.Op {
	case "fill", "fill_even_odd", "stroke":
		shape, err := op.Shape.build()
		if err != nil {
			return err
		}
		brush, err := r.brush(op.Brush)
		if err != nil {
			return err
		}
		switch {
		case op.Op == "fill":
			rc.Fill(shape, brush)
		case op.Op == "fill_even_odd":
			rc.FillEvenOdd(shape, brush)
		case op.Style != nil:
			style, err := op.Style.build()
			if err != nil {
				return err
			}
			rc.StrokeStyled(shape, brush, op.strokeWidth(), style)
		default:
			rc.Stroke(shape, brush, op.strokeWidth())
		}

	case "clip":
		shape, err := op.Shape.build()
		if err != nil {
			return err
		}
		rc.Clip(shape)

	case "save":
		if err := rc.Save(); err != nil {
			return err
		}
		r.depth++

	case "restore":
		if r.depth == 0 {
			return fmt.Errorf("scene: restore without a matching save")
		}
		if err := rc.Restore(); err != nil {
			return err
		}
		r.depth--

	case "transform":
		if len(op.Matrix) != 6 {
			return fmt.Errorf("scene: matrix needs 6 values, got %d", len(op.Matrix))
		}
		rc.Transform(vcanvas.NewAffine([6]float64(op.Matrix)))

	case "text":
		return r.text(op)

	case "image":
		return r.image(op)

	case "blur":
		rect, err := toRect(op.Rect)
		if err != nil {
			return err
		}
		brush, err := r.brush(op.Brush)
		if err != nil {
			return err
		}
		rc.BlurredRect(rect, op.Radius, brush)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func (op Op) strokeWidth() float64 {
	if op.Width == 0 {
		return 1
	}
	return op.Width
}

func (r *replayer) text(op Op) error {
	size := op.Size
	if size == 0 {
		size = 12
	}
	font, err := r.rc.Text().NewFontByName(op.Font, size).Build()
	if err != nil {
		return err
	}
	width := op.Width
	if width == 0 {
		width = vcanvas.NoWidth
	}
	layout, err := r.rc.Text().NewTextLayout(font, op.Text, width).Build()
	if err != nil {
		return err
	}
	at := vcanvas.Point{}
	if op.At != nil {
		if at, err = toPoint(op.At); err != nil {
			return err
		}
	}
	brush, err := r.brush(op.Brush)
	if err != nil {
		return err
	}
	r.rc.DrawText(layout, at, brush)
	return nil
}

func (r *replayer) image(op Op) error {
	path := op.Image
	if !filepath.IsAbs(path) && r.dir != "" {
		path = filepath.Join(r.dir, path)
	}
	img, ok := r.images[path]
	if !ok {
		pix, err := loadImage(path)
		if err != nil {
			return err
		}
		b := pix.Bounds()
		if img, err = r.rc.MakeImage(b.Dx(), b.Dy(), pix.Pix, vcanvas.RGBAPremul); err != nil {
			return err
		}
		r.images[path] = img
	}

	interp := vcanvas.Linear
	switch op.Interp {
	case "", "linear":
	case "nearest":
		interp = vcanvas.NearestNeighbor
	default:
		return fmt.Errorf("scene: unknown interpolation %q", op.Interp)
	}

	dst := vcanvas.RectFromOrigin(vcanvas.Point{}, img.Size())
	if op.Dst != nil {
		var err error
		if dst, err = toRect(op.Dst); err != nil {
			return err
		}
	}
	if op.Src == nil {
		r.rc.DrawImage(img, dst, interp)
		return nil
	}
	src, err := toRect(op.Src)
	if err != nil {
		return err
	}
	r.rc.DrawImageArea(img, src, dst, interp)
	return nil
}

// brush builds b. A missing brush is opaque black.
func (r *replayer) brush(b *Brush) (vcanvas.IntoBrush, error) {
	switch {
	case b == nil:
		return vcanvas.Black, nil
	case b.Linear != nil:
		g := b.Linear
		start, err := toPoint(g.Start)
		if err != nil {
			return nil, err
		}
		end, err := toPoint(g.End)
		if err != nil {
			return nil, err
		}
		stops, err := toStops(g.Stops)
		if err != nil {
			return nil, err
		}
		return r.rc.Gradient(vcanvas.FixedLinearGradient{Start: start, End: end, Stops: stops})
	case b.Radial != nil:
		g := b.Radial
		center, err := toPoint(g.Center)
		if err != nil {
			return nil, err
		}
		var offset vcanvas.Vec2
		if g.Offset != nil {
			p, err := toPoint(g.Offset)
			if err != nil {
				return nil, err
			}
			offset = p.ToVec2()
		}
		stops, err := toStops(g.Stops)
		if err != nil {
			return nil, err
		}
		return r.rc.Gradient(vcanvas.FixedRadialGradient{Center: center, OriginOffset: offset, Radius: g.Radius, Stops: stops})
	default:
		c, err := ParseColor(b.Color)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func (s *Shape) build() (vcanvas.Shape, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: missing", ErrShape)
	}
	switch s.Type {
	case "rect":
		return toRect(s.Rect)
	case "rounded_rect":
		r, err := toRect(s.Rect)
		if err != nil {
			return nil, err
		}
		return vcanvas.NewRoundedRect(r.X0, r.Y0, r.X1, r.Y1, s.Radius), nil
	case "circle":
		c, err := toPoint(s.Center)
		if err != nil {
			return nil, err
		}
		return vcanvas.NewCircle(c, s.Radius), nil
	case "ellipse":
		r, err := toRect(s.Rect)
		if err != nil {
			return nil, err
		}
		return vcanvas.NewEllipse(r), nil
	case "line":
		p0, err := toPoint(s.From)
		if err != nil {
			return nil, err
		}
		p1, err := toPoint(s.To)
		if err != nil {
			return nil, err
		}
		return vcanvas.NewLine(p0, p1), nil
	case "path":
		return ParsePath(s.Data)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrShape, s.Type)
	}
}

func (s *StrokeStyle) build() (*vcanvas.StrokeStyle, error) {
	style := vcanvas.NewStrokeStyle()
	switch s.Cap {
	case "":
	case "butt":
		style = style.WithLineCap(vcanvas.CapButt)
	case "round":
		style = style.WithLineCap(vcanvas.CapRound)
	case "square":
		style = style.WithLineCap(vcanvas.CapSquare)
	default:
		return nil, fmt.Errorf("scene: unknown line cap %q", s.Cap)
	}
	switch s.Join {
	case "":
	case "miter":
		style = style.WithLineJoin(vcanvas.JoinMiter)
	case "round":
		style = style.WithLineJoin(vcanvas.JoinRound)
	case "bevel":
		style = style.WithLineJoin(vcanvas.JoinBevel)
	default:
		return nil, fmt.Errorf("scene: unknown line join %q", s.Join)
	}
	if s.MiterLimit != 0 {
		style = style.WithMiterLimit(s.MiterLimit)
	}
	if len(s.Dash) > 0 {
		style = style.WithDash(s.Dash, s.DashOffset)
	}
	return style, nil
}

func toPoint(v []float64) (vcanvas.Point, error) {
	if len(v) != 2 {
		return vcanvas.Point{}, fmt.Errorf("%w: point needs 2 values, got %d", ErrShape, len(v))
	}
	return vcanvas.Pt(v[0], v[1]), nil
}

func toRect(v []float64) (vcanvas.Rect, error) {
	if len(v) != 4 {
		return vcanvas.Rect{}, fmt.Errorf("%w: rect needs 4 values, got %d", ErrShape, len(v))
	}
	return vcanvas.NewRect(v[0], v[1], v[2], v[3]), nil
}

func toStops(stops []Stop) ([]vcanvas.GradientStop, error) {
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: gradient without stops", ErrBrush)
	}
	out := make([]vcanvas.GradientStop, len(stops))
	for i, s := range stops {
		c, err := ParseColor(s.Color)
		if err != nil {
			return nil, err
		}
		out[i] = vcanvas.GradientStop{Pos: s.Pos, Color: c}
	}
	return out, nil
}
