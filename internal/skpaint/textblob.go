package skpaint

import (
	"image"
	"image/draw"
)

// TextBlob is an immutable run of glyph outlines positioned relative to the
// blob origin.
type TextBlob struct {
	path   Path
	bounds Rect
}

// MakeTextBlob returns a blob holding a copy of the outlines in p, or nil
// when p is empty.
func MakeTextBlob(p *Path) *TextBlob {
	if p.IsEmpty() {
		return nil
	}
	b := &TextBlob{bounds: p.Bounds()}
	b.path.verbs = append([]Verb(nil), p.verbs...)
	b.path.pts = append([]Point(nil), p.pts...)
	return b
}

// Bounds returns the conservative bounds of the outlines.
func (b *TextBlob) Bounds() Rect { return b.bounds }

// DrawTextBlob fills the glyphs of b with their origin at (x, y). The paint
// style is ignored.
func (c *Canvas) DrawTextBlob(b *TextBlob, x, y float32, p *Paint) {
	if b == nil {
		return
	}
	c.drawMask(c.glyphMask(b, x, y), p)
}

// ClipTextBlob intersects the clip with the glyphs of b at (x, y). The
// coverage is the same DrawTextBlob paints.
func (c *Canvas) ClipTextBlob(b *TextBlob, x, y float32) {
	if b == nil {
		c.st.clip = c.st.clip.Intersect(image.NewAlpha(c.dst.Bounds()))
		return
	}
	c.st.clip = c.st.clip.Intersect(c.glyphMask(b, x, y))
}

// glyphMask rasterizes the outlines of b into device coverage.
func (c *Canvas) glyphMask(b *TextBlob, x, y float32) *image.Alpha {
	m := c.st.matrix.Concat(MakeTrans(x, y))
	z := c.glyphs
	z.Reset(c.dst.Rect.Max.X, c.dst.Rect.Max.Y)
	z.DrawOp = draw.Src

	open := false
	b.path.Iter(func(v Verb, pts []Point) {
		switch v {
		case VerbMove:
			if open {
				z.ClosePath()
			}
			q := m.MapPoint(pts[0])
			z.MoveTo(q.X, q.Y)
			open = true
		case VerbLine:
			q := m.MapPoint(pts[0])
			z.LineTo(q.X, q.Y)
		case VerbQuad:
			q1, q2 := m.MapPoint(pts[0]), m.MapPoint(pts[1])
			z.QuadTo(q1.X, q1.Y, q2.X, q2.Y)
		case VerbCubic:
			q1, q2, q3 := m.MapPoint(pts[0]), m.MapPoint(pts[1]), m.MapPoint(pts[2])
			z.CubeTo(q1.X, q1.Y, q2.X, q2.Y, q3.X, q3.Y)
		case VerbClose:
			if open {
				z.ClosePath()
				open = false
			}
		}
	})
	if open {
		z.ClosePath()
	}

	mask := image.NewAlpha(z.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
