package typeset

import (
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/vcanvas/internal/cache"
)

// PathSink receives glyph outlines.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(x1, y1, x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	Close()
}

// Font is a resolved face at a size. Fonts are immutable and safe for
// concurrent use; shaping creates a private font.Face per call.
type Font struct {
	ft     *font.Font
	family string
	size   float64
	scale  float64 // size / units per em

	ascent, descent, gap float64

	outlines *outlineCache // shared by every font of a Collection, may be nil
}

// outlineCacheSize bounds the glyph outlines kept per Collection.
const outlineCacheSize = 4096

type outlineKey struct {
	ft  *font.Font
	gid font.GID
}

// outlineCache holds glyph outlines in font units, so one entry serves
// every size of a face.
type outlineCache = cache.Cache[outlineKey, []font.Segment]

func newFont(ft *font.Font, family string, size float64, outlines *outlineCache) *Font {
	f := &Font{
		ft:       ft,
		family:   family,
		size:     size,
		scale:    size / float64(ft.Upem()),
		outlines: outlines,
	}
	if ext, ok := font.NewFace(ft).FontHExtents(); ok {
		f.ascent = float64(ext.Ascender) * f.scale
		f.descent = -float64(ext.Descender) * f.scale
		f.gap = float64(ext.LineGap) * f.scale
	} else {
		f.ascent = 0.8 * size
		f.descent = 0.2 * size
	}
	return f
}

// Family returns the family name the font was resolved to.
func (f *Font) Family() string { return f.family }

// Size returns the font size in logical units.
func (f *Font) Size() float64 { return f.size }

// Ascent returns the distance from the baseline to the top of the line box.
func (f *Font) Ascent() float64 { return f.ascent }

// Descent returns the distance from the baseline to the bottom of the line
// box, as a positive number.
func (f *Font) Descent() float64 { return f.descent }

// LineGap returns the recommended gap between lines.
func (f *Font) LineGap() float64 { return f.gap }

// LineHeight returns ascent + descent + line gap.
func (f *Font) LineHeight() float64 { return f.ascent + f.descent + f.gap }

// WithSize returns the same face at another size.
func (f *Font) WithSize(size float64) (*Font, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return newFont(f.ft, f.family, size, f.outlines), nil
}

func (f *Font) face() *font.Face { return font.NewFace(f.ft) }

// glyphSegments returns the outline of gid in font units, y up, going
// through the collection's cache when there is one.
func (f *Font) glyphSegments(face *font.Face, gid font.GID) []font.Segment {
	if f.outlines == nil {
		return segments(face, gid)
	}
	return f.outlines.GetOrCreate(outlineKey{f.ft, gid}, func() []font.Segment {
		return segments(face, gid)
	})
}

// segments returns the vector outline of gid in font units, y up.
func segments(face *font.Face, gid font.GID) []font.Segment {
	switch d := face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		return d.Segments
	case font.GlyphSVG:
		return d.Outline.Segments
	case font.GlyphBitmap:
		if d.Outline != nil {
			return d.Outline.Segments
		}
	}
	return nil
}

// emitGlyph sends the outline of one glyph with its origin at (ox, oy).
// With yUp false the outline is flipped into a y-down space; with yUp true
// font units keep their orientation and the caller's space is y-up.
func (f *Font) emitGlyph(sink PathSink, segs []font.Segment, ox, oy float64, yUp bool) {
	sy := -f.scale
	if yUp {
		sy = f.scale
	}
	pt := func(p font.SegmentPoint) (float64, float64) {
		return ox + float64(p.X)*f.scale, oy + float64(p.Y)*sy
	}

	open := false
	for _, s := range segs {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			x, y := pt(s.Args[0])
			sink.MoveTo(x, y)
			open = true
		case ot.SegmentOpLineTo:
			x, y := pt(s.Args[0])
			sink.LineTo(x, y)
		case ot.SegmentOpQuadTo:
			x1, y1 := pt(s.Args[0])
			x, y := pt(s.Args[1])
			sink.QuadTo(x1, y1, x, y)
		case ot.SegmentOpCubeTo:
			x1, y1 := pt(s.Args[0])
			x2, y2 := pt(s.Args[1])
			x, y := pt(s.Args[2])
			sink.CubicTo(x1, y1, x2, y2, x, y)
		}
	}
	if open {
		sink.Close()
	}
}
