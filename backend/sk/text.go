//go:build !nosk

package sk

import (
	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/bridge"
	"github.com/gogpu/vcanvas/internal/skpaint"
	"github.com/gogpu/vcanvas/internal/typeset"
)

// Text creates fonts and layouts for an sk RenderContext.
type Text struct {
	fonts *typeset.Collection
	match typeset.MatchMode
}

// NewText returns a text factory resolving families from fonts.
func NewText(fonts *typeset.Collection, match typeset.MatchMode) *Text {
	return &Text{fonts: fonts, match: match}
}

// NewFontByName implements vcanvas.Text.
func (t *Text) NewFontByName(name string, size float64) vcanvas.FontBuilder {
	return &fontBuilder{text: t, name: name, size: size}
}

// NewTextLayout implements vcanvas.Text.
func (t *Text) NewTextLayout(font vcanvas.Font, text string, width float64) vcanvas.TextLayoutBuilder {
	return &layoutBuilder{font: font, text: text, width: width}
}

type fontBuilder struct {
	text *Text
	name string
	size float64
}

func (b *fontBuilder) Build() (vcanvas.Font, error) {
	f, err := b.text.fonts.Match(b.name, b.size, b.text.match)
	if err != nil {
		return nil, bridge.TextError("font", err)
	}
	return &Font{f}, nil
}

type layoutBuilder struct {
	font  vcanvas.Font
	text  string
	width float64
}

func (b *layoutBuilder) Build() (vcanvas.TextLayout, error) {
	f, ok := b.font.(*Font)
	if !ok {
		return nil, vcanvas.Errorf("text_layout", vcanvas.InvalidInput, "font %T belongs to another backend", b.font)
	}
	l, err := typeset.NewLayout(f.Font, b.text, b.width)
	if err != nil {
		return nil, bridge.TextError("text_layout", err)
	}
	return &TextLayout{Layout: l}, nil
}

// Font is a resolved font.
type Font struct {
	*typeset.Font
}

// TextLayout is a laid out paragraph block. Its glyph outlines are built
// into a TextBlob on first draw.
type TextLayout struct {
	*typeset.Layout

	blob  *skpaint.TextBlob
	built bool
}

// UpdateWidth re-breaks the layout and drops the cached blob. On error the
// layout and blob are unchanged.
func (l *TextLayout) UpdateWidth(width float64) error {
	if err := l.Layout.UpdateWidth(width); err != nil {
		return bridge.TextError("update_width", err)
	}
	l.blob, l.built = nil, false
	return nil
}

// textBlob returns the cached blob, nil for a layout with no visible glyphs.
func (l *TextLayout) textBlob() *skpaint.TextBlob {
	if !l.built {
		var p skpaint.Path
		l.Outline(pathSink{&p}, false)
		l.blob, l.built = skpaint.MakeTextBlob(&p), true
	}
	return l.blob
}

// pathSink appends float64 outlines to a float32 path.
type pathSink struct {
	p *skpaint.Path
}

func (s pathSink) MoveTo(x, y float64) { s.p.MoveTo(float32(x), float32(y)) }
func (s pathSink) LineTo(x, y float64) { s.p.LineTo(float32(x), float32(y)) }
func (s pathSink) QuadTo(x1, y1, x, y float64) {
	s.p.QuadTo(float32(x1), float32(y1), float32(x), float32(y))
}
func (s pathSink) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.p.CubicTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x), float32(y))
}
func (s pathSink) Close() { s.p.Close() }
