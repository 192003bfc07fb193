package gs

import (
	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/bridge"
	"github.com/gogpu/vcanvas/internal/gstate"
	"github.com/gogpu/vcanvas/internal/typeset"
)

// Text creates fonts and layouts for a gs RenderContext.
type Text struct {
	fonts *typeset.Collection
	match typeset.MatchMode
}

// NewText returns a text factory resolving families from fonts.
func NewText(fonts *typeset.Collection, match typeset.MatchMode) *Text {
	return &Text{fonts: fonts, match: match}
}

// NewFontByName implements vcanvas.Text. The family is resolved by Build.
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
	return &TextLayout{l}, nil
}

// Font is a resolved font.
type Font struct {
	*typeset.Font
}

// TextLayout is a laid out paragraph block.
type TextLayout struct {
	*typeset.Layout
}

// UpdateWidth re-breaks the layout. On error the layout is unchanged.
func (l *TextLayout) UpdateWidth(width float64) error {
	return bridge.TextError("update_width", l.Layout.UpdateWidth(width))
}

// pathSink appends outlines to the engine's current path.
type pathSink struct {
	c *gstate.Context
}

func (s pathSink) MoveTo(x, y float64) { s.c.MoveTo(x, y) }
func (s pathSink) LineTo(x, y float64) { s.c.AddLineTo(x, y) }
func (s pathSink) QuadTo(x1, y1, x, y float64) {
	s.c.AddQuadCurveTo(x1, y1, x, y)
}
func (s pathSink) CubicTo(x1, y1, x2, y2, x, y float64) {
	s.c.AddCurveTo(x1, y1, x2, y2, x, y)
}
func (s pathSink) Close() { s.c.ClosePath() }
