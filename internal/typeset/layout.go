package typeset

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/segmenter"

	"github.com/gogpu/vcanvas"
)

// Layout is text shaped in one font and broken into lines. The origin is
// the top-left corner of the first line box, y down. Text positions are
// byte offsets into the layout text.
//
// A Layout is not safe for concurrent use.
type Layout struct {
	font     *Font
	text     string
	maxWidth float64
	lines    []line
	width    float64
}

type line struct {
	start, end int // end includes trailing whitespace and the newline
	trailing   int // bytes of trailing whitespace, newline included

	runes   []rune // content without the newline
	offsets []int  // byte offset of each rune boundary, len(runes)+1
	carets  []float64

	run   run
	width float64 // advance without trailing whitespace
	top   float64
}

// NewLayout shapes text in f and breaks it to width. Use math.Inf(1) for
// unconstrained text, which keeps each paragraph on one line.
func NewLayout(f *Font, text string, width float64) (*Layout, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	l := &Layout{font: f, text: text}
	if err := l.build(width); err != nil {
		return nil, err
	}
	return l, nil
}

// build replaces the lines only once the new width is known to be valid.
func (l *Layout) build(width float64) error {
	if math.IsNaN(width) || width < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWidth, width)
	}

	face := l.font.face()
	var lines []line
	start := 0
	for {
		end, newline := len(l.text), false
		if i := strings.IndexByte(l.text[start:], '\n'); i >= 0 {
			end, newline = start+i, true
		}
		lines = l.breakParagraph(lines, face, start, end, newline, width)
		if !newline {
			break
		}
		start = end + 1
	}

	h := l.font.LineHeight()
	maxW := 0.0
	for i := range lines {
		lines[i].top = float64(i) * h
		maxW = max(maxW, lines[i].width)
	}
	l.lines, l.maxWidth, l.width = lines, width, maxW
	return nil
}

func (l *Layout) breakParagraph(lines []line, face *font.Face, start, end int, newline bool, width float64) []line {
	p := l.text[start:end]
	runes := []rune(p)
	offs := make([]int, 0, len(runes)+1)
	for i := range p {
		offs = append(offs, start+i)
	}
	offs = append(offs, end)
	dir := paragraphDirection(runes)

	if math.IsInf(width, 1) || len(runes) == 0 {
		return append(lines, l.newLine(face, runes, offs, 0, len(runes), newline, dir))
	}

	adv := shapeRunes(l.font, face, runes, dir).runeAdv
	sum := func(a, b int) float64 {
		var w float64
		for _, v := range adv[a:b] {
			w += v
		}
		return w
	}
	emit := func(a, b int) {
		lines = append(lines, l.newLine(face, runes, offs, a, b, false, dir))
	}

	var seg segmenter.Segmenter
	seg.Init(runes)
	var graphemes []int
	for it := seg.GraphemeIterator(); it.Next(); {
		g := it.Grapheme()
		graphemes = append(graphemes, g.Offset+len(g.Text))
	}

	lineStart, lineW := 0, 0.0
	for it := seg.LineIterator(); it.Next(); {
		s := it.Line()
		a, b := s.Offset, s.Offset+len(s.Text)
		trim := b - trailingSpaces(runes[a:b])
		segW := sum(a, trim)

		if lineStart < a && lineW+segW > width {
			emit(lineStart, a)
			lineStart, lineW = a, 0
		}

		if lineStart == a && segW > width {
			// The word alone overflows: fill lines grapheme by grapheme.
			pieceStart, pieceW, prev := a, 0.0, a
			for _, g := range graphemes {
				if g <= a {
					continue
				}
				if g > trim {
					break
				}
				gw := sum(prev, g)
				if pieceStart < prev && pieceW+gw > width {
					emit(pieceStart, prev)
					pieceStart, pieceW = prev, 0
				}
				pieceW += gw
				prev = g
			}
			lineStart, lineW = pieceStart, pieceW+sum(trim, b)
		} else {
			lineW += sum(a, b)
		}

		if s.IsMandatoryBreak && b < len(runes) {
			emit(lineStart, b)
			lineStart, lineW = b, 0
		}
	}
	return append(lines, l.newLine(face, runes, offs, lineStart, len(runes), newline, dir))
}

func (l *Layout) newLine(face *font.Face, runes []rune, offs []int, a, b int, newline bool, dir di.Direction) line {
	ln := line{
		start:   offs[a],
		end:     offs[b],
		runes:   runes[a:b],
		offsets: offs[a : b+1],
	}
	if newline {
		ln.end++
	}
	ts := trailingSpaces(ln.runes)
	ln.trailing = ln.end - offs[b-ts]

	ln.run = shapeRunes(l.font, face, ln.runes, dir)
	ln.width = ln.run.advance
	for _, v := range ln.run.runeAdv[len(ln.runes)-ts:] {
		ln.width -= v
	}
	ln.carets = carets(ln.run, len(ln.runes), dir == di.DirectionRTL)
	return ln
}

// carets returns the x position of every rune boundary of a shaped line.
func carets(r run, n int, rtl bool) []float64 {
	out := make([]float64, n+1)
	set := make([]bool, n+1)
	for _, g := range r.glyphs {
		c := g.cluster
		if c < 0 || c >= n {
			continue
		}
		switch {
		case rtl:
			out[c] = g.pen + g.advance
			set[c] = true
		case !set[c]:
			out[c] = g.pen
			set[c] = true
		}
	}
	if rtl {
		out[n] = 0
		if !set[0] {
			out[0] = r.advance
		}
	} else {
		out[n] = r.advance
	}
	set[0], set[n] = true, true
	for k := 1; k < n; k++ {
		if !set[k] {
			out[k] = out[k-1]
		}
	}
	return out
}

func trailingSpaces(runes []rune) int {
	n := 0
	for i := len(runes) - 1; i >= 0 && unicode.IsSpace(runes[i]); i-- {
		n++
	}
	return n
}

// Font returns the layout font.
func (l *Layout) Font() *Font { return l.font }

// Text returns the laid out text.
func (l *Layout) Text() string { return l.text }

// MaxWidth returns the width the text was broken to.
func (l *Layout) MaxWidth() float64 { return l.maxWidth }

// Width returns the widest line advance, excluding trailing whitespace.
func (l *Layout) Width() float64 { return l.width }

// Size returns Width and the total height of the lines.
func (l *Layout) Size() vcanvas.Size {
	return vcanvas.Size{Width: l.width, Height: float64(len(l.lines)) * l.font.LineHeight()}
}

// UpdateWidth re-breaks the text. On error the previous lines are kept.
func (l *Layout) UpdateWidth(width float64) error {
	if width == l.maxWidth {
		return nil
	}
	if err := l.build(width); err != nil {
		return err
	}
	vcanvas.Logger().Debug("typeset: layout rebuilt", "width", width, "lines", len(l.lines))
	return nil
}

// Outline sends every glyph outline in layout coordinates. With yUp the y
// axis is negated, for sinks whose space grows upward.
func (l *Layout) Outline(sink PathSink, yUp bool) {
	face := l.font.face()
	for _, ln := range l.lines {
		baseline := ln.top + l.font.ascent
		for _, g := range ln.run.glyphs {
			segs := l.font.glyphSegments(face, g.id)
			if len(segs) == 0 {
				continue
			}
			oy := baseline + g.y
			if yUp {
				oy = -oy
			}
			l.font.emitGlyph(sink, segs, g.x, oy, yUp)
		}
	}
}
