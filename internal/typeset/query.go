package typeset

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/gogpu/vcanvas"
)

// LineCount returns the number of lines; it is at least one.
func (l *Layout) LineCount() int { return len(l.lines) }

// LineText returns the text of line i, trailing whitespace included.
func (l *Layout) LineText(i int) (string, bool) {
	if i < 0 || i >= len(l.lines) {
		return "", false
	}
	ln := l.lines[i]
	return l.text[ln.start:ln.end], true
}

// LineMetric returns the offsets and vertical metrics of line i.
func (l *Layout) LineMetric(i int) (vcanvas.LineMetric, bool) {
	if i < 0 || i >= len(l.lines) {
		return vcanvas.LineMetric{}, false
	}
	ln := l.lines[i]
	return vcanvas.LineMetric{
		StartOffset:        ln.start,
		EndOffset:          ln.end,
		TrailingWhitespace: ln.trailing,
		Ascent:             l.font.ascent,
		Descent:            l.font.descent,
		Baseline:           l.font.ascent,
		Height:             l.font.LineHeight(),
		YOffset:            ln.top,
	}, true
}

// HitTestPoint maps p to a text position. A point inside a line resolves
// to the leading offset of the character under it; a point outside snaps
// to the nearest caret. IsInside reports whether p lies within a line's
// advance and height.
func (l *Layout) HitTestPoint(p vcanvas.Point) vcanvas.HitTestPoint {
	h := l.font.LineHeight()
	total := float64(len(l.lines)) * h

	i := 0
	if h > 0 {
		i = int(math.Floor(p.Y / h))
	}
	i = min(max(i, 0), len(l.lines)-1)
	ln := l.lines[i]

	inside := p.Y >= 0 && p.Y < total && p.X >= 0 && p.X <= ln.run.advance
	k, ok := -1, false
	if inside {
		k, ok = spanAt(ln.carets, p.X)
	}
	if !ok {
		k = nearestCaret(ln.carets, p.X)
	}
	return vcanvas.HitTestPoint{
		Metrics:  vcanvas.HitTestMetrics{TextPosition: ln.offsets[k]},
		IsInside: inside,
	}
}

// spanAt returns the boundary k whose span to boundary k+1 covers x.
// Spans run in either direction, so right-to-left lines work unchanged.
func spanAt(carets []float64, x float64) (int, bool) {
	for k := 0; k+1 < len(carets); k++ {
		lo, hi := min(carets[k], carets[k+1]), max(carets[k], carets[k+1])
		if lo <= x && x < hi {
			return k, true
		}
	}
	return 0, false
}

func nearestCaret(carets []float64, x float64) int {
	best, bestDist := 0, math.Inf(1)
	for k, cx := range carets {
		if d := math.Abs(cx - x); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

// HitTestTextPosition returns the caret for offset on its line's baseline.
// Offsets inside a UTF-8 sequence snap back to the rune start.
func (l *Layout) HitTestTextPosition(offset int) (vcanvas.HitTestTextPosition, bool) {
	if offset < 0 || offset > len(l.text) {
		return vcanvas.HitTestTextPosition{}, false
	}
	for offset > 0 && offset < len(l.text) && !utf8.RuneStart(l.text[offset]) {
		offset--
	}

	i := sort.Search(len(l.lines), func(i int) bool { return l.lines[i].start > offset }) - 1
	i = max(i, 0)
	ln := l.lines[i]

	k := min(sort.SearchInts(ln.offsets, offset), len(ln.runes))
	return vcanvas.HitTestTextPosition{
		Metrics: vcanvas.HitTestMetrics{TextPosition: offset},
		Point:   vcanvas.Pt(ln.carets[k], ln.top+l.font.ascent),
	}, true
}
