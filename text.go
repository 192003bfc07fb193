package vcanvas

import "math"

// NoWidth is the layout width meaning "do not wrap".
var NoWidth = math.Inf(1)

// Text is the factory for fonts and layouts bound to one render context.
type Text interface {
	// NewFontByName starts building a font. Resolution is deferred to Build.
	NewFontByName(name string, size float64) FontBuilder

	// NewTextLayout starts building a layout of text in font, wrapped to
	// width (NoWidth for unconstrained).
	NewTextLayout(font Font, text string, width float64) TextLayoutBuilder
}

// FontBuilder resolves a font.
type FontBuilder interface {
	Build() (Font, error)
}

// Font is a backend-owned resolved font face at a given size.
type Font interface {
	// Family returns the resolved family name.
	Family() string
	// Size returns the size in logical units.
	Size() float64
}

// TextLayoutBuilder builds an immutable text layout.
type TextLayoutBuilder interface {
	Build() (TextLayout, error)
}

// TextLayout is a shaped, line-broken block of text. Layout coordinates put
// the origin at the top-left corner of the first line box, y down.
type TextLayout interface {
	// Width returns the widest line advance, excluding trailing whitespace.
	Width() float64

	// Size returns Width and the total height of all lines.
	Size() Size

	// UpdateWidth re-breaks the text for a new width. On failure the
	// previous layout is kept.
	UpdateWidth(width float64) error

	// LineCount returns the number of lines.
	LineCount() int

	// LineText returns the text of line i, including trailing whitespace.
	LineText(i int) (string, bool)

	// LineMetric returns the metrics of line i.
	LineMetric(i int) (LineMetric, bool)

	// HitTestPoint maps a point in layout coordinates to a text position.
	HitTestPoint(p Point) HitTestPoint

	// HitTestTextPosition maps a byte offset to a point on its line's baseline.
	HitTestTextPosition(offset int) (HitTestTextPosition, bool)
}

// LineMetric describes one line of a layout. Offsets are byte offsets into
// the layout text; vertical values are in layout coordinates.
type LineMetric struct {
	StartOffset int
	EndOffset   int // exclusive, includes trailing whitespace and newline

	// TrailingWhitespace is the byte length of whitespace at the line end.
	TrailingWhitespace int

	Ascent  float64
	Descent float64

	// Baseline is the distance from the line top to its baseline.
	Baseline float64

	// Height is the line box height.
	Height float64

	// YOffset is the line top relative to the first line's top.
	YOffset float64
}

// HitTestMetrics locates a text position.
type HitTestMetrics struct {
	TextPosition int
}

// HitTestPoint is the result of TextLayout.HitTestPoint.
type HitTestPoint struct {
	Metrics HitTestMetrics
	// IsInside reports whether the point fell on a glyph's box.
	IsInside bool
}

// HitTestTextPosition is the result of TextLayout.HitTestTextPosition.
type HitTestTextPosition struct {
	Metrics HitTestMetrics
	// Point is the leading edge of the position on the line's baseline.
	Point Point
}
