package typeset

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// HarfbuzzShaper keeps a scratch buffer and is not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// run is the shaped form of a rune slice on one line.
type run struct {
	glyphs  []glyph
	advance float64
	runeAdv []float64 // advance attributed to each rune, by cluster
}

type glyph struct {
	id      font.GID
	x, y    float64 // pen position plus offset, y down from the baseline
	pen     float64
	advance float64
	cluster int // rune index of the cluster start
}

func shapeRunes(f *Font, face *font.Face, runes []rune, dir di.Direction) run {
	r := run{runeAdv: make([]float64, len(runes))}
	if len(runes) == 0 {
		return r
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	shaperPool.Put(hb)

	r.glyphs = make([]glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		r.glyphs[i] = glyph{
			id:      g.GlyphID,
			x:       x + fixedToFloat(g.XOffset),
			y:       -fixedToFloat(g.YOffset),
			pen:     x,
			advance: adv,
			cluster: g.TextIndex(),
		}
		if c := g.TextIndex(); c >= 0 && c < len(runes) {
			r.runeAdv[c] += adv
		}
		x += adv
	}
	r.advance = x
	return r
}

// paragraphDirection applies the first-strong rule to runes.
func paragraphDirection(runes []rune) di.Direction {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
