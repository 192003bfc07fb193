//go:build !nosk

package sk

import "github.com/gogpu/vcanvas/internal/typeset"

type config struct {
	match typeset.MatchMode
}

// Option configures a RenderContext.
type Option func(*config)

// WithFontMatch sets how font family names are matched. The default,
// typeset.MatchBest, substitutes the closest face; typeset.MatchExact fails
// for families the collection does not hold.
func WithFontMatch(mode typeset.MatchMode) Option {
	return func(c *config) {
		c.match = mode
	}
}
