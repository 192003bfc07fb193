package gs

import "github.com/gogpu/vcanvas/internal/typeset"

type config struct {
	flipped bool
	match   typeset.MatchMode
}

// Option configures a RenderContext.
type Option func(*config)

// WithFlipped reports that the engine's user space is already y-down, so no
// orientation flip is installed.
func WithFlipped(flipped bool) Option {
	return func(c *config) {
		c.flipped = flipped
	}
}

// WithFontMatch sets how font family names are matched. The default,
// typeset.MatchBest, resolves any family to the closest face.
func WithFontMatch(mode typeset.MatchMode) Option {
	return func(c *config) {
		c.match = mode
	}
}
