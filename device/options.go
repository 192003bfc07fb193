package device

import "github.com/gogpu/vcanvas/internal/typeset"

type config struct {
	backend string
	text    []typeset.Option
}

// Option configures a Device.
type Option func(*config)

// WithBackend selects the backend registered under name. Without it the
// first available backend in priority order is used.
func WithBackend(name string) Option {
	return func(c *config) {
		c.backend = name
	}
}

// WithSystemFonts makes the fonts installed on the host available to text
// layout. The font index is cached in cacheDir, or in the user cache
// directory when cacheDir is empty.
func WithSystemFonts(cacheDir string) Option {
	return func(c *config) {
		c.text = append(c.text, typeset.WithSystemFonts(cacheDir))
	}
}

// WithFont registers a TrueType or OpenType font under family.
func WithFont(family string, data []byte) Option {
	return func(c *config) {
		c.text = append(c.text, typeset.WithFont(family, data))
	}
}

// WithFontAlias maps a generic family name such as "serif" to a
// prioritized list of families.
func WithFontAlias(alias string, families ...string) Option {
	return func(c *config) {
		c.text = append(c.text, typeset.WithAlias(alias, families...))
	}
}
