package typeset

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/internal/cache"
)

// Bundled family names.
const (
	FamilyGo        = "Go"
	FamilyGoMono    = "Go Mono"
	FamilyLMRoman   = "Latin Modern Roman"
	FamilyLMSans    = "Latin Modern Sans"
	FamilyLMMono    = "Latin Modern Mono"
	defaultFamilyID = "sans-serif"
)

// sampleRune is used to pick a face when no text is known yet.
const sampleRune = 'a'

type bundledFont struct {
	family string
	file   string
	data   []byte
}

var bundled = []bundledFont{
	{FamilyGo, "goregular", goregular.TTF},
	{FamilyGo, "gobold", gobold.TTF},
	{FamilyGo, "goitalic", goitalic.TTF},
	{FamilyGo, "gobolditalic", gobolditalic.TTF},
	{FamilyGoMono, "gomono", gomono.TTF},
	{FamilyGoMono, "gomonobold", gomonobold.TTF},
	{FamilyLMRoman, "lmroman10regular", lmroman10regular.TTF},
	{FamilyLMRoman, "lmroman10bold", lmroman10bold.TTF},
	{FamilyLMRoman, "lmroman10italic", lmroman10italic.TTF},
	{FamilyLMSans, "lmsans10regular", lmsans10regular.TTF},
	{FamilyLMMono, "lmmono10regular", lmmono10regular.TTF},
}

var defaultAliases = map[string][]string{
	"sans-serif": {FamilyGo, FamilyLMSans},
	"system-ui":  {FamilyGo},
	"serif":      {FamilyLMRoman},
	"monospace":  {FamilyGoMono, FamilyLMMono},
}

// wellKnown sorts common platform families into generic classes, so that
// MatchBest substitutes a face of the same kind when they are missing.
var wellKnown = map[string][]string{
	"serif": {
		"Times New Roman", "Times", "Georgia", "Cambria", "Garamond", "Palatino",
		"Palatino Linotype", "Book Antiqua", "Baskerville", "Liberation Serif",
		"DejaVu Serif", "Noto Serif",
	},
	"monospace": {
		"Courier", "Courier New", "Consolas", "Menlo", "Monaco", "Lucida Console",
		"Andale Mono", "Liberation Mono", "DejaVu Sans Mono", "Noto Mono",
	},
}

var genericClasses = func() map[string]string {
	m := make(map[string]string)
	for class, families := range wellKnown {
		for _, f := range families {
			m[font.NormalizeFamily(f)] = class
		}
	}
	return m
}()

// genericClass returns the generic family standing in for the normalized
// family key.
func genericClass(key string) string {
	if class, ok := genericClasses[key]; ok {
		return class
	}
	switch {
	case strings.Contains(key, "mono"), strings.Contains(key, "courier"), strings.Contains(key, "console"):
		return "monospace"
	case strings.Contains(key, "sans"):
		return "sans-serif"
	case strings.Contains(key, "serif"), strings.Contains(key, "times"):
		return "serif"
	}
	return defaultFamilyID
}

// MatchMode selects how strictly a family name must match.
type MatchMode uint8

const (
	// MatchBest returns the closest face, falling back to any known family.
	MatchBest MatchMode = iota
	// MatchExact requires the resolved face to belong to the requested
	// family after alias expansion.
	MatchExact
)

// Option configures a Collection.
type Option func(*collectionConfig)

type collectionConfig struct {
	systemFonts bool
	cacheDir    string
	fonts       []bundledFont
	aliases     map[string][]string
}

// WithSystemFonts adds the fonts installed on the host. The scanned index is
// cached in cacheDir; an empty cacheDir uses the user cache directory.
func WithSystemFonts(cacheDir string) Option {
	return func(c *collectionConfig) {
		c.systemFonts = true
		c.cacheDir = cacheDir
	}
}

// WithFont registers a TrueType or OpenType font under family.
func WithFont(family string, data []byte) Option {
	return func(c *collectionConfig) {
		c.fonts = append(c.fonts, bundledFont{family: family, file: family, data: data})
	}
}

// WithAlias maps alias to a prioritized list of families, replacing any
// previous mapping.
func WithAlias(alias string, families ...string) Option {
	return func(c *collectionConfig) {
		if c.aliases == nil {
			c.aliases = make(map[string][]string)
		}
		c.aliases[alias] = families
	}
}

// Collection is a set of font families. It is safe for concurrent use.
type Collection struct {
	mu       sync.Mutex
	fm       *fontscan.FontMap
	display  map[string]string   // normalized family -> registered name
	aliases  map[string][]string // normalized alias -> normalized families
	outlines *outlineCache
}

// NewCollection creates a collection seeded with the bundled Go and Latin
// Modern families.
func NewCollection(opts ...Option) (*Collection, error) {
	var cfg collectionConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Collection{
		fm:       fontscan.NewFontMap(printfLogger{}),
		display:  make(map[string]string),
		aliases:  make(map[string][]string),
		outlines: cache.New[outlineKey, []font.Segment](outlineCacheSize),
	}
	for alias, families := range defaultAliases {
		c.setAlias(alias, families)
	}
	for alias, families := range cfg.aliases {
		c.setAlias(alias, families)
	}

	for _, bf := range bundled {
		if err := c.addFont(bf.family, bf.file, bf.data); err != nil {
			return nil, err
		}
	}
	for _, bf := range cfg.fonts {
		if err := c.addFont(bf.family, bf.file, bf.data); err != nil {
			return nil, err
		}
	}

	if cfg.systemFonts {
		if err := c.fm.UseSystemFonts(cfg.cacheDir); err != nil {
			return nil, fmt.Errorf("typeset: loading system fonts: %w", err)
		}
		vcanvas.Logger().Debug("typeset: system fonts enabled", "cacheDir", cfg.cacheDir)
	}
	return c, nil
}

// AddFont registers a TrueType or OpenType font under family.
func (c *Collection) AddFont(family string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addFont(family, family, data)
}

func (c *Collection) addFont(family, file string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("typeset: font %q: empty data", family)
	}
	if err := c.fm.AddFont(bytes.NewReader(data), file, family); err != nil {
		return fmt.Errorf("typeset: font %q: %w", family, err)
	}
	c.display[font.NormalizeFamily(family)] = family
	return nil
}

func (c *Collection) setAlias(alias string, families []string) {
	norm := make([]string, len(families))
	for i, f := range families {
		norm[i] = font.NormalizeFamily(f)
	}
	c.aliases[font.NormalizeFamily(alias)] = norm
}

// Families returns the registered family names, sorted.
func (c *Collection) Families() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.display))
	for _, name := range c.display {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Match resolves name, a family or an alias such as "serif", to a font of
// the given size.
func (c *Collection) Match(name string, size float64, mode MatchMode) (*Font, error) {
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}

	c.mu.Lock()
	families := c.expand(name)
	query := families
	if mode == MatchBest {
		class := font.NormalizeFamily(genericClass(font.NormalizeFamily(name)))
		query = append(slices.Clone(families), c.aliases[class]...)
	}
	c.fm.SetQuery(fontscan.Query{
		Families: query,
		Aspect:   font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal, Stretch: font.StretchNormal},
	})
	face := c.fm.ResolveFace(sampleRune)
	var family string
	if face != nil {
		family, _ = c.fm.FontMetadata(face.Font)
	}
	display, ok := c.display[family]
	c.mu.Unlock()

	if face == nil {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	if mode == MatchExact && !slices.Contains(families, family) {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	if !ok {
		display = family
	}

	vcanvas.Logger().Debug("typeset: font resolved", "query", name, "family", display, "size", size)
	return newFont(face.Font, display, size, c.outlines), nil
}

// expand returns the normalized families queried for name. Callers hold mu.
func (c *Collection) expand(name string) []string {
	key := font.NormalizeFamily(name)
	if key == "" {
		key = defaultFamilyID
	}
	if families, ok := c.aliases[key]; ok {
		return slices.Clone(families)
	}
	return []string{key}
}

// printfLogger forwards font scanning messages to the vcanvas logger.
type printfLogger struct{}

func (printfLogger) Printf(format string, args ...any) {
	vcanvas.Logger().Debug(fmt.Sprintf(format, args...), "component", "fontscan")
}
