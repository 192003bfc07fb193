package scene

// Document is a decoded drawing.
type Document struct {
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Scale      float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Background string  `yaml:"background,omitempty" toml:"background,omitempty"`
	Ops        []Op    `yaml:"ops" toml:"ops"`

	// dir resolves relative image paths; set by Load.
	dir string
}

// Op is one drawing operation. Which fields are read depends on Op.
//
//	fill, fill_even_odd  shape, brush
//	stroke               shape, brush, width, style
//	clip                 shape
//	save, restore
//	transform            matrix [a b c d e f]
//	text                 text, font, size, at, width, brush
//	image                image, dst, src, interp
//	blur                 rect, radius, brush
type Op struct {
	Op string `yaml:"op" toml:"op"`

	Shape *Shape       `yaml:"shape,omitempty" toml:"shape,omitempty"`
	Brush *Brush       `yaml:"brush,omitempty" toml:"brush,omitempty"`
	Width float64      `yaml:"width,omitempty" toml:"width,omitempty"`
	Style *StrokeStyle `yaml:"style,omitempty" toml:"style,omitempty"`

	Matrix []float64 `yaml:"matrix,omitempty" toml:"matrix,omitempty"`

	Text string    `yaml:"text,omitempty" toml:"text,omitempty"`
	Font string    `yaml:"font,omitempty" toml:"font,omitempty"`
	Size float64   `yaml:"size,omitempty" toml:"size,omitempty"`
	At   []float64 `yaml:"at,omitempty" toml:"at,omitempty"`

	Image  string    `yaml:"image,omitempty" toml:"image,omitempty"`
	Src    []float64 `yaml:"src,omitempty" toml:"src,omitempty"`
	Dst    []float64 `yaml:"dst,omitempty" toml:"dst,omitempty"`
	Interp string    `yaml:"interp,omitempty" toml:"interp,omitempty"`

	Rect   []float64 `yaml:"rect,omitempty" toml:"rect,omitempty"`
	Radius float64   `yaml:"radius,omitempty" toml:"radius,omitempty"`
}

// Shape describes geometry. Rects are [x0 y0 x1 y1].
//
//	rect          rect
//	rounded_rect  rect, radius
//	circle        center, radius
//	ellipse       rect
//	line          from, to
//	path          data (M L Q C Z commands, absolute or relative)
type Shape struct {
	Type   string    `yaml:"type" toml:"type"`
	Rect   []float64 `yaml:"rect,omitempty" toml:"rect,omitempty"`
	Center []float64 `yaml:"center,omitempty" toml:"center,omitempty"`
	Radius float64   `yaml:"radius,omitempty" toml:"radius,omitempty"`
	From   []float64 `yaml:"from,omitempty" toml:"from,omitempty"`
	To     []float64 `yaml:"to,omitempty" toml:"to,omitempty"`
	Data   string    `yaml:"data,omitempty" toml:"data,omitempty"`
}

// StrokeStyle holds optional stroke attributes. Empty fields keep the
// defaults: butt caps, miter joins, a miter limit of 10 and no dash.
type StrokeStyle struct {
	Cap        string    `yaml:"cap,omitempty" toml:"cap,omitempty"`
	Join       string    `yaml:"join,omitempty" toml:"join,omitempty"`
	MiterLimit float64   `yaml:"miter_limit,omitempty" toml:"miter_limit,omitempty"`
	Dash       []float64 `yaml:"dash,omitempty" toml:"dash,omitempty"`
	DashOffset float64   `yaml:"dash_offset,omitempty" toml:"dash_offset,omitempty"`
}

// Brush is a color or a gradient. In documents a bare string is shorthand
// for {color: ...}.
type Brush struct {
	Color  string  `yaml:"color,omitempty" toml:"color,omitempty"`
	Linear *Linear `yaml:"linear,omitempty" toml:"linear,omitempty"`
	Radial *Radial `yaml:"radial,omitempty" toml:"radial,omitempty"`
}

// Linear is a linear gradient between two points in user space.
type Linear struct {
	Start []float64 `yaml:"start" toml:"start"`
	End   []float64 `yaml:"end" toml:"end"`
	Stops []Stop    `yaml:"stops" toml:"stops"`
}

// Radial is a radial gradient. Offset moves the focal point away from
// Center.
type Radial struct {
	Center []float64 `yaml:"center" toml:"center"`
	Offset []float64 `yaml:"offset,omitempty" toml:"offset,omitempty"`
	Radius float64   `yaml:"radius" toml:"radius"`
	Stops  []Stop    `yaml:"stops" toml:"stops"`
}

// Stop is a gradient color stop.
type Stop struct {
	Pos   float64 `yaml:"pos" toml:"pos"`
	Color string  `yaml:"color" toml:"color"`
}
