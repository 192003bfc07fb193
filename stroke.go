package vcanvas

// LineCap is the shape at the open ends of a stroke.
type LineCap uint8

const (
	// CapButt ends the stroke flush with the endpoint.
	CapButt LineCap = iota
	// CapRound ends the stroke with a semicircle.
	CapRound
	// CapSquare extends the stroke by half its width.
	CapSquare
)

// LineJoin is the shape at the corners of a stroke.
type LineJoin uint8

const (
	// JoinMiter extends the outer edges until they meet, within the miter limit.
	JoinMiter LineJoin = iota
	// JoinRound joins with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

// Stroke style defaults, applied wherever a StrokeStyle leaves a field unset.
const (
	DefaultLineCap    = CapButt
	DefaultLineJoin   = JoinMiter
	DefaultMiterLimit = 10.0
)

// StrokeStyle holds optional stroke attributes. A nil field means the
// backend-neutral default: butt caps, miter joins, no dash and a miter
// limit of 10. Defaults are resolved at the point of use and never stored.
type StrokeStyle struct {
	LineCap    *LineCap
	LineJoin   *LineJoin
	Dash       *Dash
	MiterLimit float64 // 0 means DefaultMiterLimit
}

// NewStrokeStyle returns an empty style.
func NewStrokeStyle() *StrokeStyle {
	return &StrokeStyle{}
}

// WithLineCap returns a copy of the style with the given cap.
func (s StrokeStyle) WithLineCap(c LineCap) *StrokeStyle {
	s.LineCap = &c
	return &s
}

// WithLineJoin returns a copy of the style with the given join.
func (s StrokeStyle) WithLineJoin(j LineJoin) *StrokeStyle {
	s.LineJoin = &j
	return &s
}

// WithDash returns a copy of the style with a dash pattern.
func (s StrokeStyle) WithDash(lengths []float64, offset float64) *StrokeStyle {
	s.Dash = NewDash(lengths...).WithOffset(offset)
	return &s
}

// WithMiterLimit returns a copy of the style with the given miter limit.
func (s StrokeStyle) WithMiterLimit(limit float64) *StrokeStyle {
	s.MiterLimit = limit
	return &s
}

// Cap returns the effective line cap.
func (s *StrokeStyle) Cap() LineCap {
	if s == nil || s.LineCap == nil {
		return DefaultLineCap
	}
	return *s.LineCap
}

// Join returns the effective line join.
func (s *StrokeStyle) Join() LineJoin {
	if s == nil || s.LineJoin == nil {
		return DefaultLineJoin
	}
	return *s.LineJoin
}

// Miter returns the effective miter limit.
func (s *StrokeStyle) Miter() float64 {
	if s == nil || s.MiterLimit <= 0 {
		return DefaultMiterLimit
	}
	return s.MiterLimit
}

// DashPattern returns the effective dash, nil for a solid line.
func (s *StrokeStyle) DashPattern() *Dash {
	if s == nil || !s.Dash.IsDashed() {
		return nil
	}
	return s.Dash
}
