package skpaint

import "fmt"

// Color4f is a straight-alpha color with float32 components in [0, 1].
type Color4f struct {
	R, G, B, A float32
}

// Style selects whether a paint fills or strokes geometry.
type Style uint8

const (
	// StyleFill fills the interior of shapes.
	StyleFill Style = iota
	// StyleStroke strokes the outline of shapes.
	StyleStroke
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleFill:
		return "Fill"
	case StyleStroke:
		return "Stroke"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Cap is the shape of stroke ends.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// String returns the cap name.
func (c Cap) String() string {
	switch c {
	case CapButt:
		return "Butt"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return fmt.Sprintf("Cap(%d)", int(c))
	}
}

// Join is the shape of stroke corners.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// String returns the join name.
func (j Join) String() string {
	switch j {
	case JoinMiter:
		return "Miter"
	case JoinRound:
		return "Round"
	case JoinBevel:
		return "Bevel"
	default:
		return fmt.Sprintf("Join(%d)", int(j))
	}
}

// FilterQuality selects image sampling.
type FilterQuality uint8

const (
	// FilterNone samples the nearest pixel.
	FilterNone FilterQuality = iota
	// FilterLow samples bilinearly.
	FilterLow
	// FilterMedium samples bilinearly.
	FilterMedium
	// FilterHigh samples bilinearly.
	FilterHigh
)

// String returns the quality name.
func (q FilterQuality) String() string {
	switch q {
	case FilterNone:
		return "None"
	case FilterLow:
		return "Low"
	case FilterMedium:
		return "Medium"
	case FilterHigh:
		return "High"
	default:
		return fmt.Sprintf("FilterQuality(%d)", int(q))
	}
}

// DashEffect breaks strokes into dashes.
type DashEffect struct {
	// Intervals alternates on and off lengths; its length must be even.
	Intervals []float32
	// Phase offsets the start of the pattern.
	Phase float32
}

// BlurMaskFilter blurs coverage before the paint is applied.
type BlurMaskFilter struct {
	// Sigma is the standard deviation of the Gaussian in local units.
	Sigma float32
}

// Paint holds the settings of a draw call.
type Paint struct {
	Color  Color4f
	Shader Shader
	Style  Style

	StrokeWidth float32
	Cap         Cap
	Join        Join
	Miter       float32
	Dash        *DashEffect

	MaskFilter *BlurMaskFilter
}

// NewPaint returns an opaque black fill paint with a stroke width of 1 and
// a miter limit of 4.
func NewPaint() *Paint {
	return &Paint{
		Color:       Color4f{A: 1},
		StrokeWidth: 1,
		Miter:       4,
	}
}

// SetColor sets the color and removes any shader.
func (p *Paint) SetColor(c Color4f) {
	p.Color = c
	p.Shader = nil
}
