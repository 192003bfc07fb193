package gstate

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/vcanvas/internal/clip"
	vimage "github.com/gogpu/vcanvas/internal/image"
	"github.com/gogpu/vcanvas/internal/path"
	"github.com/gogpu/vcanvas/internal/raster"
	"github.com/gogpu/vcanvas/internal/stroke"
	"golang.org/x/image/math/f64"
)

// Rect is an origin and a size in user space.
type Rect struct {
	X, Y, W, H float64
}

// InterpolationQuality selects image resampling.
type InterpolationQuality int

const (
	// InterpolationDefault resamples bilinearly.
	InterpolationDefault InterpolationQuality = iota
	// InterpolationNone picks the nearest pixel.
	InterpolationNone
	// InterpolationHigh resamples bilinearly.
	InterpolationHigh
)

type gstate struct {
	ctm        f64.Aff3
	clip       *clip.Mask
	fill       color.RGBA
	stroke     color.RGBA
	lineWidth  float64
	lineCap    stroke.Cap
	lineJoin   stroke.Join
	miterLimit float64
	dash       []float64
	dashPhase  float64
	interp     InterpolationQuality
}

// Context draws into an RGBA image.
type Context struct {
	dst   *image.RGBA
	width int
	ht    int

	devToPix f64.Aff3
	st       gstate
	saved    []gstate

	path *path.Flattener
	ras  *raster.Rasterizer
	full *image.Alpha
}

// NewContext creates a context covering dst. Device space is y-up: device
// point (x, y) lies on pixel row height-y.
func NewContext(dst *image.RGBA) *Context {
	b := dst.Bounds()
	c := &Context{
		dst:      dst,
		width:    b.Dx(),
		ht:       b.Dy(),
		devToPix: f64.Aff3{1, 0, float64(b.Min.X), 0, -1, float64(b.Min.Y + b.Dy())},
		st: gstate{
			ctm:        path.Identity,
			fill:       color.RGBA{A: 255},
			stroke:     color.RGBA{A: 255},
			lineWidth:  1,
			miterLimit: 10,
		},
		ras: raster.NewRasterizer(b.Max.X, b.Max.Y),
	}
	c.BeginPath()
	return c
}

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.ht }

// SaveGState pushes a copy of the graphics state.
func (c *Context) SaveGState() {
	c.saved = append(c.saved, c.st)
}

// RestoreGState pops the graphics state saved last.
func (c *Context) RestoreGState() error {
	n := len(c.saved)
	if n == 0 {
		return ErrUnbalancedRestore
	}
	c.st = c.saved[n-1]
	c.saved = c.saved[:n-1]
	return nil
}

// GStateDepth returns the number of saved states.
func (c *Context) GStateDepth() int { return len(c.saved) }

// ConcatCTM sets CTM = CTM * m, so m applies first.
func (c *Context) ConcatCTM(m f64.Aff3) {
	c.st.ctm = path.Mul(c.st.ctm, m)
}

// CTM returns the user-to-device transform.
func (c *Context) CTM() f64.Aff3 { return c.st.ctm }

// userToPixel maps user space to pixel coordinates, row 0 at the top.
func (c *Context) userToPixel() f64.Aff3 {
	return path.Mul(c.devToPix, c.st.ctm)
}

// SetRGBFillColor sets the fill color from straight components in [0, 1].
func (c *Context) SetRGBFillColor(r, g, b, a float64) {
	c.st.fill = premul(r, g, b, a)
}

// SetRGBStrokeColor sets the stroke color from straight components in [0, 1].
func (c *Context) SetRGBStrokeColor(r, g, b, a float64) {
	c.st.stroke = premul(r, g, b, a)
}

// SetLineWidth sets the stroke width in user units.
func (c *Context) SetLineWidth(w float64) { c.st.lineWidth = w }

// SetLineCap sets the cap of open subpaths.
func (c *Context) SetLineCap(lc stroke.Cap) { c.st.lineCap = lc }

// SetLineJoin sets the join between segments.
func (c *Context) SetLineJoin(lj stroke.Join) { c.st.lineJoin = lj }

// SetMiterLimit sets the miter length limit, relative to the line width.
func (c *Context) SetMiterLimit(limit float64) { c.st.miterLimit = limit }

// SetLineDash sets the dash pattern; empty lengths give a solid line.
func (c *Context) SetLineDash(phase float64, lengths []float64) {
	c.st.dash = append([]float64(nil), lengths...)
	c.st.dashPhase = phase
}

// SetInterpolationQuality sets image resampling for DrawImage.
func (c *Context) SetInterpolationQuality(q InterpolationQuality) { c.st.interp = q }

// Clear sets every pixel to the straight color (r, g, b, a), ignoring the
// clip and the CTM.
func (c *Context) Clear(r, g, b, a float64) {
	vimage.Fill(c.dst, premul(r, g, b, a))
}

func premul(r, g, b, a float64) color.RGBA {
	a = unit(a)
	return color.RGBA{
		R: uint8(math.Round(unit(r) * a * 255)),
		G: uint8(math.Round(unit(g) * a * 255)),
		B: uint8(math.Round(unit(b) * a * 255)),
		A: uint8(math.Round(a * 255)),
	}
}

func unit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return min(v, 1)
}
