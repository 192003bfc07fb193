package gstate

import (
	"github.com/gogpu/vcanvas/internal/path"
	"github.com/gogpu/vcanvas/internal/stroke"
	"golang.org/x/image/math/f64"
)

// BeginPath discards the current path. Curves added afterwards are
// flattened to a tolerance of a tenth of a pixel under the current CTM.
// Curve pieces that cannot reach the surface, even when stroked with the
// current solid stroke parameters, are kept as chords. A path that will be
// stroked should be begun after its stroke parameters are set.
func (c *Context) BeginPath() {
	s := path.MaxScale(c.st.ctm)
	tol := path.Tolerance
	if s > 0 {
		tol /= s
	}
	c.path = path.New(tol)
	if len(c.st.dash) > 0 {
		return
	}
	m := 1 + c.strokeStyle().Reach()*s
	b := c.dst.Bounds()
	c.path.SetView(c.userToPixel(),
		f64.Vec2{float64(b.Min.X) - m, float64(b.Min.Y) - m},
		f64.Vec2{float64(b.Max.X) + m, float64(b.Max.Y) + m})
}

// MoveTo starts a subpath at (x, y) in user space.
func (c *Context) MoveTo(x, y float64) { c.path.MoveTo(f64.Vec2{x, y}) }

// AddLineTo appends a straight segment.
func (c *Context) AddLineTo(x, y float64) { c.path.LineTo(f64.Vec2{x, y}) }

// AddQuadCurveTo appends a quadratic Bézier with control point (cx, cy).
func (c *Context) AddQuadCurveTo(cx, cy, x, y float64) {
	c.path.QuadTo(f64.Vec2{cx, cy}, f64.Vec2{x, y})
}

// AddCurveTo appends a cubic Bézier.
func (c *Context) AddCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(f64.Vec2{c1x, c1y}, f64.Vec2{c2x, c2y}, f64.Vec2{x, y})
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.Close() }

// AddRect appends r as a closed subpath: origin, +x edge, far corner, +y edge.
func (c *Context) AddRect(r Rect) {
	c.MoveTo(r.X, r.Y)
	c.AddLineTo(r.X+r.W, r.Y)
	c.AddLineTo(r.X+r.W, r.Y+r.H)
	c.AddLineTo(r.X, r.Y+r.H)
	c.ClosePath()
}

// IsPathEmpty reports whether the current path has no subpaths.
func (c *Context) IsPathEmpty() bool { return len(c.path.Subpaths()) == 0 }

// PathBoundingBox returns the bounds of the flattened current path in user
// space, or the zero Rect for an empty path.
func (c *Context) PathBoundingBox() Rect {
	lo, hi, ok := path.Bounds(c.path.Subpaths())
	if !ok {
		return Rect{}
	}
	return Rect{X: lo[0], Y: lo[1], W: hi[0] - lo[0], H: hi[1] - lo[1]}
}

// ReplacePathWithStrokedPath replaces the current path with the outline the
// current stroke parameters would paint. The result is meant to be filled
// or clipped with the non-zero rule.
func (c *Context) ReplacePathWithStrokedPath() {
	polys := c.strokeOutline()
	c.BeginPath()
	for _, sp := range polys {
		if len(sp.Points) == 0 {
			continue
		}
		c.path.MoveTo(sp.Points[0])
		for _, p := range sp.Points[1:] {
			c.path.LineTo(p)
		}
		c.path.Close()
	}
}

// strokeOutline expands the current path in user space.
func (c *Context) strokeOutline() []path.Subpath {
	tol := path.Tolerance
	if s := path.MaxScale(c.st.ctm); s > 0 {
		tol /= s
	}
	return stroke.NewExpander(c.strokeStyle(), tol).Expand(c.path.Subpaths())
}

func (c *Context) strokeStyle() stroke.Style {
	return stroke.Style{
		Width:      c.st.lineWidth,
		Cap:        c.st.lineCap,
		Join:       c.st.lineJoin,
		MiterLimit: c.st.miterLimit,
		Dash:       c.st.dash,
		DashOffset: c.st.dashPhase,
	}
}

// pixelSubpaths returns a copy of subpaths mapped into pixel coordinates.
func (c *Context) pixelSubpaths(subpaths []path.Subpath) []path.Subpath {
	out := path.Clone(subpaths)
	path.Transform(out, c.userToPixel())
	return out
}
