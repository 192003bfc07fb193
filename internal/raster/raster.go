// Package raster converts polygons into anti-aliased coverage masks.
//
// Coverage is computed exactly by signed-area accumulation: every edge adds
// its signed area contribution to the cells it crosses, and a running sum
// along each row yields the winding coverage of every pixel. Polygons are in
// pixel coordinates with row 0 at the top.
package raster

import (
	"image"
	"math"

	"github.com/gogpu/vcanvas/internal/path"
	"golang.org/x/image/math/f64"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Rasterizer accumulates edges for one mask.
type Rasterizer struct {
	width, height int
	stride        int
	acc           []float64

	// rows touched, for the mask bounds
	minY, maxY int
}

// NewRasterizer creates a rasterizer for a width x height mask.
func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{width: width, height: height, stride: width + 2}
	r.acc = make([]float64, r.stride*height)
	r.Reset()
	return r
}

// Reset clears accumulated edges.
func (r *Rasterizer) Reset() {
	clear(r.acc)
	r.minY, r.maxY = r.height, -1
}

// AddSubpaths adds every subpath as an implicitly closed polygon.
func (r *Rasterizer) AddSubpaths(subpaths []path.Subpath) {
	for _, sp := range subpaths {
		r.AddPolygon(sp.Points)
	}
}

// AddPolygon adds the closed polygon through pts.
func (r *Rasterizer) AddPolygon(pts []f64.Vec2) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		r.Line(pts[i-1], pts[i])
	}
	r.Line(pts[len(pts)-1], pts[0])
}

// Line adds one directed edge.
func (r *Rasterizer) Line(p0, p1 f64.Vec2) {
	if !finite(p0) || !finite(p1) || p0[1] == p1[1] {
		return
	}
	dir := 1.0
	if p0[1] > p1[1] {
		p0, p1 = p1, p0
		dir = -1
	}
	h := float64(r.height)
	if p1[1] <= 0 || p0[1] >= h {
		return
	}
	// clip vertically
	if p0[1] < 0 {
		p0 = f64.Vec2{xAt(p0, p1, 0), 0}
	}
	if p1[1] > h {
		p1 = f64.Vec2{xAt(p0, p1, h), h}
	}
	// split at the horizontal bounds; parts outside are clamped onto them
	w := float64(r.width)
	ys := []float64{p0[1]}
	for _, bx := range [2]float64{0, w} {
		if (p0[0] < bx) != (p1[0] < bx) && p0[0] != p1[0] {
			t := (bx - p0[0]) / (p1[0] - p0[0])
			if y := p0[1] + t*(p1[1]-p0[1]); y > p0[1] && y < p1[1] {
				ys = append(ys, y)
			}
		}
	}
	ys = append(ys, p1[1])
	if len(ys) == 4 && ys[1] > ys[2] {
		ys[1], ys[2] = ys[2], ys[1]
	}
	for i := 1; i < len(ys); i++ {
		a := f64.Vec2{clampF(xAt(p0, p1, ys[i-1]), 0, w), ys[i-1]}
		b := f64.Vec2{clampF(xAt(p0, p1, ys[i]), 0, w), ys[i]}
		r.accumulate(a, b, dir)
	}
}

// accumulate adds the area contribution of a downward edge lying inside
// the mask horizontally.
func (r *Rasterizer) accumulate(p0, p1 f64.Vec2, dir float64) {
	if p0[1] == p1[1] {
		return
	}
	dxdy := (p1[0] - p0[0]) / (p1[1] - p0[1])
	w := float64(r.width)
	x := p0[0]
	y0 := int(p0[1])
	yEnd := min(r.height, int(math.Ceil(p1[1])))
	r.minY = min(r.minY, y0)
	r.maxY = max(r.maxY, yEnd-1)

	for y := y0; y < yEnd; y++ {
		row := r.acc[y*r.stride : (y+1)*r.stride]
		dy := math.Min(float64(y+1), p1[1]) - math.Max(float64(y), p0[1])
		xNext := clampF(x+dxdy*dy, 0, w)
		d := dy * dir
		x0, x1 := x, xNext
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		x0Floor := math.Floor(x0)
		x0i := int(x0Floor)
		x1Ceil := math.Ceil(x1)
		x1i := int(x1Ceil)

		if x1i <= x0i+1 {
			xmf := 0.5*(x+xNext) - x0Floor
			row[x0i] += d - d*xmf
			row[x0i+1] += d * xmf
		} else {
			s := 1 / (x1 - x0)
			x0f := x0 - x0Floor
			a0 := 0.5 * s * (1 - x0f) * (1 - x0f)
			x1f := x1 - x1Ceil + 1
			am := 0.5 * s * x1f * x1f
			row[x0i] += d * a0
			if x1i == x0i+2 {
				row[x0i+1] += d * (1 - a0 - am)
			} else {
				a1 := s * (1.5 - x0f)
				row[x0i+1] += d * (a1 - a0)
				for xi := x0i + 2; xi < x1i-1; xi++ {
					row[xi] += d * s
				}
				a2 := a1 + float64(x1i-x0i-3)*s
				row[x1i-1] += d * (1 - a2 - am)
			}
			row[x1i] += d * am
		}
		x = xNext
	}
}

// Mask resolves the accumulated edges into a coverage mask the size of the
// rasterizer.
func (r *Rasterizer) Mask(rule FillRule) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, r.width, r.height))
	for y := max(r.minY, 0); y <= r.maxY && y < r.height; y++ {
		row := r.acc[y*r.stride : (y+1)*r.stride]
		out := m.Pix[y*m.Stride : y*m.Stride+r.width]
		var sum float64
		for x := range out {
			sum += row[x]
			out[x] = coverage(sum, rule)
		}
	}
	return m
}

func coverage(sum float64, rule FillRule) uint8 {
	a := math.Abs(sum)
	if rule == FillRuleEvenOdd {
		a = math.Mod(a, 2)
		if a > 1 {
			a = 2 - a
		}
	} else if a > 1 {
		a = 1
	}
	return uint8(a*255 + 0.5)
}

// Fill is a convenience that rasterizes subpaths into a new mask.
func Fill(width, height int, subpaths []path.Subpath, rule FillRule) *image.Alpha {
	r := NewRasterizer(width, height)
	r.AddSubpaths(subpaths)
	return r.Mask(rule)
}

func xAt(p0, p1 f64.Vec2, y float64) float64 {
	if p1[1] == p0[1] {
		return p0[0]
	}
	return p0[0] + (y-p0[1])*(p1[0]-p0[0])/(p1[1]-p0[1])
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(p f64.Vec2) bool {
	return !math.IsNaN(p[0]) && !math.IsNaN(p[1]) && !math.IsInf(p[0], 0) && !math.IsInf(p[1], 0)
}
