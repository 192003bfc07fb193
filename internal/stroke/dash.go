package stroke

import (
	"math"

	"golang.org/x/image/math/f64"
)

// maxDashSteps bounds the pattern entries walked along one polyline.
const maxDashSteps = 1 << 16

// Dash splits a polyline into the open polylines of its dashes. pattern
// holds alternating dash and gap lengths and must have even length; offset
// is the distance into the pattern at the first point. Dash reports false,
// and the polyline should be stroked solid, when the pattern period is not
// longer than tolerance or would cut pts into more than maxDashSteps pieces.
func Dash(pts []f64.Vec2, closed bool, pattern []float64, offset, tolerance float64) ([][]f64.Vec2, bool) {
	var total float64
	for _, l := range pattern {
		total += l
	}
	if !(total > tolerance) || math.IsInf(total, 0) || len(pts) < 2 {
		return nil, false
	}
	if closed {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	var length float64
	for i := 1; i < len(pts); i++ {
		length += math.Hypot(pts[i][0]-pts[i-1][0], pts[i][1]-pts[i-1][1])
	}
	if !(length/total*float64(len(pattern)) <= maxDashSteps) {
		return nil, false
	}

	offset = math.Mod(offset, total)
	switch {
	case math.IsNaN(offset):
		offset = 0
	case offset < 0:
		offset += total
	}
	idx := 0
	for n := 0; n < len(pattern) && offset >= pattern[idx]; n++ {
		offset -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := max(pattern[idx]-offset, 0)
	on := idx%2 == 0

	var (
		out [][]f64.Vec2
		cur []f64.Vec2
	)
	if on {
		cur = []f64.Vec2{pts[0]}
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := math.Hypot(b[0]-a[0], b[1]-a[1])
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			t := pos / segLen
			p := f64.Vec2{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
			if on {
				out = append(out, append(cur, p))
				cur = nil
			} else {
				cur = []f64.Vec2{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out, true
}
