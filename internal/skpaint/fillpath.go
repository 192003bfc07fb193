package skpaint

import "github.com/gogpu/vcanvas/internal/path"

// FillPath returns the region p paints when applied to src: src itself
// for a fill paint, its stroke outline for a stroke paint. resScale is the
// device scale the result will be drawn at; curves are flattened finely
// enough for it. The result uses the winding fill type unless it is src.
func FillPath(src *Path, p *Paint, resScale float32) *Path {
	if p.Style != StyleStroke {
		return src
	}
	tol := path.Tolerance
	if resScale > 0 {
		tol /= float64(resScale)
	}
	out := &Path{}
	for _, sp := range strokeOutline(src.flatten(path.New(tol)), p, tol) {
		if len(sp.Points) == 0 {
			continue
		}
		out.MoveTo(float32(sp.Points[0][0]), float32(sp.Points[0][1]))
		for _, q := range sp.Points[1:] {
			out.LineTo(float32(q[0]), float32(q[1]))
		}
		out.Close()
	}
	return out
}
