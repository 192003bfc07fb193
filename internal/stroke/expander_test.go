package stroke

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/vcanvas/internal/path"
	"github.com/gogpu/vcanvas/internal/raster"
	"golang.org/x/image/math/f64"
)

func render(t *testing.T, style Style, sp path.Subpath) *image.Alpha {
	t.Helper()
	polys := NewExpander(style, 0.05).Expand([]path.Subpath{sp})
	return raster.Fill(20, 20, polys, raster.FillRuleNonZero)
}

func line(closed bool, pts ...f64.Vec2) path.Subpath {
	return path.Subpath{Points: pts, Closed: closed}
}

func TestButtAndSquareCaps(t *testing.T) {
	sp := line(false, f64.Vec2{4, 10}, f64.Vec2{16, 10})
	tests := []struct {
		cap          Cap
		inside, edge int // x of a pixel just inside the end, and just beyond
		wantEdge     uint8
	}{
		{CapButt, 15, 16, 0},
		{CapSquare, 15, 16, 255},
	}
	for _, tt := range tests {
		m := render(t, Style{Width: 4, Cap: tt.cap}, sp)
		if got := m.AlphaAt(tt.inside, 9).A; got != 255 {
			t.Errorf("cap %d: inside = %d, want 255", tt.cap, got)
		}
		if got := m.AlphaAt(tt.edge, 9).A; got != tt.wantEdge {
			t.Errorf("cap %d: beyond end = %d, want %d", tt.cap, got, tt.wantEdge)
		}
		if got := m.AlphaAt(10, 12).A; got != 0 {
			t.Errorf("cap %d: outside width = %d, want 0", tt.cap, got)
		}
	}
}

func TestJoins(t *testing.T) {
	// right angle turning at (15, 5)
	sp := line(false, f64.Vec2{3, 5}, f64.Vec2{15, 5}, f64.Vec2{15, 17})
	corner := image.Pt(15, 3) // outer corner pixel, half covered by a bevel

	miter := render(t, Style{Width: 4, Join: JoinMiter, MiterLimit: 10}, sp)
	bevel := render(t, Style{Width: 4, Join: JoinBevel, MiterLimit: 10}, sp)
	limited := render(t, Style{Width: 4, Join: JoinMiter, MiterLimit: 1.2}, sp)

	if got := miter.AlphaAt(corner.X, corner.Y).A; got != 255 {
		t.Errorf("miter corner = %d, want 255", got)
	}
	if got := bevel.AlphaAt(corner.X, corner.Y).A; got < 127 || got > 129 {
		t.Errorf("bevel corner = %d, want about 128", got)
	}
	// sqrt(2) exceeds the limit, so the miter falls back to a bevel
	if got, want := limited.AlphaAt(corner.X, corner.Y).A, bevel.AlphaAt(corner.X, corner.Y).A; got != want {
		t.Errorf("limited miter corner = %d, want bevel %d", got, want)
	}
	// no seams along the stroke
	for x := 4; x < 14; x++ {
		if got := miter.AlphaAt(x, 4).A; got != 255 {
			t.Fatalf("seam at x=%d: %d", x, got)
		}
	}
}

func TestClosedSquareHasNoCapsAndFullCorners(t *testing.T) {
	sq := line(true, f64.Vec2{5, 5}, f64.Vec2{15, 5}, f64.Vec2{15, 15}, f64.Vec2{5, 15})
	m := render(t, Style{Width: 2, Cap: CapSquare, Join: JoinMiter, MiterLimit: 10}, sq)
	for _, p := range []image.Point{{4, 4}, {15, 4}, {15, 15}, {4, 15}} {
		if got := m.AlphaAt(p.X, p.Y).A; got != 255 {
			t.Errorf("corner %v = %d, want 255", p, got)
		}
	}
	if got := m.AlphaAt(10, 10).A; got != 0 {
		t.Errorf("interior = %d, want 0", got)
	}
}

func TestDashSplitsPolyline(t *testing.T) {
	pts := []f64.Vec2{{0, 0}, {11, 0}}
	got, ok := Dash(pts, false, []float64{3, 2}, 0, 0.1)
	if !ok {
		t.Fatal("Dash refused a plain pattern")
	}
	want := [][2]float64{{0, 3}, {5, 8}, {10, 11}}
	if len(got) != len(want) {
		t.Fatalf("got %d dashes, want %d", len(got), len(want))
	}
	for i, w := range want {
		piece := got[i]
		if piece[0][0] != w[0] || piece[len(piece)-1][0] != w[1] {
			t.Errorf("dash %d = %v, want %v", i, piece, w)
		}
	}
}

func TestDashOffset(t *testing.T) {
	pts := []f64.Vec2{{0, 0}, {10, 0}}
	got, _ := Dash(pts, false, []float64{3, 2}, 4, 0.1)
	// offset 4 starts in the gap with 1 unit left
	if len(got) == 0 || got[0][0][0] != 1 {
		t.Fatalf("first dash = %v, want start at 1", got)
	}
}

func TestDashFallsBackToSolid(t *testing.T) {
	pts := []f64.Vec2{{0, 0}, {10, 0}}
	tests := []struct {
		name    string
		pts     []f64.Vec2
		pattern []float64
		ok      bool
	}{
		{"plain", pts, []float64{1, 1}, true},
		{"zero-length dashes", pts, []float64{0, 2}, true},
		{"period below tolerance", pts, []float64{1e-300, 1e-300}, false},
		{"period equal to tolerance", pts, []float64{0.05, 0.05}, false},
		{"all zero", pts, []float64{0, 0}, false},
		{"too many dashes", []f64.Vec2{{0, 0}, {1e9, 0}}, []float64{1, 1}, false},
		{"single point", pts[:1], []float64{1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Dash(tt.pts, false, tt.pattern, 0, 0.1); ok != tt.ok {
				t.Errorf("Dash ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

func TestDashOddOffsets(t *testing.T) {
	pts := []f64.Vec2{{0, 0}, {10, 0}}
	for _, off := range []float64{-7, math.NaN(), math.Inf(1), 1e300} {
		got, ok := Dash(pts, false, []float64{3, 2}, off, 0.1)
		if !ok || len(got) == 0 {
			t.Errorf("offset %v: %d dashes, ok %v", off, len(got), ok)
		}
	}
}

func TestTinyDashStrokesSolid(t *testing.T) {
	square := line(true, f64.Vec2{1, 1}, f64.Vec2{8, 1}, f64.Vec2{8, 8}, f64.Vec2{1, 8})
	solid := NewExpander(Style{Width: 1}, 0.1).Expand([]path.Subpath{square})
	dashed := NewExpander(Style{Width: 1, Dash: []float64{1e-300, 1e-300}}, 0.1).Expand([]path.Subpath{square})
	if len(dashed) != len(solid) {
		t.Fatalf("got %d polygons, want %d", len(dashed), len(solid))
	}
	for i := range solid {
		if len(dashed[i].Points) != len(solid[i].Points) || dashed[i].Closed != solid[i].Closed {
			t.Errorf("polygon %d differs from the solid stroke", i)
		}
	}
}

func TestRoundCapDot(t *testing.T) {
	polys := NewExpander(Style{Width: 6, Cap: CapRound}, 0.01).Expand([]path.Subpath{line(false, f64.Vec2{10, 10})})
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	for _, p := range polys[0].Points {
		if r := math.Hypot(p[0]-10, p[1]-10); math.Abs(r-3) > 1e-9 {
			t.Errorf("point %v off radius: %v", p, r)
		}
	}
	if polys := NewExpander(Style{Width: 6}, 0.01).Expand([]path.Subpath{line(false, f64.Vec2{10, 10})}); len(polys) != 0 {
		t.Error("butt dot should draw nothing")
	}
}

func TestReach(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  float64
	}{
		{"zero width", Style{Join: JoinMiter, MiterLimit: 10}, 0},
		{"round", Style{Width: 4, Cap: CapRound, Join: JoinRound}, 2},
		{"bevel square cap", Style{Width: 4, Cap: CapSquare, Join: JoinBevel}, 2 * math.Sqrt2},
		{"miter", Style{Width: 4, Join: JoinMiter, MiterLimit: 10}, 20},
		{"miter below square cap", Style{Width: 4, Cap: CapSquare, Join: JoinMiter, MiterLimit: 1}, 2 * math.Sqrt2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Reach(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Reach() = %v, want %v", got, tt.want)
			}
		})
	}
}
