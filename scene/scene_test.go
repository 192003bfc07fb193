package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gogpu/vcanvas"
	"github.com/gogpu/vcanvas/device"
)

const yamlDoc = `
width: 20
height: 10
background: white
ops:
  - op: fill
    shape: {type: rect, rect: [0, 0, 10, 10]}
    brush: "#ff0000"
  - op: save
  - op: transform
    matrix: [1, 0, 0, 1, 10, 0]
  - op: fill
    shape: {type: rect, rect: [0, 0, 10, 10]}
    brush:
      linear:
        start: [0, 0]
        end: [0, 10]
        stops:
          - {pos: 0, color: blue}
          - {pos: 1, color: blue}
  - op: restore
  - op: stroke
    shape: {type: line, from: [0, 5], to: [20, 5]}
    width: 2
    style: {cap: round, dash: [4, 2]}
`

const tomlDoc = `
width = 20
height = 10
background = "white"

[[ops]]
op = "fill"
shape = { type = "rect", rect = [0, 0, 10, 10] }
brush = "#ff0000"

[[ops]]
op = "save"

[[ops]]
op = "transform"
matrix = [1, 0, 0, 1, 10, 0]

[[ops]]
op = "fill"
shape = { type = "rect", rect = [0, 0, 10, 10] }
[ops.brush.linear]
start = [0, 0]
end = [0, 10]
stops = [{ pos = 0, color = "blue" }, { pos = 1, color = "blue" }]

[[ops]]
op = "restore"

[[ops]]
op = "stroke"
shape = { type = "line", from = [0, 5], to = [20, 5] }
width = 2
style = { cap = "round", dash = [4, 2] }
`

func TestDecodeFormatsAgree(t *testing.T) {
	y, err := Decode([]byte(yamlDoc), YAML)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	tm, err := Decode([]byte(tomlDoc), TOML)
	if err != nil {
		t.Fatalf("toml: %v", err)
	}
	if !reflect.DeepEqual(y, tm) {
		t.Errorf("documents differ:\nyaml: %+v\ntoml: %+v", y, tm)
	}
	if y.Scale != 1 {
		t.Errorf("Scale = %v, want default 1", y.Scale)
	}
	if got := y.Ops[0].Brush.Color; got != "#ff0000" {
		t.Errorf("shorthand brush color = %q", got)
	}
	if y.Ops[3].Brush.Linear == nil || len(y.Ops[3].Brush.Linear.Stops) != 2 {
		t.Errorf("gradient brush = %+v", y.Ops[3].Brush)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"no size", "ops: []", YAML},
		{"bad yaml", "width: [", YAML},
		{"bad toml", "width = ", TOML},
		{"unknown format", "width: 1", Format(9)},
		{"bad brush", "width = 1\nheight = 1\n[[ops]]\nop = \"fill\"\nbrush = 3", TOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data), tt.format); err == nil {
				t.Error("Decode() succeeded")
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.yaml", YAML, true},
		{"dir/b.YML", YAML, true},
		{"c.toml", TOML, true},
		{"d.json", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if (err == nil) != tt.ok || got != tt.want {
				t.Errorf("FormatOf() = %v, %v", got, err)
			}
			if !tt.ok && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("error %v is not ErrUnknownFormat", err)
			}
		})
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name string
		data string
		want vcanvas.BezPath
	}{
		{"empty", "", nil},
		{"triangle", "M 0 0 L 10 0 L 5 8 Z", vcanvas.BezPath{
			vcanvas.MoveTo{P: vcanvas.Pt(0, 0)},
			vcanvas.LineTo{P: vcanvas.Pt(10, 0)},
			vcanvas.LineTo{P: vcanvas.Pt(5, 8)},
			vcanvas.ClosePath{},
		}},
		{"implicit lineto", "M1,2 3,4", vcanvas.BezPath{
			vcanvas.MoveTo{P: vcanvas.Pt(1, 2)},
			vcanvas.LineTo{P: vcanvas.Pt(3, 4)},
		}},
		{"relative", "m 1 1 l 2 0 h 1 v -1e0 z", vcanvas.BezPath{
			vcanvas.MoveTo{P: vcanvas.Pt(1, 1)},
			vcanvas.LineTo{P: vcanvas.Pt(3, 1)},
			vcanvas.LineTo{P: vcanvas.Pt(4, 1)},
			vcanvas.LineTo{P: vcanvas.Pt(4, 0)},
			vcanvas.ClosePath{},
		}},
		{"curves", "M0 0Q1 2 3 4C5 6 7 8 9 10", vcanvas.BezPath{
			vcanvas.MoveTo{P: vcanvas.Pt(0, 0)},
			vcanvas.QuadTo{P1: vcanvas.Pt(1, 2), P2: vcanvas.Pt(3, 4)},
			vcanvas.CurveTo{P1: vcanvas.Pt(5, 6), P2: vcanvas.Pt(7, 8), P3: vcanvas.Pt(9, 10)},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.data)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, data := range []string{"10 10", "M 1", "L 1 1", "M 0 0 Z 4 4", "M 0 0 L x 1"} {
		t.Run(data, func(t *testing.T) {
			if _, err := ParsePath(data); !errors.Is(err, ErrPathData) {
				t.Errorf("ParsePath(%q) = %v", data, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want vcanvas.Color
		ok   bool
	}{
		{"Red", vcanvas.Red, true},
		{" #00ff00 ", vcanvas.Lime, true},
		{"#0000ff80", vcanvas.RGBA8(0, 0, 255, 0x80), true},
		{"chartreuse", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err == nil) != tt.ok || got != tt.want {
				t.Errorf("ParseColor() = %v, %v", got, err)
			}
		})
	}
}

func newDevice(t *testing.T) *device.Device {
	t.Helper()
	dev, err := device.New()
	if err != nil {
		t.Fatal(err)
	}
	return dev
}

func TestRender(t *testing.T) {
	doc, err := Decode([]byte(yamlDoc), YAML)
	if err != nil {
		t.Fatal(err)
	}
	bt, err := doc.Render(newDevice(t))
	if err != nil {
		t.Fatal(err)
	}
	pix, err := bt.IntoRawPixels(vcanvas.RGBAPremul)
	if err != nil {
		t.Fatal(err)
	}
	at := func(x, y int) [4]byte { return [4]byte(pix[(y*20+x)*4:]) }
	if got := at(2, 1); got != [4]byte{255, 0, 0, 255} {
		t.Errorf("left half = %v, want red", got)
	}
	if got := at(17, 1); got != [4]byte{0, 0, 255, 255} {
		t.Errorf("right half = %v, want blue", got)
	}
	if got := at(1, 5); got == at(1, 1) {
		t.Errorf("stroke row not drawn: %v", got)
	}
}

func TestDrawErrors(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		kind vcanvas.ErrorKind
	}{
		{"unknown op", Op{Op: "spin"}, vcanvas.InvalidInput},
		{"missing shape", Op{Op: "fill"}, vcanvas.InvalidInput},
		{"bad matrix", Op{Op: "transform", Matrix: []float64{1, 2}}, vcanvas.InvalidInput},
		{"restore without save", Op{Op: "restore"}, vcanvas.InvalidInput},
		{"missing image", Op{Op: "image", Image: "nope.png"}, vcanvas.InvalidInput},
	}
	dev := newDevice(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bt, err := dev.BitmapTarget(4, 4, 1)
			if err != nil {
				t.Fatal(err)
			}
			doc := &Document{Width: 4, Height: 4, Scale: 1, Ops: []Op{tt.op}}
			err = doc.Draw(bt.RenderContext())
			if vcanvas.KindOf(err) != tt.kind {
				t.Errorf("Draw() = %v, want %v", err, tt.kind)
			}
		})
	}
}

func TestDrawUnwindsSaves(t *testing.T) {
	bt, err := newDevice(t).BitmapTarget(4, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	rc := bt.RenderContext()
	before := rc.CurrentTransform()
	doc := &Document{Width: 4, Height: 4, Scale: 1, Ops: []Op{
		{Op: "save"},
		{Op: "transform", Matrix: []float64{2, 0, 0, 2, 1, 1}},
	}}
	if err := doc.Draw(rc); err != nil {
		t.Fatal(err)
	}
	if got := rc.CurrentTransform(); got != before {
		t.Errorf("transform after Draw = %+v, want %+v", got, before)
	}
	if err := rc.Restore(); err == nil {
		t.Error("Draw left a save open")
	}
}

func TestDrawKeepsCallerSaves(t *testing.T) {
	bt, err := newDevice(t).BitmapTarget(4, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	rc := bt.RenderContext()
	if err := rc.Save(); err != nil {
		t.Fatal(err)
	}
	rc.Transform(vcanvas.Translate(3, 0))
	shifted := rc.CurrentTransform()

	doc := &Document{Width: 4, Height: 4, Scale: 1, Ops: []Op{
		{Op: "save"},
		{Op: "restore"},
		{Op: "restore"},
	}}
	if err := doc.Draw(rc); vcanvas.KindOf(err) != vcanvas.InvalidInput {
		t.Fatalf("Draw() = %v, want InvalidInput", err)
	}
	if got := rc.CurrentTransform(); got != shifted {
		t.Errorf("transform after Draw = %+v, want %+v", got, shifted)
	}
	if err := rc.Restore(); err != nil {
		t.Errorf("caller's save was consumed: %v", err)
	}
}

func TestLoadWithImage(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range 4 {
		img.Set(i%2, i/2, color.NRGBA{G: 255, A: 255})
	}
	f, err := os.Create(filepath.Join(dir, "green.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	doc := "width = 4\nheight = 4\n[[ops]]\nop = \"image\"\nimage = \"green.png\"\ndst = [0, 0, 4, 4]\ninterp = \"nearest\"\n"
	path := filepath.Join(dir, "doc.toml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	bt, err := d.Render(newDevice(t))
	if err != nil {
		t.Fatal(err)
	}
	pix, err := bt.IntoRawPixels(vcanvas.RGBAPremul)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(pix); i += 4 {
		if got := [4]byte(pix[i : i+4]); got != [4]byte{0, 255, 0, 255} {
			t.Fatalf("pixel %d = %v", i/4, got)
		}
	}
}
