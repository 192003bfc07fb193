package shade

import (
	"image"

	"golang.org/x/image/draw"
)

// Fill composites sh over dst through the coverage mask.
func Fill(dst *image.RGBA, mask *image.Alpha, sh Shader) {
	r := MaskBounds(mask).Intersect(dst.Rect)
	if r.Empty() {
		return
	}
	var src image.Image
	if s, ok := sh.(Solid); ok {
		src = image.NewUniform(s.Shade(0, 0))
	} else {
		src = Render(sh, r)
	}
	draw.DrawMask(dst, r, src, r.Min, mask, r.Min, draw.Over)
}

// MaskBounds returns the smallest rectangle holding every non-zero pixel.
func MaskBounds(m *image.Alpha) image.Rectangle {
	b := m.Rect
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[m.PixOffset(b.Min.X, y):m.PixOffset(b.Max.X, y)]
		for i, a := range row {
			if a == 0 {
				continue
			}
			x := b.Min.X + i
			minX, maxX = min(minX, x), max(maxX, x+1)
			minY, maxY = min(minY, y), max(maxY, y+1)
		}
	}
	if minX >= maxX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX, maxY)
}
