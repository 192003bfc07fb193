// Package clip holds device-space clip masks and their save/restore stack.
package clip

import "image"

// Mask is an immutable anti-aliased clip in device pixels. A nil *Mask
// means the surface is not clipped.
type Mask struct {
	alpha *image.Alpha
}

// NewMask wraps a coverage mask. The mask takes ownership of a.
func NewMask(a *image.Alpha) *Mask {
	return &Mask{alpha: a}
}

// Intersect returns a new mask covering both m and cov. A nil receiver
// yields a mask of cov alone. Neither input is modified.
func (m *Mask) Intersect(cov *image.Alpha) *Mask {
	out := image.NewAlpha(cov.Rect)
	copy(out.Pix, cov.Pix)
	if m != nil {
		m.Apply(out)
	}
	return &Mask{alpha: out}
}

// Apply multiplies cov by the mask in place. Pixels outside the mask are
// cleared. A nil mask leaves cov unchanged.
func (m *Mask) Apply(cov *image.Alpha) {
	if m == nil {
		return
	}
	b := cov.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := cov.Pix[cov.PixOffset(b.Min.X, y):cov.PixOffset(b.Max.X, y)]
		for i := range row {
			if row[i] != 0 {
				row[i] = ApplyCoverage(m.Coverage(b.Min.X+i, y), row[i])
			}
		}
	}
}

// Coverage returns the coverage (0-255) at pixel (x, y). Points outside
// the mask have no coverage; a nil mask covers everything.
func (m *Mask) Coverage(x, y int) uint8 {
	if m == nil {
		return 255
	}
	if !image.Pt(x, y).In(m.alpha.Rect) {
		return 0
	}
	return m.alpha.Pix[m.alpha.PixOffset(x, y)]
}

// Alpha returns the mask image for use as a draw mask. It must not be
// modified.
func (m *Mask) Alpha() *image.Alpha {
	if m == nil {
		return nil
	}
	return m.alpha
}

// IsEmpty reports whether the mask clips everything away.
func (m *Mask) IsEmpty() bool {
	if m == nil {
		return false
	}
	for _, a := range m.alpha.Pix {
		if a != 0 {
			return false
		}
	}
	return true
}

// ApplyCoverage modulates alpha by coverage with rounding.
func ApplyCoverage(coverage, alpha uint8) uint8 {
	switch coverage {
	case 0:
		return 0
	case 255:
		return alpha
	}
	return uint8((uint32(alpha)*uint32(coverage) + 127) / 255)
}
