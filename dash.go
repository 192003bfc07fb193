package vcanvas

import "math"

// Dash defines a dash pattern for stroking: alternating dash and gap
// lengths plus a phase offset into the pattern.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Lengths contains alternating dash/gap lengths. An odd number of
	// elements is logically repeated to make the pattern even ([5] becomes
	// [5, 5]).
	Lengths []float64

	// Offset is the distance into the pattern at which stroking begins.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken by absolute value. Returns nil if no lengths
// are provided or none is positive, meaning a solid line.
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // equivalent to [5, 5]
func NewDash(lengths ...float64) *Dash {
	positive := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Lengths: normalized}
}

// WithOffset returns a copy of the pattern starting at offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Lengths: d.Lengths, Offset: offset}
}

// PatternLength returns the length of one full cycle, counting the
// implicit repetition of odd-length patterns.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Lengths {
		total += l
	}
	if len(d.Lengths)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed reports whether the pattern produces gaps.
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}

// Effective returns the even-length pattern actually used for stroking.
func (d *Dash) Effective() []float64 {
	if d == nil || len(d.Lengths) == 0 {
		return nil
	}
	if len(d.Lengths)%2 == 0 {
		return d.Lengths
	}
	out := make([]float64, 2*len(d.Lengths))
	copy(out, d.Lengths)
	copy(out[len(d.Lengths):], d.Lengths)
	return out
}

// NormalizedOffset returns the offset wrapped into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	n := d.PatternLength()
	if n <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, n)
	if off < 0 {
		off += n
	}
	return off
}
