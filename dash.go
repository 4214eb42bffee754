// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

// Dash defines a pixel dash pattern for outlines.
// A dash pattern consists of alternating dash and gap lengths in pixels.
// For example, [4, 4] draws 4 pixels, skips 4, and repeats.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []int

	// Offset is the starting offset into the pattern.
	Offset int
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as their absolute value.
//
// Examples:
//
//	NewDash(4, 4)       // 4 pixel dash, 4 pixel gap
//	NewDash(6, 2, 1, 2) // dash-dot
//	NewDash(3)          // equivalent to [3, 3]
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...int) *Dash {
	arr := make([]int, 0, len(lengths))
	total := 0
	for _, l := range lengths {
		l = abs(l)
		arr = append(arr, l)
		total += l
	}
	if total == 0 {
		return nil
	}
	return &Dash{Array: arr}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset int) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() int {
	total := 0
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// On reports whether the pixel at position step along an outline falls
// inside a dash. A nil Dash is solid.
func (d *Dash) On(step int) bool {
	n := d.PatternLength()
	if n == 0 {
		return true
	}
	pos := (step + d.Offset) % n
	if pos < 0 {
		pos += n
	}
	for i, l := range d.effectiveArray() {
		if pos < l {
			return i%2 == 0
		}
		pos -= l
	}
	return false
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []int {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]int, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}
