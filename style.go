// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

// Style holds the paint settings of a shape.
type Style struct {
	// Stroke is the outline color.
	Stroke RGBA

	// Fill is the interior color. Transparent disables filling.
	Fill RGBA

	// Width is the stroke width in pixels. Values below 1 are coerced to 1.
	Width int
}

// DefaultStyle returns a one pixel black outline without fill.
func DefaultStyle() Style {
	return Style{
		Stroke: Black,
		Fill:   Transparent,
		Width:  1,
	}
}

// Normalize returns s with Width coerced to at least 1.
func (s Style) Normalize() Style {
	if s.Width < 1 {
		s.Width = 1
	}
	return s
}

// Filled reports whether the style paints interiors.
func (s Style) Filled() bool {
	return !s.Fill.IsTransparent()
}
