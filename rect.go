// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "image"

// Rect is an integer bounding rectangle with inclusive Min and Max corners.
// Its width is Max.X-Min.X, so a horizontal line from (0,0) to (10,0) has
// bounds of width 10 and height 0.
type Rect struct {
	Min, Max Point
}

// BoundsOf returns the smallest Rect containing every point of pts.
// It returns the zero Rect when pts is empty.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

// Dx returns the rectangle's width.
func (r Rect) Dx() int {
	return r.Max.X - r.Min.X
}

// Dy returns the rectangle's height.
func (r Rect) Dy() int {
	return r.Max.Y - r.Min.Y
}

// Degenerate reports whether the rectangle has collapsed to a single point.
func (r Rect) Degenerate() bool {
	return r.Dx() == 0 && r.Dy() == 0
}

// Inset returns r shrunk by n on every side. A negative n grows it.
func (r Rect) Inset(n int) Rect {
	return Rect{
		Min: Point{X: r.Min.X + n, Y: r.Min.Y + n},
		Max: Point{X: r.Max.X - n, Y: r.Max.Y - n},
	}
}

// Center returns the integer midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Image converts r to the half-open image.Rectangle covering the same pixels.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Min.X, r.Min.Y, r.Max.X+1, r.Max.Y+1)
}
