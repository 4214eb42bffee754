// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"slices"
)

// Crossings returns the sorted x-intersections of scanline y with the closed
// polygon pts.
//
// An edge (p1, p2) crosses y when (p1.Y <= y) != (p2.Y <= y). This half-open
// rule makes a vertex count for exactly one of its two edges and makes
// horizontal edges contribute nothing. Intersections are rounded to the
// nearest pixel.
func Crossings(pts []Point, y int) []int {
	var xs []int
	n := len(pts)
	for i := 0; i < n; i++ {
		p1 := pts[i]
		p2 := pts[(i+1)%n]
		if (p1.Y <= y) == (p2.Y <= y) {
			continue
		}
		xs = append(xs, int(math.Round(crossX(p1, p2, float64(y)))))
	}
	slices.Sort(xs)
	return xs
}

// Span is an inclusive run of pixels [X0, X1] on row Y.
type Span struct {
	Y, X0, X1 int
}

// Spans returns the fill spans of the closed polygon pts on scanline y.
// Consecutive crossing pairs delimit the spans; an odd trailing crossing is
// ignored.
func Spans(pts []Point, y int) []Span {
	xs := Crossings(pts, y)
	spans := make([]Span, 0, len(xs)/2)
	for i := 0; i+1 < len(xs); i += 2 {
		spans = append(spans, Span{Y: y, X0: xs[i], X1: xs[i+1]})
	}
	return spans
}

// FillPolygon scan-converts the interior of the closed polygon pts.
// Polygons with fewer than three vertices are ignored.
func FillPolygon(pts []Point, plot Plotter) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	for y := minY; y <= maxY; y++ {
		for _, s := range Spans(pts, y) {
			for x := s.X0; x <= s.X1; x++ {
				plot.Plot(x, y)
			}
		}
	}
}

// Contains reports whether p lies inside the closed polygon pts using the
// same half-open parity rule as FillPolygon, evaluated at a single point:
// each edge crossing row p.Y strictly to the right of p toggles the result.
//
// With this rule the top and left edges of an axis-aligned rectangle are
// inside and the bottom and right edges are outside.
func Contains(pts []Point, p Point) bool {
	if len(pts) < 3 {
		return false
	}
	inside := false
	y := float64(p.Y)
	n := len(pts)
	for i := 0; i < n; i++ {
		p1 := pts[i]
		p2 := pts[(i+1)%n]
		if (p1.Y <= p.Y) == (p2.Y <= p.Y) {
			continue
		}
		if float64(p.X) < crossX(p1, p2, y) {
			inside = !inside
		}
	}
	return inside
}

// crossX interpolates the x coordinate of edge (p1, p2) at height y.
// The caller guarantees the edge is not horizontal.
func crossX(p1, p2 Point, y float64) float64 {
	t := (y - float64(p1.Y)) / float64(p2.Y-p1.Y)
	return float64(p1.X) + t*float64(p2.X-p1.X)
}
