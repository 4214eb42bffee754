// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// CubicSamples is the number of parameter samples taken per cubic segment
// (t = 0, 0.001, …, 1).
const CubicSamples = 1001

// Lerp interpolates between a and b and rounds to the nearest pixel.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: int(math.Round(float64(a.X)*(1-t) + float64(b.X)*t)),
		Y: int(math.Round(float64(a.Y)*(1-t) + float64(b.Y)*t)),
	}
}

// CubicPoint evaluates the cubic Bézier (p0, p1, p2, p3) at t with three
// levels of rounded linear interpolation.
func CubicPoint(p0, p1, p2, p3 Point, t float64) Point {
	a := Lerp(p0, p1, t)
	b := Lerp(p1, p2, t)
	c := Lerp(p2, p3, t)
	ab := Lerp(a, b, t)
	bc := Lerp(b, c, t)
	return Lerp(ab, bc, t)
}

// Cubic samples the segment at CubicSamples evenly spaced parameters and
// stamps a width×width square at every sample. Consecutive samples that
// round to the same pixel are stamped once.
func Cubic(p0, p1, p2, p3 Point, width int, plot Plotter) {
	last := Point{X: math.MinInt, Y: math.MinInt}
	for i := 0; i < CubicSamples; i++ {
		t := float64(i) / float64(CubicSamples-1)
		p := CubicPoint(p0, p1, p2, p3, t)
		if p == last {
			continue
		}
		Square(p.X, p.Y, width, plot)
		last = p
	}
}
