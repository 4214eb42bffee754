// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Square plots a width×width block of pixels centred on (x, y).
// Offsets run from -width/2 to -width/2+width-1, so odd widths are exactly
// centred and even widths lean towards the top-left. A width below 1 is
// treated as 1.
func Square(x, y, width int, plot Plotter) {
	if width < 1 {
		width = 1
	}
	start := -width / 2
	for dy := start; dy < start+width; dy++ {
		for dx := start; dx < start+width; dx++ {
			plot.Plot(x+dx, y+dy)
		}
	}
}

// Disc plots a filled circle of radius r centred on (cx, cy).
// A radius of zero or less plots the centre pixel only.
func Disc(cx, cy, r int, plot Plotter) {
	if r <= 0 {
		plot.Plot(cx, cy)
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				plot.Plot(cx+dx, cy+dy)
			}
		}
	}
}

// PatternRect walks the perimeter of the rectangle spanning min..max
// (inclusive) clockwise from min, visiting every perimeter pixel once, and
// plots the pixels whose step index satisfies on.
func PatternRect(minPt, maxPt Point, on func(step int) bool, plot Plotter) {
	if maxPt.X < minPt.X {
		minPt.X, maxPt.X = maxPt.X, minPt.X
	}
	if maxPt.Y < minPt.Y {
		minPt.Y, maxPt.Y = maxPt.Y, minPt.Y
	}

	step := 0
	emit := func(x, y int) {
		if on(step) {
			plot.Plot(x, y)
		}
		step++
	}

	if minPt == maxPt {
		emit(minPt.X, minPt.Y)
		return
	}

	for x := minPt.X; x < maxPt.X; x++ {
		emit(x, minPt.Y)
	}
	for y := minPt.Y; y < maxPt.Y; y++ {
		emit(maxPt.X, y)
	}
	if minPt.Y == maxPt.Y || minPt.X == maxPt.X {
		// Flat rectangle: the walk above already covered it end to end.
		emit(maxPt.X, maxPt.Y)
		return
	}
	for x := maxPt.X; x > minPt.X; x-- {
		emit(x, maxPt.Y)
	}
	for y := maxPt.Y; y > minPt.Y; y-- {
		emit(minPt.X, y)
	}
}
