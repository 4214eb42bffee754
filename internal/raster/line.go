// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Line plots the 8-connected Bresenham line between p0 and p1.
//
// Every pixel of the discrete line is reported exactly once, including both
// endpoints. The endpoints are walked in a canonical order (the
// lexicographically smaller point first), so Line(a, b) and Line(b, a)
// produce the same pixel set. Identical endpoints plot a single pixel.
func Line(p0, p1 Point, plot Plotter) {
	if less(p1, p0) {
		p0, p1 = p1, p0
	}

	x, y := p0.X, p0.Y
	dx := abs(p1.X - x)
	dy := abs(p1.Y - y)
	sx, sy := 1, 1
	if x > p1.X {
		sx = -1
	}
	if y > p1.Y {
		sy = -1
	}
	err := dx - dy

	for {
		plot.Plot(x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// ThickLine plots the Bresenham line between p0 and p1 with a width×width
// square stamped on every visited pixel.
func ThickLine(p0, p1 Point, width int, plot Plotter) {
	if width <= 1 {
		Line(p0, p1, plot)
		return
	}
	Line(p0, p1, PlotterFunc(func(x, y int) {
		Square(x, y, width, plot)
	}))
}

// Polyline plots consecutive segments of pts. When closed is true the last
// point is also joined back to the first.
func Polyline(pts []Point, closed bool, width int, plot Plotter) {
	if len(pts) == 0 {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		ThickLine(pts[i], pts[i+1], width, plot)
	}
	if closed && len(pts) > 1 {
		ThickLine(pts[len(pts)-1], pts[0], width, plot)
	}
}

func less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
