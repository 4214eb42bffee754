// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides the integer scan-conversion kernels used by the
// sketch shapes: Bresenham lines, square stamps, polygon scanline fill,
// ellipse contours and cubic Bézier sampling.
//
// Kernels never touch pixel memory directly. They report every covered
// pixel to a Plotter, which lets the caller decide on colour, clipping and
// deduplication.
package raster

// Point represents an integer pixel position (internal copy to avoid import cycle).
type Point struct {
	X, Y int
}

// Plotter receives the pixels produced by a kernel.
type Plotter interface {
	Plot(x, y int)
}

// PlotterFunc adapts an ordinary function to the Plotter interface.
type PlotterFunc func(x, y int)

// Plot calls f(x, y).
func (f PlotterFunc) Plot(x, y int) {
	f(x, y)
}

// PixelSet is a Plotter that records the distinct pixels it receives.
// It is mostly useful for hit-testing and tests.
type PixelSet map[Point]struct{}

// Plot records (x, y).
func (s PixelSet) Plot(x, y int) {
	s[Point{X: x, Y: y}] = struct{}{}
}

// Has reports whether (x, y) was plotted.
func (s PixelSet) Has(x, y int) bool {
	_, ok := s[Point{X: x, Y: y}]
	return ok
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
