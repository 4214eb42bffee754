// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "math"

// MinEllipseSteps is the lower bound on the number of contour samples.
const MinEllipseSteps = 60

// Ellipse describes an ellipse by its centre, radii and rotation in degrees.
type Ellipse struct {
	CX, CY float64
	RX, RY float64
	Angle  float64
}

// Steps returns the number of contour samples for e:
// max(60, 2π·max(RX, RY)).
func (e Ellipse) Steps() int {
	steps := int(2 * math.Pi * math.Max(e.RX, e.RY))
	return max(steps, MinEllipseSteps)
}

// At returns the contour point for parameter t (radians), rotated by Angle
// about the centre. The result is not rounded.
func (e Ellipse) At(t float64) (x, y float64) {
	sin, cos := math.Sincos(e.Angle * math.Pi / 180)
	x0 := e.RX * math.Cos(t)
	y0 := e.RY * math.Sin(t)
	return e.CX + x0*cos - y0*sin, e.CY + x0*sin + y0*cos
}

// Contour samples the rotated contour at Steps()+1 parameters from 0 to 2π
// inclusive and rounds every sample to the nearest pixel. The first and last
// samples coincide, closing the loop.
func (e Ellipse) Contour() []Point {
	steps := e.Steps()
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		x, y := e.At(t)
		pts = append(pts, Point{X: int(math.Round(x)), Y: int(math.Round(y))})
	}
	return pts
}

// Contains reports whether (x, y) lies inside or on the ellipse. The offset
// from the centre is rotated back by Angle and tested against
// x²/rx² + y²/ry² <= 1. A zero radius on either axis contains nothing.
func (e Ellipse) Contains(x, y float64) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	sin, cos := math.Sincos(e.Angle * math.Pi / 180)
	dx := x - e.CX
	dy := y - e.CY
	lx := dx*cos + dy*sin
	ly := -dx*sin + dy*cos
	nx := lx / e.RX
	ny := ly / e.RY
	return nx*nx+ny*ny <= 1
}

// Extent returns the half-width and half-height of the axis-aligned box
// enclosing the rotated ellipse.
func (e Ellipse) Extent() (hx, hy float64) {
	sin, cos := math.Sincos(e.Angle * math.Pi / 180)
	hx = math.Hypot(e.RX*cos, e.RY*sin)
	hy = math.Hypot(e.RX*sin, e.RY*cos)
	return hx, hy
}

// Fill plots every pixel of the rotated bounding box whose centre passes
// Contains.
func (e Ellipse) Fill(plot Plotter) {
	if e.RX <= 0 || e.RY <= 0 {
		return
	}
	hx, hy := e.Extent()
	x0 := int(math.Floor(e.CX - hx))
	x1 := int(math.Ceil(e.CX + hx))
	y0 := int(math.Floor(e.CY - hy))
	y1 := int(math.Ceil(e.CY + hy))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if e.Contains(float64(x), float64(y)) {
				plot.Plot(x, y)
			}
		}
	}
}
