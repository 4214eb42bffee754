// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"math"

	"github.com/gogpu/sketch/internal/raster"
)

// Point represents an integer pixel position.
// Points are values: every transform produces new points.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// Reflect returns p mirrored through anchor: 2*anchor - p.
func (p Point) Reflect(anchor Point) Point {
	return Point{X: 2*anchor.X - p.X, Y: 2*anchor.Y - p.Y}
}

// Lerp performs linear interpolation between two points and rounds the
// result to the nearest pixel.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return fromRaster(raster.Lerp(p.raster(), q.raster(), t))
}

func (p Point) raster() raster.Point {
	return raster.Point{X: p.X, Y: p.Y}
}

func fromRaster(p raster.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func toRaster(pts []Point) []raster.Point {
	out := make([]raster.Point, len(pts))
	for i, p := range pts {
		out[i] = p.raster()
	}
	return out
}

func fromRasterPoints(pts []raster.Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = fromRaster(p)
	}
	return out
}
