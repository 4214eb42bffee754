// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "github.com/gogpu/sketch/internal/raster"

// Line is a straight segment between a start and an end point.
type Line struct {
	base
}

// NewLine creates an empty line.
func NewLine(opts ...Option) *Line {
	return &Line{base: newBase(applyOptions(opts))}
}

// Kind returns KindLine.
func (l *Line) Kind() Kind {
	return KindLine
}

// AddPoint appends p as the start or end point. A line never holds more
// than two points; further calls are ignored.
func (l *Line) AddPoint(p Point) {
	if len(l.points) < 2 {
		l.points = append(l.points, p)
	}
}

// Drag moves the end point to p.
func (l *Line) Drag(p Point) {
	if len(l.points) < 2 {
		l.AddPoint(p)
		return
	}
	l.points[1] = p
}

// Finalize reports whether the line has two distinct endpoints.
func (l *Line) Finalize() bool {
	return len(l.points) == 2 && l.points[0] != l.points[1]
}

// Draw rasterizes the segment with Bresenham's algorithm.
func (l *Line) Draw(dst Surface) {
	if len(l.points) < 2 {
		return
	}
	raster.ThickLine(l.points[0].raster(), l.points[1].raster(), l.style.Width,
		paint(dst, l.style.Stroke))
}

// Contains reports whether p lies within HitTolerance of the segment.
// A line with coincident endpoints contains nothing.
func (l *Line) Contains(p Point) bool {
	if len(l.points) < 2 {
		return false
	}
	return nearSegment(p, l.points[0], l.points[1])
}

// Rotate turns the line about its midpoint.
func (l *Line) Rotate(deg float64) {
	if len(l.points) < 2 {
		return
	}
	l.rotate(deg)
}

// Scale scales the line about its midpoint, refusing to collapse it.
func (l *Line) Scale(sx, sy float64) {
	if len(l.points) < 2 {
		return
	}
	l.scale(sx, sy, l.Bounds)
}
