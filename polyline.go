// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "github.com/gogpu/sketch/internal/raster"

// Polyline is a chain of segments through its points. It is open unless it
// has at least three points and the last lies within ClosingThreshold of the
// first; a closed polyline draws the closing segment and its fill.
type Polyline struct {
	base
}

// NewPolyline creates an empty polyline.
func NewPolyline(opts ...Option) *Polyline {
	return &Polyline{base: newBase(applyOptions(opts))}
}

// Kind returns KindPolyline.
func (l *Polyline) Kind() Kind {
	return KindPolyline
}

// Closed reports whether the polyline forms a loop.
func (l *Polyline) Closed() bool {
	n := len(l.points)
	return n >= 3 && l.points[n-1].Distance(l.points[0]) <= ClosingThreshold
}

// Drag moves the most recently added point to p.
func (l *Polyline) Drag(p Point) {
	if len(l.points) == 0 {
		l.AddPoint(p)
		return
	}
	l.points[len(l.points)-1] = p
}

// Finalize requires at least two points. When the last point lands near the
// first, but not exactly on it, it is snapped onto the first point.
func (l *Polyline) Finalize() bool {
	n := len(l.points)
	if n < 2 {
		return false
	}
	if n >= 3 {
		d := l.points[n-1].Distance(l.points[0])
		if d > 0 && d <= ClosingThreshold {
			l.points[n-1] = l.points[0]
		}
	}
	return true
}

// Draw fills a closed polyline, strokes every segment, and marks the
// vertices while the polyline is under construction.
func (l *Polyline) Draw(dst Surface) {
	if len(l.points) < 2 {
		return
	}
	pts := toRaster(l.points)
	closed := l.Closed()
	if closed && l.style.Filled() {
		raster.FillPolygon(pts, paint(dst, l.style.Fill))
	}
	raster.Polyline(pts, closed, l.style.Width, paint(dst, l.style.Stroke))
	if l.drawing {
		marker := paint(dst, Blue)
		for _, p := range pts {
			raster.Disc(p.X, p.Y, VertexMarkerRadius, marker)
		}
	}
}

// Contains reports whether p lies within HitTolerance of any segment,
// including the closing segment of a closed polyline.
func (l *Polyline) Contains(p Point) bool {
	n := len(l.points)
	if n < 2 {
		return false
	}
	for i := 0; i+1 < n; i++ {
		if nearSegment(p, l.points[i], l.points[i+1]) {
			return true
		}
	}
	return l.Closed() && nearSegment(p, l.points[n-1], l.points[0])
}

// Rotate turns the polyline about the centroid of its points.
func (l *Polyline) Rotate(deg float64) {
	if len(l.points) < 2 {
		return
	}
	l.rotate(deg)
}

// Scale scales the polyline about its centroid, refusing to collapse it.
func (l *Polyline) Scale(sx, sy float64) {
	if len(l.points) < 2 {
		return
	}
	l.scale(sx, sy, l.Bounds)
}
