// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "github.com/gogpu/sketch/internal/raster"

// Rectangle is stored as its four corners in clockwise order, starting with
// the anchor corner. While under construction the corners are always
// recomputed as an axis-aligned box from the anchor and the latest point;
// Rotate and Scale move the four corners freely.
type Rectangle struct {
	base
}

// NewRectangle creates an empty rectangle.
func NewRectangle(opts ...Option) *Rectangle {
	return &Rectangle{base: newBase(applyOptions(opts))}
}

// Kind returns KindRectangle.
func (r *Rectangle) Kind() Kind {
	return KindRectangle
}

// AddPoint sets the anchor corner on the first call. Later calls rebuild all
// four corners from the anchor and p.
func (r *Rectangle) AddPoint(p Point) {
	if len(r.points) == 0 {
		r.points = append(r.points, p)
		return
	}
	r.span(r.points[0], p)
}

// UpdatePoint rebuilds all four corners from the anchor and p, whatever the
// index. It is a no-op until the corners exist.
func (r *Rectangle) UpdatePoint(_ int, p Point) {
	if len(r.points) == 4 {
		r.span(r.points[0], p)
	}
}

// Drag moves the corner opposite the anchor to p.
func (r *Rectangle) Drag(p Point) {
	if len(r.points) == 4 {
		r.span(r.points[0], p)
		return
	}
	r.AddPoint(p)
}

// span stores the axis-aligned corners of the box spanned by a and b in
// clockwise order: a, (b.X, a.Y), b, (a.X, b.Y).
func (r *Rectangle) span(a, b Point) {
	r.points = append(r.points[:0],
		a,
		Point{X: b.X, Y: a.Y},
		b,
		Point{X: a.X, Y: b.Y},
	)
}

// Finalize reports whether the four corners exist and do not all coincide.
func (r *Rectangle) Finalize() bool {
	return len(r.points) == 4 && !r.Bounds().Degenerate()
}

// Draw fills the interior with a scanline fill, then strokes the four edges.
func (r *Rectangle) Draw(dst Surface) {
	if len(r.points) < 4 {
		return
	}
	pts := toRaster(r.points)
	if r.style.Filled() {
		raster.FillPolygon(pts, paint(dst, r.style.Fill))
	}
	raster.Polyline(pts, true, r.style.Width, paint(dst, r.style.Stroke))
}

// Contains runs the point-in-polygon parity test on the four corners.
// Top and left edges are inside, bottom and right edges outside.
func (r *Rectangle) Contains(p Point) bool {
	if len(r.points) < 4 {
		return false
	}
	return raster.Contains(toRaster(r.points), p.raster())
}

// Rotate turns the corners about their centroid.
func (r *Rectangle) Rotate(deg float64) {
	if len(r.points) < 4 {
		return
	}
	r.rotate(deg)
}

// Scale scales the corners about their centroid, refusing to collapse them.
func (r *Rectangle) Scale(sx, sy float64) {
	if len(r.points) < 4 {
		return
	}
	r.scale(sx, sy, r.Bounds)
}
