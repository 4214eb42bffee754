// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "math"

// Centroid returns the average of pts as floating-point coordinates.
// It returns (0, 0) for an empty slice.
func Centroid(pts []Point) (x, y float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	for _, p := range pts {
		x += float64(p.X)
		y += float64(p.Y)
	}
	n := float64(len(pts))
	return x / n, y / n
}

// rotatePoints returns pts rotated by deg degrees about their centroid.
// Coordinates are rounded to the nearest pixel. pts is not modified.
func rotatePoints(pts []Point, deg float64) []Point {
	cx, cy := Centroid(pts)
	sin, cos := math.Sincos(deg * math.Pi / 180)
	out := make([]Point, len(pts))
	for i, p := range pts {
		dx := float64(p.X) - cx
		dy := float64(p.Y) - cy
		out[i] = Point{
			X: int(math.Round(cx + dx*cos - dy*sin)),
			Y: int(math.Round(cy + dx*sin + dy*cos)),
		}
	}
	return out
}

// scalePoints returns pts scaled by (sx, sy) about their centroid.
// Coordinates are rounded to the nearest pixel. pts is not modified.
func scalePoints(pts []Point, sx, sy float64) []Point {
	cx, cy := Centroid(pts)
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{
			X: int(math.Round(cx + (float64(p.X)-cx)*sx)),
			Y: int(math.Round(cy + (float64(p.Y)-cy)*sy)),
		}
	}
	return out
}

// collapses reports whether a scale from before to after must be rolled
// back: a shrinking factor pushed a dimension that was at least
// MinScaleSize below it, or the box degenerated to a single point.
func collapses(before, after Rect, sx, sy float64) bool {
	shrinking := sx < 1 || sy < 1
	tooNarrow := after.Dx() < MinScaleSize && before.Dx() >= MinScaleSize
	tooFlat := after.Dy() < MinScaleSize && before.Dy() >= MinScaleSize
	collapsed := after.Degenerate() && !before.Degenerate()
	return (shrinking && (tooNarrow || tooFlat)) || collapsed
}

// segmentDistance returns the distance from p to the segment a-b.
// ok is false for a zero-length segment.
func segmentDistance(p, a, b Point) (d float64, ok bool) {
	vx := float64(b.X - a.X)
	vy := float64(b.Y - a.Y)
	lenSq := vx*vx + vy*vy
	if lenSq == 0 {
		return 0, false
	}
	wx := float64(p.X - a.X)
	wy := float64(p.Y - a.Y)
	t := (wx*vx + wy*vy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(wx-t*vx, wy-t*vy), true
}

// nearSegment reports whether p lies within HitTolerance of segment a-b.
func nearSegment(p, a, b Point) bool {
	d, ok := segmentDistance(p, a, b)
	return ok && d <= HitTolerance
}

// normalizeAngle wraps deg into [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 360 {
		return 0
	}
	return deg
}

// DragAngle returns the rotation in degrees produced by dragging the pointer
// from `from` to `to` around center: the change of the pointer's polar
// angle, wrapped into (-180, 180].
func DragAngle(center, from, to Point) float64 {
	prev := math.Atan2(float64(from.Y-center.Y), float64(from.X-center.X))
	cur := math.Atan2(float64(to.Y-center.Y), float64(to.X-center.X))
	d := (cur - prev) * 180 / math.Pi
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}

// DragScale returns the scale factors produced by dragging the pointer by
// (dx, dy): one percent per pixel on each axis.
func DragScale(dx, dy int) (sx, sy float64) {
	return 1 + float64(dx)/100, 1 + float64(dy)/100
}
