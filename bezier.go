// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import "github.com/gogpu/sketch/internal/raster"

// Bezier is a chain of cubic segments sharing anchors. Points are laid out
// as anchor, control, control, anchor, control, control, anchor, ... so
// anchors sit at indices 0, 3, 6 and segment k spans points[3k:3k+4].
//
// While under construction the chain carries two pending points after the
// last anchor: its outgoing control and the incoming control of the next
// anchor. Finalize trims them.
type Bezier struct {
	base
}

// NewBezier creates an empty curve.
func NewBezier(opts ...Option) *Bezier {
	return &Bezier{base: newBase(applyOptions(opts))}
}

// Kind returns KindBezier.
func (b *Bezier) Kind() Kind {
	return KindBezier
}

// AddPoint places a new anchor at p. The first click seeds the anchor and
// both of its pending controls at p. Later clicks pin the pending incoming
// control to p and append the next anchor with its controls, all at p.
func (b *Bezier) AddPoint(p Point) {
	if len(b.points) == 0 {
		b.points = append(b.points, p, p, p)
		return
	}
	// Reopen a finalized chain by restoring the pending controls.
	last := b.points[len(b.points)-1]
	for len(b.points)%3 != 0 {
		b.points = append(b.points, last)
	}
	b.points[len(b.points)-1] = p
	b.points = append(b.points, p, p, p)
}

// Drag moves the outgoing control of the last anchor to p and mirrors the
// incoming control of the same anchor through it, keeping the join smooth.
func (b *Bezier) Drag(p Point) {
	n := len(b.points)
	if n < 3 || n%3 != 0 {
		return
	}
	b.points[n-2] = p
	if n >= 6 {
		b.points[n-4] = p.Reflect(b.points[n-3])
	}
}

// Finalize trims the pending controls and requires at least one complete
// segment.
func (b *Bezier) Finalize() bool {
	if n := len(b.points); n >= 3 && n%3 == 0 {
		b.points = b.points[:n-2]
	}
	return len(b.points) >= 4
}

// LastPoint returns the last stored anchor.
func (b *Bezier) LastPoint() (Point, bool) {
	anchors := b.Anchors()
	if len(anchors) == 0 {
		return Point{}, false
	}
	return anchors[len(anchors)-1], true
}

// Anchors returns the points the curve passes through.
func (b *Bezier) Anchors() []Point {
	out := make([]Point, 0, len(b.points)/3+1)
	for i := 0; i < len(b.points); i += 3 {
		out = append(out, b.points[i])
	}
	return out
}

// Segments returns the number of complete cubic segments.
func (b *Bezier) Segments() int {
	if len(b.points) < 4 {
		return 0
	}
	return (len(b.points) - 1) / 3
}

// Draw rasterizes every complete segment. Under construction it also draws
// grey guides from each anchor to its controls and point markers, black for
// anchors and blue for controls.
func (b *Bezier) Draw(dst Surface) {
	pts := toRaster(b.points)
	stroke := paint(dst, b.style.Stroke)
	for s := range b.Segments() {
		i := 3 * s
		raster.Cubic(pts[i], pts[i+1], pts[i+2], pts[i+3], b.style.Width, stroke)
	}
	if !b.drawing {
		return
	}
	guide := paint(dst, Gray)
	for i, p := range pts {
		if a := anchorOf(i, len(pts)); a >= 0 && i%3 != 0 {
			raster.Line(pts[a], p, guide)
		}
	}
	anchor, control := paint(dst, Black), paint(dst, Blue)
	for i, p := range pts {
		m := control
		if i%3 == 0 {
			m = anchor
		}
		raster.Disc(p.X, p.Y, DotRadius, m)
	}
}

// anchorOf returns the index of the anchor owning the control at index i,
// or -1 when that anchor does not exist yet.
func anchorOf(i, n int) int {
	switch i % 3 {
	case 1:
		return i - 1
	case 2:
		if i+1 < n {
			return i + 1
		}
	}
	return -1
}

// Contains reports whether p lies within DotRadius, per axis, of any
// anchor or control.
func (b *Bezier) Contains(p Point) bool {
	if len(b.points) < 4 {
		return false
	}
	for _, q := range b.points {
		if abs(p.X-q.X) <= DotRadius && abs(p.Y-q.Y) <= DotRadius {
			return true
		}
	}
	return false
}

// Rotate turns every point about the centroid.
func (b *Bezier) Rotate(deg float64) {
	if len(b.points) < 4 {
		return
	}
	b.rotate(deg)
}

// Scale scales every point about the centroid, refusing to collapse the
// curve.
func (b *Bezier) Scale(sx, sy float64) {
	if len(b.points) < 4 {
		return
	}
	b.scale(sx, sy, b.Bounds)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
