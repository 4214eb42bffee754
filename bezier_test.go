// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBezier_FirstClick(t *testing.T) {
	b := NewBezier()
	b.AddPoint(Pt(4, 4))
	assert.Equal(t, []Point{{4, 4}, {4, 4}, {4, 4}}, b.Points())

	b.Drag(Pt(8, 2))
	assert.Equal(t, []Point{{4, 4}, {8, 2}, {4, 4}}, b.Points())

	last, ok := b.LastPoint()
	assert.True(t, ok)
	assert.Equal(t, Pt(4, 4), last)

	// A single click never makes a segment.
	assert.False(t, b.Finalize())
	assert.Equal(t, []Point{{4, 4}}, b.Points())
}

func TestBezier_Chain(t *testing.T) {
	b := NewBezier()
	b.AddPoint(Pt(0, 0))
	b.Drag(Pt(5, -10))
	b.AddPoint(Pt(30, 0))
	assert.Equal(t, []Point{{0, 0}, {5, -10}, {30, 0}, {30, 0}, {30, 0}, {30, 0}}, b.Points())

	b.Drag(Pt(40, 10))
	assert.Equal(t, []Point{{0, 0}, {5, -10}, {20, -10}, {30, 0}, {40, 10}, {30, 0}}, b.Points())

	b.AddPoint(Pt(60, 0))
	require.True(t, b.Finalize())
	assert.Equal(t, []Point{
		{0, 0}, {5, -10}, {20, -10}, {30, 0}, {40, 10}, {60, 0}, {60, 0},
	}, b.Points())

	// Finalize is idempotent on a trimmed chain.
	require.True(t, b.Finalize())
	assert.Len(t, b.Points(), 7)

	assert.Equal(t, []Point{{0, 0}, {30, 0}, {60, 0}}, b.Anchors())
	assert.Equal(t, 2, b.Segments())
	last, _ := b.LastPoint()
	assert.Equal(t, Pt(60, 0), last)
}

func TestBezier_Continuity(t *testing.T) {
	drags := []Point{{40, 10}, {31, -7}, {30, 0}, {-12, 55}}
	for _, m := range drags {
		b := NewBezier()
		b.AddPoint(Pt(0, 0))
		b.AddPoint(Pt(30, 0))
		b.Drag(m)
		b.AddPoint(Pt(60, 0))
		require.True(t, b.Finalize())

		pts := b.Points()
		require.Len(t, pts, 7)
		anchor, before, after := pts[3], pts[2], pts[4]
		assert.Equal(t, after, m)
		assert.Equal(t, before, Pt(2*anchor.X-after.X, 2*anchor.Y-after.Y), "drag %v", m)
	}
}

func TestBezier_ReopenFinalized(t *testing.T) {
	b := newTestBezier()
	b.AddPoint(Pt(90, 0))
	pts := b.Points()
	require.Len(t, pts, 12)
	assert.Equal(t, Pt(60, 0), pts[6])
	assert.Equal(t, Pt(60, 0), pts[7])
	assert.Equal(t, Pt(90, 0), pts[8])
	assert.Equal(t, Pt(90, 0), pts[9])

	b.AddPoint(Pt(120, 0))
	b.Drag(Pt(100, 10))
	pts = b.Points()
	assert.Equal(t, Pt(100, 10), pts[len(pts)-2])
	assert.Equal(t, Pt(140, -10), pts[len(pts)-4])
}

func TestBezier_DragIgnoredWithoutPending(t *testing.T) {
	b := NewBezier()
	b.Drag(Pt(1, 1))
	assert.Empty(t, b.Points())

	done := newTestBezier()
	before := done.Points()
	done.Drag(Pt(1, 1))
	assert.Equal(t, before, done.Points())
}

func TestBezier_Contains(t *testing.T) {
	b := newTestBezier()
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(62, 3), true},
		{Pt(65, 5), true},
		{Pt(66, 0), false},
		{Pt(5, -15), true},
		{Pt(45, -20), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Contains(tt.p), "%v", tt.p)
	}

	seed := NewBezier()
	seed.AddPoint(Pt(0, 0))
	assert.False(t, seed.Contains(Pt(0, 0)))
}

func TestBezier_Draw(t *testing.T) {
	b := newTestBezier(WithStroke(Red))
	r := render(b)
	for _, a := range b.Anchors() {
		assert.Equal(t, Red, r.at(a.X, a.Y), "anchor %v", a)
	}
	assert.False(t, r.has(5, -10))

	b.SetDrawing(true)
	r = render(b)
	assert.Equal(t, Blue, r.at(5, -10))
	assert.Equal(t, Black, r.at(30, 0))
	assert.Equal(t, Black, r.at(30, 5))
	assert.Equal(t, Gray, r.at(25, -5))
}

func TestBezier_Scale(t *testing.T) {
	b := newTestBezier()
	before := b.Points()
	b.Scale(0.01, 0.01)
	assert.Equal(t, before, b.Points())

	w := b.Bounds().Dx()
	b.Scale(2, 2)
	assert.Equal(t, 2*w, b.Bounds().Dx())
}
