// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEllipse_Steps(t *testing.T) {
	assert.Equal(t, 60, Ellipse{RX: 2, RY: 3}.Steps())
	assert.Equal(t, int(2*math.Pi*50), Ellipse{RX: 50, RY: 20}.Steps())
	assert.Equal(t, 60, Ellipse{}.Steps())
}

func TestEllipse_ContourClosedAndOnCurve(t *testing.T) {
	e := Ellipse{CX: 50, CY: 40, RX: 30, RY: 10}
	pts := e.Contour()
	require.Len(t, pts, e.Steps()+1)
	assert.Equal(t, pts[0], pts[len(pts)-1])
	assert.Equal(t, Point{80, 40}, pts[0])
	for _, p := range pts {
		nx := float64(p.X-50) / 30
		ny := float64(p.Y-40) / 10
		d := math.Sqrt(nx*nx + ny*ny)
		assert.InDelta(t, 1.0, d, 0.1, "sample %v is off the contour", p)
	}
}

func TestEllipse_Rotation(t *testing.T) {
	e := Ellipse{CX: 0, CY: 0, RX: 20, RY: 5, Angle: 90}
	pts := e.Contour()
	// A quarter turn maps the +x vertex onto +y.
	assert.Equal(t, Point{0, 20}, pts[0])

	hx, hy := e.Extent()
	assert.InDelta(t, 5, hx, 1e-9)
	assert.InDelta(t, 20, hy, 1e-9)
}

func TestEllipse_Contains(t *testing.T) {
	e := Ellipse{CX: 10, CY: 10, RX: 8, RY: 4}
	assert.True(t, e.Contains(10, 10))
	assert.True(t, e.Contains(18, 10))
	assert.False(t, e.Contains(10, 15))
	assert.False(t, e.Contains(18, 14))

	rotated := Ellipse{CX: 10, CY: 10, RX: 8, RY: 4, Angle: 90}
	assert.True(t, rotated.Contains(10, 17))
	assert.False(t, rotated.Contains(17, 10))

	assert.False(t, Ellipse{CX: 1, CY: 1, RX: 0, RY: 5}.Contains(1, 1))
}

func TestEllipse_FillMatchesContains(t *testing.T) {
	e := Ellipse{CX: 20, CY: 20, RX: 12, RY: 6, Angle: 30}
	set := PixelSet{}
	e.Fill(set)
	require.NotEmpty(t, set)
	for p := range set {
		assert.True(t, e.Contains(float64(p.X), float64(p.Y)))
	}
	assert.True(t, set.Has(20, 20))
}

func TestEllipse_FillDegenerate(t *testing.T) {
	set := PixelSet{}
	Ellipse{CX: 5, CY: 5, RX: 10, RY: 0}.Fill(set)
	assert.Empty(t, set)
}

func TestEllipse_ContourOutline(t *testing.T) {
	e := Ellipse{CX: 0, CY: 0, RX: 10, RY: 10}
	set := PixelSet{}
	Polyline(e.Contour(), false, 1, set)
	assert.True(t, set.Has(10, 0))
	assert.True(t, set.Has(-10, 0))
	assert.True(t, set.Has(0, 10))
	assert.False(t, set.Has(0, 0))
}
