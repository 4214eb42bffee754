// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"math"

	"github.com/gogpu/sketch/internal/raster"
)

// Polygon is a regular polygon built from an interaction centre and radius.
//
// The first click sets the centre, later clicks and drags set the radius as
// the distance to the pointer and recompute the vertices. Points is empty
// until a radius is known.
type Polygon struct {
	base
	sides     int
	center    Point
	hasCenter bool
	radius    float64
}

// NewPolygon creates an empty polygon. The side count comes from WithSides
// and is coerced to at least 3.
func NewPolygon(opts ...Option) *Polygon {
	o := applyOptions(opts)
	return &Polygon{
		base:  newBase(o),
		sides: max(o.sides, 3),
	}
}

// Kind returns KindPolygon.
func (g *Polygon) Kind() Kind {
	return KindPolygon
}

// Sides returns the number of vertices.
func (g *Polygon) Sides() int {
	return g.sides
}

// InteractionCenter returns the centre of the polygon and whether it has
// been set. It starts as the first click and follows Move, Rotate and Scale.
func (g *Polygon) InteractionCenter() (Point, bool) {
	return g.center, g.hasCenter
}

// Radius returns the circumradius. A non-uniform Scale stretches the
// circle into an ellipse; Radius then reports its larger semi-axis.
func (g *Polygon) Radius() float64 {
	return g.radius
}

// CalculateVertices returns Sides points equally spaced on the circle of
// radius r around center. The first vertex is straight above the centre
// (at -90°) and the rest follow clockwise on screen. Coordinates are
// rounded to the nearest pixel.
func (g *Polygon) CalculateVertices(center Point, r float64) []Point {
	pts := make([]Point, g.sides)
	step := 2 * math.Pi / float64(g.sides)
	for i := range pts {
		sin, cos := math.Sincos(-math.Pi/2 + float64(i)*step)
		pts[i] = Point{
			X: int(math.Round(float64(center.X) + r*cos)),
			Y: int(math.Round(float64(center.Y) + r*sin)),
		}
	}
	return pts
}

// AddPoint sets the centre on the first call. Later calls set the radius to
// the distance from the centre to p and recompute the vertices.
func (g *Polygon) AddPoint(p Point) {
	if !g.hasCenter {
		g.center = p
		g.hasCenter = true
		return
	}
	g.setRadius(p.Distance(g.center))
}

// Drag sets the radius from the pointer position.
func (g *Polygon) Drag(p Point) {
	g.AddPoint(p)
}

func (g *Polygon) setRadius(r float64) {
	g.radius = r
	g.points = g.CalculateVertices(g.center, r)
}

// Finalize commits the vertices. A polygon that never received a radius is
// given DefaultPolygonRadius. It fails only when no centre was set.
func (g *Polygon) Finalize() bool {
	if !g.hasCenter {
		return false
	}
	if g.radius == 0 {
		g.setRadius(DefaultPolygonRadius)
	}
	return len(g.points) == g.sides
}

// Draw fills the interior, then strokes the closed outline.
func (g *Polygon) Draw(dst Surface) {
	if len(g.points) < 3 {
		return
	}
	pts := toRaster(g.points)
	if g.style.Filled() {
		raster.FillPolygon(pts, paint(dst, g.style.Fill))
	}
	raster.Polyline(pts, true, g.style.Width, paint(dst, g.style.Stroke))
}

// Contains runs the point-in-polygon parity test on the vertices.
// A zero-radius polygon contains nothing.
func (g *Polygon) Contains(p Point) bool {
	if len(g.points) < 3 {
		return false
	}
	return raster.Contains(toRaster(g.points), p.raster())
}

// Move translates the vertices and the interaction centre.
func (g *Polygon) Move(dx, dy int) {
	g.base.Move(dx, dy)
	g.center = g.center.Add(Point{X: dx, Y: dy})
}

// Rotate turns the vertices about their centroid.
func (g *Polygon) Rotate(deg float64) {
	if len(g.points) < 3 {
		return
	}
	g.rotate(deg)
	g.recenter()
}

// Scale scales the vertices about their centroid, refusing to collapse them.
func (g *Polygon) Scale(sx, sy float64) {
	if len(g.points) < 3 {
		return
	}
	if g.scale(sx, sy, g.Bounds) {
		g.radius *= max(math.Abs(sx), math.Abs(sy))
		g.recenter()
	}
}

// recenter moves the interaction centre onto the transform pivot.
func (g *Polygon) recenter() {
	x, y := Centroid(g.points)
	g.center = Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}
