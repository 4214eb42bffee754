// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"github.com/google/uuid"
)

// Interaction and geometry thresholds shared by the shape variants.
const (
	// HitTolerance is the maximum distance in pixels between a point and a
	// stroke for Contains to report a hit on line-like shapes.
	HitTolerance = 5

	// ClosingThreshold is the maximum distance between the last and first
	// point of a polyline for it to be treated as a closed loop.
	ClosingThreshold = 10

	// MinScaleSize is the smallest bounding box width or height a shrinking
	// Scale may produce.
	MinScaleSize = 2

	// DefaultPolygonRadius is used when a polygon is finalized without a
	// radius, e.g. after two clicks on the same spot.
	DefaultPolygonRadius = 5

	// DefaultSides is the side count of polygons created without WithSides.
	DefaultSides = 3

	// DotRadius is the radius of Bézier point markers and the per-axis
	// hit distance of Bézier points.
	DotRadius = 5

	// VertexMarkerRadius is the radius of polyline vertex markers.
	VertexMarkerRadius = 3
)

// Shape is the contract shared by all shape variants.
//
// A shape exclusively owns its points. Points returns a copy, so callers can
// never mutate the geometry behind the shape's back; all changes go through
// AddPoint, UpdatePoint, Drag, Move and the Transformable methods.
//
// Operations on shapes with too few points are no-ops: Draw draws nothing,
// Contains reports false and transforms leave the shape untouched.
type Shape interface {
	// ID returns the handle identifying the shape within a Canvas.
	ID() uuid.UUID

	// Kind returns the variant tag.
	Kind() Kind

	// Points returns a snapshot of the stored points. Never nil.
	Points() []Point

	// Style returns the paint settings.
	Style() Style

	// SetStyle replaces the paint settings; the width is coerced to >= 1.
	SetStyle(s Style)

	// Drawing reports whether the shape is under construction. Shapes
	// under construction render their construction markers.
	Drawing() bool

	// SetDrawing sets the construction flag.
	SetDrawing(drawing bool)

	// AddPoint feeds a click into the shape with variant-specific meaning.
	AddPoint(p Point)

	// UpdatePoint replaces the point at index i. Out-of-range indices are
	// ignored. Some variants recompute dependent points.
	UpdatePoint(i int, p Point)

	// Drag feeds a pointer drag during construction.
	Drag(p Point)

	// Finalize completes construction and reports whether the shape is
	// valid enough to be committed.
	Finalize() bool

	// Draw rasterizes the shape onto dst.
	Draw(dst Surface)

	// Contains reports whether p hits the shape.
	Contains(p Point) bool

	// Move translates the shape by (dx, dy).
	Move(dx, dy int)

	// Bounds returns the bounding box of the shape's actual geometry.
	Bounds() Rect
}

// Transformable is implemented by shapes that can be rotated and scaled.
type Transformable interface {
	Shape

	// Rotate turns the shape by deg degrees (clockwise on screen, since Y
	// grows downwards).
	Rotate(deg float64)

	// Scale scales the shape by (sx, sy). Shrinking that would collapse the
	// shape below MinScaleSize is rejected and leaves it unchanged.
	Scale(sx, sy float64)
}

// base holds the state common to every variant.
type base struct {
	id      uuid.UUID
	points  []Point
	style   Style
	drawing bool
}

func newBase(o options) base {
	return base{
		id:     uuid.New(),
		points: []Point{},
		style:  o.style.Normalize(),
	}
}

func (b *base) ID() uuid.UUID {
	return b.id
}

func (b *base) Points() []Point {
	out := make([]Point, len(b.points))
	copy(out, b.points)
	return out
}

func (b *base) Style() Style {
	return b.style
}

func (b *base) SetStyle(s Style) {
	b.style = s.Normalize()
}

func (b *base) Drawing() bool {
	return b.drawing
}

func (b *base) SetDrawing(drawing bool) {
	b.drawing = drawing
}

func (b *base) AddPoint(p Point) {
	b.points = append(b.points, p)
}

func (b *base) UpdatePoint(i int, p Point) {
	if i >= 0 && i < len(b.points) {
		b.points[i] = p
	}
}

func (b *base) Move(dx, dy int) {
	for i, p := range b.points {
		b.points[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
}

func (b *base) Bounds() Rect {
	return BoundsOf(b.points)
}

// rotate turns every point about the centroid.
func (b *base) rotate(deg float64) {
	if len(b.points) == 0 {
		return
	}
	b.points = rotatePoints(b.points, deg)
}

// scale scales every point about the centroid, reverting when the result
// collapses according to bounds.
func (b *base) scale(sx, sy float64, bounds func() Rect) bool {
	if len(b.points) == 0 {
		return false
	}
	before := bounds()
	orig := b.points
	b.points = scalePoints(orig, sx, sy)
	if collapses(before, bounds(), sx, sy) {
		b.points = orig
		Logger().Debug("sketch: scale rejected",
			"id", b.id, "sx", sx, "sy", sy,
			"width", before.Dx(), "height", before.Dy())
		return false
	}
	return true
}
