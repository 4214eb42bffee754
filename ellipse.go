// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"math"

	"github.com/gogpu/sketch/internal/cache"
	"github.com/gogpu/sketch/internal/raster"
)

// contours memoizes sampled outlines by geometry. Entries are shared and
// must not be modified.
var contours = cache.New[raster.Ellipse, []raster.Point](256)

// Ellipse is inscribed in the box spanned by its two points.
//
// Rotation is kept as a separate angle: Rotate never moves the box points,
// so the radii stay those of the unrotated box.
type Ellipse struct {
	base
	angle float64
}

// NewEllipse creates an empty ellipse.
func NewEllipse(opts ...Option) *Ellipse {
	return &Ellipse{base: newBase(applyOptions(opts))}
}

// Kind returns KindEllipse.
func (e *Ellipse) Kind() Kind {
	return KindEllipse
}

// RotationAngle returns the rotation in degrees, in [0, 360).
func (e *Ellipse) RotationAngle() float64 {
	return e.angle
}

// AddPoint sets the start corner, then the opposite corner of the box.
// Later calls move the opposite corner.
func (e *Ellipse) AddPoint(p Point) {
	if len(e.points) < 2 {
		e.points = append(e.points, p)
		return
	}
	e.points[1] = p
}

// Drag moves the opposite corner of the box to p.
func (e *Ellipse) Drag(p Point) {
	e.AddPoint(p)
}

// Finalize reports whether the box corners are distinct.
func (e *Ellipse) Finalize() bool {
	return len(e.points) == 2 && e.points[0] != e.points[1]
}

// geometry returns the centre, radii and angle derived from the box.
func (e *Ellipse) geometry() raster.Ellipse {
	a, b := e.points[0], e.points[1]
	return raster.Ellipse{
		CX:    float64(a.X+b.X) / 2,
		CY:    float64(a.Y+b.Y) / 2,
		RX:    math.Abs(float64(b.X-a.X)) / 2,
		RY:    math.Abs(float64(b.Y-a.Y)) / 2,
		Angle: e.angle,
	}
}

// contour returns the sampled rotated outline.
func (e *Ellipse) contour() []raster.Point {
	g := e.geometry()
	return contours.GetOrCreate(g, g.Contour)
}

// Draw fills the interior, then strokes the sampled contour.
// Nothing is drawn while both radii are zero.
func (e *Ellipse) Draw(dst Surface) {
	if len(e.points) < 2 {
		return
	}
	g := e.geometry()
	if g.RX == 0 && g.RY == 0 {
		return
	}
	if e.style.Filled() {
		g.Fill(paint(dst, e.style.Fill))
	}
	raster.Polyline(e.contour(), false, e.style.Width, paint(dst, e.style.Stroke))
}

// Contains reports whether p lies inside or on the rotated ellipse.
func (e *Ellipse) Contains(p Point) bool {
	if len(e.points) < 2 {
		return false
	}
	return e.geometry().Contains(float64(p.X), float64(p.Y))
}

// Bounds returns the box of the sampled rotated contour, which differs from
// the stored box points once the ellipse is rotated.
func (e *Ellipse) Bounds() Rect {
	if len(e.points) < 2 {
		return BoundsOf(e.points)
	}
	return BoundsOf(fromRasterPoints(e.contour()))
}

// Rotate adds deg to the rotation angle. The box points stay in place.
func (e *Ellipse) Rotate(deg float64) {
	if len(e.points) < 2 {
		return
	}
	e.angle = normalizeAngle(e.angle + deg)
}

// Scale scales the box points about their midpoint. A shrink that would
// collapse the contour is rejected.
func (e *Ellipse) Scale(sx, sy float64) {
	if len(e.points) < 2 {
		return
	}
	e.scale(sx, sy, e.Bounds)
}
