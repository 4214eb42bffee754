// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sketch is the shape model of a 2D vector editor: shapes that are
// built from pointer events, rasterized by integer scan conversion, hit
// tested, moved, rotated and scaled.
//
// # Overview
//
// Six shape kinds are provided: Line, Rectangle, Ellipse, Polygon, Polyline
// and Bezier. All implement [Transformable]. Every shape owns its points;
// [Shape.Points] hands out a copy.
//
// A [Canvas] keeps the committed shapes in insertion order together with the
// shape under construction and the selection.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	c := sketch.NewCanvas(sketch.WithTool(sketch.KindRectangle),
//		sketch.WithFill(sketch.Yellow))
//
//	// Press, drag and release build a rectangle.
//	c.Press(sketch.Pt(20, 20))
//	c.Drag(sketch.Pt(60, 40))
//	c.Release(sketch.Pt(80, 60))
//
//	pm := sketch.NewPixmap(128, 128)
//	pm.Clear(sketch.White)
//	c.Draw(pm)
//	pm.Save("out.png")
//
// # Rasterization
//
// Shapes draw with hand-rolled kernels: Bresenham lines stamped with a
// square of the stroke width, a half-open scanline fill for polygons,
// sampled parametric ellipses and de Casteljau cubic segments. There is no
// anti-aliasing; every pixel is either written or left alone.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees; positive rotation is clockwise on screen
//
// # Containment
//
// Filled regions use the half-open scanline rule: pixels on the top and
// left edges of a rectangle are inside, pixels on the bottom and right
// edges are outside. The fill itself also paints the last pixel of every
// span, so a filled rectangle covers its right column. Line-like shapes hit
// within [HitTolerance] pixels.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
