// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned by ParseKind for names that match no shape kind.
var ErrUnknownKind = errors.New("sketch: unknown shape kind")

// Kind identifies a shape variant.
type Kind uint8

const (
	// KindLine is a straight segment between two points.
	KindLine Kind = iota
	// KindRectangle is an axis-aligned rectangle stored as four corners.
	KindRectangle
	// KindEllipse is an ellipse inscribed in a two-point bounding box.
	KindEllipse
	// KindPolygon is a regular polygon with N equal sides.
	KindPolygon
	// KindPolyline is an open or auto-closed chain of segments.
	KindPolyline
	// KindBezier is a chain of cubic Bézier segments sharing anchors.
	KindBezier

	kindCount
)

var kindNames = [kindCount]string{
	KindLine:      "line",
	KindRectangle: "rectangle",
	KindEllipse:   "ellipse",
	KindPolygon:   "polygon",
	KindPolyline:  "polyline",
	KindBezier:    "bezier",
}

// Kinds returns every shape kind in declaration order.
func Kinds() []Kind {
	ks := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		ks = append(ks, k)
	}
	return ks
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind with the given name (case-insensitive).
// "rect" and "curve" are accepted as aliases.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "rect":
		return KindRectangle, nil
	case "curve":
		return KindBezier, nil
	}
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// multiClick reports whether the kind is built from several separate
// clicks and needs an explicit commit, rather than a single press-drag-
// release gesture.
func (k Kind) multiClick() bool {
	return k == KindPolyline || k == KindBezier
}

// NewShape creates an empty shape of the given kind with the configured
// style. It is the entry point used by construction tools. Unknown kinds
// fall back to KindLine.
func NewShape(k Kind, opts ...Option) Transformable {
	switch k {
	case KindRectangle:
		return NewRectangle(opts...)
	case KindEllipse:
		return NewEllipse(opts...)
	case KindPolygon:
		return NewPolygon(opts...)
	case KindPolyline:
		return NewPolyline(opts...)
	case KindBezier:
		return NewBezier(opts...)
	default:
		return NewLine(opts...)
	}
}
