// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is an unbounded Surface that remembers the last color written to
// every pixel.
type recorder map[Point]RGBA

func (r recorder) Bounds() image.Rectangle {
	return image.Rect(-1<<16, -1<<16, 1<<16, 1<<16)
}

func (r recorder) SetPixel(x, y int, c RGBA) {
	r[Pt(x, y)] = c
}

func (r recorder) has(x, y int) bool {
	_, ok := r[Pt(x, y)]
	return ok
}

func (r recorder) at(x, y int) RGBA {
	return r[Pt(x, y)]
}

func render(s Shape) recorder {
	r := recorder{}
	s.Draw(r)
	return r
}

func newTestLine(a, b Point, opts ...Option) *Line {
	l := NewLine(opts...)
	l.AddPoint(a)
	l.AddPoint(b)
	return l
}

func newTestRect(a, b Point, opts ...Option) *Rectangle {
	r := NewRectangle(opts...)
	r.AddPoint(a)
	r.AddPoint(b)
	return r
}

func newTestEllipse(a, b Point, opts ...Option) *Ellipse {
	e := NewEllipse(opts...)
	e.AddPoint(a)
	e.AddPoint(b)
	return e
}

func newTestPolygon(center, edge Point, opts ...Option) *Polygon {
	g := NewPolygon(opts...)
	g.AddPoint(center)
	g.AddPoint(edge)
	return g
}

func newTestPolyline(pts []Point, opts ...Option) *Polyline {
	l := NewPolyline(opts...)
	for _, p := range pts {
		l.AddPoint(p)
	}
	return l
}

// newTestBezier builds the two-segment chain
// [(0,0) (5,-10) (20,-10) (30,0) (40,10) (60,0) (60,0)].
func newTestBezier(opts ...Option) *Bezier {
	b := NewBezier(opts...)
	b.AddPoint(Pt(0, 0))
	b.Drag(Pt(5, -10))
	b.AddPoint(Pt(30, 0))
	b.Drag(Pt(40, 10))
	b.AddPoint(Pt(60, 0))
	b.Finalize()
	return b
}

// sampleShapes returns one complete shape of every kind.
func sampleShapes() map[string]Transformable {
	return map[string]Transformable{
		"line":      newTestLine(Pt(0, 0), Pt(10, 4)),
		"rectangle": newTestRect(Pt(0, 0), Pt(10, 10)),
		"ellipse":   newTestEllipse(Pt(0, 0), Pt(20, 10)),
		"polygon":   newTestPolygon(Pt(50, 50), Pt(50, 30), WithSides(5)),
		"polyline":  newTestPolyline([]Point{Pt(0, 0), Pt(20, 0), Pt(20, 20), Pt(6, 6)}),
		"bezier":    newTestBezier(),
	}
}

func TestShape_Kinds(t *testing.T) {
	want := map[string]Kind{
		"line":      KindLine,
		"rectangle": KindRectangle,
		"ellipse":   KindEllipse,
		"polygon":   KindPolygon,
		"polyline":  KindPolyline,
		"bezier":    KindBezier,
	}
	for name, s := range sampleShapes() {
		assert.Equal(t, want[name], s.Kind(), name)
	}
}

func TestShape_PointsIsSnapshot(t *testing.T) {
	for name, s := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			before := s.Points()
			require.NotEmpty(t, before)
			snap := s.Points()
			snap[0] = Pt(999, 999)
			assert.Equal(t, before, s.Points())
		})
	}
}

func TestShape_EmptyIsNoop(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewShape(k)
			assert.NotNil(t, s.Points())
			assert.Empty(t, s.Points())
			assert.False(t, s.Contains(Pt(0, 0)))
			assert.Empty(t, render(s))
			s.Move(1, 1)
			s.Rotate(45)
			s.Scale(2, 2)
			assert.Empty(t, s.Points())
			assert.False(t, s.Finalize())
		})
	}
}

func TestShape_UniqueIDs(t *testing.T) {
	a, b := NewLine(), NewLine()
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestShape_SetStyleCoercesWidth(t *testing.T) {
	s := NewLine(WithWidth(-4))
	assert.Equal(t, 1, s.Style().Width)
	s.SetStyle(Style{Stroke: Red, Width: 0})
	assert.Equal(t, 1, s.Style().Width)
	assert.Equal(t, Red, s.Style().Stroke)
}

func TestShape_MoveRoundTrip(t *testing.T) {
	moves := []Point{{7, -3}, {-120, 45}, {0, 0}, {1, 1}}
	for name, s := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			orig := s.Points()
			for _, d := range moves {
				s.Move(d.X, d.Y)
				s.Move(-d.X, -d.Y)
				assert.Equal(t, orig, s.Points())
			}
		})
	}
}

func TestShape_MoveTranslatesBounds(t *testing.T) {
	for name, s := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			b := s.Bounds()
			s.Move(5, -8)
			got := s.Bounds()
			assert.Equal(t, b.Min.Add(Pt(5, -8)), got.Min)
			assert.Equal(t, b.Max.Add(Pt(5, -8)), got.Max)
		})
	}
}

func TestShape_RotateClosure(t *testing.T) {
	for _, deg := range []float64{17, 30, 45, 90} {
		for name, s := range sampleShapes() {
			t.Run(name, func(t *testing.T) {
				orig := s.Points()
				s.Rotate(deg)
				s.Rotate(-deg)
				got := s.Points()
				require.Len(t, got, len(orig))
				for i := range orig {
					assert.InDelta(t, orig[i].X, got[i].X, 1, "point %d", i)
					assert.InDelta(t, orig[i].Y, got[i].Y, 1, "point %d", i)
				}
			})
		}
	}
}

func TestShape_ScaleCollapseRejected(t *testing.T) {
	for name, s := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			orig := s.Points()
			s.Scale(0.01, 0.01)
			assert.Equal(t, orig, s.Points())
		})
	}
}

func TestShape_ScaleUpAndBack(t *testing.T) {
	for name, s := range sampleShapes() {
		t.Run(name, func(t *testing.T) {
			b := s.Bounds()
			s.Scale(2, 2)
			assert.Greater(t, s.Bounds().Dx(), b.Dx())
			s.Scale(0.5, 0.5)
			got := s.Bounds()
			assert.InDelta(t, b.Dx(), got.Dx(), 2)
			assert.InDelta(t, b.Dy(), got.Dy(), 2)
		})
	}
}

func TestShape_DrawingFlag(t *testing.T) {
	s := NewShape(KindPolyline)
	assert.False(t, s.Drawing())
	s.SetDrawing(true)
	assert.True(t, s.Drawing())
}
