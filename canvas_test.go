// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "constructing", Constructing.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas()
	assert.Equal(t, Idle, c.Phase())
	assert.Equal(t, KindLine, c.Tool())
	assert.Equal(t, DefaultStyle(), c.Style())
	assert.Equal(t, DefaultSides, c.Sides())
	assert.Zero(t, c.Len())
	assert.Nil(t, c.Active())

	c = NewCanvas(WithTool(KindEllipse), WithWidth(0), WithSides(1), WithFill(Red))
	assert.Equal(t, KindEllipse, c.Tool())
	assert.Equal(t, 1, c.Style().Width)
	assert.Equal(t, Red, c.Style().Fill)
	assert.Equal(t, 3, c.Sides())
}

func TestCanvas_SingleGesture(t *testing.T) {
	for _, k := range []Kind{KindLine, KindRectangle, KindEllipse, KindPolygon} {
		t.Run(k.String(), func(t *testing.T) {
			c := NewCanvas(WithTool(k), WithStroke(Red))
			c.Press(Pt(10, 10))
			assert.Equal(t, Constructing, c.Phase())
			require.NotNil(t, c.Active())
			assert.True(t, c.Active().Drawing())

			c.Drag(Pt(20, 15))
			c.Release(Pt(30, 30))
			assert.Equal(t, Idle, c.Phase())
			require.Equal(t, 1, c.Len())

			s := c.Shapes()[0]
			assert.Equal(t, k, s.Kind())
			assert.False(t, s.Drawing())
			assert.Equal(t, Red, s.Style().Stroke)
		})
	}
}

func TestCanvas_RectangleGesture(t *testing.T) {
	c := NewCanvas(WithTool(KindRectangle))
	c.Press(Pt(0, 0))
	assert.Len(t, c.Active().Points(), 4)
	c.Drag(Pt(5, 5))
	c.Release(Pt(10, 10))
	require.Equal(t, 1, c.Len())
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, c.Shapes()[0].Points())
}

func TestCanvas_DegenerateDiscarded(t *testing.T) {
	for _, k := range []Kind{KindLine, KindRectangle, KindEllipse} {
		c := NewCanvas(WithTool(k))
		c.Press(Pt(4, 4))
		c.Release(Pt(4, 4))
		assert.Zero(t, c.Len(), k.String())
		assert.Equal(t, Idle, c.Phase())
	}
}

func TestCanvas_PolygonClickUsesDefaultRadius(t *testing.T) {
	c := NewCanvas(WithTool(KindPolygon), WithSides(6))
	c.Press(Pt(50, 50))
	c.Release(Pt(50, 50))
	require.Equal(t, 1, c.Len())
	g, ok := c.Shapes()[0].(*Polygon)
	require.True(t, ok)
	assert.Equal(t, 6, g.Sides())
	assert.Equal(t, float64(DefaultPolygonRadius), g.Radius())
	assert.Equal(t, Pt(50, 45), g.Points()[0])
}

func TestCanvas_Polyline(t *testing.T) {
	c := NewCanvas(WithTool(KindPolyline))
	c.Press(Pt(0, 0))
	c.Release(Pt(0, 0))
	c.Press(Pt(20, 0))
	c.Release(Pt(20, 0))
	c.Press(Pt(20, 20))
	assert.Equal(t, Constructing, c.Phase())
	assert.Zero(t, c.Len())

	require.True(t, c.Commit())
	require.Equal(t, 1, c.Len())
	assert.Equal(t, []Point{{0, 0}, {20, 0}, {20, 20}}, c.Shapes()[0].Points())
}

func TestCanvas_Bezier(t *testing.T) {
	c := NewCanvas(WithTool(KindBezier))
	c.Press(Pt(0, 0))
	c.Drag(Pt(5, -10))
	c.Release(Pt(5, -10))
	c.Press(Pt(30, 0))
	c.Drag(Pt(40, 10))
	c.Press(Pt(60, 0))
	require.True(t, c.Commit())
	assert.Equal(t, newTestBezier().Points(), c.Shapes()[0].Points())
}

func TestCanvas_SetToolForcesCommit(t *testing.T) {
	c := NewCanvas(WithTool(KindPolyline))
	c.Press(Pt(0, 0))
	c.Press(Pt(10, 0))
	c.SetTool(KindLine)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, Idle, c.Phase())
	assert.Equal(t, KindLine, c.Tool())

	c.SetTool(KindPolyline)
	c.Press(Pt(0, 0))
	c.SetTool(KindRectangle)
	assert.Equal(t, 1, c.Len(), "a one-point polyline is discarded")
}

func TestCanvas_SetToolUnknown(t *testing.T) {
	c := NewCanvas()
	c.SetTool(Kind(200))
	assert.Equal(t, KindLine, c.Tool())
}

func TestCanvas_Discard(t *testing.T) {
	c := NewCanvas()
	c.Press(Pt(0, 0))
	c.Discard()
	assert.Equal(t, Idle, c.Phase())
	assert.False(t, c.Commit())
	assert.Zero(t, c.Len())
}

func TestCanvas_StyleAppliesToNewShapes(t *testing.T) {
	c := NewCanvas()
	c.SetStyle(Style{Stroke: Green, Fill: Yellow, Width: -1})
	c.Press(Pt(0, 0))
	c.Release(Pt(5, 5))
	s := c.Shapes()[0]
	assert.Equal(t, Style{Stroke: Green, Fill: Yellow, Width: 1}, s.Style())

	c.SetSides(0)
	assert.Equal(t, 3, c.Sides())
}

func TestCanvas_SelectAtReverseOrder(t *testing.T) {
	c := NewCanvas()
	a := newTestRect(Pt(0, 0), Pt(20, 20))
	b := newTestRect(Pt(10, 10), Pt(30, 30))
	require.True(t, c.Add(a))
	require.True(t, c.Add(b))

	got, ok := c.SelectAt(Pt(15, 15))
	require.True(t, ok)
	assert.Equal(t, b.ID(), got.ID())

	got, ok = c.SelectAt(Pt(5, 5))
	require.True(t, ok)
	assert.Equal(t, a.ID(), got.ID())
	sel, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, a.ID(), sel.ID())

	_, ok = c.SelectAt(Pt(100, 100))
	assert.False(t, ok)
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestCanvas_SelectionEditing(t *testing.T) {
	c := NewCanvas()
	l := newTestLine(Pt(0, 0), Pt(10, 0))
	require.True(t, c.Add(l))

	assert.False(t, c.MoveSelected(1, 1))
	assert.False(t, c.RotateSelected(90))
	assert.False(t, c.ScaleSelected(2, 2))

	require.True(t, c.Select(l.ID()))
	assert.True(t, c.MoveSelected(0, 5))
	assert.Equal(t, []Point{{0, 5}, {10, 5}}, l.Points())
	assert.True(t, c.ScaleSelected(0.01, 0.01))
	assert.Equal(t, []Point{{0, 5}, {10, 5}}, l.Points())
	assert.True(t, c.ScaleSelected(2, 2))
	assert.Equal(t, []Point{{-5, 5}, {15, 5}}, l.Points())
	assert.True(t, c.RotateSelected(90))
	assert.Equal(t, []Point{{5, -5}, {5, 15}}, l.Points())

	c.ClearSelection()
	_, ok := c.Selected()
	assert.False(t, ok)
	assert.False(t, c.Select(uuid.New()))
}

func TestCanvas_DeleteAndRemove(t *testing.T) {
	c := NewCanvas()
	a := newTestLine(Pt(0, 0), Pt(10, 0))
	b := newTestLine(Pt(0, 20), Pt(10, 20))
	c.Add(a)
	c.Add(b)

	assert.False(t, c.DeleteSelected())
	c.SelectAt(Pt(5, 20))
	assert.True(t, c.DeleteSelected())
	assert.Equal(t, 1, c.Len())
	_, ok := c.Shape(b.ID())
	assert.False(t, ok)
	_, ok = c.Selected()
	assert.False(t, ok)

	got, ok := c.Shape(a.ID())
	require.True(t, ok)
	assert.Same(t, a, got)
	assert.True(t, c.Remove(a.ID()))
	assert.False(t, c.Remove(a.ID()))
	assert.Zero(t, c.Len())
}

func TestCanvas_AddRejects(t *testing.T) {
	c := NewCanvas()
	assert.False(t, c.Add(nil))
	assert.False(t, c.Add(NewLine()))

	l := newTestLine(Pt(0, 0), Pt(5, 5))
	assert.True(t, c.Add(l))
	assert.False(t, c.Add(l))
	assert.Equal(t, 1, c.Len())
}

func TestCanvas_AddRejectsActive(t *testing.T) {
	c := NewCanvas(WithTool(KindPolyline))
	c.Press(Pt(0, 0))
	c.Press(Pt(20, 0))
	active := c.Active()
	require.NotNil(t, active)

	assert.False(t, c.Add(active))
	assert.Zero(t, c.Len())
	assert.Equal(t, Constructing, c.Phase())

	c.Press(Pt(40, 40))
	require.True(t, c.Commit())
	shapes := c.Shapes()
	require.Len(t, shapes, 1)
	assert.Same(t, active, shapes[0])
	assert.Equal(t, []Point{{0, 0}, {20, 0}, {40, 40}}, shapes[0].Points())

	c.Select(active.ID())
	require.True(t, c.DeleteSelected())
	assert.Zero(t, c.Len())
}

func TestCanvas_AddRejectsDrawing(t *testing.T) {
	c := NewCanvas()
	l := newTestLine(Pt(0, 0), Pt(10, 10))
	l.SetDrawing(true)
	assert.False(t, c.Add(l))
	assert.True(t, l.Drawing())

	l.SetDrawing(false)
	assert.True(t, c.Add(l))
}

func TestCanvas_ShapesIsCopy(t *testing.T) {
	c := NewCanvas()
	c.Add(newTestLine(Pt(0, 0), Pt(5, 5)))
	shapes := c.Shapes()
	shapes[0] = nil
	assert.NotNil(t, c.Shapes()[0])
}

func TestCanvas_Clear(t *testing.T) {
	c := NewCanvas()
	l := newTestLine(Pt(0, 0), Pt(5, 5))
	c.Add(l)
	c.Select(l.ID())
	c.Press(Pt(1, 1))
	c.Clear()
	assert.Zero(t, c.Len())
	assert.Equal(t, Idle, c.Phase())
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestCanvas_DrawOrder(t *testing.T) {
	c := NewCanvas(WithStroke(Red), WithTool(KindRectangle))
	c.Press(Pt(0, 0))
	c.Release(Pt(10, 10))

	c.SetStyle(Style{Stroke: Green, Width: 1})
	c.SetTool(KindLine)
	c.Press(Pt(0, 0))
	c.Drag(Pt(10, 0))

	pm := NewPixmap(40, 40)
	pm.Clear(White)
	c.Draw(pm)
	assert.Equal(t, Green.Color(), pm.GetPixel(5, 0).Color(), "active shape is drawn last")
	assert.Equal(t, Red.Color(), pm.GetPixel(0, 5).Color())
}

func TestCanvas_DrawHighlight(t *testing.T) {
	c := NewCanvas()
	r := newTestRect(Pt(10, 10), Pt(30, 30))
	c.Add(r)

	pm := NewPixmap(50, 50)
	pm.Clear(White)
	c.Draw(pm)
	assert.Zero(t, pm.Count(Blue))

	c.Select(r.ID())
	pm.Clear(White)
	c.Draw(pm)
	// The highlight starts at the padded corner: 4 pixels on, 4 off.
	assert.Equal(t, Blue.Color(), pm.GetPixel(5, 5).Color())
	assert.Equal(t, Blue.Color(), pm.GetPixel(8, 5).Color())
	assert.Equal(t, White.Color(), pm.GetPixel(9, 5).Color())
	assert.Equal(t, Blue.Color(), pm.GetPixel(13, 5).Color())
	assert.Equal(t, White.Color(), pm.GetPixel(20, 20).Color())
	// Half of the 120 perimeter pixels of the padded box.
	assert.Equal(t, 60, pm.Count(Blue))
}

func TestCanvas_DrawHighlightEllipseUsesContour(t *testing.T) {
	c := NewCanvas()
	e := newTestEllipse(Pt(10, 20), Pt(30, 30))
	c.Add(e)
	e.Rotate(90)
	c.Select(e.ID())

	pm := NewPixmap(60, 60)
	c.Draw(pm)
	// Rotated contour spans y 15..35, so the padded box starts at y=10.
	assert.Equal(t, Blue.Color(), pm.GetPixel(10, 10).Color())
}
