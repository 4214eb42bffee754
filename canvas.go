// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/gogpu/sketch/internal/raster"
)

// HighlightPadding is the gap in pixels between a selected shape's bounds
// and its dashed highlight.
const HighlightPadding = 5

// Phase is the construction state of a Canvas.
type Phase uint8

const (
	// Idle means no shape is under construction.
	Idle Phase = iota
	// Constructing means a shape is receiving points.
	Constructing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Constructing:
		return "constructing"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Canvas owns an ordered collection of committed shapes, the shape under
// construction and the current selection.
//
// Construction follows the pointer protocol Press, Drag, Release. Line,
// Rectangle, Ellipse and Polygon are built in one gesture and commit on
// Release. Polyline and Bezier take one Press per point and commit on an
// explicit Commit, typically bound to a secondary click. A shape that fails
// its finalization check is silently discarded.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	shapes    []Transformable
	active    Transformable
	tool      Kind
	style     Style
	sides     int
	selected  uuid.UUID
	highlight *Dash
}

// NewCanvas creates an empty canvas. WithTool selects the initial tool;
// style options and WithSides set the defaults for new shapes.
func NewCanvas(opts ...Option) *Canvas {
	o := applyOptions(opts)
	if o.tool >= kindCount {
		o.tool = KindLine
	}
	return &Canvas{
		tool:      o.tool,
		style:     o.style,
		sides:     max(o.sides, 3),
		highlight: NewDash(4, 4),
	}
}

// Phase returns the construction state.
func (c *Canvas) Phase() Phase {
	if c.active != nil {
		return Constructing
	}
	return Idle
}

// Active returns the shape under construction, or nil when idle.
func (c *Canvas) Active() Transformable {
	return c.active
}

// Tool returns the kind of shape the next Press creates.
func (c *Canvas) Tool() Kind {
	return c.tool
}

// SetTool switches the construction tool. A shape under construction is
// first committed, or discarded if it is incomplete.
func (c *Canvas) SetTool(k Kind) {
	if c.active != nil {
		c.Commit()
	}
	if k >= kindCount {
		k = KindLine
	}
	c.tool = k
}

// Style returns the style applied to new shapes.
func (c *Canvas) Style() Style {
	return c.style
}

// SetStyle sets the style applied to new shapes.
func (c *Canvas) SetStyle(s Style) {
	c.style = s.Normalize()
}

// Sides returns the side count of new polygons.
func (c *Canvas) Sides() int {
	return c.sides
}

// SetSides sets the side count of new polygons, coerced to at least 3.
func (c *Canvas) SetSides(n int) {
	c.sides = max(n, 3)
}

// Press handles a primary click at p. When idle it starts a new shape of
// the current tool; on a multi-click shape it adds the next point.
func (c *Canvas) Press(p Point) {
	if c.active == nil {
		s := NewShape(c.tool, WithStyle(c.style), WithSides(c.sides))
		s.SetDrawing(true)
		s.AddPoint(p)
		switch c.tool {
		case KindLine, KindRectangle, KindEllipse:
			// Seed the moving corner so the shape is drawable at once.
			s.AddPoint(p)
		}
		c.active = s
		Logger().Debug("sketch: construction started", "kind", c.tool, "id", s.ID())
		return
	}
	if c.tool.multiClick() {
		c.active.AddPoint(p)
		return
	}
	c.active.Drag(p)
}

// Drag handles pointer motion with the primary button held.
func (c *Canvas) Drag(p Point) {
	if c.active != nil {
		c.active.Drag(p)
	}
}

// Release handles the primary button going up at p. Single-gesture shapes
// take p as their final drag position and are committed.
func (c *Canvas) Release(p Point) {
	if c.active == nil || c.tool.multiClick() {
		return
	}
	c.active.Drag(p)
	c.Commit()
}

// Commit finalizes the shape under construction and appends it to the
// collection. It reports whether a shape was committed; an incomplete shape
// is discarded and Commit returns false.
func (c *Canvas) Commit() bool {
	s := c.active
	if s == nil {
		return false
	}
	c.active = nil
	s.SetDrawing(false)
	if !s.Finalize() {
		Logger().Debug("sketch: construction discarded",
			"kind", s.Kind(), "id", s.ID(), "points", len(s.Points()))
		return false
	}
	c.shapes = append(c.shapes, s)
	Logger().Debug("sketch: shape committed", "kind", s.Kind(), "id", s.ID())
	return true
}

// Discard drops the shape under construction.
func (c *Canvas) Discard() {
	c.active = nil
}

// Add finalizes a shape built outside the construction protocol and appends
// it. It returns false for a nil or incomplete shape, a shape still under
// construction (including the canvas's own active shape), or one the canvas
// already holds.
func (c *Canvas) Add(s Transformable) bool {
	if s == nil || s.Drawing() || s == c.active || c.index(s.ID()) >= 0 {
		return false
	}
	if !s.Finalize() {
		return false
	}
	c.shapes = append(c.shapes, s)
	return true
}

// Shapes returns the committed shapes in insertion order. The slice is a
// copy; the shapes themselves are owned by the canvas.
func (c *Canvas) Shapes() []Transformable {
	return slices.Clone(c.shapes)
}

// Len returns the number of committed shapes.
func (c *Canvas) Len() int {
	return len(c.shapes)
}

// Shape returns the committed shape with the given id.
func (c *Canvas) Shape(id uuid.UUID) (Transformable, bool) {
	i := c.index(id)
	if i < 0 {
		return nil, false
	}
	return c.shapes[i], true
}

func (c *Canvas) index(id uuid.UUID) int {
	return slices.IndexFunc(c.shapes, func(s Transformable) bool {
		return s.ID() == id
	})
}

// Remove deletes the committed shape with the given id and reports whether
// it existed. Removing the selected shape clears the selection.
func (c *Canvas) Remove(id uuid.UUID) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.shapes = slices.Delete(c.shapes, i, i+1)
	if c.selected == id {
		c.selected = uuid.Nil
	}
	return true
}

// Clear removes every shape, the shape under construction and the
// selection.
func (c *Canvas) Clear() {
	c.shapes = nil
	c.active = nil
	c.selected = uuid.Nil
}

// SelectAt selects the topmost committed shape containing p. Shapes are
// tested in reverse insertion order. A miss clears the selection.
func (c *Canvas) SelectAt(p Point) (Transformable, bool) {
	for i := len(c.shapes) - 1; i >= 0; i-- {
		if c.shapes[i].Contains(p) {
			c.selected = c.shapes[i].ID()
			return c.shapes[i], true
		}
	}
	c.selected = uuid.Nil
	return nil, false
}

// Select selects the committed shape with the given id.
func (c *Canvas) Select(id uuid.UUID) bool {
	if c.index(id) < 0 {
		return false
	}
	c.selected = id
	return true
}

// Selected returns the selected shape.
func (c *Canvas) Selected() (Transformable, bool) {
	if c.selected == uuid.Nil {
		return nil, false
	}
	return c.Shape(c.selected)
}

// ClearSelection deselects the selected shape.
func (c *Canvas) ClearSelection() {
	c.selected = uuid.Nil
}

// DeleteSelected removes the selected shape and reports whether there was
// one.
func (c *Canvas) DeleteSelected() bool {
	if c.selected == uuid.Nil {
		return false
	}
	return c.Remove(c.selected)
}

// MoveSelected translates the selected shape.
func (c *Canvas) MoveSelected(dx, dy int) bool {
	s, ok := c.Selected()
	if ok {
		s.Move(dx, dy)
	}
	return ok
}

// RotateSelected rotates the selected shape by deg degrees.
func (c *Canvas) RotateSelected(deg float64) bool {
	s, ok := c.Selected()
	if ok {
		s.Rotate(deg)
	}
	return ok
}

// ScaleSelected scales the selected shape. The shape may still reject a
// collapsing scale.
func (c *Canvas) ScaleSelected(sx, sy float64) bool {
	s, ok := c.Selected()
	if ok {
		s.Scale(sx, sy)
	}
	return ok
}

// Draw rasterizes the committed shapes in insertion order, the dashed
// highlight around the selection, then the shape under construction.
func (c *Canvas) Draw(dst Surface) {
	for _, s := range c.shapes {
		s.Draw(dst)
	}
	if s, ok := c.Selected(); ok {
		b := s.Bounds().Inset(-HighlightPadding)
		raster.PatternRect(b.Min.raster(), b.Max.raster(), c.highlight.On, paint(dst, Blue))
	}
	if c.active != nil {
		c.active.Draw(dst)
	}
}
