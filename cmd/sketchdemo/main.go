// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command sketchdemo builds one shape of every kind through the canvas
// pointer protocol and renders the result to an image file.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/sketch"
)

const (
	cellW = 200
	cellH = 170
)

func main() {
	var (
		width   = flag.Int("width", 3*cellW, "image width")
		height  = flag.Int("height", 2*cellH, "image height")
		output  = flag.String("output", "sketch.png", "output file (.png, .bmp, .tif)")
		zoom    = flag.Int("zoom", 1, "integer magnification of the saved image")
		sides   = flag.Int("sides", 6, "polygon side count")
		verbose = flag.Bool("v", false, "log canvas events to stderr")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c := sketch.NewCanvas(sketch.WithWidth(2), sketch.WithSides(*sides))
	for i, k := range sketch.Kinds() {
		origin := sketch.Pt(i%3*cellW, i/3*cellH)
		c.SetTool(k)
		build(c, k, origin)
	}
	c.SetTool(sketch.KindLine)
	edit(c)

	pm := sketch.NewPixmap(*width, *height)
	pm.Clear(sketch.White)
	c.Draw(pm)
	label(pm)

	img := image.Image(pm)
	if *zoom > 1 {
		img = pm.Zoom(*zoom)
	}
	if err := sketch.SaveImage(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%d shapes, %dx%d)\n", *output, c.Len(),
		img.Bounds().Dx(), img.Bounds().Dy())
}

// build feeds the pointer events that construct a shape of kind k inside
// the cell at o.
func build(c *sketch.Canvas, k sketch.Kind, o sketch.Point) {
	at := func(x, y int) sketch.Point { return o.Add(sketch.Pt(x, y)) }

	switch k {
	case sketch.KindLine:
		c.SetStyle(sketch.Style{Stroke: sketch.Hex("#c0392b"), Width: 3})
		c.Press(at(20, 40))
		c.Drag(at(100, 90))
		c.Release(at(180, 140))
	case sketch.KindRectangle:
		c.SetStyle(sketch.Style{Stroke: sketch.Black, Fill: sketch.Hex("#f1c40f"), Width: 2})
		c.Press(at(30, 40))
		c.Release(at(170, 140))
	case sketch.KindEllipse:
		c.SetStyle(sketch.Style{Stroke: sketch.Hex("#2c3e50"), Fill: sketch.Hex("#aed6f1"), Width: 2})
		c.Press(at(20, 50))
		c.Release(at(180, 130))
	case sketch.KindPolygon:
		c.SetStyle(sketch.Style{Stroke: sketch.Hex("#27ae60"), Fill: sketch.Hex("#d5f5e3"), Width: 2})
		c.Press(at(100, 95))
		c.Drag(at(100, 70))
		c.Release(at(100, 40))
	case sketch.KindPolyline:
		c.SetStyle(sketch.Style{Stroke: sketch.Hex("#8e44ad"), Fill: sketch.Hex("#ebdef0"), Width: 2})
		for _, p := range []sketch.Point{at(30, 40), at(170, 50), at(150, 140), at(60, 120), at(34, 46)} {
			c.Press(p)
			c.Release(p)
		}
		c.Commit()
	case sketch.KindBezier:
		c.SetStyle(sketch.Style{Stroke: sketch.Hex("#d35400"), Width: 2})
		c.Press(at(20, 100))
		c.Drag(at(50, 30))
		c.Release(at(50, 30))
		c.Press(at(100, 100))
		c.Drag(at(130, 150))
		c.Release(at(130, 150))
		c.Press(at(180, 60))
		c.Commit()
	}
}

// edit exercises the selection tools: the ellipse is rotated by dragging
// around its centre, the line is shrunk and the last selection stays
// highlighted.
func edit(c *sketch.Canvas) {
	if s, ok := c.SelectAt(sketch.Pt(2*cellW+100, 90)); ok {
		center := s.Bounds().Center()
		c.RotateSelected(sketch.DragAngle(center, center.Add(sketch.Pt(50, 0)), center.Add(sketch.Pt(40, 25))))
	}
	if _, ok := c.SelectAt(sketch.Pt(100, 90)); ok {
		c.ScaleSelected(sketch.DragScale(-20, -20))
	}
	c.SelectAt(sketch.Pt(cellW+100, 95))
}

// label writes the title-cased kind name into the corner of every cell.
func label(pm *sketch.Pixmap) {
	title := cases.Title(language.English)
	d := &font.Drawer{
		Dst:  pm,
		Src:  image.NewUniform(sketch.Gray.Color()),
		Face: basicfont.Face7x13,
	}
	for i, k := range sketch.Kinds() {
		d.Dot = fixed.P(i%3*cellW+6, i/3*cellH+16)
		d.DrawString(title.String(k.String()))
	}
}
