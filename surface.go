// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"image"
	"image/draw"

	"github.com/gogpu/sketch/internal/raster"
)

// Surface is a caller-owned pixel target that shapes rasterize onto.
//
// Implementations must silently ignore writes outside Bounds. Surfaces are
// NOT thread-safe; drawing happens on the goroutine that handles input.
type Surface interface {
	// Bounds returns the writable pixel area.
	Bounds() image.Rectangle

	// SetPixel overwrites the pixel at (x, y) with c.
	SetPixel(x, y int, c RGBA)
}

// imageSurface adapts a draw.Image to the Surface interface.
type imageSurface struct {
	img draw.Image
}

// ImageSurface returns a Surface that writes into img.
func ImageSurface(img draw.Image) Surface {
	return imageSurface{img: img}
}

func (s imageSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s imageSurface) SetPixel(x, y int, c RGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Bounds()) {
		return
	}
	s.img.Set(x, y, c.Color())
}

// painter turns kernel output into SetPixel calls of a single color.
type painter struct {
	dst Surface
	c   RGBA
}

func (p painter) Plot(x, y int) {
	p.dst.SetPixel(x, y, p.c)
}

func paint(dst Surface, c RGBA) raster.Plotter {
	return painter{dst: dst, c: c}
}
