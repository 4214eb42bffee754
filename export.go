// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when an image format cannot be derived
// from a file name or is not known to the encoder.
var ErrUnsupportedFormat = errors.New("sketch: unsupported image format")

// Format selects the image encoding used by Encode and Save.
type Format int

const (
	// FormatPNG encodes with image/png.
	FormatPNG Format = iota
	// FormatBMP encodes with golang.org/x/image/bmp.
	FormatBMP
	// FormatTIFF encodes with golang.org/x/image/tiff (deflate compressed).
	FormatTIFF
)

// String returns the canonical file extension of the format without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath derives the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Encode writes the pixmap to w in the given format.
func (p *Pixmap) Encode(w io.Writer, f Format) error {
	return encodeImage(w, p.ToImage(), f)
}

func encodeImage(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%v: %w", f, ErrUnsupportedFormat)
	}
}

// Save writes the pixmap to path, choosing the encoder from the file
// extension (.png, .bmp, .tif or .tiff).
func (p *Pixmap) Save(path string) error {
	return SaveImage(path, p.ToImage())
}

// SaveImage writes img to path, choosing the encoder from the file
// extension like Pixmap.Save.
func SaveImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := encodeImage(out, img, f); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}

// Zoom returns a copy of the pixmap enlarged by an integer factor with
// nearest-neighbour sampling, so every source pixel becomes a crisp
// factor×factor block. Factors below 1 are treated as 1.
func (p *Pixmap) Zoom(factor int) *image.NRGBA {
	factor = max(factor, 1)
	src := p.ToImage()
	if factor == 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, p.width*factor, p.height*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
