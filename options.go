// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sketch

// Option configures a shape created by NewShape or the defaults of a Canvas.
// Use functional options to customize creation.
//
// Example:
//
//	// Default black one-pixel outline
//	s := sketch.NewShape(sketch.KindLine)
//
//	// Red hexagon with a yellow fill
//	s := sketch.NewShape(sketch.KindPolygon,
//		sketch.WithStroke(sketch.Red),
//		sketch.WithFill(sketch.Yellow),
//		sketch.WithSides(6))
type Option func(*options)

// options holds optional configuration for shape and canvas creation.
type options struct {
	style Style
	sides int
	tool  Kind
}

// defaultOptions returns the default creation options.
func defaultOptions() options {
	return options{
		style: DefaultStyle(),
		sides: DefaultSides,
		tool:  KindLine,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.style = o.style.Normalize()
	return o
}

// WithStyle replaces the whole style.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = s
	}
}

// WithStroke sets the outline color.
func WithStroke(c RGBA) Option {
	return func(o *options) {
		o.style.Stroke = c
	}
}

// WithFill sets the interior color. Pass Transparent to disable filling.
func WithFill(c RGBA) Option {
	return func(o *options) {
		o.style.Fill = c
	}
}

// WithWidth sets the stroke width. Values below 1 are coerced to 1.
func WithWidth(w int) Option {
	return func(o *options) {
		o.style.Width = w
	}
}

// WithSides sets the number of polygon sides. Values below 3 are coerced
// to 3. Other kinds ignore it.
func WithSides(n int) Option {
	return func(o *options) {
		o.sides = n
	}
}

// WithTool sets the initial construction tool of a Canvas.
// NewShape ignores it.
func WithTool(k Kind) Option {
	return func(o *options) {
		o.tool = k
	}
}
