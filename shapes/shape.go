// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes provides the drawable primitives produced by a drawing
// import, and the [Container] that groups them under a distance unit
// and a uniform scale.
package shapes

import (
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/srwiley/rasterx"
)

// DefaultStrokeWidth is the stroke width of a newly created shape,
// in the local units of its container.
const DefaultStrokeWidth = 1.0

// Strokeable is implemented by anything with an outline that can be
// recolored and resized.
type Strokeable interface {
	// Stroke returns the outline color. It is never nil.
	Stroke() color.Color

	// SetStroke sets the outline color.
	SetStroke(c color.Color)

	// StrokeWidth returns the outline width in local units.
	StrokeWidth() float64

	// SetStrokeWidth sets the outline width in local units.
	SetStrokeWidth(w float64)
}

// Shape is a drawable primitive in model space.
type Shape interface {
	Strokeable

	// Bounds returns the geometric bounds of the shape,
	// not including the stroke width.
	Bounds() Bounds

	// AddTo adds the outline of the shape to a, mapped into device space
	// by m. m must be a similarity transform: a uniform scale combined
	// with any rotation, reflection and translation.
	AddTo(a rasterx.Adder, m rasterx.Matrix2D)

	// IsClosed returns whether the outline encloses an area that
	// can be filled.
	IsClosed() bool

	// FillColor returns the interior color, or nil for an unfilled shape.
	FillColor() color.Color
}

// Base holds the paint properties common to all primitives.
// The zero value strokes in black with [DefaultStrokeWidth].
type Base struct {
	// Layer is the name of the drawing layer the entity came from.
	Layer string

	// Fill is the interior color of closed shapes; nil means no fill.
	Fill color.Color

	stroke      color.Color
	strokeWidth float64
	widthSet    bool
}

// Stroke returns the outline color, black by default.
func (b *Base) Stroke() color.Color {
	if b.stroke == nil {
		return colors.Black
	}
	return b.stroke
}

// SetStroke sets the outline color.
func (b *Base) SetStroke(c color.Color) { b.stroke = c }

// StrokeWidth returns the outline width, [DefaultStrokeWidth] until set.
func (b *Base) StrokeWidth() float64 {
	if !b.widthSet {
		return DefaultStrokeWidth
	}
	return b.strokeWidth
}

// SetStrokeWidth sets the outline width in local units.
func (b *Base) SetStrokeWidth(w float64) {
	b.strokeWidth = w
	b.widthSet = true
}

// FillColor returns [Base.Fill].
func (b *Base) FillColor() color.Color { return b.Fill }
