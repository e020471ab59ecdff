// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"image/color"
	"log/slog"

	"cogentcore.org/dxfimport/distance"
	"github.com/google/uuid"
	"github.com/srwiley/rasterx"
)

// Container is a group of imported shapes in the model space of a single
// distance unit. A container carries at most one transform: a uniform
// scale that converts its geometry into the units of the hosting view.
type Container struct {
	// ID identifies this container across rendering passes.
	ID uuid.UUID

	children []Shape
	unit     distance.Units

	// extents are the drawing extents declared by the source file,
	// used as the bounds while the container has no children.
	extents Bounds

	// scale is the active uniform scale, or nil for none.
	scale *float64

	cache   bool
	version uint64
}

// NewContainer returns a new empty container for geometry in the given
// unit, with the extents declared by the source file (if any).
func NewContainer(unit distance.Units, extents Bounds) *Container {
	return &Container{ID: uuid.New(), unit: unit, extents: extents}
}

// Add appends shapes to the container.
func (c *Container) Add(s ...Shape) {
	c.children = append(c.children, s...)
	c.Changed()
}

// Children returns the shapes in drawing order. The slice must not be
// modified; call [Container.Changed] after mutating a shape directly.
func (c *Container) Children() []Shape { return c.children }

// Len returns the number of shapes.
func (c *Container) Len() int { return len(c.children) }

// IsEmpty returns whether c is nil or has no shapes.
func (c *Container) IsEmpty() bool { return c == nil || len(c.children) == 0 }

// DistanceUnit returns the unit of the container's model space.
func (c *Container) DistanceUnit() distance.Units { return c.unit }

// SetDistanceUnit sets the unit of the container's model space.
// It does not rescale anything.
func (c *Container) SetDistanceUnit(u distance.Units) { c.unit = u }

// Extents returns the drawing extents declared by the source file.
func (c *Container) Extents() Bounds { return c.extents }

// Bounds returns the union of the bounds of all shapes, in the local
// (unscaled) coordinates of the container. An empty container reports
// its declared extents.
func (c *Container) Bounds() Bounds {
	if len(c.children) == 0 {
		return c.extents
	}
	b := EmptyBounds()
	for _, s := range c.children {
		b = b.Union(s.Bounds())
	}
	return b
}

// Scale sets the container transform to a uniform scale converting from
// one unit to another. Any previous transform is replaced.
func (c *Container) Scale(from, to distance.Units) error {
	f, err := distance.Factor(from, to)
	if err != nil {
		return err
	}
	c.scale = &f
	c.Changed()
	return nil
}

// ScaleFactor returns the active uniform scale, which is 1 when no
// transform has been applied.
func (c *Container) ScaleFactor() float64 {
	if c.scale == nil {
		return 1
	}
	return *c.scale
}

// HasTransform returns whether a scale transform is active.
func (c *Container) HasTransform() bool { return c.scale != nil }

// Transform returns the active transform as a matrix.
func (c *Container) Transform() rasterx.Matrix2D {
	f := c.ScaleFactor()
	return rasterx.Identity.Scale(f, f)
}

// ClearTransform removes the active transform.
func (c *Container) ClearTransform() {
	c.scale = nil
	c.Changed()
}

// UpdateStrokeWidth sets a uniform stroke width on all shapes, derived
// from a basis width in the current unit converted to the reference unit
// and multiplied by ratio.
func (c *Container) UpdateStrokeWidth(reference, current distance.Units, basis, ratio float64) error {
	w, err := distance.Convert(basis, current, reference)
	if err != nil {
		return err
	}
	c.SetStrokeWidth(ratio * w)
	return nil
}

// SetStrokeWidth sets the stroke width of every shape, overriding any
// per-shape widths.
func (c *Container) SetStrokeWidth(w float64) {
	for _, s := range c.children {
		s.SetStrokeWidth(w)
	}
	c.Changed()
}

// SetStroke sets the stroke color of every shape.
func (c *Container) SetStroke(clr color.Color) {
	for _, s := range c.children {
		s.SetStroke(clr)
	}
	c.Changed()
}

// SetForeground recolors black and white strokes to fg, leaving custom
// colors alone unless force is set.
func (c *Container) SetForeground(fg color.Color, force bool) {
	for _, s := range c.children {
		AdjustStrokeForContrast(s, fg, force)
	}
	c.Changed()
}

// SetCache sets the rendering hint that the container may be drawn from
// a cached bitmap.
func (c *Container) SetCache(cache bool) { c.cache = cache }

// Cache returns the bitmap caching hint.
func (c *Container) Cache() bool { return c.cache }

// Version is incremented by every change to the container, so renderers
// can tell whether a cached bitmap is stale.
func (c *Container) Version() uint64 { return c.version }

// Changed marks the container as modified.
func (c *Container) Changed() { c.version++ }

// Reset discards all shapes and returns the container to an empty,
// unitless, untransformed state.
func (c *Container) Reset() {
	slog.Debug("shapes: resetting container", "id", c.ID, "shapes", len(c.children))
	c.children = nil
	c.unit = distance.Unitless
	c.extents = Bounds{}
	c.scale = nil
	c.cache = false
	c.Changed()
}
