// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "math"

// Point is a location in model space.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned bounding box in model space.
// The zero value is an empty box located at the origin.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBounds returns a box that any union will replace.
func EmptyBounds() Bounds {
	return Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
}

// BoundsOf returns the smallest box containing all of the given points.
func BoundsOf(pts ...Point) Bounds {
	b := EmptyBounds()
	for _, p := range pts {
		b = b.ExpandByPoint(p)
	}
	return b
}

// IsEmpty returns whether the box contains no points at all.
// A degenerate box (a single point or a horizontal line) is not empty.
func (b Bounds) IsEmpty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Width returns the horizontal extent, or 0 if empty.
func (b Bounds) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent, or 0 if empty.
func (b Bounds) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.MaxY - b.MinY
}

// ExpandByPoint returns the box grown to contain p.
func (b Bounds) ExpandByPoint(p Point) Bounds {
	b.MinX = math.Min(b.MinX, p.X)
	b.MinY = math.Min(b.MinY, p.Y)
	b.MaxX = math.Max(b.MaxX, p.X)
	b.MaxY = math.Max(b.MaxY, p.Y)
	return b
}

// Union returns the smallest box containing both boxes.
func (b Bounds) Union(o Bounds) Bounds {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}
