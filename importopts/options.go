// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package importopts provides the options used to interpret geometry
// loaded from a graphics file, whether chosen by the user during an
// import or set programmatically when opening a saved project.
package importopts

import (
	"cogentcore.org/dxfimport/distance"
	"cogentcore.org/dxfimport/shapes"
)

// DrawingLimits is a rectangular region of model space.
// It is a value type: assigning it always makes an independent copy.
type DrawingLimits struct {
	X, Y, Width, Height float64
}

// LimitsFromBounds returns the limits covering b.
// An empty box yields zero limits.
func LimitsFromBounds(b shapes.Bounds) DrawingLimits {
	if b.IsEmpty() {
		return DrawingLimits{}
	}
	return DrawingLimits{X: b.MinX, Y: b.MinY, Width: b.Width(), Height: b.Height()}
}

// Bounds returns the limits as a bounding box.
func (l DrawingLimits) Bounds() shapes.Bounds {
	return shapes.Bounds{MinX: l.X, MinY: l.Y, MaxX: l.X + l.Width, MaxY: l.Y + l.Height}
}

// Source is anything that reports the unit and computed bounds of
// imported geometry, such as a [shapes.Container].
type Source interface {
	DistanceUnit() distance.Units
	Bounds() shapes.Bounds
}

// Options are the parameters for interpreting an imported drawing.
// Each of the Set and Update methods replaces all fields at once.
type Options struct {
	unit distance.Units

	// unitFromFile is whether the unit came from the graphics file
	// itself, as opposed to a user choice or a default.
	unitFromFile bool

	// limits are the prospective drawing limits, which may become the
	// actual drawing limits if the user accepts them.
	limits DrawingLimits
}

// New returns the default options: unitless, with zero limits.
func New() *Options {
	o := &Options{}
	o.Reset()
	return o
}

// NewWith returns options with a known unit and limits. The unit is
// not marked as coming from the file; use [Options.SetUnitFromFile]
// when it does.
func NewWith(unit distance.Units, limits DrawingLimits) *Options {
	return &Options{unit: unit, limits: limits}
}

// Copy returns an independent copy of o.
func (o *Options) Copy() *Options {
	cp := *o
	return &cp
}

// Reset restores the default options.
func (o *Options) Reset() {
	o.Set(distance.Unitless, false, DrawingLimits{})
}

// Set replaces all of the options.
func (o *Options) Set(unit distance.Units, unitFromFile bool, limits DrawingLimits) {
	o.unit = unit
	o.unitFromFile = unitFromFile
	o.limits = limits
}

// SetFrom replaces all of the options with those of other.
func (o *Options) SetFrom(other *Options) {
	o.Set(other.unit, other.unitFromFile, other.limits)
}

// UpdateFromContainer derives the options from imported geometry:
// the unit it reports, marked as from the file unless it is unitless,
// and its computed bounds as the prospective limits.
func (o *Options) UpdateFromContainer(src Source) {
	unit := src.DistanceUnit()
	o.Set(unit, unit != distance.Unitless, LimitsFromBounds(src.Bounds()))
}

// Unit returns the distance unit of the imported geometry.
func (o *Options) Unit() distance.Units { return o.unit }

// SetUnit sets the distance unit.
func (o *Options) SetUnit(u distance.Units) { o.unit = u }

// UnitFromFile returns whether the unit was declared by the graphics file.
func (o *Options) UnitFromFile() bool { return o.unitFromFile }

// SetUnitFromFile sets whether the unit was declared by the graphics file.
func (o *Options) SetUnitFromFile(v bool) { o.unitFromFile = v }

// Limits returns a copy of the prospective drawing limits.
func (o *Options) Limits() DrawingLimits { return o.limits }

// SetLimits sets the prospective drawing limits from a copy of l.
func (o *Options) SetLimits(l DrawingLimits) { o.limits = l }
