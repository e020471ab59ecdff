// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package distance provides linear distance units for imported drawings
// and the conversion factors between them.
package distance

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/styles/units"
)

// Units is a linear unit of measurement for model space geometry.
type Units int32 //enums:enum

const (
	// Unitless is used when the drawing does not declare a unit;
	// geometry is taken at face value and never converted.
	Unitless Units = iota

	// Micrometers is 1e-6 meters.
	Micrometers

	// Millimeters is 1e-3 meters.
	Millimeters

	// Centimeters is 1e-2 meters.
	Centimeters

	// Meters is the SI base unit of length.
	Meters

	// Kilometers is 1e3 meters.
	Kilometers

	// Inches is 25.4 millimeters, by definition.
	Inches

	// Feet is 12 inches.
	Feet

	// Yards is 3 feet.
	Yards

	// Miles is 5280 feet.
	Miles
)

// ErrInvalidUnit is returned when a conversion is requested for a value
// outside of the defined [Units].
var ErrInvalidUnit = errors.New("distance: invalid unit")

// metersPerInch is the international inch, which ties the imperial
// units to the metric ones.
const metersPerInch = units.MmPerInch / 1000

// metersPer is the length of one of each unit in meters.
// Unitless has no physical length and is never looked up.
var metersPer = [UnitsN]float64{
	Micrometers: 1e-6,
	Millimeters: 1e-3,
	Centimeters: 1e-2,
	Meters:      1,
	Kilometers:  1e3,
	Inches:      metersPerInch,
	Feet:        12 * metersPerInch,
	Yards:       36 * metersPerInch,
	Miles:       63360 * metersPerInch,
}

// Default returns the unit used by an application before the user
// chooses one.
func Default() Units {
	return Meters
}

// IsValid returns whether u is one of the defined units.
func (u Units) IsValid() bool {
	return u >= Unitless && u < UnitsN
}

// Convert converts value from one unit to another. Converting between
// identical units returns value unchanged, as does converting from or to
// [Unitless]. It returns [ErrInvalidUnit] if either unit is undefined.
func Convert(value float64, from, to Units) (float64, error) {
	if !from.IsValid() || !to.IsValid() {
		return 0, fmt.Errorf("converting from %d to %d: %w", int32(from), int32(to), ErrInvalidUnit)
	}
	if from == to || from == Unitless || to == Unitless {
		return value, nil
	}
	return value * (metersPer[from] / metersPer[to]), nil
}

// Factor returns the multiplier that converts a length in from units
// into to units.
func Factor(from, to Units) (float64, error) {
	return Convert(1, from, to)
}
