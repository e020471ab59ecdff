// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distance

import (
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorSameUnit(t *testing.T) {
	for _, u := range UnitsValues() {
		f, err := Factor(u, u)
		require.NoError(t, err, u)
		assert.Equal(t, 1.0, f, u)
	}
}

func TestFactorRoundTrip(t *testing.T) {
	for _, a := range UnitsValues() {
		for _, b := range UnitsValues() {
			ab, err := Factor(a, b)
			require.NoError(t, err)
			ba, err := Factor(b, a)
			require.NoError(t, err)
			tolassert.EqualTol(t, 1.0, ab*ba, 1e-12, a.String()+"->"+b.String())
		}
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		value    float64
		from, to Units
		want     float64
	}{
		{1, Inches, Millimeters, 25.4},
		{25.4, Millimeters, Inches, 1},
		{10, Millimeters, Inches, 10 / 25.4},
		{1, Feet, Inches, 12},
		{1, Yards, Feet, 3},
		{1, Miles, Feet, 5280},
		{1, Kilometers, Meters, 1000},
		{1, Meters, Centimeters, 100},
		{1, Millimeters, Micrometers, 1000},
		{1, Feet, Meters, 0.3048},
		{7, Unitless, Meters, 7},
		{7, Inches, Unitless, 7},
	}
	for _, tt := range tests {
		have, err := Convert(tt.value, tt.from, tt.to)
		require.NoError(t, err)
		tolassert.EqualTol(t, tt.want, have, 1e-9, tt.from.String()+"->"+tt.to.String())
	}
}

func TestConvertInvalid(t *testing.T) {
	_, err := Convert(1, Units(-1), Meters)
	assert.True(t, errors.Is(err, ErrInvalidUnit))

	_, err = Factor(Meters, UnitsN)
	assert.ErrorIs(t, err, ErrInvalidUnit)
}

func TestUnitsText(t *testing.T) {
	var u Units
	require.NoError(t, u.SetString("Millimeters"))
	assert.Equal(t, Millimeters, u)
	assert.Equal(t, "Inches", Inches.String())

	b, err := Feet.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Feet", string(b))
	require.NoError(t, u.UnmarshalText([]byte("Yards")))
	assert.Equal(t, Yards, u)

	assert.Error(t, u.SetString("furlongs"))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, Meters, Default())
	assert.True(t, Unitless.IsValid())
	assert.False(t, UnitsN.IsValid())
}
