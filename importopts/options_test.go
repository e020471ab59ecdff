// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package importopts

import (
	"testing"

	"cogentcore.org/dxfimport/distance"
	"cogentcore.org/dxfimport/shapes"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	o := New()
	assert.Equal(t, distance.Unitless, o.Unit())
	assert.False(t, o.UnitFromFile())
	assert.Equal(t, DrawingLimits{}, o.Limits())

	o = NewWith(distance.Feet, DrawingLimits{1, 2, 3, 4})
	assert.Equal(t, distance.Feet, o.Unit())
	assert.False(t, o.UnitFromFile())
	assert.Equal(t, DrawingLimits{1, 2, 3, 4}, o.Limits())

	o.Reset()
	assert.Equal(t, *New(), *o)
}

func TestUpdateFromContainer(t *testing.T) {
	c := shapes.NewContainer(distance.Unitless, shapes.Bounds{})
	c.Add(shapes.NewLine(-5, 2, 15, 12))

	o := New()
	o.SetUnitFromFile(true)
	o.UpdateFromContainer(c)
	assert.Equal(t, distance.Unitless, o.Unit())
	assert.False(t, o.UnitFromFile())
	assert.Equal(t, DrawingLimits{X: -5, Y: 2, Width: 20, Height: 10}, o.Limits())

	for _, u := range distance.UnitsValues()[1:] {
		c.SetDistanceUnit(u)
		o.UpdateFromContainer(c)
		assert.Equal(t, u, o.Unit())
		assert.True(t, o.UnitFromFile(), u)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	src := New()
	lim := DrawingLimits{0, 0, 10, 20}
	src.Set(distance.Meters, true, lim)
	lim.Width = 99
	assert.Equal(t, 10.0, src.Limits().Width)

	cp := src.Copy()
	src.SetLimits(DrawingLimits{5, 5, 1, 1})
	src.SetUnit(distance.Inches)
	assert.Equal(t, DrawingLimits{0, 0, 10, 20}, cp.Limits())
	assert.Equal(t, distance.Meters, cp.Unit())
	assert.True(t, cp.UnitFromFile())

	other := New()
	other.SetFrom(cp)
	assert.Equal(t, *cp, *other)
}

func TestLimitsBounds(t *testing.T) {
	assert.Equal(t, DrawingLimits{}, LimitsFromBounds(shapes.EmptyBounds()))
	l := DrawingLimits{1, 2, 3, 4}
	assert.Equal(t, l, LimitsFromBounds(l.Bounds()))
}
