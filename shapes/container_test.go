// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/dxfimport/distance"
	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContainer() *Container {
	c := NewContainer(distance.Millimeters, Bounds{0, 0, 100, 50})
	red := NewCircle(50, 25, 5)
	red.SetStroke(colors.Red)
	c.Add(NewLine(0, 0, 10, 10), NewPolyline(true, Point{20, 20}, Point{30, 20}, Point{30, 40}), red)
	return c
}

func TestContainerBasics(t *testing.T) {
	var nilc *Container
	assert.True(t, nilc.IsEmpty())

	c := NewContainer(distance.Inches, Bounds{1, 2, 3, 4})
	assert.True(t, c.IsEmpty())
	assert.NotEqual(t, c.ID, NewContainer(distance.Inches, Bounds{}).ID)
	assert.Equal(t, Bounds{1, 2, 3, 4}, c.Bounds())

	c = testContainer()
	assert.Equal(t, 3, c.Len())
	assert.False(t, c.IsEmpty())
	assert.Equal(t, distance.Millimeters, c.DistanceUnit())
	assert.Equal(t, Bounds{0, 0, 55, 40}, c.Bounds())
	assert.Equal(t, Bounds{0, 0, 100, 50}, c.Extents())
}

func TestContainerScaleReplaces(t *testing.T) {
	c := testContainer()
	assert.False(t, c.HasTransform())
	assert.Equal(t, 1.0, c.ScaleFactor())
	assert.Equal(t, rasterx.Identity, c.Transform())

	require.NoError(t, c.Scale(distance.Inches, distance.Millimeters))
	assert.InDelta(t, 25.4, c.ScaleFactor(), 1e-12)

	// a second scale replaces the first rather than compounding it
	require.NoError(t, c.Scale(distance.Inches, distance.Millimeters))
	assert.InDelta(t, 25.4, c.ScaleFactor(), 1e-12)
	m := c.Transform()
	assert.InDelta(t, 25.4, m.A, 1e-12)
	assert.InDelta(t, 25.4, m.D, 1e-12)
	assert.Equal(t, 0.0, m.B)
	assert.Equal(t, 0.0, m.E)

	require.NoError(t, c.Scale(distance.Millimeters, distance.Inches))
	assert.InDelta(t, 1/25.4, c.ScaleFactor(), 1e-12)

	require.NoError(t, c.Scale(distance.Feet, distance.Feet))
	assert.Equal(t, 1.0, c.ScaleFactor())

	assert.ErrorIs(t, c.Scale(distance.Units(99), distance.Feet), distance.ErrInvalidUnit)
	assert.Equal(t, 1.0, c.ScaleFactor())

	c.ClearTransform()
	assert.False(t, c.HasTransform())
}

func TestContainerUpdateStrokeWidth(t *testing.T) {
	c := testContainer()
	c.Children()[0].SetStrokeWidth(3)

	require.NoError(t, c.UpdateStrokeWidth(distance.Inches, distance.Millimeters, 10, 0.75))
	want := 0.75 * 10 / 25.4
	for _, s := range c.Children() {
		assert.InDelta(t, want, s.StrokeWidth(), 1e-12)
	}

	assert.ErrorIs(t, c.UpdateStrokeWidth(distance.UnitsN, distance.Meters, 1, 1), distance.ErrInvalidUnit)
	assert.InDelta(t, want, c.Children()[1].StrokeWidth(), 1e-12)
}

func TestContainerForeground(t *testing.T) {
	c := testContainer()
	c.SetForeground(colors.White, false)
	assert.Equal(t, colors.White, c.Children()[0].Stroke())
	assert.Equal(t, colors.White, c.Children()[1].Stroke())
	assert.Equal(t, colors.Red, c.Children()[2].Stroke())

	c.SetForeground(colors.Black, false)
	assert.Equal(t, colors.Black, c.Children()[0].Stroke())
	assert.Equal(t, colors.Red, c.Children()[2].Stroke())

	c.SetForeground(colors.Blue, true)
	for _, s := range c.Children() {
		assert.Equal(t, colors.Blue, s.Stroke())
	}

	c.SetStroke(colors.Green)
	for _, s := range c.Children() {
		assert.Equal(t, colors.Green, s.Stroke())
	}
}

func TestContainerVersionAndReset(t *testing.T) {
	c := testContainer()
	v := c.Version()
	c.SetStrokeWidth(2)
	assert.Greater(t, c.Version(), v)

	v = c.Version()
	require.NoError(t, c.Scale(distance.Meters, distance.Millimeters))
	assert.Greater(t, c.Version(), v)

	c.SetCache(true)
	assert.True(t, c.Cache())

	c.Reset()
	assert.True(t, c.IsEmpty())
	assert.False(t, c.Cache())
	assert.False(t, c.HasTransform())
	assert.Equal(t, distance.Unitless, c.DistanceUnit())
	assert.Equal(t, Bounds{}, c.Bounds())
}
