// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imported hosts imported graphics, such as the shapes of a DXF
// drawing, in a display group that keeps them legible against the
// background as the view is rescaled.
package imported

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/dxfimport/distance"
	"cogentcore.org/dxfimport/raster"
	"cogentcore.org/dxfimport/shapes"
	"github.com/srwiley/rasterx"
)

var (
	// ErrNoGraphics is returned when there are no imported graphics to
	// add or to operate on.
	ErrNoGraphics = errors.New("imported: no graphics")

	// ErrInvalidScale is returned for a display-to-venue scale factor
	// that is not positive and finite.
	ErrInvalidScale = errors.New("imported: invalid scale factor")
)

// Group is the display group for imported graphics. It holds at most one
// [shapes.Container] at a time, along with the distance unit that the
// container's geometry was imported in.
//
// A Group is not safe for concurrent use; like the rest of the scene it
// is only touched from the UI goroutine.
type Group struct {
	// Name is used in logging.
	Name string

	settings Settings

	// unit is the distance unit of the application.
	unit distance.Units

	// graphics is the current imported graphics, or nil.
	graphics *shapes.Container

	// graphicsUnit is the distance unit chosen for the import source.
	graphicsUnit distance.Units

	// attached is whether graphics is in the display tree.
	attached bool

	active  bool
	show    bool
	visible bool
	opacity float64

	layer raster.Layer
}

// NewGroup returns a new empty group configured with the given settings.
// It returns an error if the settings are invalid.
func NewGroup(s Settings) (*Group, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("imported.NewGroup: %w", err)
	}
	g := &Group{
		Name:         "imported-graphics",
		settings:     s,
		unit:         distance.Default(),
		graphicsUnit: distance.Default(),
		show:         s.ShowGraphics,
	}
	g.SetOpacityPercent(s.OpacityPercent)
	return g, nil
}

// Settings returns the settings the group was created with.
func (g *Group) Settings() Settings { return g.settings }

// DistanceUnit returns the distance unit of the application.
func (g *Group) DistanceUnit() distance.Units { return g.unit }

// SetDistanceUnit sets the distance unit of the application. Call
// [Group.Scale] afterwards to bring the graphics up to date. An invalid
// unit is rejected with [distance.ErrInvalidUnit] and leaves the
// current unit in place.
func (g *Group) SetDistanceUnit(u distance.Units) error {
	if !u.IsValid() {
		return fmt.Errorf("imported.Group.SetDistanceUnit: %d: %w", u, distance.ErrInvalidUnit)
	}
	g.unit = u
	return nil
}

// GraphicsUnit returns the distance unit of the import source.
func (g *Group) GraphicsUnit() distance.Units { return g.graphicsUnit }

// Graphics returns the current imported graphics, or nil.
func (g *Group) Graphics() *shapes.Container { return g.graphics }

// HasGraphics returns whether the group currently displays a non-empty
// container.
func (g *Group) HasGraphics() bool {
	return g.attached && !g.graphics.IsEmpty()
}

// Add adds graphics from a graphics import, made visible against the
// given background color and scaled from unit to the application unit.
// Any other graphics already present are cleared first. It returns
// [ErrNoGraphics] for a nil or empty container, in which case the group
// is left unchanged.
func (g *Group) Add(c *shapes.Container, unit distance.Units, displayToVenue float64, background color.Color) error {
	if c.IsEmpty() {
		return fmt.Errorf("imported.Group.Add: %w", ErrNoGraphics)
	}
	if !validScale(displayToVenue) {
		return fmt.Errorf("imported.Group.Add: display to venue %g: %w", displayToVenue, ErrInvalidScale)
	}
	if !unit.IsValid() {
		return fmt.Errorf("imported.Group.Add: graphics unit %d: %w", unit, distance.ErrInvalidUnit)
	}
	if !g.unit.IsValid() {
		return fmt.Errorf("imported.Group.Add: application unit %d: %w", g.unit, distance.ErrInvalidUnit)
	}
	if g.graphics != nil && g.graphics != c {
		slog.Debug("imported: replacing graphics", "group", g.Name, "old", g.graphics.ID, "new", c.ID)
		g.Clear()
	}

	g.graphicsUnit = unit
	c.SetForeground(shapes.ForegroundFor(background), false)
	c.SetCache(c.Len() > g.settings.CacheThreshold)

	g.graphics = c
	g.attached = true
	g.visible = g.show
	slog.Info("imported: added graphics", "group", g.Name, "id", c.ID, "shapes", c.Len(), "unit", unit, "cache", c.Cache())

	// must come after attaching, as scaling skips an empty group
	return g.Scale(displayToVenue)
}

// Clear removes the graphics from the group and resets the container,
// releasing its shapes. The group becomes inactive.
func (g *Group) Clear() {
	if g.graphics != nil {
		slog.Debug("imported: clearing graphics", "group", g.Name, "id", g.graphics.ID)
		g.attached = false
		g.graphics.Reset()
		g.graphics = nil
		g.layer.Invalidate()
	}
	g.visible = false
	g.active = false
}

// Update replaces the current graphics with new ones and marks the
// group active. See [Group.Add].
func (g *Group) Update(c *shapes.Container, unit distance.Units, displayToVenue float64, background color.Color) error {
	if c != g.graphics {
		g.Clear()
	}
	if err := g.Add(c, unit, displayToVenue, background); err != nil {
		return err
	}
	g.active = true
	return nil
}

// Scale rescales the graphics from their source unit to the application
// unit, and derives their stroke width from the display-to-venue scale.
func (g *Group) Scale(displayToVenue float64) error {
	if !g.HasGraphics() {
		return fmt.Errorf("imported.Group.Scale: %w", ErrNoGraphics)
	}
	if err := g.graphics.Scale(g.graphicsUnit, g.unit); err != nil {
		return err
	}
	return g.UpdateStrokeWidths(displayToVenue)
}

// UpdateStrokeWidths sets the stroke width of the graphics for a new
// display-to-venue scale, such as after zooming.
func (g *Group) UpdateStrokeWidths(displayToVenue float64) error {
	if !g.HasGraphics() {
		return fmt.Errorf("imported.Group.UpdateStrokeWidths: %w", ErrNoGraphics)
	}
	if !validScale(displayToVenue) {
		return fmt.Errorf("imported.Group.UpdateStrokeWidths: display to venue %g: %w", displayToVenue, ErrInvalidScale)
	}
	return g.graphics.UpdateStrokeWidth(g.graphicsUnit, g.unit, displayToVenue, g.settings.StrokeWidthRatio)
}

// validScale returns whether v is usable as a display-to-venue scale.
func validScale(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// SetForeground recolors black and white graphics for a new background,
// leaving custom colors alone.
func (g *Group) SetForeground(fg color.Color) {
	if g.HasGraphics() {
		g.graphics.SetForeground(fg, false)
	}
}

// Active returns whether the imported graphics are active.
func (g *Group) Active() bool { return g.active }

// SetActive sets whether the imported graphics are active.
func (g *Group) SetActive(active bool) { g.active = active }

// ShowGraphics returns whether imported graphics are drawn.
func (g *Group) ShowGraphics() bool { return g.show }

// SetShowGraphics sets whether imported graphics are drawn.
// The group visibility only follows while it has graphics.
func (g *Group) SetShowGraphics(show bool) {
	g.show = show
	if g.HasGraphics() {
		g.visible = show
	}
}

// Visible returns whether the group is currently visible.
func (g *Group) Visible() bool { return g.visible }

// Opacity returns the group opacity in [0, 1].
func (g *Group) Opacity() float64 { return g.opacity }

// OpacityPercent returns the group opacity as a percentage.
func (g *Group) OpacityPercent() float64 { return 100 * g.opacity }

// SetOpacityPercent sets the group opacity from a percentage,
// clamped to [0, 100].
func (g *Group) SetOpacityPercent(pct float64) {
	if math.IsNaN(pct) {
		pct = 0
	}
	g.opacity = 0.01 * min(max(pct, 0), 100)
}

// Render draws the group into dst under the given view transform,
// which maps application units to the pixel coordinates of dst.
func (g *Group) Render(dst *image.RGBA, view rasterx.Matrix2D) {
	if !g.visible || !g.HasGraphics() {
		return
	}
	g.layer.Draw(dst, g.graphics, view, g.opacity)
}
