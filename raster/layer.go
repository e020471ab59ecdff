// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/dxfimport/shapes"
	"github.com/google/uuid"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Layer is an offscreen image that a container is rasterized into before
// being composited with the group opacity. When the container's cache
// hint is set, the layer is only rasterized again after the container,
// the view, or the target size changes.
type Layer struct {
	img *image.RGBA

	// key of the cached content
	id      uuid.UUID
	version uint64
	view    rasterx.Matrix2D
	valid   bool

	// Renders is the number of times content has been rasterized.
	Renders int
}

// Draw composites c onto dst at the given opacity in [0, 1].
// The view maps container coordinates to the pixel coordinates of dst,
// which for a sub-image are those of its parent image.
func (l *Layer) Draw(dst *image.RGBA, c *shapes.Container, view rasterx.Matrix2D, opacity float64) {
	if c.IsEmpty() || opacity <= 0 {
		return
	}
	// the layer's origin is dst.Bounds().Min
	origin := dst.Bounds().Min
	view = rasterx.Identity.Translate(float64(-origin.X), float64(-origin.Y)).Mult(view)
	size := dst.Bounds().Size()
	if l.img == nil || l.img.Bounds().Size() != size {
		l.img = image.NewRGBA(image.Rectangle{Max: size})
		l.valid = false
	}
	if !l.isCurrent(c, view) {
		l.render(c, view)
	}
	a := uint16(min(opacity, 1) * 0xffff)
	draw.DrawMask(dst, dst.Bounds(), l.img, image.Point{}, image.NewUniform(color.Alpha16{A: a}), image.Point{}, draw.Over)
}

// Invalidate forces the next Draw to rasterize again.
func (l *Layer) Invalidate() {
	l.valid = false
}

func (l *Layer) isCurrent(c *shapes.Container, view rasterx.Matrix2D) bool {
	return c.Cache() && l.valid && l.id == c.ID && l.version == c.Version() && l.view == view
}

func (l *Layer) render(c *shapes.Container, view rasterx.Matrix2D) {
	draw.Draw(l.img, l.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	NewRenderer(l.img).Draw(c, view)
	l.id, l.version, l.view, l.valid = c.ID, c.Version(), view, true
	l.Renders++
	if c.Cache() {
		slog.Debug("raster: cached layer", "id", c.ID, "shapes", c.Len())
	}
}
