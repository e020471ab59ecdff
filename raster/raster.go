// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws shape containers into images by wrapping rasterx.
package raster

import (
	"image"
	"math"

	"cogentcore.org/dxfimport/shapes"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

const (
	// MinStrokeWidth is the narrowest stroke drawn, in pixels,
	// so that thin imported outlines remain visible when zoomed out.
	MinStrokeWidth = 0.5

	miterLimit = 4
)

// Renderer rasterizes shapes into a fixed size RGBA image.
type Renderer struct {
	dasher *rasterx.Dasher // strokes
	filler *rasterx.Filler // closed fills
}

// NewRenderer returns a renderer that draws into dst.
func NewRenderer(dst *image.RGBA) *Renderer {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	// separate scanners so fill and stroke colors do not clobber each other
	return &Renderer{
		dasher: rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, dst, dst.Bounds())),
		filler: rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, dst, dst.Bounds())),
	}
}

// Draw draws all shapes of c, in order, under the view transform
// followed by the container's own transform.
func (rd *Renderer) Draw(c *shapes.Container, view rasterx.Matrix2D) {
	m := view.Mult(c.Transform())
	scale := math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
	if scale == 0 {
		return
	}
	for _, s := range c.Children() {
		rd.drawShape(s, m, scale)
	}
}

func (rd *Renderer) drawShape(s shapes.Shape, m rasterx.Matrix2D, scale float64) {
	if fc := s.FillColor(); fc != nil && s.IsClosed() {
		rd.filler.Clear()
		rd.filler.Scanner.SetColor(fc)
		s.AddTo(rd.filler, m)
		rd.filler.Draw()
	}
	w := s.StrokeWidth() * scale
	if math.IsNaN(w) || math.IsInf(w, 0) {
		w = MinStrokeWidth
	}
	w = max(w, MinStrokeWidth)
	rd.dasher.Clear()
	rd.dasher.SetStroke(toFixed(w), toFixed(miterLimit), rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0)
	rd.dasher.Scanner.SetColor(s.Stroke())
	s.AddTo(rd.dasher, m)
	rd.dasher.Draw()
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
