// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/cam/hct"
)

// ForegroundFor returns black or white, whichever contrasts more with
// the given background. A nil background is treated as white.
func ForegroundFor(background color.Color) color.RGBA {
	if background == nil {
		return colors.Black
	}
	if hct.ContrastRatio(colors.Black, background) >= hct.ContrastRatio(colors.White, background) {
		return colors.Black
	}
	return colors.White
}

// IsBlackOrWhite returns whether c is exactly opaque black or white.
func IsBlackOrWhite(c color.Color) bool {
	if c == nil {
		return false
	}
	rgba := colors.AsRGBA(c)
	return rgba == colors.Black || rgba == colors.White
}

// AdjustStrokeForContrast sets the stroke of s to fg if it is currently
// black or white, or unconditionally if force is set.
func AdjustStrokeForContrast(s Strokeable, fg color.Color, force bool) {
	if force || IsBlackOrWhite(s.Stroke()) {
		s.SetStroke(fg)
	}
}
