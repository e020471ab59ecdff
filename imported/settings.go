// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imported

import (
	"fmt"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
)

// ErrInvalidSettings is returned for settings outside of their valid ranges.
var ErrInvalidSettings = errors.New("imported: invalid settings")

// Settings are the persistent settings for imported graphics.
type Settings struct {

	// StrokeWidthRatio is applied to the converted display-to-venue scale
	// to obtain the stroke width of imported shapes.
	StrokeWidthRatio float64 `default:"0.75"`

	// OpacityPercent is the opacity of imported graphics, from 0 to 100.
	// Imported graphics are drawn less opaque than native graphics so
	// that the two are easy to tell apart.
	OpacityPercent float64 `default:"75"`

	// CacheThreshold is the number of shapes above which imported
	// graphics are drawn from a cached bitmap, trading sharpness for
	// responsiveness while zooming.
	CacheThreshold int `default:"20000"`

	// ShowGraphics is whether imported graphics are drawn at all.
	ShowGraphics bool `default:"true"`
}

// Defaults sets the default values.
func (s *Settings) Defaults() {
	s.StrokeWidthRatio = 0.75
	s.OpacityPercent = 75
	s.CacheThreshold = 20000
	s.ShowGraphics = true
}

// Validate returns an error wrapping [ErrInvalidSettings] if any value
// is out of range.
func (s *Settings) Validate() error {
	switch {
	case !(s.StrokeWidthRatio > 0) || math.IsInf(s.StrokeWidthRatio, 1):
		return fmt.Errorf("stroke width ratio %g must be positive and finite: %w", s.StrokeWidthRatio, ErrInvalidSettings)
	case !(s.OpacityPercent >= 0 && s.OpacityPercent <= 100):
		return fmt.Errorf("opacity percent %g must be in [0, 100]: %w", s.OpacityPercent, ErrInvalidSettings)
	case s.CacheThreshold < 0:
		return fmt.Errorf("cache threshold %d must not be negative: %w", s.CacheThreshold, ErrInvalidSettings)
	}
	return nil
}

// OpenSettings returns the default settings overridden by the values in
// the given TOML file.
func OpenSettings(filename string) (*Settings, error) {
	s := &Settings{}
	s.Defaults()
	if err := tomlx.Open(s, filename); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Save saves the settings to the given TOML file.
func (s *Settings) Save(filename string) error {
	return tomlx.Save(s, filename)
}
