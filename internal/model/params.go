// Package model defines the immutable configuration for a wave tray
// run and its validation rules.
package model

import (
	"fmt"
	"math"
)

// InfillMode selects the interior fill strategy for holed layers.
type InfillMode string

const (
	// InfillLines fills the annulus with rotated cross-hatch lines.
	InfillLines InfillMode = "lines"
	// InfillConcentric fills the annulus with nested circular rings.
	InfillConcentric InfillMode = "concentric"
)

// Params holds the full configuration for one wave tray run. All
// dimensions are in mm, all angles in radians. The struct is read-only
// for the duration of a build.
type Params struct {
	LayerCount  int     `json:"layer_count"`  // Number of stacked layers
	LayerHeight float64 `json:"layer_height"` // Height of one layer in mm

	BaseRadius   float64 `json:"base_radius"`   // Wall radius at the bottom in mm
	RadialGrowth float64 `json:"radial_growth"` // Radius gained over the full height in mm

	WaveAmplitude   float64 `json:"wave_amplitude"`    // Ripple amplitude in mm
	WaveFrequency   float64 `json:"wave_frequency"`    // Ripple cycles per revolution
	WaveSampleCount int     `json:"wave_sample_count"` // Points per outer wall contour
	HoleSampleCount int     `json:"hole_sample_count"` // Points per hole contour

	HoleRadius     float64 `json:"hole_radius"`      // Center hole radius in mm
	HoleLayerLimit int     `json:"hole_layer_limit"` // Layers that receive a hole, from the bottom
	HoleWallOffset float64 `json:"hole_wall_offset"` // Inward offset of the hole wall in mm

	InfillMode      InfillMode `json:"infill_mode"`
	InfillSpacing   float64    `json:"infill_spacing"`    // Hatch line spacing in mm
	InfillBaseAngle float64    `json:"infill_base_angle"` // Hatch angle at layer 0
	InfillAngleStep float64    `json:"infill_angle_step"` // Hatch angle added per layer

	ConcentricPitch     float64 `json:"concentric_pitch"`     // Radial step between rings in mm
	ConcentricClearance float64 `json:"concentric_clearance"` // Gap kept to both bounding contours in mm
}

// DefaultParams returns the stock wave tray proportions.
func DefaultParams() Params {
	return Params{
		LayerCount:          120,
		LayerHeight:         1.0,
		BaseRadius:          20.0,
		RadialGrowth:        5.0,
		WaveAmplitude:       2.0,
		WaveFrequency:       100.5,
		WaveSampleCount:     403,
		HoleSampleCount:     200,
		HoleRadius:          15.3,
		HoleLayerLimit:      2,
		HoleWallOffset:      0.4,
		InfillMode:          InfillLines,
		InfillSpacing:       0.5,
		InfillBaseAngle:     math.Pi / 4,
		InfillAngleStep:     math.Pi / 2,
		ConcentricPitch:     0.8,
		ConcentricClearance: 0.4,
	}
}

// TotalHeight returns the object height in mm.
func (p Params) TotalHeight() float64 {
	return float64(p.LayerCount) * p.LayerHeight
}

// Validate checks the configuration before a build. The first
// offending field is reported; a nil return means the layer loop
// cannot hit a numeric anomaly (zero division, empty sample arrays).
//
// An annulus made permanently empty by a large hole radius plus
// clearance is deliberately not a validation failure: such layers
// produce an empty infill instead.
func (p Params) Validate() error {
	if p.LayerCount <= 0 {
		return fmt.Errorf("layer_count must be > 0, got %d", p.LayerCount)
	}
	if p.LayerHeight <= 0 {
		return fmt.Errorf("layer_height must be > 0, got %g", p.LayerHeight)
	}
	if p.BaseRadius <= 0 {
		return fmt.Errorf("base_radius must be > 0, got %g", p.BaseRadius)
	}
	if p.WaveSampleCount < 3 {
		return fmt.Errorf("wave_sample_count must be >= 3, got %d", p.WaveSampleCount)
	}
	if p.HoleSampleCount < 3 {
		return fmt.Errorf("hole_sample_count must be >= 3, got %d", p.HoleSampleCount)
	}
	if p.HoleRadius <= 0 {
		return fmt.Errorf("hole_radius must be > 0, got %g", p.HoleRadius)
	}
	if p.HoleRadius >= p.BaseRadius {
		return fmt.Errorf("hole_radius (%g) must be smaller than base_radius (%g)",
			p.HoleRadius, p.BaseRadius)
	}
	if p.HoleLayerLimit < 0 {
		return fmt.Errorf("hole_layer_limit must be >= 0, got %d", p.HoleLayerLimit)
	}
	if p.HoleLayerLimit > p.LayerCount {
		return fmt.Errorf("hole_layer_limit (%d) must not exceed layer_count (%d)",
			p.HoleLayerLimit, p.LayerCount)
	}
	if p.HoleWallOffset <= 0 {
		return fmt.Errorf("hole_wall_offset must be > 0, got %g", p.HoleWallOffset)
	}
	switch p.InfillMode {
	case InfillLines:
		if p.InfillSpacing <= 0 {
			return fmt.Errorf("infill_spacing must be > 0, got %g", p.InfillSpacing)
		}
	case InfillConcentric:
		if p.ConcentricPitch <= 0 {
			return fmt.Errorf("concentric_pitch must be > 0, got %g", p.ConcentricPitch)
		}
		if p.ConcentricClearance < 0 {
			return fmt.Errorf("concentric_clearance must be >= 0, got %g", p.ConcentricClearance)
		}
	default:
		return fmt.Errorf("infill_mode must be %q or %q, got %q",
			InfillLines, InfillConcentric, p.InfillMode)
	}
	return nil
}
