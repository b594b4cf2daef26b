// Package tray implements the wave tray toolpath generator: a radial
// profile evaluator and the per-layer contour and infill builder.
package tray

import (
	"math"

	"github.com/ys4i/wavetray/internal/model"
)

// profileSteepness controls how sharply the radial growth transitions
// around mid-height. Tuned shape constant, not derived from Params.
const profileSteepness = 6.0

// Sigmoid returns the standard logistic function 1/(1+e^-x). The
// two-branch form keeps the exponential argument non-positive, so
// large-magnitude inputs saturate to 0 or 1 instead of overflowing.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1.0 / (1.0 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1.0 + e)
}

// ProfileRadius maps a normalized height to the unmodulated wall
// radius: the base radius plus the growth amplitude weighted by a
// logistic ramp centered at half height. Values of h outside [0,1] are
// accepted; the ramp saturates smoothly.
func ProfileRadius(p model.Params, h float64) float64 {
	return p.BaseRadius + p.RadialGrowth*Sigmoid(profileSteepness*(h-0.5))
}
