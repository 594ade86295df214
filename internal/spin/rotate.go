package spin

import "math"

const circleDegrees = 360.0

// NormalizeDegrees maps any angle onto [0,360).
//
// Negative angles wrap forward, so -90 becomes 270 and -360 becomes 0.
func NormalizeDegrees(degrees float64) float64 {
	d := math.Mod(degrees, circleDegrees)
	if d < 0 {
		d += circleDegrees
	}
	// -tiny + 360 can round up to exactly 360
	if d >= circleDegrees {
		d = 0
	}
	return d
}

// Rotate shifts the hue of hsl by degrees. Saturation and lightness pass
// through unchanged.
//
// The angle is normalized first, so with hsl.H in [0,360) the sum is
// non-negative and a single modulo keeps the result in range.
func Rotate(hsl HSLColor, degrees float64) HSLColor {
	hsl.H = math.Mod(hsl.H+NormalizeDegrees(degrees), circleDegrees)
	return hsl
}
