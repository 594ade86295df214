package spin

import "math"

// RGBColor represents an RGB color with integer components.
//
// Decoded colours always have components in 0-255. The type is wider than a
// byte so that EncodeHex can render out-of-range values instead of wrapping.
type RGBColor struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// RGBToHSL produces whole numbers. After Rotate by a fractional angle H may
// carry a fractional part; S and L are never touched by rotation.
type HSLColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

const rgbDivisor = 255.0

// RGBToHSL converts RGB channels to HSL.
//
// The conversion follows the usual algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Lightness is (max + min) / 0.02, i.e. the percentage of (max + min) / 2
//  4. Equal channels are achromatic: hue and saturation are zero
//  5. Hue comes from whichever component is max, saturation from lightness
//
// Channel-max selection compares within machine epsilon so that two channels
// sharing the max (yellow, cyan, magenta) always take the same branch.
// Chromatic colours have all three components rounded to the nearest
// integer. Greys keep their exact lightness so they convert back unchanged.
func RGBToHSL(c RGBColor) HSLColor {
	r := float64(c.R) / rgbDivisor
	g := float64(c.G) / rgbDivisor
	b := float64(c.B) / rgbDivisor

	min := math.Min(r, math.Min(g, b))
	max := math.Max(r, math.Max(g, b))
	chroma := max - min

	l := (max + min) / 0.02

	if chroma == 0 {
		return HSLColor{H: 0, S: 0, L: l}
	}

	var h float64
	switch {
	case nearlyEqual(r, max):
		h = 60 * math.Mod((g-b)/chroma, 6)
	case nearlyEqual(g, max):
		h = 60 * ((b-r)/chroma + 2)
	default:
		h = 60 * ((r-g)/chroma + 4)
	}
	if h < 0 {
		h += circleDegrees
	}

	var s float64
	if l < 50 {
		s = 100 * (chroma / (max + min))
	} else {
		s = 100 * (chroma / (2 - max - min))
	}

	return HSLColor{
		H: math.Round(h),
		S: math.Round(s),
		L: math.Round(l),
	}
}

// HSLToRGB converts HSL back to RGB channels.
//
// Hue selects one of six 60 degree sextants, each mapping chroma (c), the
// intermediate (x) and zero to a different channel order before the
// lightness offset m is added. Hue must already be in [0,360).
func HSLToRGB(hsl HSLColor) RGBColor {
	lightness := hsl.L / 100
	saturation := hsl.S / 100

	c := (1 - math.Abs(2*lightness-1)) * saturation
	x := c * (1 - math.Abs(math.Mod(hsl.H/60, 2)-1))
	m := lightness - c/2

	var r, g, b float64
	switch h := hsl.H; {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return RGBColor{
		R: int(math.Round((r + m) * rgbDivisor)),
		G: int(math.Round((g + m) * rgbDivisor)),
		B: int(math.Round((b + m) * rgbDivisor)),
	}
}

// epsilon is the gap between 1.0 and the next representable float64.
const epsilon = 2.220446049250313e-16

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
