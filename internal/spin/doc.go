// Package spin rotates colours around the HSL hue wheel.
//
// A spin takes a "#rrggbb" colour and an angle in degrees and returns the
// colour with its hue shifted by that angle while saturation and lightness
// stay fixed. The conversion runs as a linear pipeline of pure functions:
//
//	DecodeHex -> RGBToHSL -> Rotate -> HSLToRGB -> EncodeHex
//
// Spin composes the whole pipeline and is what most callers want.
//
// # Color Representation
//
//   - Hex: "#RRGGBB", case-insensitive on input, lowercase on output
//   - RGB: integer channels, 0-255 for well-formed colours
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// RGBToHSL rounds every HSL component of a chromatic colour to the nearest
// integer, so such a colour only survives an RGB -> HSL -> RGB round trip
// unchanged when its HSL triple is exact at integer precision (primaries,
// secondaries). Greys keep their exact lightness and always round-trip.
//
// # Malformed Input
//
// Text that is not exactly "#" followed by six hex digits decodes to black.
// DecodeHex reports this through Decoded.Status, ParseHex returns
// ErrInvalidHex, and Spin keeps the silent fallback:
//
//	spin.Spin("not-a-color", 90) // "#000000"
//
// Use SpinStrict to reject malformed colours instead.
//
// # Thread Safety
//
// Every function in this package is stateless and safe for concurrent use.
package spin
