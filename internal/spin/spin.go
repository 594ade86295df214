package spin

// Spin rotates the hue of a "#rrggbb" colour by degrees and returns the
// result as lowercase "#rrggbb".
//
// Malformed colours are treated as black, so Spin("nope", d) is always
// "#000000". Greys have no hue and come back unchanged at any angle.
//
// Example:
//
//	spin.Spin("#ff0000", 120) // "#00ff00"
//	spin.Spin("#ff0000", -120) // "#0000ff"
func Spin(color string, degrees float64) string {
	return spinRGB(DecodeHex(color).RGB, degrees)
}

// SpinStrict is Spin without the black fallback. It returns an error wrapping
// ErrInvalidHex when color is not "#RRGGBB".
func SpinStrict(color string, degrees float64) (string, error) {
	rgb, err := ParseHex(color)
	if err != nil {
		return "", err
	}
	return spinRGB(rgb, degrees), nil
}

func spinRGB(rgb RGBColor, degrees float64) string {
	hsl := Rotate(RGBToHSL(rgb), degrees)
	return EncodeHex(HSLToRGB(hsl))
}
