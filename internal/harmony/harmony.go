// Package harmony builds colour schemes by spinning a base colour to fixed
// hue offsets.
//
// Supported schemes:
//   - complementary: 0, 180
//   - triadic: 0, 120, 240
//   - tetradic: 0, 90, 180, 270
package harmony

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ironsheep/color-spin-mcp/internal/spin"
)

// ErrUnknownScheme is returned for a scheme name that has no offsets.
var ErrUnknownScheme = errors.New("unknown harmony scheme")

// Scheme names a set of hue offsets.
type Scheme string

const (
	Complementary Scheme = "complementary"
	Triadic       Scheme = "triadic"
	Tetradic      Scheme = "tetradic"
)

var schemeOffsets = map[Scheme][]float64{
	Complementary: {0, 180},
	Triadic:       {0, 120, 240},
	Tetradic:      {0, 90, 180, 270},
}

// Schemes returns the supported scheme names in sorted order.
func Schemes() []Scheme {
	names := make([]Scheme, 0, len(schemeOffsets))
	for s := range schemeOffsets {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Offsets returns the hue offsets in degrees for a scheme. The slice is a copy.
func Offsets(s Scheme) ([]float64, error) {
	offsets, ok := schemeOffsets[s]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, s)
	}
	return append([]float64(nil), offsets...), nil
}

// Swatch is one colour in a palette.
type Swatch struct {
	Offset float64       `json:"offset"` // Hue offset from the base in degrees
	Hex    string        `json:"hex"`    // "#rrggbb"
	RGB    spin.RGBColor `json:"rgb"`
	HSL    spin.HSLColor `json:"hsl"`
}

// Palette is a base colour and the swatches derived from it.
type Palette struct {
	Base      string   `json:"base"`
	Scheme    Scheme   `json:"scheme"`
	Defaulted bool     `json:"defaulted"` // Base was malformed and replaced with black
	Swatches  []Swatch `json:"swatches"`
}

// Build spins base to every offset of scheme.
//
// With strict set, a malformed base returns an error wrapping
// spin.ErrInvalidHex. Otherwise the base falls back to black the same way
// spin.Spin does and Palette.Defaulted is set.
func Build(base string, scheme Scheme, strict bool) (*Palette, error) {
	offsets, err := Offsets(scheme)
	if err != nil {
		return nil, err
	}

	if strict {
		if _, err := spin.ParseHex(base); err != nil {
			return nil, err
		}
	}
	decoded := spin.DecodeHex(base)

	swatches := make([]Swatch, 0, len(offsets))
	for _, off := range offsets {
		hex := spin.Spin(base, off)
		rgb := spin.DecodeHex(hex).RGB
		swatches = append(swatches, Swatch{
			Offset: off,
			Hex:    hex,
			RGB:    rgb,
			HSL:    spin.RGBToHSL(rgb),
		})
	}

	return &Palette{
		Base:      base,
		Scheme:    scheme,
		Defaulted: decoded.Defaulted(),
		Swatches:  swatches,
	}, nil
}
