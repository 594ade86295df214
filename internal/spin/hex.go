package spin

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidHex is returned by ParseHex when the input is not "#RRGGBB".
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)

// DecodeStatus records how DecodeHex produced its colour.
type DecodeStatus int

const (
	// Parsed means the input matched "#RRGGBB" and was decoded.
	Parsed DecodeStatus = iota
	// DefaultedToBlack means the input was malformed and black was substituted.
	DefaultedToBlack
)

func (s DecodeStatus) String() string {
	switch s {
	case Parsed:
		return "parsed"
	case DefaultedToBlack:
		return "defaulted-to-black"
	default:
		return fmt.Sprintf("DecodeStatus(%d)", int(s))
	}
}

// Decoded is the result of a lenient hex decode.
type Decoded struct {
	RGB    RGBColor
	Status DecodeStatus
}

// Defaulted reports whether the colour is the black fallback for malformed input.
func (d Decoded) Defaulted() bool {
	return d.Status == DefaultedToBlack
}

// ParseHex decodes "#RRGGBB" into its red, green and blue bytes.
//
// Digits are case-insensitive. Anything else, including "RRGGBB" without the
// leading '#', 3-digit shorthand, or trailing whitespace, returns an error
// wrapping ErrInvalidHex.
func ParseHex(color string) (RGBColor, error) {
	if !hexPattern.MatchString(color) {
		return RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidHex, color)
	}

	val, err := strconv.ParseUint(color[1:], 16, 32)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, color, err)
	}

	return RGBColor{
		R: int((val >> 16) & 0xff),
		G: int((val >> 8) & 0xff),
		B: int(val & 0xff),
	}, nil
}

// DecodeHex decodes "#RRGGBB" like ParseHex but never fails: malformed input
// yields black with Status set to DefaultedToBlack.
func DecodeHex(color string) Decoded {
	rgb, err := ParseHex(color)
	if err != nil {
		return Decoded{Status: DefaultedToBlack}
	}
	return Decoded{RGB: rgb, Status: Parsed}
}

// EncodeHex formats a colour as "#rrggbb" with lowercase digits.
//
// Channels are not range checked. A value above 255 prints with more than two
// digits and the result is no longer a valid colour.
func EncodeHex(c RGBColor) string {
	return "#" + hexByte(c.R) + hexByte(c.G) + hexByte(c.B)
}

func hexByte(v int) string {
	s := strconv.FormatInt(int64(v), 16)
	if len(s) < 2 {
		s = "0" + s
	}
	return s
}
