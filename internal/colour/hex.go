package colour

import (
	"errors"
	"fmt"
	"strings"
)

// hexPrefix is the marker optionally shown in front of a hex colour.
const hexPrefix = "#"

// hexDigits maps a nibble to its uppercase hex digit.
const hexDigits = "0123456789ABCDEF"

// ErrInvalidHexFormat is returned when a hex colour cannot be normalised.
var ErrInvalidHexFormat = errors.New("invalid hex colour format")

// HexErrorReason says which normalisation check rejected a hex string.
type HexErrorReason string

const (
	// ReasonLength means the cleaned string was neither 3 nor 6 characters.
	ReasonLength HexErrorReason = "length"
	// ReasonAlphabet means the cleaned string had a character outside 0-9A-F.
	ReasonAlphabet HexErrorReason = "alphabet"
)

// HexError describes a rejected hex colour. It wraps ErrInvalidHexFormat.
type HexError struct {
	Input  string
	Reason HexErrorReason
}

func (e *HexError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Reason {
	case ReasonLength:
		return fmt.Sprintf("%v: %q must have 3 or 6 digits", ErrInvalidHexFormat, e.Input)
	case ReasonAlphabet:
		return fmt.Sprintf("%v: %q contains characters outside 0-9A-F", ErrInvalidHexFormat, e.Input)
	default:
		return fmt.Sprintf("%v: %q", ErrInvalidHexFormat, e.Input)
	}
}

func (e *HexError) Unwrap() error {
	return ErrInvalidHexFormat
}

// Hex is a normalised hex colour: six uppercase digits, no prefix.
type Hex string

// String returns the hex colour without prefix.
func (h Hex) String() string {
	return string(h)
}

// ValidateAndNormaliseHex cleans up user input into a Hex.
//
// A leading "#" is stripped and at most six characters after it are kept;
// unprefixed input longer than six characters is cut to six. Three-digit
// shorthand is expanded by doubling each digit ("abc" becomes "AABBCC").
// The result is uppercased. Input that does not end up as six hex digits is
// rejected with a *HexError; invalid characters are never corrected.
func ValidateAndNormaliseHex(s string) (Hex, error) {
	cleaned := s
	if rest, ok := strings.CutPrefix(cleaned, hexPrefix); ok {
		cleaned = rest
	}
	if len(cleaned) > 6 {
		cleaned = cleaned[:6]
	}

	switch len(cleaned) {
	case 6:
	case 3:
		var b strings.Builder
		b.Grow(6)
		for i := range 3 {
			b.WriteByte(cleaned[i])
			b.WriteByte(cleaned[i])
		}
		cleaned = b.String()
	default:
		return "", &HexError{Input: s, Reason: ReasonLength}
	}

	cleaned = strings.ToUpper(cleaned)
	for i := range len(cleaned) {
		if strings.IndexByte(hexDigits, cleaned[i]) < 0 {
			return "", &HexError{Input: s, Reason: ReasonAlphabet}
		}
	}

	return Hex(cleaned), nil
}

// RGBToHex encodes an RGB colour as six uppercase hex digits in R, G, B
// order. Use FormatHex to add the display prefix.
func RGBToHex(rgb RGB) Hex {
	buf := make([]byte, 0, 6)
	for _, v := range [3]uint8{rgb.R, rgb.G, rgb.B} {
		buf = append(buf, hexDigits[v>>4], hexDigits[v&0x0f])
	}
	return Hex(buf)
}

// HexToRGB decodes a normalised hex colour. The input is not validated:
// pass only values produced by ValidateAndNormaliseHex or RGBToHex.
// Missing or non-hex digits decode as zero.
func HexToRGB(h Hex) RGB {
	return RGB{
		R: hexByte(h, 0),
		G: hexByte(h, 2),
		B: hexByte(h, 4),
	}
}

// hexByte decodes the two digits of h starting at i.
func hexByte(h Hex, i int) uint8 {
	return nibble(h, i)<<4 | nibble(h, i+1)
}

func nibble(h Hex, i int) uint8 {
	if i >= len(h) {
		return 0
	}
	switch c := h[i]; {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return 0
}

// FormatHex returns h for display, with a leading "#" when prefix is set.
func FormatHex(h Hex, prefix bool) string {
	if prefix {
		return hexPrefix + string(h)
	}
	return string(h)
}
