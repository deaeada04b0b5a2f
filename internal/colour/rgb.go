// Package colour converts between the RGB, CMYK and HEX colour models.
// Validators clamp raw numeric input into each model's domain, converters
// map validated values between models, and formatters render values for
// display. Nothing in this package holds state; display preferences are
// passed in explicitly.
package colour

import (
	"fmt"
	"image/color"
	"math"
)

const (
	// channelMax is the largest value of an 8-bit RGB channel.
	channelMax = 255
)

// RGB represents a colour as three 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewRGB builds an RGB value from raw channel values, clamping each one
// with ValidateRGBChannel.
func NewRGB(r, g, b float64) RGB {
	return RGB{
		R: ValidateRGBChannel(r),
		G: ValidateRGBChannel(g),
		B: ValidateRGBChannel(b),
	}
}

// ValidateRGBChannel clamps v into [0, 255].
// NaN (a non-numeric field) and negative values give 0, values above 255
// give 255. Fractions inside the range are truncated, not rounded; callers
// that want rounding must round first.
func ValidateRGBChannel(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > channelMax {
		return channelMax
	}
	return uint8(v)
}

// String returns the RGB colour in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// RGBA implements color.Color with full opacity.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}.RGBA()
}

// FromColor converts any color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}
