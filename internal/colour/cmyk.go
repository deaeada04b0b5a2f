package colour

import (
	"fmt"
	"math"
	"strconv"
)

// CMYK represents a colour as four ink fractions in [0, 1].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// NewCMYK builds a CMYK value from raw components, clamping each one with
// ValidateCMYKComponent.
func NewCMYK(c, m, y, k float64) CMYK {
	return CMYK{
		C: ValidateCMYKComponent(c),
		M: ValidateCMYKComponent(m),
		Y: ValidateCMYKComponent(y),
		K: ValidateCMYKComponent(k),
	}
}

// ValidateCMYKComponent clamps v into [0, 1]. NaN gives 0.
func ValidateCMYKComponent(v float64) float64 {
	// <= also folds negative zero into 0.
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Components returns the four components in C, M, Y, K order.
func (c CMYK) Components() [4]float64 {
	return [4]float64{c.C, c.M, c.Y, c.K}
}

// String returns the CMYK colour in the format "cmyk(c, m, y, k)" with three
// decimals per component.
func (c CMYK) String() string {
	f := FormatCMYK(c, false)
	return fmt.Sprintf("cmyk(%s, %s, %s, %s)", f[0], f[1], f[2], f[3])
}

// RGBToCMYK converts an RGB colour to CMYK.
// K is the smallest of the three inverted channels; the remaining inks are
// scaled by 1-K. Pure black has K=1 and zero C, M and Y.
func RGBToCMYK(rgb RGB) CMYK {
	c := 1 - float64(rgb.R)/channelMax
	m := 1 - float64(rgb.G)/channelMax
	y := 1 - float64(rgb.B)/channelMax
	k := math.Min(c, math.Min(m, y))

	if k == 1 {
		return CMYK{K: 1}
	}

	return CMYK{
		C: (c - k) / (1 - k),
		M: (m - k) / (1 - k),
		Y: (y - k) / (1 - k),
		K: k,
	}
}

// CMYKToRGB converts a CMYK colour to RGB.
// Each channel is rounded half away from zero (math.Round) and then clamped,
// so components outside [0, 1] cannot overflow a channel.
func CMYKToRGB(c CMYK) RGB {
	return RGB{
		R: inkToChannel(c.C, c.K),
		G: inkToChannel(c.M, c.K),
		B: inkToChannel(c.Y, c.K),
	}
}

// inkToChannel combines one ink with black and scales the remaining light to
// an 8-bit channel.
func inkToChannel(ink, k float64) uint8 {
	combined := ink*(1-k) + k
	return ValidateRGBChannel(math.Round((1 - combined) * channelMax))
}

// FormatCMYK renders the four components for display.
// In percent mode each component becomes round(v*100) followed by " %".
// Otherwise each component is written in fixed point with three decimals.
func FormatCMYK(c CMYK, percent bool) [4]string {
	var out [4]string
	for i, v := range c.Components() {
		if percent {
			out[i] = strconv.Itoa(int(math.Round(v*100))) + " %"
		} else {
			out[i] = strconv.FormatFloat(v, 'f', 3, 64)
		}
	}
	return out
}
