// Package fieldinput turns raw text fields into numbers for the colour
// validators. Parsing never fails: text that is not a number becomes NaN,
// which the validators treat as zero.
package fieldinput

import (
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/tinctconv/internal/colour"
)

// Number parses a decimal field. Surrounding whitespace is ignored and a
// single "," is accepted as the decimal separator. Anything else that
// strconv.ParseFloat rejects gives NaN.
func Number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Percent parses a fraction that may be written as a percentage. "50%" and
// "50 %" both give 0.5; input without "%" is parsed as Number.
func Percent(s string) float64 {
	trimmed := strings.TrimSpace(s)
	if rest, ok := strings.CutSuffix(trimmed, "%"); ok {
		return Number(rest) / 100
	}
	return Number(trimmed)
}

// RGBChannel parses and clamps a single RGB channel field.
func RGBChannel(s string) uint8 {
	return colour.ValidateRGBChannel(Number(s))
}

// CMYKComponent parses and clamps a single CMYK component field.
func CMYKComponent(s string) float64 {
	return colour.ValidateCMYKComponent(Percent(s))
}

// Clamped reports whether validation had to correct the raw value: it was
// non-numeric or outside [lo, hi].
func Clamped(raw, lo, hi float64) bool {
	return math.IsNaN(raw) || raw < lo || raw > hi
}
