package colour

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Colour is one colour seen through all three models.
type Colour struct {
	RGB  RGB
	CMYK CMYK
	Hex  Hex
}

// FromRGB builds a Colour from an RGB value.
func FromRGB(rgb RGB) Colour {
	return Colour{
		RGB:  rgb,
		CMYK: RGBToCMYK(rgb),
		Hex:  RGBToHex(rgb),
	}
}

// FromCMYK builds a Colour from a CMYK value.
// The CMYK view keeps the caller's components rather than the canonical
// values RGBToCMYK would produce, since CMYK has more degrees of freedom
// than RGB.
func FromCMYK(c CMYK) Colour {
	rgb := CMYKToRGB(c)
	return Colour{
		RGB:  rgb,
		CMYK: c,
		Hex:  RGBToHex(rgb),
	}
}

// FromHex validates and normalises s and builds a Colour from it.
func FromHex(s string) (Colour, error) {
	h, err := ValidateAndNormaliseHex(s)
	if err != nil {
		return Colour{}, err
	}
	rgb := HexToRGB(h)
	return Colour{
		RGB:  rgb,
		CMYK: RGBToCMYK(rgb),
		Hex:  h,
	}, nil
}

// Palette is an ordered list of converted colours.
type Palette struct {
	Colours []Colour
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours ...Colour) *Palette {
	return &Palette{
		Colours: colours,
	}
}

// Add appends a colour to the palette.
func (p *Palette) Add(c Colour) {
	p.Colours = append(p.Colours, c)
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Colour, error) {
	if index < 0 || index >= len(p.Colours) {
		return Colour{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, Colour) bool) {
	return func(yield func(int, Colour) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex       string    `json:"hex"`
	RGB       RGB       `json:"rgb"`
	CMYK      CMYK      `json:"cmyk"`
	CMYKLabel [4]string `json:"cmyk_display"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Display Display      `json:"display"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON. Hex strings and CMYK labels
// follow the display preferences; numeric values are always included.
func (p *Palette) ToJSON(d Display) ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{
			Hex:       d.FormatHex(c.Hex),
			RGB:       c.RGB,
			CMYK:      c.CMYK,
			CMYKLabel: d.FormatCMYK(c.CMYK),
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p.Colours),
		Display: d,
		Colours: colours,
	}, "", "  ")
}

// Format returns a human-readable listing of the palette, one colour per
// line.
func (p *Palette) Format(d Display) string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	for i, c := range p.Colours {
		cmyk := d.FormatCMYK(c.CMYK)
		fmt.Fprintf(&b, "%2d: %s  %s  cmyk(%s)\n",
			i+1, d.FormatHex(c.Hex), c.RGB, strings.Join(cmyk[:], ", "))
	}
	return b.String()
}

func itoa(v uint8) string {
	return strconv.Itoa(int(v))
}
