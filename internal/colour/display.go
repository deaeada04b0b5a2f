package colour

// Display holds the user's display preferences. The zero value shows hex
// colours without prefix and CMYK components as three-decimal fractions.
type Display struct {
	// HexPrefix prepends "#" to every hex colour shown.
	HexPrefix bool `json:"hex_prefix"`

	// CMYKPercent shows CMYK components as whole percentages.
	CMYKPercent bool `json:"cmyk_percent"`
}

// FormatHex renders h according to the hex prefix preference.
func (d Display) FormatHex(h Hex) string {
	return FormatHex(h, d.HexPrefix)
}

// FormatCMYK renders c according to the CMYK percent preference.
func (d Display) FormatCMYK(c CMYK) [4]string {
	return FormatCMYK(c, d.CMYKPercent)
}

// Row renders a colour as display cells: hex, R, G, B, C, M, Y, K.
func (d Display) Row(c Colour) []string {
	cmyk := d.FormatCMYK(c.CMYK)
	return []string{
		d.FormatHex(c.Hex),
		itoa(c.RGB.R),
		itoa(c.RGB.G),
		itoa(c.RGB.B),
		cmyk[0],
		cmyk[1],
		cmyk[2],
		cmyk[3],
	}
}

// RowHeaders returns the column names matching Row.
func RowHeaders() []string {
	return []string{"HEX", "R", "G", "B", "C", "M", "Y", "K"}
}
