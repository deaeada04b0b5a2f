package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/tinctconv/internal/colour"
)

// OutputFormat selects how converted colours are written.
type OutputFormat string

const (
	// OutputAuto picks table on a terminal and plain otherwise.
	OutputAuto  OutputFormat = "auto"
	OutputTable OutputFormat = "table"
	OutputPlain OutputFormat = "plain"
	OutputList  OutputFormat = "list"
	OutputJSON  OutputFormat = "json"
)

var outputFormats = []OutputFormat{OutputAuto, OutputTable, OutputPlain, OutputList, OutputJSON}

var _ pflag.Value = (*OutputFormat)(nil)

// String implements pflag.Value.
func (f *OutputFormat) String() string {
	if *f == "" {
		return string(OutputAuto)
	}
	return string(*f)
}

// Set implements pflag.Value.
func (f *OutputFormat) Set(v string) error {
	candidate := OutputFormat(strings.ToLower(strings.TrimSpace(v)))
	if !slices.Contains(outputFormats, candidate) {
		return fmt.Errorf("unknown output format %q (want one of %s)", v, outputFormatNames())
	}
	*f = candidate
	return nil
}

// Type implements pflag.Value.
func (f *OutputFormat) Type() string {
	return "format"
}

func outputFormatNames() string {
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// resolve replaces OutputAuto with a concrete format for w.
func (f OutputFormat) resolve(w io.Writer) OutputFormat {
	if f != OutputAuto && f != "" {
		return f
	}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return OutputTable
	}
	return OutputPlain
}

// renderPalette writes the palette to w in the requested format.
func renderPalette(w io.Writer, p *colour.Palette, format OutputFormat, d colour.Display) error {
	switch format.resolve(w) {
	case OutputJSON:
		data, err := p.ToJSON(d)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case OutputList:
		_, err := fmt.Fprint(w, p.Format(d))
		return err
	case OutputTable:
		table := NewTable(colour.RowHeaders())
		for col := 1; col < len(colour.RowHeaders()); col++ {
			table.SetColumnAlignRight(col)
		}
		for _, c := range p.All() {
			table.AddRow(d.Row(c))
		}
		_, err := fmt.Fprint(w, table.Render())
		return err
	default:
		for _, c := range p.All() {
			if _, err := fmt.Fprintln(w, strings.Join(d.Row(c), "\t")); err != nil {
				return err
			}
		}
		return nil
	}
}
