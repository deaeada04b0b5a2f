package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctconv/internal/colour"
	"github.com/jmylchreest/tinctconv/internal/fieldinput"
)

// newRGBCmd creates the rgb command.
func newRGBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rgb <r> <g> <b>",
		Short: "Convert an RGB colour",
		Long: `Convert an RGB colour to CMYK and HEX.

Each channel is clamped to 0-255. Non-numeric channels become 0 and
fractions are truncated.

Examples:
  # Convert a colour
  tinctconv rgb 255 0 128

  # Show the hex value with a leading # and CMYK as percentages
  tinctconv --hex-prefix --cmyk-percent rgb 12 34 56`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRGB(cmd, args)
		},
	}
}

func (a *app) runRGB(cmd *cobra.Command, args []string) error {
	var channels [3]uint8
	for i, field := range args {
		raw := fieldinput.Number(field)
		channels[i] = colour.ValidateRGBChannel(raw)
		if fieldinput.Clamped(raw, 0, 255) {
			a.log.Debug("rgb channel corrected", "field", field, "value", channels[i])
		}
	}

	c := colour.FromRGB(colour.RGB{R: channels[0], G: channels[1], B: channels[2]})
	a.log.Debug("converted", "rgb", c.RGB, "cmyk", c.CMYK, "hex", c.Hex)

	return renderPalette(cmd.OutOrStdout(), colour.NewPalette(c), a.config.Output, a.config.Display)
}

// newCMYKCmd creates the cmyk command.
func newCMYKCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cmyk <c> <m> <y> <k>",
		Short: "Convert a CMYK colour",
		Long: `Convert a CMYK colour to RGB and HEX.

Components are fractions between 0 and 1 or percentages ("50%"). Either
"." or "," is accepted as the decimal separator. Out of range components
are clamped and non-numeric components become 0.

Examples:
  # Fractions
  tinctconv cmyk 0 1 0.5 0

  # Percentages with a comma separator
  tinctconv cmyk 12,5% 0 0 40%`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCMYK(cmd, args)
		},
	}
}

func (a *app) runCMYK(cmd *cobra.Command, args []string) error {
	var components [4]float64
	for i, field := range args {
		raw := fieldinput.Percent(field)
		components[i] = colour.ValidateCMYKComponent(raw)
		if fieldinput.Clamped(raw, 0, 1) {
			a.log.Debug("cmyk component corrected", "field", field, "value", components[i])
		}
	}

	c := colour.FromCMYK(colour.CMYK{
		C: components[0],
		M: components[1],
		Y: components[2],
		K: components[3],
	})
	a.log.Debug("converted", "cmyk", c.CMYK, "rgb", c.RGB, "hex", c.Hex)

	return renderPalette(cmd.OutOrStdout(), colour.NewPalette(c), a.config.Output, a.config.Display)
}

// newHexCmd creates the hex command.
func newHexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hex <colour>...",
		Short: "Convert one or more HEX colours",
		Long: `Convert HEX colours to RGB and CMYK.

A leading # is optional and three-digit shorthand is expanded ("abc"
becomes AABBCC). Input is case-insensitive. Colours that do not normalise
to six hex digits are reported as errors; the remaining colours are
still converted.

Examples:
  tinctconv hex ff0080
  tinctconv -o json hex '#abc' 1a2b3c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHex(cmd, args)
		},
	}
}

func (a *app) runHex(cmd *cobra.Command, args []string) error {
	palette := colour.NewPalette()
	var errs []error
	for _, field := range args {
		c, err := colour.FromHex(field)
		if err != nil {
			a.log.Debug("hex rejected", "field", field, "error", err)
			errs = append(errs, err)
			continue
		}
		a.log.Debug("converted", "hex", c.Hex, "rgb", c.RGB, "cmyk", c.CMYK)
		palette.Add(c)
	}

	if palette.Len() > 0 {
		if err := renderPalette(cmd.OutOrStdout(), palette, a.config.Output, a.config.Display); err != nil {
			return err
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d colours rejected: %w", len(errs), len(args), errors.Join(errs...))
	}
	return nil
}
