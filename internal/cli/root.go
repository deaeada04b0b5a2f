// Package cli provides the command-line interface for tinctconv.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/tinctconv/internal/version"
)

// Flag names shared between registration and config resolution.
const (
	flagVerbose     = "verbose"
	flagHexPrefix   = "hex-prefix"
	flagCMYKPercent = "cmyk-percent"
	flagOutput      = "output"
)

// app is the state shared by the commands of one root command.
type app struct {
	config Config
	log    hclog.Logger

	// lookupEnv reads environment variables; tests replace it.
	lookupEnv func(string) (string, bool)
}

// NewRootCmd builds the tinctconv command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{lookupEnv: os.LookupEnv})
}

func newRootCmd(a *app) *cobra.Command {
	output := OutputAuto

	rootCmd := &cobra.Command{
		Use:   "tinctconv",
		Short: "Convert colours between RGB, CMYK and HEX",
		Long: `tinctconv converts colours between RGB, CMYK and HEX.

RGB channels are clamped to 0-255 and CMYK components to 0-1, so out of
range or non-numeric input is corrected rather than rejected. HEX input
must normalise to six hex digits (three-digit shorthand is expanded) and
is rejected otherwise.

Display preferences can be set with flags or with the environment
variables ` + EnvHexPrefix + `, ` + EnvCMYKPercent + ` and ` + EnvOutput + `.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := NewConfigBuilder().
				WithEnv(a.lookupEnv).
				WithFlags(cmd.Flags()).
				Build()
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			a.config = config
			a.log = newLogger(cmd.ErrOrStderr(), config.Verbose)
			a.log.Debug("configuration resolved",
				"hex_prefix", config.Display.HexPrefix,
				"cmyk_percent", config.Display.CMYKPercent,
				"output", config.Output)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool(flagHexPrefix, false, "show hex colours with a leading #")
	rootCmd.PersistentFlags().Bool(flagCMYKPercent, false, "show CMYK components as percentages")
	rootCmd.PersistentFlags().VarP(&output, flagOutput, "o", "output format ("+outputFormatNames()+")")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRGBCmd(a))
	rootCmd.AddCommand(newCMYKCmd(a))
	rootCmd.AddCommand(newHexCmd(a))

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
