package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/tinctconv/internal/colour"
)

// Environment variables read by WithEnv.
const (
	EnvHexPrefix   = "TINCTCONV_HEX_PREFIX"
	EnvCMYKPercent = "TINCTCONV_CMYK_PERCENT"
	EnvOutput      = "TINCTCONV_OUTPUT"
)

// Config holds the settings for one invocation.
type Config struct {
	// Display carries the hex prefix and CMYK percent preferences.
	Display colour.Display

	// Output selects how converted colours are rendered.
	Output OutputFormat

	// Verbose enables debug logging to stderr.
	Verbose bool
}

// ConfigBuilder provides a fluent interface for resolving a Config.
// Later sources override earlier ones: defaults, then environment, then
// flags the user set explicitly.
type ConfigBuilder struct {
	config Config
	lookup func(string) (string, bool)
	flags  *pflag.FlagSet
}

// NewConfigBuilder creates a builder holding the default configuration.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: Config{Output: OutputAuto},
	}
}

// WithEnv reads configuration from the environment through lookup,
// normally os.LookupEnv.
func (b *ConfigBuilder) WithEnv(lookup func(string) (string, bool)) *ConfigBuilder {
	b.lookup = lookup
	return b
}

// WithFlags applies flags that were set on the command line.
func (b *ConfigBuilder) WithFlags(flags *pflag.FlagSet) *ConfigBuilder {
	b.flags = flags
	return b
}

// Build resolves the configuration.
func (b *ConfigBuilder) Build() (Config, error) {
	config := b.config

	if b.lookup != nil {
		if err := applyEnv(&config, b.lookup); err != nil {
			return Config{}, err
		}
	}

	if b.flags != nil {
		if err := applyFlags(&config, b.flags); err != nil {
			return Config{}, err
		}
	}

	return config, nil
}

func applyEnv(config *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvHexPrefix); ok && v != "" {
		prefix, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvHexPrefix, err)
		}
		config.Display.HexPrefix = prefix
	}
	if v, ok := lookup(EnvCMYKPercent); ok && v != "" {
		percent, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCMYKPercent, err)
		}
		config.Display.CMYKPercent = percent
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		if err := config.Output.Set(v); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvOutput, err)
		}
	}
	return nil
}

func applyFlags(config *Config, flags *pflag.FlagSet) error {
	if flags.Changed(flagHexPrefix) {
		prefix, err := flags.GetBool(flagHexPrefix)
		if err != nil {
			return err
		}
		config.Display.HexPrefix = prefix
	}
	if flags.Changed(flagCMYKPercent) {
		percent, err := flags.GetBool(flagCMYKPercent)
		if err != nil {
			return err
		}
		config.Display.CMYKPercent = percent
	}
	if flags.Changed(flagOutput) {
		if err := config.Output.Set(flags.Lookup(flagOutput).Value.String()); err != nil {
			return err
		}
	}
	verbose, err := flags.GetBool(flagVerbose)
	if err != nil {
		return err
	}
	config.Verbose = verbose
	return nil
}
