package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the command logger. Verbose runs log at debug level to
// w; otherwise logging is switched off.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tinctconv",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tinctconv",
		Output: w,
		Level:  hclog.Debug,
		Color:  hclog.AutoColor,
	})
}
