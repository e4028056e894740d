package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "iconjar",
		Level:  lvl,
	}), nil
}
