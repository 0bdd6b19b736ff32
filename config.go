package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

type config struct {
	LogFile string
	Verbose bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// BuildLogWriter builds the writer that logs should be written to,
// falling back to the provided writer if no log file is configured.
// The returned function must be called when done with the writer.
func (c *config) BuildLogWriter(def io.Writer) (w io.Writer, done func(), err error) {
	if len(c.LogFile) == 0 {
		return def, func() {}, nil
	}

	f, err := os.OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %q: %w", c.LogFile, err)
	}
	return f, func() { f.Close() }, nil
}
