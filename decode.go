package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/archive"
	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/log"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

// decodeCmd implements the decode subcommand: restore the text held
// in an archive file.
type decodeCmd struct {
	Stdout io.Writer
	Log    *log.Logger
	Clock  clock.Clock
}

func (c *decodeCmd) Run(inputPath, outputPath string) (err error) {
	start := c.Clock.Now()

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", inputPath, err)
	}

	arch := archive.Archiver{Log: c.Log.WithName("archive")}
	text, err := arch.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %q: %w", inputPath, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outputPath, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("write %q: %w", outputPath, err)
	}

	fmt.Fprintln(c.Stdout, "Decompression complete")
	fmt.Fprintf(c.Stdout, "Wrote %d characters to %v\n", utf8.RuneCountInString(text), outputPath)
	fmt.Fprintf(c.Stdout, "Elapsed: %v\n", c.Clock.Since(start))
	return nil
}
