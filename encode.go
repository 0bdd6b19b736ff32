package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/archive"
	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/huffman"
	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/log"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

// encodeCmd implements the encode subcommand: compress a text file
// into an archive and report the statistics.
type encodeCmd struct {
	Stdout io.Writer
	Log    *log.Logger
	Clock  clock.Clock
}

func (c *encodeCmd) Run(inputPath, outputPath string) (err error) {
	start := c.Clock.Now()

	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", inputPath, err)
	}
	c.Log.Debugf("read %d bytes from %v", len(text), inputPath)

	arch := archive.Archiver{Log: c.Log.WithName("archive")}
	enc, err := arch.Encode(string(text))
	if err != nil {
		return fmt.Errorf("encode %q: %w", inputPath, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outputPath, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if _, err := f.Write(enc.Data); err != nil {
		return fmt.Errorf("write %q: %w", outputPath, err)
	}

	c.report(len(text), enc, c.Clock.Since(start))
	return nil
}

func (c *encodeCmd) report(originalSize int, enc *archive.Encoded, elapsed time.Duration) {
	ratio := 0.0
	if originalSize > 0 {
		ratio = float64(len(enc.Data)) / float64(originalSize)
	}

	fmt.Fprintln(c.Stdout, "Compression complete")
	fmt.Fprintf(c.Stdout, "Unique symbols: %d\n", len(enc.Codes))
	fmt.Fprintf(c.Stdout, "Original size (bytes): %d\n", originalSize)
	fmt.Fprintf(c.Stdout, "Compressed size (bytes): %d\n", len(enc.Data))
	fmt.Fprintf(c.Stdout, "Compression ratio: %.3f\n", ratio)
	fmt.Fprintf(c.Stdout, "Elapsed: %v\n", elapsed)
	fmt.Fprintln(c.Stdout, "Code table (symbol -> code):")
	for _, sym := range sortSymbols(enc.Codes) {
		fmt.Fprintf(c.Stdout, "%s -> %s\n", strconv.QuoteRune(sym), enc.Codes[sym])
	}
}

// sortSymbols orders the code table for display: shortest codes, and
// so most frequent symbols, first; ties in symbol order.
func sortSymbols(codes huffman.CodeTable) []rune {
	syms := make([]rune, 0, len(codes))
	for sym := range codes {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		a, b := codes[syms[i]], codes[syms[j]]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return syms[i] < syms[j]
	})
	return syms
}
