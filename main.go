// huffman is a command line tool that compresses UTF-8 text files
// into self-describing Huffman archives and restores them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Vardhankumar55/huffman-encoding-decoding/internal/log"
	"github.com/benbjohnson/clock"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Clock:  clock.New(),
	}
	if err := cmd.Run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(cmd.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
}

const _usage = `usage: %[1]v [options] encode INPUT OUTPUT
       %[1]v [options] decode INPUT OUTPUT

encode compresses the UTF-8 text file INPUT into a Huffman archive
written to OUTPUT, and prints the code table and compression
statistics.

decode restores the text held in the archive INPUT and writes it to
OUTPUT.

The following flags are available:

	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
`

func (cmd *mainCmd) Run(args []string) error {
	flag := flag.NewFlagSet("huffman", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		fmt.Fprintf(flag.Output(), _usage, flag.Name())
	}

	var cfg config
	cfg.RegisterFlags(flag)

	if err := flag.Parse(args); err != nil {
		return err
	}
	if flag.NArg() != 3 {
		flag.Usage()
		return fmt.Errorf("expected 3 arguments, got %d", flag.NArg())
	}

	logW, closeLog, err := cfg.BuildLogWriter(cmd.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := log.New(logW)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	clk := cmd.Clock
	if clk == nil {
		clk = clock.New()
	}

	mode, input, output := flag.Arg(0), flag.Arg(1), flag.Arg(2)
	switch mode {
	case "encode":
		enc := encodeCmd{Stdout: cmd.Stdout, Log: logger, Clock: clk}
		return enc.Run(input, output)
	case "decode":
		dec := decodeCmd{Stdout: cmd.Stdout, Log: logger, Clock: clk}
		return dec.Run(input, output)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", mode)
	}
}
