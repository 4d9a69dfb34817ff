package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/arnodel/jsonarray"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at the bottom of main).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
		}
	}()

	// Parse the command line arguments
	var filename string
	var indent int
	var strict bool
	var verbose bool
	var colorizer *jsonarray.Colorizer

	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &defaultColorizer
	}

	flag.BoolFunc("colors", "force using colors", func(s string) error {
		colorizer = &defaultColorizer
		return nil
	})
	flag.BoolFunc("nocolors", "disable colors", func(s string) error {
		colorizer = nil
		return nil
	})

	flag.StringVar(&filename, "file", "", "json array input filename (stdin if omitted)")
	flag.IntVar(&indent, "indent", -1, "indent step for json output (negative means one object per line)")
	flag.BoolVar(&strict, "strict", false, "fail when the input ends inside an object")
	flag.BoolVar(&verbose, "v", false, "log diagnostics to stderr")
	flag.Parse()

	// Set up diagnostics logging
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fatalError("cannot set up logging: %s", err)
		}
		defer logger.Sync()
	}

	// Open input file
	var input io.Reader
	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			fatalError("error opening %q: %s", filename, err)
		}
		defer f.Close()
		input = f
	} else {
		input = os.Stdin
	}

	// Set up stdout for handling colors
	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}

	lines := jsonarray.Lines(input)
	opts := []jsonarray.Option{jsonarray.WithLogger(logger)}
	if strict {
		opts = append(opts, jsonarray.StrictArrayEnd())
	}
	decoder := jsonarray.NewDecoder(lines, opts...)

	// Start parsing the input and write each object to stdout
	var parseErr error
	stream := jsonarray.StartStream(decoder, func(err error) {
		parseErr = err
	})

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	encoder := &jsonarray.Encoder{
		Writer:     out,
		IndentSize: indent,
		Colorizer:  colorizer,
	}

	err := jsonarray.ConsumeStream(stream, encoder)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return
		}
		fatalError("error: %s", err)
	}
	if parseErr != nil {
		fatalError("error while parsing: %s", parseErr)
	}
	if err := lines.Err(); err != nil {
		fatalError("error reading input: %s", err)
	}
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Yellow = []byte("\033[33m")
	Green  = []byte("\033[32m")
	White  = []byte("\033[37m")

	DimWhite   = []byte("\033[37;2m")
	BrightBlue = []byte("\033[34;1m")
)

// The colors I chose :)
var defaultColorizer = jsonarray.Colorizer{
	KeyColorCode:     BrightBlue,
	StringColorCode:  Green,
	NumberColorCode:  White,
	LiteralColorCode: DimWhite,
	ResetCode:        Reset,
}
