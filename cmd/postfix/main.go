// Command postfix prints the postfix form of an infix expression and
// its value.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/atuleu/go-postfix"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	bindings := postfix.MapContext{"x": 1}

	flags := flag.NewFlagSet("postfix", flag.ContinueOnError)
	flags.SetOutput(stderr)
	logLevel := flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Func("given", "name=value variable definition (any number of times, x=1 by default)", bindings.Define)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: postfix [flags] <formula in infix notation>")
		fmt.Fprintln(flags.Output(), "Example: postfix \"sin ( 3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3 )\"")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger := newLogger(stderr, *logLevel)

	if flags.NArg() != 1 {
		flags.Usage()
		return 1
	}

	infix := flags.Arg(0)
	logger.Debug().Str("infix", infix).Interface("bindings", bindings).Msg("converting")

	p, err := postfix.Convert(infix)
	if err != nil {
		logger.Error().Err(err).Str("infix", infix).Msg("conversion failed")
		return 1
	}
	if len(p) == 0 {
		logger.Warn().Str("infix", infix).Msg("no tokens could be found")
	}
	printPostfix(stdout, p)

	res, err := p.Eval(bindings)
	if err != nil {
		logger.Error().Err(err).Str("postfix", p.String()).Msg("evaluation failed")
		return 1
	}
	fmt.Fprintf(stdout, "Result: %g\n", res)
	return 0
}

func newLogger(w io.Writer, logLevel string) zerolog.Logger {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: noColor}).
		With().Timestamp().Logger().
		Level(level)
}

const rule = "------------------------------------"

func printPostfix(w io.Writer, p postfix.Postfix) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Number of tokens: %d\n", len(p))
	fmt.Fprintf(w, "[%d] = Number (int or double)\n", postfix.TypeNumber)
	fmt.Fprintf(w, "[%d] = Operator (+, -, *, /, ^, ~ for unary minus)\n", postfix.TypeOperator)
	fmt.Fprintf(w, "[%d] = Variable (x, y, z, ...)\n", postfix.TypeVariable)
	fmt.Fprintf(w, "[%d] = Function (sin, cos, max, min)\n", postfix.TypeFunction)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Simple: %s\n", p)
	fmt.Fprintf(w, "Detailed: %s\n", p.Detailed())
}
