// Copyright 2020 Aleksandr Demakin. All rights reserved.

// showfloat shows the bit patterns of numbers in the hardware float formats
// and in configurable-width layouts, mostly for debugging conversions.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/avdva/binfloat"
	"github.com/avdva/binfloat/ieee"
)

// CLI defines the showfloat command-line interface.
type CLI struct {
	Values  []string `arg:"" optional:"" help:"Numbers to show, in Go float syntax. Inf and NaN are accepted. Defaults to a set of corner cases."`
	Layouts string   `short:"l" help:"Comma separated list of layouts to show: ${layouts}." default:"binary64,wide"`
	Verbose bool     `short:"v" help:"Enable debug logging."`
}

// cornerCases are shown when no values are given.
var cornerCases = []string{
	"0", "-0", "inf", "-inf", "nan", "1", "-1",
	"1e-8",
	"3.4028234663852886e+38", // max float32
	"1.1754943508222875e-38", // min normal float32
	"1.401298464324817e-45",  // min subnormal float32
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showfloat"),
		kong.Description("Show the bit patterns of floating-point numbers. With two numbers, also show the results of arithmetic between them."),
		kong.Vars{"layouts": layoutNames()},
	)
	if err := run(&cli, os.Stdout); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI, out io.Writer) error {
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	binfloat.SetLogger(log)

	layouts, err := parseLayouts(cli.Layouts)
	if err != nil {
		return err
	}
	values := cli.Values
	if len(values) == 0 {
		values = cornerCases
	}
	if len(cli.Values) > 2 {
		log.Debug("more than two values, arithmetic is not shown", "count", len(values))
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for i, s := range values {
		d, err := strconv.ParseFloat(s, 64)
		if err != nil && !isRangeErr(err) {
			return fmt.Errorf("bad value %q: %w", s, err)
		}
		log.Debug("parsed value", "input", s, "float64", d)
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "value\t%s\t\n", s)
		showHardware(w, d)
		for _, l := range layouts {
			if err := l.show(w, s); err != nil {
				return fmt.Errorf("%s: %w", l.name, err)
			}
		}
	}
	if len(cli.Values) == 2 {
		fmt.Fprintln(w)
		for _, l := range layouts {
			if err := l.ops(w, cli.Values[0], cli.Values[1]); err != nil {
				return fmt.Errorf("%s: %w", l.name, err)
			}
		}
	}
	return w.Flush()
}

// isRangeErr reports whether err only says that the value does not fit a float64.
// The value is still shown, wider layouts may hold it.
func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

func showHardware(w io.Writer, d float64) {
	h := ieee.Float16From(d)
	fmt.Fprintf(w, "fp16\t%016b\t%v\n", h, ieee.Float16To[float64](h))

	f := float32(d)
	fmt.Fprintf(w, "fp32\t%08x\t%v\n", ieee.Encode32(f), ieee.Decode32(ieee.Encode32(f)))
	fmt.Fprintf(w, "fp64\t%016x\t%v\n", ieee.Encode64(d), ieee.Decode64(ieee.Encode64(d)))

	b := ieee.Encode80(ieee.Float80FromFloat64(d))
	fmt.Fprintf(w, "fp80\t% x\t%v\n", b[:], ieee.Decode80(b))
}
