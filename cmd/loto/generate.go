package main

import (
	"fmt"
	"io"

	"loto/internal/draw"
	"loto/internal/generator"
)

type drawOptions struct {
	inputOptions

	exist  string
	exists bool

	maxAttempts int
	seed        int64
}

// runDraw prints either a fresh never-drawn result or, when a draw was
// given, whether it is valid and already drawn.
func runDraw(stdout, stderr io.Writer, opts drawOptions) error {
	var wanted draw.Result
	if opts.exists {
		r, err := draw.Parse(opts.exist)
		if err != nil {
			return usagef("--exist: %v", err)
		}
		wanted = r
	}

	format, results, err := prepare(stderr, opts.inputOptions)
	if err != nil {
		return err
	}

	if opts.exists {
		fmt.Fprintf(stdout, "Is a valid %s ? %t\n", format.Name, format.Valid(wanted))
		fmt.Fprintf(stdout, "%s was drawn ? %t\n", wanted, wanted.In(results))
		return nil
	}

	gen := generator.NewSeeded(opts.seed, opts.maxAttempts)
	fresh, err := gen.GenerateUnseen(results, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, fresh)
	return nil
}
