package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run evaluates the joined arguments, or every non-blank stdin line when there are none.
// It returns 1 if any expression failed.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Print the error kind and detail instead of the generic label")
	exact := fs.Bool("exact", false, "Print results as reduced fractions (7/2) instead of decimals")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	p := printer{out: stdout, verbose: *verbose, exact: *exact}

	if fs.NArg() > 0 {
		return p.print(strings.Join(fs.Args(), " "))
	}

	status := 0
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if p.print(line) != 0 {
			status = 1
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("Failed to read input", "error", err)
		return 1
	}
	return status
}

type printer struct {
	out     io.Writer
	verbose bool
	exact   bool
}

func (p printer) print(expression string) int {
	r, err := calc.Evaluate(expression)
	if err != nil {
		if p.verbose {
			kind, _ := apperr.KindOf(err)
			fmt.Fprintf(p.out, "%s: %s (%s)\n", calc.ErrorLabel, err, kind)
		} else {
			fmt.Fprintln(p.out, calc.ErrorLabel)
		}
		return 1
	}

	if p.exact {
		fmt.Fprintln(p.out, r.Exact())
	} else {
		fmt.Fprintln(p.out, r.String())
	}
	return 0
}
