package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/runner"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

type cliConfig struct {
	SuitePath string
	APIURL    string
	NoLocal   bool
	Warmup    int
	Runs      int
	Format    string
	Output    string
	Verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("calc_bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.SuitePath, "suite", "configs/bench/calc_suite_v1.yaml", "Path to expression suite YAML")
	fs.StringVar(&cfg.APIURL, "api", "", "Base URL of a running calc_api to run the suite against")
	fs.BoolVar(&cfg.NoLocal, "no-local", false, "Skip the in-process evaluator")
	fs.IntVar(&cfg.Warmup, "warmup", runner.FromSuite, "Warmup runs per case (default: from suite)")
	fs.IntVar(&cfg.Runs, "runs", runner.FromSuite, "Measured runs per case (default: from suite)")
	fs.StringVar(&cfg.Format, "format", formatTable, "Output format: table or json")
	fs.StringVar(&cfg.Output, "output", "", "Write the report to this file instead of stdout")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Format != formatTable && cfg.Format != formatJSON {
		return cfg, fmt.Errorf("unknown format %q", cfg.Format)
	}
	if cfg.NoLocal && cfg.APIURL == "" {
		return cfg, fmt.Errorf("-no-local requires -api")
	}
	return cfg, nil
}

func (c cliConfig) runnerConfig() runner.Config {
	return runner.Config{WarmupRuns: c.Warmup, Runs: c.Runs}
}
