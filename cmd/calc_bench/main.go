package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/report"
	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/runner"
	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/suite"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calc"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run returns 0 when every case passed, 1 when some failed and 2 on usage or setup errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	loaded, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 2
	}
	slog.Info("Suite loaded", "name", loaded.Suite.Name, "cases", len(loaded.Suite.Cases))

	executors := buildExecutors(cfg)
	defer func() {
		for _, exec := range executors {
			if err := exec.Close(); err != nil {
				slog.Warn("Failed to close executor", "engine", exec.Name(), "error", err)
			}
		}
	}()

	result, err := runner.New(cfg.runnerConfig()).Run(ctx, loaded, executors)
	if err != nil {
		slog.Error("Suite run failed", "error", err)
		return 2
	}

	if err := outputReport(report.Generate(result, loaded.Path), cfg, stdout); err != nil {
		slog.Error("Failed to write report", "error", err)
		return 2
	}

	if !result.AllPassed() {
		return 1
	}
	return 0
}

func buildExecutors(cfg cliConfig) []engine.Executor {
	var executors []engine.Executor
	if !cfg.NoLocal {
		executors = append(executors, engine.NewLocalExecutor("local", calc.NewPipeline()))
	}
	if cfg.APIURL != "" {
		executors = append(executors, engine.NewAPIExecutor("api", cfg.APIURL))
	}
	return executors
}

func outputReport(r *report.Report, cfg cliConfig, stdout io.Writer) error {
	if cfg.Format == formatJSON {
		if cfg.Output != "" {
			if err := report.WriteJSONFile(r, cfg.Output); err != nil {
				return err
			}
			slog.Info("Report written", "path", cfg.Output)
			return nil
		}
		return report.WriteJSON(r, stdout)
	}

	if cfg.Output == "" {
		return report.WriteTable(r, stdout)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := report.WriteTable(r, f); err != nil {
		return err
	}
	slog.Info("Report written", "path", cfg.Output)
	return nil
}
