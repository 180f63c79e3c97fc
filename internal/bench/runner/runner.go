package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/engine"
	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/suite"
)

type Runner struct {
	config Config
}

func New(cfg Config) *Runner {
	return &Runner{config: cfg}
}

// Run executes every case of the suite on every executor, in suite order.
func (r *Runner) Run(
	ctx context.Context,
	loaded *suite.LoadedSuite,
	executors []engine.Executor,
) (*SuiteResult, error) {
	if len(executors) == 0 {
		return nil, fmt.Errorf("no executors configured")
	}

	cfg := r.config.Resolve(loaded.Suite.Runs)
	sr := &SuiteResult{
		SuiteName: loaded.Suite.Name,
		Results:   make(map[string]map[string]CaseResult, len(loaded.Suite.Cases)),
		Config:    cfg,
	}
	for _, exec := range executors {
		sr.EngineNames = append(sr.EngineNames, exec.Name())
	}

	for _, c := range loaded.Suite.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sr.CaseOrder = append(sr.CaseOrder, c.ID)
		sr.Results[c.ID] = make(map[string]CaseResult, len(executors))

		for _, exec := range executors {
			cr := r.runCase(ctx, cfg, c, exec)
			sr.Results[c.ID][exec.Name()] = cr

			switch {
			case cr.Error != nil:
				slog.Warn("case errored", "case", c.ID, "engine", exec.Name(), "error", cr.Error)
			case !cr.Passed:
				slog.Warn("case failed", "case", c.ID, "engine", exec.Name(), "expected", cr.Expected, "got", cr.Got)
			default:
				slog.Debug("case passed", "case", c.ID, "engine", exec.Name(), "p50", cr.Latency.P50())
			}
		}
	}

	return sr, nil
}

func (r *Runner) runCase(ctx context.Context, cfg Config, c suite.Case, exec engine.Executor) CaseResult {
	cr := CaseResult{
		CaseID:     c.ID,
		Expression: c.Expression,
		EngineName: exec.Name(),
		Expected:   expectation(c),
	}

	for i := 0; i < cfg.WarmupRuns; i++ {
		_, _ = exec.Execute(ctx, c.Expression)
	}

	var (
		latencies []time.Duration
		first     *engine.Execution
	)
	for i := 0; i < cfg.Runs; i++ {
		result, err := exec.Execute(ctx, c.Expression)
		if err != nil {
			cr.Error = err
			continue
		}
		latencies = append(latencies, result.Latency)

		if first == nil {
			first = result
		} else if outcome(result) != outcome(first) {
			cr.Inconsistent = true
		}
	}

	if first == nil {
		return cr
	}

	cr.Got = outcome(first)
	cr.Kind = first.Kind
	cr.Latency = ComputeLatencyStats(latencies)
	cr.Passed = cr.Error == nil && !cr.Inconsistent && matches(c, first)
	return cr
}

func matches(c suite.Case, e *engine.Execution) bool {
	if c.ExpectsError() {
		return e.Kind == c.Error
	}
	return !e.Failed() && (e.Result == c.Expect || e.Exact == c.Expect)
}

func expectation(c suite.Case) string {
	if c.ExpectsError() {
		return "error: " + string(c.Error)
	}
	return c.Expect
}

func outcome(e *engine.Execution) string {
	if e.Failed() {
		return "error: " + string(e.Kind)
	}
	return e.Result
}
