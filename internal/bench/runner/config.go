package runner

import "github.com/DjordjeVuckovic/rpn-calc/internal/bench/suite"

const (
	DefaultWarmupRuns = 0
	DefaultRuns       = 1

	// FromSuite leaves a run count to the suite file.
	FromSuite = -1
)

type Config struct {
	WarmupRuns int
	Runs       int
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: FromSuite,
		Runs:       FromSuite,
	}
}

// Resolve fills counts left at FromSuite from the suite and applies defaults.
func (c Config) Resolve(runs suite.Runs) Config {
	if c.WarmupRuns < 0 {
		c.WarmupRuns = runs.Warmup
	}
	if c.Runs < 0 {
		c.Runs = runs.Iterations
	}
	if c.WarmupRuns < 0 {
		c.WarmupRuns = DefaultWarmupRuns
	}
	if c.Runs < 1 {
		c.Runs = DefaultRuns
	}
	return c
}
