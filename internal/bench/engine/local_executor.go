package engine

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calc"
)

// LocalExecutor runs expressions in-process.
type LocalExecutor struct {
	name      string
	evaluator calc.Evaluator
}

func NewLocalExecutor(name string, evaluator calc.Evaluator) *LocalExecutor {
	return &LocalExecutor{name: name, evaluator: evaluator}
}

func (e *LocalExecutor) Execute(ctx context.Context, expression string) (*Execution, error) {
	start := time.Now()
	r, err := e.evaluator.Evaluate(ctx, expression)
	latency := time.Since(start)

	if err != nil {
		kind, ok := apperr.KindOf(err)
		if !ok {
			return nil, err
		}
		return &Execution{Kind: kind, Latency: latency}, nil
	}

	return &Execution{
		Result:  r.String(),
		Exact:   r.Exact(),
		Latency: latency,
	}, nil
}

func (e *LocalExecutor) Name() string { return e.name }
func (e *LocalExecutor) Close() error { return nil }
