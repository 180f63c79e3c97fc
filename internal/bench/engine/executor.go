package engine

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

// Executor evaluates one expression against some calculator backend.
// A rejected expression is a normal outcome reported through Execution.Kind;
// the returned error is reserved for backend failures.
type Executor interface {
	Execute(ctx context.Context, expression string) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	Result  string
	Exact   string
	Kind    apperr.Kind
	Latency time.Duration
}

func (e *Execution) Failed() bool {
	return e.Kind != ""
}
