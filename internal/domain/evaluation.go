package domain

import (
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/calc"
	"github.com/google/uuid"
)

// Evaluation is one recorded call of the calculator, successful or not.
type Evaluation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result,omitempty"`
	Exact      string    `json:"exact,omitempty"`
	ErrorKind  string    `json:"error_kind,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewEvaluation records the outcome of evaluating expression.
// Errors without an apperr.Kind are recorded as bad expressions.
func NewEvaluation(expression string, r calc.Result, err error) Evaluation {
	e := Evaluation{
		ID:         uuid.New(),
		Expression: expression,
		CreatedAt:  time.Now().UTC(),
	}

	if err != nil {
		kind, ok := apperr.KindOf(err)
		if !ok {
			kind = apperr.BadExpression
		}
		e.ErrorKind = kind.String()
		return e
	}

	e.Result = r.String()
	e.Exact = r.Exact()
	return e
}

func (e Evaluation) Failed() bool {
	return e.ErrorKind != ""
}

// Display returns the result, or calc.ErrorLabel for failed evaluations.
func (e Evaluation) Display() string {
	if e.Failed() {
		return calc.ErrorLabel
	}
	return e.Result
}
