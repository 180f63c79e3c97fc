// Package calc evaluates arithmetic expressions built from non-negative integers,
// the binary operators + - * / and parentheses.
//
// Evaluation is a strict pipeline: the lexer produces tokens, the shunting-yard
// parser reorders them into postfix order and a stack machine computes the value.
// Every call allocates its own state, so Evaluate is safe for concurrent use.
package calc

import (
	"context"

	"github.com/DjordjeVuckovic/rpn-calc/internal/eval"
	"github.com/DjordjeVuckovic/rpn-calc/internal/parser"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

// ErrorLabel is shown in place of a result when an expression cannot be evaluated.
const ErrorLabel = "Error"

// Evaluator is implemented by anything that can turn an expression into a Result.
type Evaluator interface {
	Evaluate(ctx context.Context, expression string) (Result, error)
}

// Evaluate tokenizes, converts and evaluates expression.
// The first failure is returned unchanged, so its apperr.Kind is preserved.
func Evaluate(expression string) (Result, error) {
	tokens, err := token.Tokenize(expression)
	if err != nil {
		return Result{}, err
	}

	postfix, err := parser.ToPostfix(tokens)
	if err != nil {
		return Result{}, err
	}

	v, err := eval.EvalPostfix(postfix)
	if err != nil {
		return Result{}, err
	}

	return Result{value: v}, nil
}

// Display evaluates expression and returns the display string, or ErrorLabel on any failure.
func Display(expression string) string {
	r, err := Evaluate(expression)
	if err != nil {
		return ErrorLabel
	}
	return r.String()
}

// Pipeline adapts Evaluate to the Evaluator interface.
type Pipeline struct{}

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

func (p *Pipeline) Evaluate(ctx context.Context, expression string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Evaluate(expression)
}
