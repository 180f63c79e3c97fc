package apperr

import "errors"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// Kind identifies which stage of the evaluation pipeline rejected an expression.
type Kind string

const (
	InvalidCharacter      Kind = "invalid_character"
	MismatchedParentheses Kind = "mismatched_parentheses"
	BadExpression         Kind = "bad_expression"
	DivisionByZero        Kind = "division_by_zero"
)

func (k Kind) String() string {
	return string(k)
}

// ExprError is returned by the lexer, parser and evaluator.
// Two ExprErrors are equal under errors.Is when their kinds match,
// so callers can compare against the Err* sentinels regardless of the detail message.
type ExprError struct {
	Kind    Kind
	Message string
}

func (e *ExprError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *ExprError) Is(target error) bool {
	t, ok := target.(*ExprError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewExpr(kind Kind, msg string) *ExprError {
	return &ExprError{Kind: kind, Message: msg}
}

var (
	ErrInvalidCharacter      = NewExpr(InvalidCharacter, "invalid character")
	ErrMismatchedParentheses = NewExpr(MismatchedParentheses, "mismatched parentheses")
	ErrBadExpression         = NewExpr(BadExpression, "bad expression")
	ErrDivisionByZero        = NewExpr(DivisionByZero, "division by zero")
)

// KindOf returns the kind of the first ExprError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ee *ExprError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return "", false
}
