package eval

import (
	"fmt"
	"math/big"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

// EvalPostfix runs a postfix token sequence on a stack machine and returns the exact result.
// Division is exact: 7/2 yields 7/2, never 3.
func EvalPostfix(tokens []token.Token) (*big.Rat, error) {
	stack := make([]*big.Rat, 0, len(tokens))

	pop := func() (*big.Rat, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, true
	}

	for _, tok := range tokens {
		if tok.Type == token.NUMBER {
			if tok.Num == nil {
				return nil, apperr.NewExpr(apperr.BadExpression, "number token without value")
			}
			stack = append(stack, new(big.Rat).SetInt(tok.Num))
			continue
		}

		if !tok.Type.IsOperator() {
			return nil, apperr.NewExpr(apperr.BadExpression, fmt.Sprintf("unexpected %s in postfix", tok.Type))
		}

		b, okB := pop()
		a, okA := pop()
		if !okA || !okB {
			return nil, apperr.NewExpr(apperr.BadExpression, fmt.Sprintf("missing operand for %q", tok.Value))
		}

		v, err := apply(tok.Type, a, b)
		if err != nil {
			return nil, err
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return nil, apperr.NewExpr(apperr.BadExpression,
			fmt.Sprintf("expected one value after evaluation, got %d", len(stack)))
	}

	return stack[0], nil
}

func apply(op token.Type, a, b *big.Rat) (*big.Rat, error) {
	switch op {
	case token.PLUS:
		return new(big.Rat).Add(a, b), nil
	case token.MINUS:
		return new(big.Rat).Sub(a, b), nil
	case token.STAR:
		return new(big.Rat).Mul(a, b), nil
	case token.SLASH:
		if b.Sign() == 0 {
			return nil, apperr.NewExpr(apperr.DivisionByZero, "division by zero")
		}
		return new(big.Rat).Quo(a, b), nil
	default:
		return nil, apperr.NewExpr(apperr.BadExpression, "unknown operator "+op.String())
	}
}
