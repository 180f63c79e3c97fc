package parser

import (
	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
)

// Converter reorders infix tokens into postfix order.
type Converter interface {
	ToPostfix(tokens []token.Token) ([]token.Token, error)
}

type ShuntingYard struct{}

func NewShuntingYard() *ShuntingYard {
	return &ShuntingYard{}
}

func (p *ShuntingYard) ToPostfix(tokens []token.Token) ([]token.Token, error) {
	return ToPostfix(tokens)
}

// ToPostfix converts an infix token sequence into postfix (RPN) order.
// Example: 2 + 3 * 4 -> 2 3 4 * +
// The output never contains parentheses. No arithmetic is performed here.
func ToPostfix(tokens []token.Token) ([]token.Token, error) {
	out := make([]token.Token, 0, len(tokens))
	ops := make([]token.Token, 0)

	for _, tok := range tokens {
		switch {
		case tok.Type == token.NUMBER:
			out = append(out, tok)
		case tok.Type.IsOperator():
			// equal precedence pops first: a-b-c groups as (a-b)-c
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if !top.Type.IsOperator() || Precedence(tok.Type) > Precedence(top.Type) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tok.Type == token.LPAREN:
			ops = append(ops, tok)
		case tok.Type == token.RPAREN:
			for len(ops) > 0 && ops[len(ops)-1].Type != token.LPAREN {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, apperr.NewExpr(apperr.MismatchedParentheses, "unexpected closing parenthesis")
			}
			ops = ops[:len(ops)-1]
		default:
			return nil, apperr.NewExpr(apperr.BadExpression, "unknown token "+tok.Type.String())
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Type.IsParen() {
			return nil, apperr.NewExpr(apperr.MismatchedParentheses, "unclosed parenthesis")
		}
		out = append(out, top)
	}

	return out, nil
}
