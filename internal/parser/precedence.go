package parser

import "github.com/DjordjeVuckovic/rpn-calc/internal/token"

// All operators are left-associative.
var precedence = map[token.Type]int{
	token.PLUS:  1,
	token.MINUS: 1,
	token.STAR:  2,
	token.SLASH: 2,
}

// Precedence returns the binding level of a binary operator, or 0 for anything else.
func Precedence(t token.Type) int {
	return precedence[t]
}
