package token

import "math/big"

type Type int

const (
	NUMBER Type = iota
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether t is one of the four binary operators.
func (t Type) IsOperator() bool {
	return t == PLUS || t == MINUS || t == STAR || t == SLASH
}

// IsParen reports whether t is an opening or closing parenthesis.
func (t Type) IsParen() bool {
	return t == LPAREN || t == RPAREN
}

// Token represents a lexical token with its type and literal value.
// Num is set only for NUMBER tokens and must not be modified.
type Token struct {
	Type  Type
	Value string
	Num   *big.Int
}

func (t Token) String() string {
	return t.Value
}

var symbols = map[rune]Type{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'(': LPAREN,
	')': RPAREN,
}

// Symbol returns the punctuation token for ch, if ch is one of + - * / ( ).
func Symbol(ch rune) (Token, bool) {
	typ, ok := symbols[ch]
	if !ok {
		return Token{}, false
	}
	return Token{Type: typ, Value: string(ch)}, true
}

// Number builds a NUMBER token from a run of decimal digits.
func Number(digits string) (Token, bool) {
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok || n.Sign() < 0 {
		return Token{}, false
	}
	return Token{Type: NUMBER, Value: digits, Num: n}, true
}

// MustNumber is like Number but panics on malformed digits. Intended for tests and fixtures.
func MustNumber(digits string) Token {
	t, ok := Number(digits)
	if !ok {
		panic("token: malformed number " + digits)
	}
	return t
}

// MustSymbol is like Symbol but panics when ch is not punctuation.
func MustSymbol(ch rune) Token {
	t, ok := Symbol(ch)
	if !ok {
		panic("token: unknown symbol " + string(ch))
	}
	return t
}
