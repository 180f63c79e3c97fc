package token

import (
	"fmt"
	"unicode"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

type Lexer struct {
	input []rune
	pos   int
}

func NewLexer() *Lexer {
	return &Lexer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `12 * (3 + 4)` Output: 12 * ( 3 + 4 )
// The first character outside digits, whitespace and + - * / ( ) aborts the whole call.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	l.input = []rune(input)
	l.pos = 0

	tokens := make([]Token, 0, len(l.input))

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case unicode.IsSpace(ch):
			l.pos++
		case isDigit(ch):
			tok, err := l.readNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		default:
			tok, ok := Symbol(ch)
			if !ok {
				return nil, apperr.NewExpr(apperr.InvalidCharacter,
					fmt.Sprintf("invalid character %q at offset %d", ch, l.pos))
			}
			tokens = append(tokens, tok)
			l.pos++
		}
	}

	return tokens, nil
}

func (l *Lexer) readNumber() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}

	digits := string(l.input[start:l.pos])
	tok, ok := Number(digits)
	if !ok {
		return Token{}, apperr.NewExpr(apperr.InvalidCharacter, fmt.Sprintf("malformed number %q", digits))
	}
	return tok, nil
}

// Only ASCII digits form numbers; other Unicode digits are invalid characters.
func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize runs a fresh Lexer over input.
func Tokenize(input string) ([]Token, error) {
	return NewLexer().Tokenize(input)
}
