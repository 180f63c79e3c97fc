package parser

import (
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Value
	}
	return strings.Join(parts, " ")
}

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single number", input: "7", expected: "7"},
		{name: "precedence", input: "2+3*4", expected: "2 3 4 * +"},
		{name: "parentheses override", input: "(2+3)*4", expected: "2 3 + 4 *"},
		{name: "left associative minus", input: "8-3-1", expected: "8 3 - 1 -"},
		{name: "left associative divide", input: "8/4/2", expected: "8 4 / 2 /"},
		{name: "mixed equal precedence", input: "6/2*3", expected: "6 2 / 3 *"},
		{name: "lower after higher", input: "2*3+4", expected: "2 3 * 4 +"},
		{name: "nested", input: "((1+2)*(3-4))/5", expected: "1 2 + 3 4 - * 5 /"},
		{name: "redundant parentheses", input: "((7))", expected: "7"},
		{name: "empty", input: "", expected: ""},
		{name: "empty parentheses", input: "()", expected: ""},
		{name: "operators only are structural", input: "+", expected: "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := token.Tokenize(tt.input)
			require.NoError(t, err)

			postfix, err := ToPostfix(tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, join(postfix))

			for _, tok := range postfix {
				assert.False(t, tok.Type.IsParen(), "postfix must not contain parentheses")
			}
		})
	}
}

func TestToPostfix_MismatchedParentheses(t *testing.T) {
	inputs := []string{"(1+2", "1+2)", ")(", "((1)", "(1))", ")", "("}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, err := token.Tokenize(input)
			require.NoError(t, err)

			postfix, err := ToPostfix(tokens)
			require.Error(t, err)
			assert.Nil(t, postfix)
			assert.ErrorIs(t, err, apperr.ErrMismatchedParentheses)
		})
	}
}

func TestToPostfix_DoesNotMutateInput(t *testing.T) {
	tokens := []token.Token{
		token.MustNumber("1"), token.MustSymbol('+'), token.MustNumber("2"),
	}
	before := join(tokens)

	_, err := NewShuntingYard().ToPostfix(tokens)
	require.NoError(t, err)
	assert.Equal(t, before, join(tokens))
}

func TestPrecedence(t *testing.T) {
	assert.Equal(t, 1, Precedence(token.PLUS))
	assert.Equal(t, 1, Precedence(token.MINUS))
	assert.Equal(t, 2, Precedence(token.STAR))
	assert.Equal(t, 2, Precedence(token.SLASH))
	assert.Equal(t, 0, Precedence(token.LPAREN))
}
