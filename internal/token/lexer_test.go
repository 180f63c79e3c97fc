package token

import (
	"testing"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Value
	}
	return out
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "single number", input: "42", expected: []string{"42"}},
		{name: "multi digit run", input: "12+3", expected: []string{"12", "+", "3"}},
		{name: "all operators", input: "1+2-3*4/5", expected: []string{"1", "+", "2", "-", "3", "*", "4", "/", "5"}},
		{name: "parentheses", input: "(2+3)*4", expected: []string{"(", "2", "+", "3", ")", "*", "4"}},
		{name: "whitespace skipped", input: " 2   + 3 ", expected: []string{"2", "+", "3"}},
		{name: "tabs and newlines", input: "2\t*\n3\r", expected: []string{"2", "*", "3"}},
		{name: "unicode space", input: "2 + 3", expected: []string{"2", "+", "3"}},
		{name: "leading zeros kept as literal", input: "007", expected: []string{"007"}},
		{name: "space splits digit runs", input: "1 2", expected: []string{"1", "2"}},
		{name: "duplicates preserved", input: "++", expected: []string{"+", "+"}},
		{name: "empty input", input: "", expected: []string{}},
		{name: "whitespace only", input: "   ", expected: []string{}},
	}

	l := NewLexer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := l.Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, values(tokens))
		})
	}
}

func TestLexer_TokenTypes(t *testing.T) {
	tokens, err := Tokenize("(1+2)-3*4/5")
	require.NoError(t, err)

	expectedTypes := []Type{
		LPAREN, NUMBER, PLUS, NUMBER, RPAREN, MINUS, NUMBER, STAR, NUMBER, SLASH, NUMBER,
	}
	require.Len(t, tokens, len(expectedTypes))
	for i, typ := range expectedTypes {
		assert.Equal(t, typ, tokens[i].Type, "token %d", i)
	}
}

func TestLexer_NumberValue(t *testing.T) {
	tokens, err := Tokenize("007 123456789012345678901234567890")
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, int64(7), tokens[0].Num.Int64())
	assert.Equal(t, "123456789012345678901234567890", tokens[1].Num.String())
	assert.Nil(t, MustSymbol('+').Num)
}

func TestLexer_InvalidCharacter(t *testing.T) {
	inputs := []string{"2+a", "1.5", "3^2", "x", "2 = 2", "٣", "1,000"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens, err := Tokenize(input)
			require.Error(t, err)
			assert.Nil(t, tokens, "no partial sequence on failure")
			assert.ErrorIs(t, err, apperr.ErrInvalidCharacter)
		})
	}
}

func TestLexer_Reusable(t *testing.T) {
	l := NewLexer()

	first, err := l.Tokenize("1+2")
	require.NoError(t, err)
	second, err := l.Tokenize("1+2")
	require.NoError(t, err)

	assert.Equal(t, values(first), values(second))
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "NUMBER", NUMBER.String())
	assert.Equal(t, "SLASH", SLASH.String())
	assert.Equal(t, "UNKNOWN", Type(99).String())
	assert.True(t, STAR.IsOperator())
	assert.False(t, LPAREN.IsOperator())
	assert.True(t, RPAREN.IsParen())
}
