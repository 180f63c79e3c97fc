package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTrim(t *testing.T) {
	assert.Nil(t, SplitTrim("", ","))
	assert.Equal(t, []string{"a", "b", ""}, SplitTrim(" a , b ,", ","))
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings(SplitTrim(" a , b ,", ",")))
}

func TestRoundDecimal(t *testing.T) {
	assert.Equal(t, 3.14, RoundDecimal(3.14159, 2))
	assert.Equal(t, 2.0, RoundDecimal(1.5, 0))
}
