package suite

import "github.com/DjordjeVuckovic/rpn-calc/internal/apperr"

type TestSuite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	Runs        Runs   `yaml:"runs"`
	Cases       []Case `yaml:"cases"`
}

type Runs struct {
	Warmup     int `yaml:"warmup"`
	Iterations int `yaml:"iterations"`
}

// Case is one expression with either an expected value or an expected error kind.
// Expect matches the display form ("3.5") or the exact form ("7/2").
type Case struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Expression  string      `yaml:"expression"`
	Expect      string      `yaml:"expect,omitempty"`
	Error       apperr.Kind `yaml:"error,omitempty"`
}

func (c Case) ExpectsError() bool {
	return c.Error != ""
}

var knownKinds = map[apperr.Kind]bool{
	apperr.InvalidCharacter:      true,
	apperr.MismatchedParentheses: true,
	apperr.BadExpression:         true,
	apperr.DivisionByZero:        true,
}
