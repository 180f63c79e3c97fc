package calc

import (
	"math"
	"math/big"
	"strconv"
)

// Result is the exact value of an evaluated expression.
type Result struct {
	value *big.Rat
}

func NewResult(v *big.Rat) Result {
	return Result{value: new(big.Rat).Set(v)}
}

// Rat returns a copy of the exact value.
func (r Result) Rat() *big.Rat {
	if r.value == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(r.value)
}

func (r Result) IsInt() bool {
	return r.value == nil || r.value.IsInt()
}

// Float64 returns the nearest float64 and whether it is exact.
func (r Result) Float64() (float64, bool) {
	if r.value == nil {
		return 0, true
	}
	return r.value.Float64()
}

// Exact renders the value as a reduced fraction, e.g. "7/2", or an integer, e.g. "14".
func (r Result) Exact() string {
	if r.value == nil {
		return "0"
	}
	return r.value.RatString()
}

// String renders the value for display: integers in full, other values as the
// shortest decimal that round-trips a float64 ("3.5", "0.3333333333333333").
func (r Result) String() string {
	if r.value == nil {
		return "0"
	}
	if r.value.IsInt() {
		return r.value.Num().String()
	}

	f, _ := r.value.Float64()
	if math.IsInf(f, 0) {
		return r.value.FloatString(16)
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
