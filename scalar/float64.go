package scalar

import (
	"fmt"
	"math"
	"strconv"
)

// Float64Value is a Value backed directly by the native float64 type. It is
// the reference backend: fast, and precise enough for most pruning shapes,
// but subject to the same round-off as any double-precision computation.
type Float64Value float64

func (v Float64Value) Add(other Value) Value { return v + other.(Float64Value) }
func (v Float64Value) Sub(other Value) Value { return v - other.(Float64Value) }
func (v Float64Value) Mul(other Value) Value { return v * other.(Float64Value) }
func (v Float64Value) Quo(other Value) Value { return v / other.(Float64Value) }
func (v Float64Value) Neg() Value            { return -v }
func (v Float64Value) Sqrt() Value           { return Float64Value(math.Sqrt(float64(v))) }
func (v Float64Value) Log() Value            { return Float64Value(math.Log(float64(v))) }
func (v Float64Value) Exp() Value            { return Float64Value(math.Exp(float64(v))) }
func (v Float64Value) PowInt(n int) Value    { return Float64Value(math.Pow(float64(v), float64(n))) }
func (v Float64Value) Float64() float64      { return float64(v) }

func (v Float64Value) Cmp(other Value) int {
	o := other.(Float64Value)
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	default:
		return 0
	}
}

// Float64Backend constructs Float64Values.
type Float64Backend struct{}

func (Float64Backend) Name() string      { return "float64" }
func (Float64Backend) Zero() Value       { return Float64Value(0) }
func (Float64Backend) One() Value        { return Float64Value(1) }
func (Float64Backend) MinusOne() Value   { return Float64Value(-1) }
func (Float64Backend) FromFloat64(v float64) Value { return Float64Value(v) }

// Pi returns math.Pi.
func (Float64Backend) Pi() Value { return Float64Value(math.Pi) }

func (Float64Backend) FromDecimalString(s string) (Value, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("Float64Backend.FromDecimalString: could not parse %q: %q", s, err.Error())
	}
	return Float64Value(v), nil
}
