package bignumber

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// tolerance converts a float literal such as "1e-100" to a BigNumber through
// NewFromFloat64, since NewFromDecimalString accepts plain decimals only.
func tolerance(t *testing.T, literal string) *BigNumber {
	f, err := strconv.ParseFloat(literal, 64)
	assert.NoError(t, err)
	tol, err := NewFromFloat64(f)
	assert.NoError(t, err)
	return tol
}

func TestExpOfZeroIsOne(t *testing.T) {
	zero := NewFromInt64(0)
	receiver := NewFromInt64(0)
	receiver.Exp(zero)
	checkResult(t, NewFromInt64(1), receiver, tolerance(t, "1e-100"))
}

func TestExpMatchesMathExp(t *testing.T) {
	for _, x := range []float64{0.5, 1, 2, -1, -3.25} {
		input, err := NewFromFloat64(x)
		assert.NoError(t, err)
		receiver := NewFromInt64(0)
		receiver.Exp(input)
		expected, err := NewFromFloat64(math.Exp(x))
		assert.NoError(t, err)
		checkResult(t, expected, receiver, tolerance(t, "1e-10"))
	}
}

func TestLogOfOneIsZero(t *testing.T) {
	one := NewFromInt64(1)
	receiver := NewFromInt64(0)
	_, err := receiver.Log(one)
	assert.NoError(t, err)
	checkResult(t, NewFromInt64(0), receiver, tolerance(t, "1e-100"))
}

func TestLogMatchesMathLog(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 1, 2, 10, 100} {
		input, err := NewFromFloat64(x)
		assert.NoError(t, err)
		receiver := NewFromInt64(0)
		_, err = receiver.Log(input)
		assert.NoError(t, err)
		expected, err := NewFromFloat64(math.Log(x))
		assert.NoError(t, err)
		checkResult(t, expected, receiver, tolerance(t, "1e-10"))
	}
}

func TestLogRejectsNonPositiveInput(t *testing.T) {
	receiver := NewFromInt64(0)
	_, err := receiver.Log(NewFromInt64(0))
	assert.Error(t, err)
	_, err = receiver.Log(NewFromInt64(-1))
	assert.Error(t, err)
}

func TestLogExpRoundTrip(t *testing.T) {
	input, err := NewFromFloat64(3.75)
	assert.NoError(t, err)
	logged := NewFromInt64(0)
	_, err = logged.Log(input)
	assert.NoError(t, err)
	roundTripped := NewFromInt64(0)
	roundTripped.Exp(logged)
	checkResult(t, input, roundTripped, tolerance(t, "1e-8"))
}

func TestPowIntMatchesRepeatedMultiplication(t *testing.T) {
	base, err := NewFromFloat64(1.25)
	assert.NoError(t, err)
	receiver := NewFromInt64(0)
	receiver.PowInt(base, 5)

	expected := NewFromInt64(1)
	for i := 0; i < 5; i++ {
		expected.Mul(expected, base)
	}
	checkResult(t, expected, receiver, tolerance(t, "1e-90"))
}

func TestPowIntZeroExponentIsOne(t *testing.T) {
	base, err := NewFromFloat64(7.5)
	assert.NoError(t, err)
	receiver := NewFromInt64(0)
	receiver.PowInt(base, 0)
	checkResult(t, NewFromInt64(1), receiver, tolerance(t, "1e-90"))
}

func TestPowIntNegativeExponent(t *testing.T) {
	base, err := NewFromFloat64(2)
	assert.NoError(t, err)
	receiver := NewFromInt64(0)
	receiver.PowInt(base, -3)
	expected, err := NewFromFloat64(0.125)
	assert.NoError(t, err)
	checkResult(t, expected, receiver, tolerance(t, "1e-90"))
}

func TestPiMatchesMathPi(t *testing.T) {
	p := Pi()
	expected, err := NewFromFloat64(math.Pi)
	assert.NoError(t, err)
	checkResult(t, expected, p, tolerance(t, "1e-10"))
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, -1, 0.5, 123.456, -9.875} {
		bn, err := NewFromFloat64(x)
		assert.NoError(t, err)
		assert.InDelta(t, x, bn.Float64(), 1e-9)
	}
}

func TestNewFromFloat64RejectsNonFinite(t *testing.T) {
	_, err := NewFromFloat64(math.NaN())
	assert.Error(t, err)
	_, err = NewFromFloat64(math.Inf(1))
	assert.Error(t, err)
}
