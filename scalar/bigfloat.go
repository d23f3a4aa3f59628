package scalar

import (
	"fmt"

	"github.com/predrag3141/pruner/bignumber"
)

// BigValue is a Value backed by an arbitrary-precision bignumber.BigNumber.
// Every method constructs a fresh BigNumber the way the bignumber package's
// own call sites do (receiver := bignumber.NewFromInt64(0); receiver.Op(...)),
// so BigValue behaves like an immutable value even though bignumber.BigNumber
// itself is mutated in place internally.
type BigValue struct {
	bn *bignumber.BigNumber
}

// NewBigValue wraps an existing BigNumber. The caller must not mutate bn
// afterwards.
func NewBigValue(bn *bignumber.BigNumber) BigValue {
	return BigValue{bn: bn}
}

func (v BigValue) other(o Value) *bignumber.BigNumber {
	return o.(BigValue).bn
}

func (v BigValue) Add(o Value) Value {
	r := bignumber.NewFromInt64(0)
	r.Add(v.bn, v.other(o))
	return BigValue{bn: r}
}

func (v BigValue) Sub(o Value) Value {
	r := bignumber.NewFromInt64(0)
	r.Sub(v.bn, v.other(o))
	return BigValue{bn: r}
}

func (v BigValue) Mul(o Value) Value {
	r := bignumber.NewFromInt64(0)
	r.Mul(v.bn, v.other(o))
	return BigValue{bn: r}
}

func (v BigValue) Quo(o Value) Value {
	r := bignumber.NewFromInt64(0)
	if _, err := r.Quo(v.bn, v.other(o)); err != nil {
		// A division by zero here is a defect in the caller's feasibility
		// checks (callers are expected to keep denominators like b[rd-1]
		// bounded away from 0 by the coefficient invariants), not a
		// recoverable runtime condition for a Value method to surface one
		// level at a time through an interface with no error return.
		panic(fmt.Sprintf("scalar.BigValue.Quo: %q", err.Error()))
	}
	return BigValue{bn: r}
}

func (v BigValue) Neg() Value {
	r := bignumber.NewFromInt64(0)
	r.Sub(r, v.bn)
	return BigValue{bn: r}
}

func (v BigValue) Sqrt() Value {
	r := bignumber.NewFromInt64(0)
	if _, err := r.Sqrt(v.bn); err != nil {
		panic(fmt.Sprintf("scalar.BigValue.Sqrt: %q", err.Error()))
	}
	return BigValue{bn: r}
}

func (v BigValue) Log() Value {
	r := bignumber.NewFromInt64(0)
	if _, err := r.Log(v.bn); err != nil {
		panic(fmt.Sprintf("scalar.BigValue.Log: %q", err.Error()))
	}
	return BigValue{bn: r}
}

func (v BigValue) Exp() Value {
	r := bignumber.NewFromInt64(0)
	r.Exp(v.bn)
	return BigValue{bn: r}
}

func (v BigValue) PowInt(n int) Value {
	r := bignumber.NewFromInt64(0)
	r.PowInt(v.bn, n)
	return BigValue{bn: r}
}

func (v BigValue) Cmp(o Value) int {
	return v.bn.Cmp(v.other(o))
}

func (v BigValue) Float64() float64 {
	return v.bn.Float64()
}

// BigBackend constructs BigValues at the precision most recently passed to
// bignumber.Init. Precision is a process-wide setting in the bignumber
// package (see its own doc comment); callers that need a specific precision
// must call bignumber.Init before constructing a Pruner with this backend.
type BigBackend struct{}

func (BigBackend) Name() string { return "bignumber" }

func (BigBackend) Zero() Value { return BigValue{bn: bignumber.NewFromInt64(0)} }

func (BigBackend) One() Value { return BigValue{bn: bignumber.NewFromInt64(1)} }

func (BigBackend) MinusOne() Value { return BigValue{bn: bignumber.NewFromInt64(-1)} }

func (BigBackend) FromFloat64(v float64) Value {
	bn, err := bignumber.NewFromFloat64(v)
	if err != nil {
		// Every float64 is representable as a finite decimal literal, so
		// this can only fail for NaN/Inf, which callers should never feed
		// a scalar backend.
		panic(fmt.Sprintf("scalar.BigBackend.FromFloat64: %q", err.Error()))
	}
	return BigValue{bn: bn}
}

// Pi returns pi at the precision most recently passed to bignumber.Init.
func (BigBackend) Pi() Value { return BigValue{bn: bignumber.Pi()} }

func (BigBackend) FromDecimalString(s string) (Value, error) {
	bn, err := bignumber.NewFromDecimalString(s)
	if err != nil {
		return nil, fmt.Errorf("BigBackend.FromDecimalString: %q", err.Error())
	}
	return BigValue{bn: bn}, nil
}
