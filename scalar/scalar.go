// Package scalar defines the narrow numeric capability the pruner core
// needs from whatever number type it is given, and two implementations of
// it: a native float64 backend and an arbitrary-precision backend built on
// the bignumber package.
//
// The core never imports math/big or math directly; it only ever calls
// through a Value and a Backend. This keeps the cost/probability/gradient
// code oblivious to which concrete number type it is running over, in the
// same spirit as fplll's template parameter FT, but expressed as a table of
// named operations rather than operator overloading, since Go does not
// grant arithmetic operators to user-defined types.
package scalar

// Value is one number belonging to some Backend. Every operation takes its
// operands explicitly and returns a new Value; Value implementations are
// immutable from the caller's point of view.
type Value interface {
	Add(other Value) Value
	Sub(other Value) Value
	Mul(other Value) Value
	Quo(other Value) Value
	Neg() Value
	Sqrt() Value
	Log() Value
	Exp() Value
	PowInt(n int) Value

	// Cmp returns -1, 0 or +1 as the receiver is less than, equal to, or
	// greater than other.
	Cmp(other Value) int

	// Float64 converts the value to the nearest representable float64.
	Float64() float64
}

// Backend constructs Values and names the numeric representation behind
// them. A Pruner holds exactly one Backend for its lifetime.
type Backend interface {
	// Name identifies the backend for diagnostics and test table names.
	Name() string

	Zero() Value
	One() Value
	MinusOne() Value

	// Pi returns the constant pi at whatever precision the backend supports.
	Pi() Value

	FromFloat64(v float64) Value

	// FromDecimalString parses a base-10 literal at the backend's precision.
	FromDecimalString(s string) (Value, error)
}

// Less reports whether a is strictly less than b.
func Less(a, b Value) bool { return a.Cmp(b) < 0 }

// LessOrEqual reports whether a is less than or equal to b.
func LessOrEqual(a, b Value) bool { return a.Cmp(b) <= 0 }

// Greater reports whether a is strictly greater than b.
func Greater(a, b Value) bool { return a.Cmp(b) > 0 }

// GreaterOrEqual reports whether a is greater than or equal to b.
func GreaterOrEqual(a, b Value) bool { return a.Cmp(b) >= 0 }
