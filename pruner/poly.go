package pruner

import "github.com/predrag3141/pruner/scalar"

// poly is a low-order-first polynomial coefficient list used by the
// relative-volume recurrence. It is always mutated in place, mirroring
// fplll's own eval_poly/integrate_poly working over a raw coefficient
// array rather than an immutable polynomial type.
type poly struct {
	backend scalar.Backend
	coeffs  []scalar.Value // coeffs[i] is the coefficient of x^i
}

func newConstantPoly(backend scalar.Backend, value scalar.Value) *poly {
	return &poly{backend: backend, coeffs: []scalar.Value{value}}
}

// degree returns the current highest valid index into coeffs (ld in the
// specification's notation).
func (p *poly) degree() int { return len(p.coeffs) - 1 }

// eval computes sum(coeffs[i] * x^i) via Horner's method, iterating from the
// top coefficient down.
func (p *poly) eval(x scalar.Value) scalar.Value {
	acc := p.backend.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// integrate replaces p with its antiderivative having zero constant term,
// raising its degree by one: for i from ld down to 0, P[i+1] := P[i]/(i+1);
// then P[0] := 0.
func (p *poly) integrate() {
	ld := p.degree()
	next := make([]scalar.Value, ld+2)
	for i := ld; i >= 0; i-- {
		next[i+1] = p.coeffs[i].Quo(p.backend.FromFloat64(float64(i + 1)))
	}
	next[0] = p.backend.Zero()
	p.coeffs = next
}
