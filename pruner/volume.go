package pruner

import "github.com/predrag3141/pruner/scalar"

// relativeVolume evaluates the Dirichlet-style iterated integral fplll
// calls relative_volume: a dimensionally-scaled volume of the intersection
// of the nested cylinders defined by the first rd coefficients of b. It
// must run entirely in the active scalar type; a downcast to float64 here
// would defeat the point of the arbitrary-precision backend.
func (p *Pruner) relativeVolume(rd int, b []scalar.Value) scalar.Value {
	backend := p.backend
	poly := newConstantPoly(backend, backend.One())

	for i := rd - 1; i >= 0; i-- {
		poly.integrate()
		ratio := b[i].Quo(b[rd-1])
		poly.coeffs[0] = poly.eval(ratio).Neg()
	}

	fact := p.consts.factorialAt(rd)
	if rd%2 == 0 {
		return fact.Mul(poly.coeffs[0])
	}
	return fact.Neg().Mul(poly.coeffs[0])
}
