package pruner

import (
	"github.com/predrag3141/pruner/gso"
	"github.com/predrag3141/pruner/scalar"
)

// basisShape holds the reversed, renormalized squared GS norms and the
// partial-volume prefix table a loaded Pruner needs for every subsequent
// query. It is immutable once built.
type basisShape struct {
	n                    int
	d                    int
	r                    []scalar.Value // reversed, renormalized squared norms, length n
	pv                   []scalar.Value // partial volumes, length 2d
	renormalizationFactor scalar.Value
}

// loadBasisShape ingests n squared GS norms from src (already sliced to the
// block of interest by the caller, if needed), reverses them, renormalizes
// so their product is 1, and precomputes the partial-volume prefixes.
func loadBasisShape(backend scalar.Backend, src gso.Source) (*basisShape, error) {
	n := src.Dim()
	d := n / 2
	if d == 0 {
		return nil, ErrDimensionTooSmall
	}

	raw := make([]scalar.Value, n)
	for i := 0; i < n; i++ {
		v, err := src.RDiagonal(i)
		if err != nil {
			return nil, err
		}
		raw[i] = backend.FromFloat64(v)
	}

	r := make([]scalar.Value, n)
	logSum := backend.Zero()
	for i := 0; i < n; i++ {
		r[i] = raw[n-1-i]
		logSum = logSum.Add(r[i].Log())
	}

	nInv := backend.FromFloat64(1.0 / float64(n))
	renorm := logSum.Neg().Mul(nInv).Exp()

	for i := 0; i < n; i++ {
		r[i] = r[i].Mul(renorm)
	}

	pv := make([]scalar.Value, 2*d)
	prev := backend.One()
	for k := 0; k < 2*d; k++ {
		prev = prev.Mul(r[k].Sqrt())
		pv[k] = prev
	}

	return &basisShape{
		n:                     n,
		d:                     d,
		r:                     r,
		pv:                    pv,
		renormalizationFactor: renorm,
	}, nil
}
