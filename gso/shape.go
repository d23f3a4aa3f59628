// Package gso is the narrow adapter between a lattice basis's
// Gram-Schmidt orthogonalization and the pruner core. The core only ever
// reads squared GS norms through the Source interface; it has no notion of
// the basis, the lattice, or how the orthogonalization was computed.
package gso

import "fmt"

// Source is implemented by anything that can report the diagonal of squared
// Gram-Schmidt norms for a lattice basis, the way a full MatGSO object would
// in a lattice-reduction library. Dim reports how many such norms are
// available; RDiagonal(i) reports the i-th one, for i in [0, Dim()).
type Source interface {
	Dim() int
	RDiagonal(i int) (float64, error)
}

// Basis is a minimal, slice-backed Source standing in for a full
// Gram-Schmidt object: exactly the information the pruner core needs, and
// nothing else.
type Basis struct {
	sqNorms []float64
}

// NewBasis wraps a slice of squared Gram-Schmidt norms as a Source. The
// slice is not copied; callers must not mutate it afterwards.
func NewBasis(sqNorms []float64) (*Basis, error) {
	if len(sqNorms) == 0 {
		return nil, fmt.Errorf("gso.NewBasis: basis must have at least one vector")
	}
	for i, v := range sqNorms {
		if v <= 0 {
			return nil, fmt.Errorf("gso.NewBasis: squared norm at index %d is not positive: %v", i, v)
		}
	}
	return &Basis{sqNorms: sqNorms}, nil
}

// Dim returns the number of Gram-Schmidt vectors in the basis.
func (b *Basis) Dim() int { return len(b.sqNorms) }

// RDiagonal returns the squared norm of the i-th Gram-Schmidt vector.
func (b *Basis) RDiagonal(i int) (float64, error) {
	if i < 0 || i >= len(b.sqNorms) {
		return 0, fmt.Errorf("gso.Basis.RDiagonal: index %d out of range [0,%d)", i, len(b.sqNorms))
	}
	return b.sqNorms[i], nil
}

// Slice returns the Source restricted to the half-open block [begin,end),
// the way load_basis_shape(gso, begin, end) restricts a full MatGSO object
// to a sub-basis in fplll. Slice does not copy the underlying data.
func Slice(s Source, begin, end int) (Source, error) {
	if begin < 0 || end > s.Dim() || begin >= end {
		return nil, fmt.Errorf(
			"gso.Slice: invalid block [%d,%d) for a basis of dimension %d", begin, end, s.Dim(),
		)
	}
	return &slicedSource{inner: s, begin: begin, end: end}, nil
}

type slicedSource struct {
	inner      Source
	begin, end int
}

func (s *slicedSource) Dim() int { return s.end - s.begin }

func (s *slicedSource) RDiagonal(i int) (float64, error) {
	if i < 0 || i >= s.Dim() {
		return 0, fmt.Errorf("gso.slicedSource.RDiagonal: index %d out of range [0,%d)", i, s.Dim())
	}
	return s.inner.RDiagonal(s.begin + i)
}
