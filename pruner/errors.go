package pruner

import "errors"

// The sentinel errors below are the error kinds a Pruner can report. They
// are returned as-is, so callers match them with errors.Is or ==.
var (
	// ErrDimensionTooSmall is returned by LoadBasisShape when the loaded
	// block has fewer than 2 vectors (d = floor(n/2) = 0).
	ErrDimensionTooSmall = errors.New("pruner: dimension too small, need at least 2 Gram-Schmidt vectors")

	// ErrBasisNotLoaded is returned by any query made before a basis shape
	// has been loaded.
	ErrBasisNotLoaded = errors.New("pruner: no basis shape has been loaded")

	// ErrInfeasibleCoefficients is returned when a caller-supplied
	// coefficient vector violates the feasibility invariants (monotone,
	// bounded in [0.1, 1], pinned at 1 in the last position).
	ErrInfeasibleCoefficients = errors.New("pruner: pruning coefficients are not feasible (must be non-increasing, in [0.1,1], with pr[0] = 1)")
)
