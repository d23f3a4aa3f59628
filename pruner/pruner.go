// Package pruner computes lattice-enumeration pruning coefficients for
// solving the Shortest Vector Problem. Given the Gram-Schmidt shape of a
// lattice basis block, an enumeration radius, a preprocessing cost, and a
// target success probability, it finds a vector of bounds that minimizes
// the expected total cost of enumeration with retrials.
//
// The core is polymorphic over a scalar.Backend, in the same spirit as a
// numeric template parameter: construct with scalar.Float64Backend{} for
// speed, or scalar.BigBackend{} (after calling bignumber.Init) when the
// cost functional needs more precision than a double can hold.
package pruner

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/predrag3141/pruner/gso"
	"github.com/predrag3141/pruner/scalar"
)

// Pruner computes and holds pruning coefficients for a single loaded basis
// shape. It is not safe for concurrent mutation; distinct Pruner instances
// may run in parallel on distinct shapes.
type Pruner struct {
	backend scalar.Backend
	consts  *constTable

	shape  *basisShape // nil until LoadBasisShape succeeds
	logger *zap.Logger // nil means no logging

	preprocCost        scalar.Value
	targetSuccessProba scalar.Value
	enumerationRadius  scalar.Value
	epsilon            scalar.Value
	minStep            scalar.Value
	stepFactor         scalar.Value
	shellRatio         scalar.Value
	minCFDecrease      scalar.Value
	symmetryFactor     scalar.Value
}

// New constructs a Pruner reading its numeric parameters from cfg and
// performing all further arithmetic in backend's scalar type. No basis
// shape is loaded yet.
func New(backend scalar.Backend, cfg Config) *Pruner {
	return &Pruner{
		backend:            backend,
		consts:             newConstTable(backend),
		preprocCost:        backend.FromFloat64(cfg.PreprocCost),
		targetSuccessProba: backend.FromFloat64(cfg.TargetSuccessProba),
		enumerationRadius:  backend.FromFloat64(cfg.EnumerationRadius),
		epsilon:            backend.FromFloat64(cfg.Epsilon),
		minStep:            backend.FromFloat64(cfg.MinStep),
		stepFactor:         backend.FromFloat64(cfg.StepFactor),
		shellRatio:         backend.FromFloat64(cfg.ShellRatio),
		minCFDecrease:      backend.FromFloat64(cfg.MinCFDecrease),
		symmetryFactor:     backend.FromFloat64(cfg.SymmetryFactor),
	}
}

// SetEnumerationRadius updates the squared enumeration radius used by
// subsequent cost and probability queries.
func (p *Pruner) SetEnumerationRadius(radius float64) {
	p.enumerationRadius = p.backend.FromFloat64(radius)
}

// SetTargetSuccessProba updates the target success probability used by
// subsequent cost-factor queries.
func (p *Pruner) SetTargetSuccessProba(target float64) {
	p.targetSuccessProba = p.backend.FromFloat64(target)
}

// SetPreprocCost updates the per-retrial preprocessing cost.
func (p *Pruner) SetPreprocCost(cost float64) {
	p.preprocCost = p.backend.FromFloat64(cost)
}

// LoadBasisShape ingests the squared GS norms reported by src, computes the
// reversed, renormalized radii and the partial-volume prefix table, and
// makes the Pruner ready to accept or optimize coefficients. It may be
// called only once per Pruner; construct a new Pruner to load a different
// block.
func (p *Pruner) LoadBasisShape(src gso.Source) error {
	shape, err := loadBasisShape(p.backend, src)
	if err != nil {
		return err
	}
	p.shape = shape
	return nil
}

// LoadBasisShapeFromNorms is a convenience wrapper around LoadBasisShape
// for callers holding a plain slice of squared GS norms rather than a
// gso.Source.
func (p *Pruner) LoadBasisShapeFromNorms(sqNorms []float64) error {
	basis, err := gso.NewBasis(sqNorms)
	if err != nil {
		return err
	}
	return p.LoadBasisShape(basis)
}

func (p *Pruner) requireShape() error {
	if p.shape == nil {
		return ErrBasisNotLoaded
	}
	return nil
}

// loadCoeffsChecked loads pr against the loaded shape's dimension, rejecting
// a mismatched length before it ever reaches enforce.
func (p *Pruner) loadCoeffsChecked(pr []float64) (*coeffs, error) {
	if len(pr) != p.shape.n {
		return nil, errLenMismatch(len(pr), p.shape.n)
	}
	return loadCoeffs(p.backend, pr)
}

func errLenMismatch(got, want int) error {
	return fmt.Errorf("pruner: pr has length %d, want %d", got, want)
}

// OptimizePruningCoeffs optimizes the pruning coefficients for the loaded
// basis shape. If reset is true, coefficients are initialized
// deterministically (b[i] = 0.1 + i/d, then projected feasible); otherwise
// they are loaded from pr, which must already be feasible. The optimized
// coefficients are written back into pr.
func (p *Pruner) OptimizePruningCoeffs(pr []float64, reset bool) error {
	if err := p.requireShape(); err != nil {
		return err
	}
	if len(pr) != p.shape.n {
		return errLenMismatch(len(pr), p.shape.n)
	}

	var c *coeffs
	if reset {
		c = newCoeffs(p.backend, p.shape.d)
		c.initReset()
	} else {
		loaded, err := p.loadCoeffsChecked(pr)
		if err != nil {
			return err
		}
		c = loaded
	}

	p.descent(c)

	copy(pr, c.save(p.shape.n))
	return nil
}

// GetEnumCost returns the predicted expected node count for the coefficient
// vector pr, without accounting for retrials.
func (p *Pruner) GetEnumCost(pr []float64) (float64, error) {
	if err := p.requireShape(); err != nil {
		return 0, err
	}
	c, err := p.loadCoeffsChecked(pr)
	if err != nil {
		return 0, err
	}
	return p.cost(c.b).Float64(), nil
}

// GetEnumCostWithRetrials returns the predicted expected node count for pr,
// inflated by the expected number of retrials needed to reach the
// configured target success probability.
func (p *Pruner) GetEnumCostWithRetrials(pr []float64) (float64, error) {
	if err := p.requireShape(); err != nil {
		return 0, err
	}
	c, err := p.loadCoeffsChecked(pr)
	if err != nil {
		return 0, err
	}
	return p.costFactor(c.b).Float64(), nil
}

// GetSvpSuccessProba returns the estimated probability that a random short
// vector lies within the region bounded by pr.
func (p *Pruner) GetSvpSuccessProba(pr []float64) (float64, error) {
	if err := p.requireShape(); err != nil {
		return 0, err
	}
	c, err := p.loadCoeffsChecked(pr)
	if err != nil {
		return 0, err
	}
	return p.svpSuccessProba(c.b).Float64(), nil
}

// AutoPrune is a convenience facade: it constructs a Pruner over backend,
// loads the given basis shape, and runs a single reset optimization,
// writing the optimized coefficients into pr and the achieved success
// probability into successProba. cfg.TargetSuccessProba,
// cfg.EnumerationRadius and cfg.PreprocCost are honored from cfg.
func AutoPrune(
	backend scalar.Backend,
	src gso.Source,
	cfg Config,
	pr []float64,
) (successProba float64, err error) {
	p := New(backend, cfg)
	if err := p.LoadBasisShape(src); err != nil {
		return 0, err
	}
	if err := p.OptimizePruningCoeffs(pr, true); err != nil {
		return 0, err
	}
	proba, err := p.GetSvpSuccessProba(pr)
	if err != nil {
		return 0, err
	}
	return proba, nil
}
