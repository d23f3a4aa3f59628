package pruner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/predrag3141/pruner/bignumber"
	"github.com/predrag3141/pruner/gso"
	"github.com/predrag3141/pruner/scalar"
)

func TestMain(m *testing.M) {
	_ = bignumber.Init(500)
	m.Run()
}

func backends() map[string]scalar.Backend {
	return map[string]scalar.Backend{
		"float64":   scalar.Float64Backend{},
		"bignumber": scalar.BigBackend{},
	}
}

func newLoadedPruner(t *testing.T, backend scalar.Backend, sqNorms []float64, radius float64, target float64) *Pruner {
	cfg := DefaultConfig()
	cfg.EnumerationRadius = radius
	cfg.TargetSuccessProba = target
	p := New(backend, cfg)
	err := p.LoadBasisShapeFromNorms(sqNorms)
	assert.NoError(t, err)
	return p
}

// Scenario 1: n=4 all-ones basis.
func TestScenario1UniformBasis(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			p := newLoadedPruner(t, backend, []float64{1, 1, 1, 1}, 1, 0.5)
			pr := make([]float64, 4)
			err := p.OptimizePruningCoeffs(pr, true)
			assert.NoError(t, err)

			assert.InDelta(t, 1.0, pr[0], 1e-6)
			for i := 1; i < len(pr); i++ {
				assert.LessOrEqual(t, pr[i], pr[i-1]+1e-9)
			}

			proba, err := p.GetSvpSuccessProba(pr)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, proba, 0.5-1e-6)
		})
	}
}

// Scenario 2: n=10 GSA shape, descent should at least halve cost_factor
// relative to the deterministic reset initialization.
func TestScenario2GSAShapeDescentImproves(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			n := 10
			sqNorms := make([]float64, n)
			for i := 0; i < n; i++ {
				sqNorms[i] = math.Pow(1.04, -2*float64(i))
			}
			p := newLoadedPruner(t, backend, sqNorms, 1, 0.9)

			// Cost factor at the deterministic reset initialization, before
			// any descent.
			d := n / 2
			init := newCoeffs(backend, d)
			init.initReset()
			initialCF := p.costFactor(init.b).Float64()

			pr := make([]float64, n)
			err := p.OptimizePruningCoeffs(pr, true)
			assert.NoError(t, err)

			finalCF, err := p.GetEnumCostWithRetrials(pr)
			assert.NoError(t, err)

			assert.LessOrEqual(t, finalCF, initialCF/2)
		})
	}
}

// Scenario 3: n=2 is trivial; d=1, b=[1] always, full success probability.
func TestScenario3TrivialCase(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			p := newLoadedPruner(t, backend, []float64{3, 5}, 1, 0.9)
			pr := make([]float64, 2)
			err := p.OptimizePruningCoeffs(pr, true)
			assert.NoError(t, err)

			assert.InDelta(t, 1.0, pr[0], 1e-6)
			assert.InDelta(t, 1.0, pr[1], 1e-6)

			proba, err := p.GetSvpSuccessProba(pr)
			assert.NoError(t, err)
			assert.InDelta(t, 1.0, proba, 1e-6)

			cost, err := p.GetEnumCost(pr)
			assert.NoError(t, err)
			assert.Greater(t, cost, 0.0)
		})
	}
}

// Scenario 4: an infeasible (non-monotone) input is rejected.
func TestScenario4InfeasibleInputRejected(t *testing.T) {
	backend := scalar.Float64Backend{}
	p := newLoadedPruner(t, backend, []float64{1, 1, 1, 1}, 1, 0.5)

	pr := []float64{1, 0.5, 0.6, 0.5}
	_, err := p.GetEnumCost(pr)
	assert.ErrorIs(t, err, ErrInfeasibleCoefficients)
}

// Scenario 5: querying before a basis shape is loaded fails.
func TestScenario5QueryBeforeLoad(t *testing.T) {
	p := New(scalar.Float64Backend{}, DefaultConfig())

	_, err := p.GetEnumCost([]float64{1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrBasisNotLoaded)

	_, err = p.GetSvpSuccessProba([]float64{1, 1, 1, 1})
	assert.ErrorIs(t, err, ErrBasisNotLoaded)

	err = p.OptimizePruningCoeffs([]float64{1, 1, 1, 1}, true)
	assert.ErrorIs(t, err, ErrBasisNotLoaded)
}

// Scenario 6: re-optimizing an already-converged vector with reset=false is
// effectively a no-op.
func TestScenario6RepeatedOptimizeConverges(t *testing.T) {
	backend := scalar.Float64Backend{}
	p := newLoadedPruner(t, backend, []float64{1, 0.8, 0.6, 0.4, 0.2, 0.1}, 1, 0.8)

	pr := make([]float64, 6)
	err := p.OptimizePruningCoeffs(pr, true)
	assert.NoError(t, err)

	second := make([]float64, len(pr))
	copy(second, pr)
	err = p.OptimizePruningCoeffs(second, false)
	assert.NoError(t, err)

	for i := range pr {
		assert.InDelta(t, pr[i], second[i], 1e-4)
	}
}

func TestLoadBasisShapeRejectsTooSmall(t *testing.T) {
	p := New(scalar.Float64Backend{}, DefaultConfig())
	err := p.LoadBasisShapeFromNorms([]float64{1})
	assert.ErrorIs(t, err, ErrDimensionTooSmall)
}

func TestEnforceIdempotent(t *testing.T) {
	backend := scalar.Float64Backend{}
	c := newCoeffs(backend, 4)
	c.b[0] = backend.FromFloat64(0.9)
	c.b[1] = backend.FromFloat64(0.3)
	c.b[2] = backend.FromFloat64(0.7)
	c.b[3] = backend.FromFloat64(0.95)

	changed := c.enforce(0)
	assert.True(t, changed)

	snapshot := make([]float64, len(c.b))
	for i, v := range c.b {
		snapshot[i] = v.Float64()
	}

	changedAgain := c.enforce(0)
	assert.False(t, changedAgain)
	for i, v := range c.b {
		assert.InDelta(t, snapshot[i], v.Float64(), 1e-12)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	backend := scalar.Float64Backend{}
	p := newLoadedPruner(t, backend, []float64{1, 1, 1, 1, 1, 1}, 1, 0.8)

	c := newCoeffs(backend, 3)
	c.b[0] = backend.FromFloat64(0.3)
	c.b[1] = backend.FromFloat64(0.6)
	c.b[2] = backend.FromFloat64(1.0)

	pr := c.save(p.shape.n)
	assert.InDelta(t, 1.0, pr[0], 1e-12)

	reloaded, err := loadCoeffs(backend, pr)
	assert.NoError(t, err)
	for i := range c.b {
		assert.InDelta(t, c.b[i].Float64(), reloaded.b[i].Float64(), 1e-12)
	}
}

func TestAutoPrune(t *testing.T) {
	backend := scalar.Float64Backend{}
	basis, err := gso.NewBasis([]float64{1, 1, 1, 1})
	assert.NoError(t, err)

	cfg := DefaultConfig()
	cfg.EnumerationRadius = 1
	cfg.TargetSuccessProba = 0.5

	pr := make([]float64, 4)
	proba, err := AutoPrune(backend, basis, cfg, pr)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, proba, 0.5-1e-6)
	assert.InDelta(t, 1.0, pr[0], 1e-6)
}
