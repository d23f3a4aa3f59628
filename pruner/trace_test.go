package pruner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/predrag3141/pruner/scalar"
)

func TestTraceOptimizePruningCoeffs(t *testing.T) {
	backend := scalar.Float64Backend{}
	p := newLoadedPruner(t, backend, []float64{1, 0.8, 0.6, 0.4, 0.2, 0.1}, 1, 0.8)

	pr := make([]float64, 6)
	trace, err := p.TraceOptimizePruningCoeffs(pr, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, trace.CostFactor)

	min, max, mean := trace.Summary()
	assert.LessOrEqual(t, min, max)
	assert.GreaterOrEqual(t, mean, min)
	assert.LessOrEqual(t, mean, max)

	// cost_factor must be non-increasing across the trace (descent never
	// makes things worse).
	for i := 1; i < len(trace.CostFactor); i++ {
		assert.LessOrEqual(t, trace.CostFactor[i], trace.CostFactor[i-1]+1e-9)
	}
}

func TestTraceSummaryEmpty(t *testing.T) {
	trace := &Trace{}
	min, max, mean := trace.Summary()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
	assert.Equal(t, 0.0, mean)
}
