package pruner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/predrag3141/pruner/scalar"
)

func TestWithLoggerRecordsDescentProgress(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	backend := scalar.Float64Backend{}
	p := newLoadedPruner(t, backend, []float64{1, 0.8, 0.6, 0.4, 0.2, 0.1}, 1, 0.8)
	p.WithLogger(logger)

	pr := make([]float64, 6)
	err := p.OptimizePruningCoeffs(pr, true)
	assert.NoError(t, err)

	assert.NotEmpty(t, logs.All())
}

func TestNoLoggerDoesNotPanic(t *testing.T) {
	backend := scalar.Float64Backend{}
	p := newLoadedPruner(t, backend, []float64{1, 1, 1, 1}, 1, 0.5)
	pr := make([]float64, 4)
	err := p.OptimizePruningCoeffs(pr, true)
	assert.NoError(t, err)
}
