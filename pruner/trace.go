package pruner

import "gonum.org/v1/gonum/floats"

// Trace records the cost_factor value improve() settled on after each
// descent round, in native float64, for callers that want to inspect or
// plot convergence without re-running the optimizer.
type Trace struct {
	CostFactor []float64
}

// Summary reports the minimum, maximum and mean cost_factor observed
// across the trace.
func (t *Trace) Summary() (min, max, mean float64) {
	if len(t.CostFactor) == 0 {
		return 0, 0, 0
	}
	min = floats.Min(t.CostFactor)
	max = floats.Max(t.CostFactor)
	mean = floats.Sum(t.CostFactor) / float64(len(t.CostFactor))
	return min, max, mean
}

// TraceOptimizePruningCoeffs performs the same optimization as
// OptimizePruningCoeffs, but additionally returns a Trace of the
// cost_factor reached after each descent round, including the final round
// that accepted no step.
func (p *Pruner) TraceOptimizePruningCoeffs(pr []float64, reset bool) (*Trace, error) {
	if err := p.requireShape(); err != nil {
		return nil, err
	}
	if len(pr) != p.shape.n {
		return nil, errLenMismatch(len(pr), p.shape.n)
	}

	var c *coeffs
	if reset {
		c = newCoeffs(p.backend, p.shape.d)
		c.initReset()
	} else {
		loaded, err := p.loadCoeffsChecked(pr)
		if err != nil {
			return nil, err
		}
		c = loaded
	}

	trace := &Trace{}
	for {
		accepted := p.improve(c)
		trace.CostFactor = append(trace.CostFactor, p.costFactor(c.b).Float64())
		if accepted == 0 {
			break
		}
	}

	copy(pr, c.save(p.shape.n))
	return trace, nil
}
