package pruner

import (
	"go.uber.org/zap"

	"github.com/predrag3141/pruner/scalar"
)

// costFactorDerivative fills out with a centered finite difference of
// log(cost_factor) along each coordinate but the last, which is pinned and
// left at zero. The sign convention makes out point toward decreasing
// cost_factor, so a step b + step*out is already a descent step.
func (p *Pruner) costFactorDerivative(b *coeffs, out []scalar.Value) {
	backend := p.backend
	d := len(b.b)
	one := backend.One()
	epsMinus := one.Sub(p.epsilon)
	epsPlus := one.Add(p.epsilon)

	for i := 0; i < d-1; i++ {
		minus := b.clone()
		minus.b[i] = minus.b[i].Mul(epsMinus)
		minus.enforce(i)

		plus := b.clone()
		plus.b[i] = plus.b[i].Mul(epsPlus)
		plus.enforce(i)

		logMinus := p.costFactor(minus.b).Log()
		logPlus := p.costFactor(plus.b).Log()
		out[i] = logMinus.Sub(logPlus).Quo(p.epsilon)
	}
	if d > 0 {
		out[d-1] = backend.Zero()
	}
}

// improve runs one line-search iteration starting from b, mutating b in
// place with the best feasible candidate found, and returns the number of
// accepted steps. A return of 0 means no progress was made, whether because
// the gradient was degenerate, the first trial step already failed, or the
// total improvement fell below minCFDecrease.
func (p *Pruner) improve(b *coeffs) int {
	backend := p.backend
	d := len(b.b)

	cf := p.costFactor(b.b)
	oldCF := cf

	gradient := make([]scalar.Value, d)
	p.costFactorDerivative(b, gradient)

	sumSquares := backend.Zero()
	for i := 0; i < d; i++ {
		sumSquares = sumSquares.Add(gradient[i].Mul(gradient[i]))
	}
	norm := sumSquares.Quo(backend.FromFloat64(float64(d))).Sqrt()
	if !scalar.Greater(norm, backend.Zero()) {
		return 0
	}
	for i := 0; i < d; i++ {
		gradient[i] = gradient[i].Quo(norm)
	}

	base := b.clone()
	step := p.minStep
	accepted := 0

	for {
		candidate := base.clone()
		for i := 0; i < d; i++ {
			candidate.b[i] = candidate.b[i].Add(step.Mul(gradient[i]))
		}
		candidate.enforce(0)

		newCF := p.costFactor(candidate.b)
		if scalar.GreaterOrEqual(newCF, cf) {
			break
		}

		base = candidate
		cf = newCF
		accepted++
		step = step.Mul(p.stepFactor)
	}

	copy(b.b, base.b)

	threshold := oldCF.Mul(p.minCFDecrease)
	if scalar.Greater(cf, threshold) {
		return 0
	}
	return accepted
}

// descent repeatedly calls improve until it reports no further progress.
func (p *Pruner) descent(b *coeffs) {
	rounds := 0
	for {
		accepted := p.improve(b)
		rounds++
		p.logf().Debug("descent round",
			zap.Int("round", rounds),
			zap.Int("accepted_steps", accepted),
		)
		if accepted == 0 {
			break
		}
	}
}
