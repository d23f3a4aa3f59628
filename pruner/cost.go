package pruner

import "github.com/predrag3141/pruner/scalar"

// cost predicts the expected number of nodes enumeration visits under
// pruning vector b, divided by the configured symmetry factor.
func (p *Pruner) cost(b []scalar.Value) scalar.Value {
	backend := p.backend
	d := len(b)

	rv := make([]scalar.Value, 2*d)
	for i := 0; i < d; i++ {
		rv[2*i+1] = p.relativeVolume(i+1, b)
	}
	rv[0] = backend.One()
	for i := 1; i < d; i++ {
		rv[2*i] = rv[2*i-1].Mul(rv[2*i+1]).Sqrt()
	}

	radiusTimesRenorm := p.enumerationRadius.Mul(p.shape.renormalizationFactor)
	r := radiusTimesRenorm.Sqrt()

	total := backend.Zero()
	for i := 0; i < 2*d; i++ {
		rPow := r.PowInt(i + 1)
		bTerm := b[i/2].PowInt(i + 1).Sqrt()
		term := rPow.Mul(rv[i]).Mul(p.consts.ballVolumeAt(i + 1)).Mul(bTerm).Quo(p.shape.pv[i])
		total = total.Add(term)
	}

	return total.Quo(p.symmetryFactor)
}

// svpSuccessProba estimates the probability that a random short vector
// lies inside the region bounded by b, as a finite difference of relative
// volumes across a thin shell of thickness controlled by shellRatio.
func (p *Pruner) svpSuccessProba(b []scalar.Value) scalar.Value {
	backend := p.backend
	d := len(b)
	dx := p.shellRatio
	dxSquared := dx.Mul(dx)

	bPrime := make([]scalar.Value, d)
	one := backend.One()
	for i := 0; i < d; i++ {
		scaled := b[i].Quo(dxSquared)
		if scalar.Less(one, scaled) {
			bPrime[i] = one
		} else {
			bPrime[i] = scaled
		}
	}

	vol := p.relativeVolume(d, b)
	dxn := dx.PowInt(2 * d)
	dvol := dxn.Mul(p.relativeVolume(d, bPrime)).Sub(vol)

	return dvol.Quo(dxn.Sub(one))
}

// costFactor is cost(b) inflated by the expected number of independent
// pruned enumerations (trials) needed to reach targetSuccessProba, plus
// preprocessing cost for every trial beyond the first.
func (p *Pruner) costFactor(b []scalar.Value) scalar.Value {
	proba := p.svpSuccessProba(b)
	if scalar.GreaterOrEqual(proba, p.targetSuccessProba) {
		return p.cost(b)
	}

	backend := p.backend
	one := backend.One()
	trials := one.Sub(p.targetSuccessProba).Log().Quo(one.Sub(proba).Log())

	c := p.cost(b)
	return c.Mul(trials).Add(p.preprocCost.Mul(trials.Sub(one)))
}
