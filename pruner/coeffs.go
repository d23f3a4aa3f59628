package pruner

import "github.com/predrag3141/pruner/scalar"

// coeffs is the compact, even-indexed pruning coefficient vector b,
// length d = floor(n/2). The externally visible full vector pr is
// reconstructed from it by save() and never stored on its own.
type coeffs struct {
	backend scalar.Backend
	b       []scalar.Value
}

func newCoeffs(backend scalar.Backend, d int) *coeffs {
	b := make([]scalar.Value, d)
	for i := range b {
		b[i] = backend.One()
	}
	return &coeffs{backend: backend, b: b}
}

// clone returns a deep copy; the finite-difference gradient and the line
// search both need to try a perturbation without disturbing the vector it
// was derived from.
func (c *coeffs) clone() *coeffs {
	b := make([]scalar.Value, len(c.b))
	copy(b, c.b)
	return &coeffs{backend: c.backend, b: b}
}

// enforce restores the three feasibility invariants on c.b in place,
// pivoting the monotonicity sweep at j so that a perturbation introduced
// at index j is propagated outward rather than being overwritten by a
// naive two-pass clamp. It reports whether any coordinate changed.
//
// The order of operations below (pin last, clamp all, sweep right from j,
// sweep left from j-1) must not be reordered: a simpler single clamp pass
// would erase the gradient signal at the perturbed index.
func (c *coeffs) enforce(j int) bool {
	d := len(c.b)
	backend := c.backend
	changed := false

	one := backend.One()
	tenth := backend.FromFloat64(0.1)

	if scalar.Less(c.b[d-1], one) {
		changed = true
	}
	c.b[d-1] = one

	for i := 0; i < d; i++ {
		if scalar.Greater(c.b[i], one) {
			c.b[i] = one
			changed = true
		} else if scalar.Less(c.b[i], tenth) {
			c.b[i] = tenth
		}
	}

	for i := j; i <= d-2; i++ {
		if scalar.Less(c.b[i+1], c.b[i]) {
			c.b[i+1] = c.b[i]
			changed = true
		}
	}

	for i := j - 1; i >= 0; i-- {
		if scalar.Less(c.b[i+1], c.b[i]) {
			c.b[i] = c.b[i+1]
			changed = true
		}
	}

	return changed
}

// loadCoeffs extracts b[i] = pr[n-1-2i] from a full-length coefficient array and
// enforces feasibility with no pivot. It reports ErrInfeasibleCoefficients
// if enforce found anything to change, mirroring load_prunning_coeffs's
// rejection of infeasible input.
func loadCoeffs(backend scalar.Backend, pr []float64) (*coeffs, error) {
	n := len(pr)
	d := n / 2
	if d == 0 {
		return nil, ErrDimensionTooSmall
	}
	c := newCoeffs(backend, d)
	for i := 0; i < d; i++ {
		c.b[i] = backend.FromFloat64(pr[n-1-2*i])
	}
	if c.enforce(0) {
		return nil, ErrInfeasibleCoefficients
	}
	return c, nil
}

// save mirrors each b[i] into the two positions n-1-2i and n-2-2i of pr,
// and pins pr[0] to 1.
func (c *coeffs) save(n int) []float64 {
	d := len(c.b)
	pr := make([]float64, n)
	for i := 0; i < d; i++ {
		v := c.b[i].Float64()
		pr[n-1-2*i] = v
		if n-2-2*i >= 0 {
			pr[n-2-2*i] = v
		}
	}
	pr[0] = 1
	return pr
}

// initReset sets b[i] := 0.1 + i/d then enforces, the deterministic starting
// point optimize_pruning_coeffs uses when reset is requested.
func (c *coeffs) initReset() {
	d := len(c.b)
	backend := c.backend
	for i := 0; i < d; i++ {
		c.b[i] = backend.FromFloat64(0.1 + float64(i)/float64(d))
	}
	c.enforce(0)
}
