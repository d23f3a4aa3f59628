package pruner

// Config holds the tunable parameters a Pruner reads at construction. All
// fields are native float64; the Pruner converts them to its scalar
// backend's Value type once, at New, and never touches float64 again
// for numerically sensitive work.
type Config struct {
	// PreprocCost is the additive cost charged for each retrial beyond the
	// first when the pruning doesn't reach TargetSuccessProba on its own.
	PreprocCost float64

	// TargetSuccessProba is the probability of success the caller wants
	// from enumeration with retrials, in (0,1).
	TargetSuccessProba float64

	// EnumerationRadius is the squared radius of the enumeration ball.
	EnumerationRadius float64

	// Epsilon is the relative finite-difference step used to estimate the
	// gradient of log(cost_factor).
	Epsilon float64

	// MinStep is the initial step length tried by the line search in
	// Improve.
	MinStep float64

	// StepFactor is the geometric growth factor applied to the line-search
	// step after each accepted candidate.
	StepFactor float64

	// ShellRatio controls the thickness of the shell used to estimate the
	// success probability as a finite difference of relative volumes.
	ShellRatio float64

	// MinCFDecrease is the ratio below which a line search is considered to
	// have made no meaningful progress; Improve reports no progress once
	// cost_factor stops shrinking by at least this ratio.
	MinCFDecrease float64

	// SymmetryFactor divides the raw node count cost() predicts, to
	// account for enumeration exploiting central symmetry. 1 disables the
	// adjustment.
	SymmetryFactor float64
}

// DefaultConfig returns the parameter values fplll's Pruner constructor
// initializes to.
func DefaultConfig() Config {
	return Config{
		PreprocCost:        0,
		TargetSuccessProba: 0.90,
		EnumerationRadius:  0,
		Epsilon:            1.0 / 8192,   // 2^-13
		MinStep:            1.0 / 4096,   // 2^-12
		StepFactor:         1.4142135623730951, // sqrt(2)
		ShellRatio:         0.995,
		MinCFDecrease:      0.9999,
		SymmetryFactor:     2,
	}
}
