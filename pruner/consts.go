package pruner

import "github.com/predrag3141/pruner/scalar"

// constTable caches the factorial and unit-ball-volume values a Pruner
// needs, in the scalar type of whichever backend constructed it. Both
// tables are grown lazily and only as far as a given dimension requires;
// a fresh Pruner never pays for entries it doesn't ask for.
type constTable struct {
	backend  scalar.Backend
	factorial []scalar.Value // factorial[i] = i!
	ballVolume []scalar.Value // ballVolume[i] = volume of the unit ball in R^i
}

func newConstTable(backend scalar.Backend) *constTable {
	t := &constTable{backend: backend}
	t.factorial = []scalar.Value{backend.One()} // 0! = 1
	t.ballVolume = []scalar.Value{backend.One()} // vol(R^0 unit ball) = 1
	return t
}

// factorialAt returns n! by extending the cached table if needed.
func (t *constTable) factorialAt(n int) scalar.Value {
	for len(t.factorial) <= n {
		k := len(t.factorial)
		next := t.factorial[k-1].Mul(t.backend.FromFloat64(float64(k)))
		t.factorial = append(t.factorial, next)
	}
	return t.factorial[n]
}

// ballVolumeAt returns the volume of the unit ball in R^n, extending the
// cached table via the recurrence
//
//	V(0) = 1
//	V(1) = 2
//	V(n) = V(n-2) * 2*pi/n
//
// which fplll's own table of literals encodes; the recurrence reproduces
// the same values without needing the literal table.
func (t *constTable) ballVolumeAt(n int) scalar.Value {
	if len(t.ballVolume) == 1 {
		// Seed V(1) alongside the V(0) already set by newConstTable.
		t.ballVolume = append(t.ballVolume, t.backend.FromFloat64(2))
	}
	for len(t.ballVolume) <= n {
		k := len(t.ballVolume)
		twoPi := t.backend.FromFloat64(2).Mul(t.backend.Pi())
		factor := twoPi.Quo(t.backend.FromFloat64(float64(k)))
		next := t.ballVolume[k-2].Mul(factor)
		t.ballVolume = append(t.ballVolume, next)
	}
	return t.ballVolume[n]
}
