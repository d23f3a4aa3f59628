package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/predrag3141/pruner/bignumber"
)

func TestMain(m *testing.M) {
	_ = bignumber.Init(500)
	m.Run()
}

func backends() map[string]Backend {
	return map[string]Backend{
		"float64":   Float64Backend{},
		"bignumber": BigBackend{},
	}
}

func TestArithmetic(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			a := backend.FromFloat64(3)
			b := backend.FromFloat64(2)

			assert.InDelta(t, 5, a.Add(b).Float64(), 1e-9)
			assert.InDelta(t, 1, a.Sub(b).Float64(), 1e-9)
			assert.InDelta(t, 6, a.Mul(b).Float64(), 1e-9)
			assert.InDelta(t, 1.5, a.Quo(b).Float64(), 1e-9)
			assert.InDelta(t, -3, a.Neg().Float64(), 1e-9)
		})
	}
}

func TestSqrtLogExp(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			four := backend.FromFloat64(4)
			assert.InDelta(t, 2, four.Sqrt().Float64(), 1e-9)

			one := backend.One()
			assert.InDelta(t, 0, one.Log().Float64(), 1e-9)

			zero := backend.Zero()
			assert.InDelta(t, 1, zero.Exp().Float64(), 1e-9)
		})
	}
}

func TestPowInt(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			two := backend.FromFloat64(2)
			assert.InDelta(t, 8, two.PowInt(3).Float64(), 1e-9)
			assert.InDelta(t, 1, two.PowInt(0).Float64(), 1e-9)
		})
	}
}

func TestCmp(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			a := backend.FromFloat64(1)
			b := backend.FromFloat64(2)
			assert.True(t, Less(a, b))
			assert.True(t, Greater(b, a))
			assert.True(t, LessOrEqual(a, a))
			assert.True(t, GreaterOrEqual(a, a))
		})
	}
}

func TestPi(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 3.14159265358979, backend.Pi().Float64(), 1e-9)
		})
	}
}

func TestFromDecimalString(t *testing.T) {
	for name, backend := range backends() {
		t.Run(name, func(t *testing.T) {
			v, err := backend.FromDecimalString("1.5")
			assert.NoError(t, err)
			assert.InDelta(t, 1.5, v.Float64(), 1e-9)

			_, err = backend.FromDecimalString("not-a-number")
			assert.Error(t, err)
		})
	}
}
