package gso

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBasisRejectsEmpty(t *testing.T) {
	_, err := NewBasis(nil)
	assert.Error(t, err)
}

func TestNewBasisRejectsNonPositive(t *testing.T) {
	_, err := NewBasis([]float64{1, 0, 2})
	assert.Error(t, err)

	_, err = NewBasis([]float64{1, -2, 3})
	assert.Error(t, err)
}

func TestBasisDimAndRDiagonal(t *testing.T) {
	b, err := NewBasis([]float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 3, b.Dim())

	v, err := b.RDiagonal(1)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, v)

	_, err = b.RDiagonal(3)
	assert.Error(t, err)
	_, err = b.RDiagonal(-1)
	assert.Error(t, err)
}

func TestSlice(t *testing.T) {
	b, err := NewBasis([]float64{10, 20, 30, 40, 50})
	assert.NoError(t, err)

	s, err := Slice(b, 1, 4)
	assert.NoError(t, err)
	assert.Equal(t, 3, s.Dim())

	v, err := s.RDiagonal(0)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, v)

	v, err = s.RDiagonal(2)
	assert.NoError(t, err)
	assert.Equal(t, 40.0, v)

	_, err = s.RDiagonal(3)
	assert.Error(t, err)
}

func TestSliceRejectsInvalidRange(t *testing.T) {
	b, err := NewBasis([]float64{1, 2, 3})
	assert.NoError(t, err)

	_, err = Slice(b, -1, 2)
	assert.Error(t, err)

	_, err = Slice(b, 1, 10)
	assert.Error(t, err)

	_, err = Slice(b, 2, 2)
	assert.Error(t, err)
}
