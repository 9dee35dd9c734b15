package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	require.NoError(t, m.Set(0, 0, math.Inf(1)))
	v, _ = m.At(0, 0)
	assert.True(t, math.IsInf(v, 1))
}

func TestDense_Errors(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.At(2,0)")

	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaN)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, _ := matrix.NewDense(1, 2)
	require.NoError(t, m.Set(0, 1, 7))

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 1, 9))

	v, _ := m.At(0, 1)
	assert.Equal(t, 7.0, v)
}

func TestDense_String(t *testing.T) {
	m, _ := matrix.NewDense(2, 2)
	_ = m.Set(0, 1, 1.5)
	_ = m.Set(1, 0, math.Inf(1))
	assert.Equal(t, "[0, 1.5]\n[+Inf, 0]\n", m.String())
}

func TestValidateSquare(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	assert.ErrorIs(t, matrix.ValidateSquare(typedNil), matrix.ErrNilMatrix)

	ns, _ := matrix.NewDense(2, 3)
	assert.ErrorIs(t, matrix.ValidateSquare(ns), matrix.ErrDimensionMismatch)

	sq, _ := matrix.NewDense(3, 3)
	assert.NoError(t, matrix.ValidateSquare(sq))
}
