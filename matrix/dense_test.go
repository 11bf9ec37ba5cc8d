package matrix_test

import (
	"math"
	"testing"

	"github.com/jtilly/matchingr/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_SetAtRoundTrip(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
}

func TestDense_AtOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Column(t *testing.T) {
	m, err := matrix.NewDenseFromColumns([][]float64{
		{2, 1, 0},
		{1, 2, 1},
		{0, 0, 2},
	})
	require.NoError(t, err)

	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1}, col)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 99))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig)
}

func TestDense_Shape(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	rows, cols := m.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
}

func TestDense_SetRejectsNaNAndInf(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	err = m.Set(0, 0, math.NaN())
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	err = m.Set(0, 0, math.Inf(1))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_WithNoValidateNaNInfAllowsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, math.Inf(-1)))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))
}

func TestDense_WithAddedRow(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	padded := m.WithAddedRow(-1e10)
	assert.Equal(t, 3, padded.Rows())
	assert.Equal(t, 2, padded.Cols())

	v, err := padded.At(2, 0)
	require.NoError(t, err)
	assert.Equal(t, -1e10, v)
}
