// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() report the dimensions.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m := MustDense(t, rows, cols)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 7.89)
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

// TestSetRejectsNonFinite checks that Set refuses NaN/Inf and leaves the cell intact.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	MustSet(t, m, 0, 0, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 2.0, MustAt(t, m, 0, 0))
}

// TestRowSharesStorage verifies Row returns a write-through window of one row.
func TestRowSharesStorage(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	require.Equal(t, 2, cap(row)) // capped: append cannot bleed into another row

	row[0] = 30
	require.Equal(t, 30.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	MustSet(t, m, 0, 0, 1.0)

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))

	cd := m.CloneDense()
	MustSet(t, cd, 1, 1, 5)
	require.Equal(t, 0.0, MustAt(t, m, 1, 1))
}

// TestToRows checks the copy-out helper.
func TestToRows(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	out := m.ToRows()
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, out)

	out[0][0] = -1
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestInterfaceHiding makes sure the wrapper still satisfies Matrix.
func TestInterfaceHiding(t *testing.T) {
	var m matrix.Matrix = hide{MustDense(t, 1, 2)}
	require.Equal(t, 2, m.Cols())
	require.NoError(t, matrix.ValidateNotNil(m))
}
