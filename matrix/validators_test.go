// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlp/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		x       []float64
		n       int
		wantErr error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"short", []float64{1}, 2, matrix.ErrDimensionMismatch},
		{"exact", []float64{1, 2}, 2, nil},
		{"empty non-nil", []float64{}, 0, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateVecLen(tc.x, tc.n)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestValidateRect(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateRect([][]float64{{1, 2}, {3, 4}}, 2))
	require.NoError(t, matrix.ValidateRect(nil, 3))

	err := matrix.ValidateRect([][]float64{{1, 2}, {3}}, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "row 1")
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateFinite([]float64{0, -1, 1e300}))

	err := matrix.ValidateFinite([]float64{0, math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "index 1")
}
