// SPDX-License-Identifier: MIT
package simplex_test

import (
	"testing"

	"github.com/katalvlaran/lvlp/simplex"
	"github.com/stretchr/testify/require"
)

func TestProblem_Validate(t *testing.T) {
	require.NoError(t, production().Validate())

	p := production()
	p.Sense = simplex.Sense(4)
	require.ErrorIs(t, p.Validate(), simplex.ErrUnknownSense)

	p = production()
	p.Ops = p.Ops[:1]
	require.ErrorIs(t, p.Validate(), simplex.ErrInvalidDimensions)
}

func TestProblem_Objective(t *testing.T) {
	z, err := production().Objective([]float64{2, 2})
	require.NoError(t, err)
	require.Equal(t, 10.0, z)

	_, err = production().Objective([]float64{1})
	require.ErrorIs(t, err, simplex.ErrInvalidDimensions)
}

func TestVerify(t *testing.T) {
	p := simplex.Problem{
		A:   [][]float64{{1, 1}, {1, -1}, {0, 1}},
		B:   []float64{4, 0, 1},
		Ops: []simplex.Operator{simplex.LessEqual, simplex.GreaterEqual, simplex.Equal},
		C:   []float64{1, 1},
	}
	tests := []struct {
		name string
		x    []float64
		eps  float64
		want error
	}{
		{"feasible", []float64{2, 1}, 0, nil},
		{"within tolerance", []float64{3.0000000001, 1}, 1e-9, nil},
		{"<= violated", []float64{3.5, 1}, 1e-9, simplex.ErrConstraintViolated},
		{">= violated", []float64{0.5, 1}, 1e-9, simplex.ErrConstraintViolated},
		{"= violated", []float64{2, 1.5}, 1e-9, simplex.ErrConstraintViolated},
		{"negative", []float64{-1, 1}, 1e-9, simplex.ErrNegativeVariable},
		{"short", []float64{1}, 0, simplex.ErrInvalidDimensions},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := simplex.Verify(p, tc.x, tc.eps)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
