// SPDX-License-Identifier: MIT
// Package simplex_test contains shared fixtures for the solver tests.
//
// Purpose:
//   - Small, hand-checked linear programs with known optima.
//   - Must* constructors that abort the test on setup errors.

package simplex_test

import (
	"testing"

	"github.com/katalvlaran/lvlp/simplex"
	"github.com/stretchr/testify/require"
)

// production: max 3x1 + 2x2 s.t. x1 + x2 <= 4, x1 <= 2. Optimum 10 at (2, 2).
func production() simplex.Problem {
	return simplex.Problem{
		A:     [][]float64{{1, 1}, {1, 0}},
		B:     []float64{4, 2},
		Ops:   []simplex.Operator{simplex.LessEqual, simplex.LessEqual},
		C:     []float64{3, 2},
		Sense: simplex.Maximize,
	}
}

// beale is the classic cycling example: Dantzig's rule with smallest-index
// ties loops forever, Bland's rule reaches 1.25 at (1, 0, 1, 0).
func beale() simplex.Problem {
	le := simplex.LessEqual
	return simplex.Problem{
		A: [][]float64{
			{0.25, -8, -1, 9},
			{0.5, -12, -0.5, 3},
			{0, 0, 1, 0},
		},
		B:     []float64{0, 0, 1},
		Ops:   []simplex.Operator{le, le, le},
		C:     []float64{0.75, -20, 0.5, -6},
		Sense: simplex.Maximize,
	}
}

// ray: max x1 s.t. x1 - x2 <= 1. Unbounded along x2 after one pivot.
func ray() simplex.Problem {
	return simplex.Problem{
		A:     [][]float64{{1, -1}},
		B:     []float64{1},
		Ops:   []simplex.Operator{simplex.LessEqual},
		C:     []float64{1, 0},
		Sense: simplex.Maximize,
	}
}

// overflow: max x1 s.t. 1e-300·x1 <= 1e300. The first pivot divides by
// 1e-300 and the right-hand side overflows to +Inf.
func overflow() simplex.Problem {
	return simplex.Problem{
		A:     [][]float64{{1e-300}},
		B:     []float64{1e300},
		Ops:   []simplex.Operator{simplex.LessEqual},
		C:     []float64{1},
		Sense: simplex.Maximize,
	}
}

// covering: min 2x1 + 3x2 s.t. x1 + x2 >= 4. The slack basis is infeasible.
func covering() simplex.Problem {
	return simplex.Problem{
		A:     [][]float64{{1, 1}},
		B:     []float64{4},
		Ops:   []simplex.Operator{simplex.GreaterEqual},
		C:     []float64{2, 3},
		Sense: simplex.Minimize,
	}
}

// MustTableau builds p's tableau or fails the test.
func MustTableau(t *testing.T, p simplex.Problem) *simplex.Tableau {
	t.Helper()
	tab, err := p.Tableau()
	require.NoError(t, err)

	return tab
}

// MustSolver builds a solver for p or fails the test.
func MustSolver(t *testing.T, p simplex.Problem, opts ...simplex.Option) *simplex.Solver {
	t.Helper()
	s, err := simplex.NewSolver(MustTableau(t, p), p.Sense, opts...)
	require.NoError(t, err)

	return s
}

// RequireCanonical asserts the exact canonical-form invariant of s.
func RequireCanonical(t *testing.T, s *simplex.Solver) {
	t.Helper()
	require.True(t, s.Tableau().IsCanonical(s.Basis()), "basis %v not canonical:\n%s", s.Basis(), s.Tableau())
}
