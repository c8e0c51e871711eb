// SPDX-License-Identifier: MIT

// Package simplex implements the primal simplex method on a dense tableau.
//
// A linear program
//
//	max|min  c·x
//	s.t.     A x  (<=|=|>=)  b
//	         x >= 0
//
// is turned into a tableau by NewTableau (one slack column per row, the
// objective in the last row) and solved by a Solver:
//
//	t, err := simplex.NewTableau(a, b, ops, c)
//	s, err := simplex.NewSolver(t, simplex.Maximize, simplex.WithRule(simplex.Bland))
//	err = s.Solve()          // nil, ErrUnbounded, ErrIterationLimit or ErrNumerical
//	z, _ := s.Value()
//	x, _ := s.Primal()
//
// Solve(Problem, ...Option) wraps the three calls.
//
// Pivoting:
//   - Dantzig (default): most improving reduced cost; first index wins ties.
//   - Bland: lowest improving index; leaving ties go to the lowest basic index.
//     Bland never cycles; Dantzig may, and is then stopped by
//     WithMaxIterations with ErrIterationLimit.
//
// Starting basis:
//
//	The solver always starts from the all-slack basis. That basis is feasible
//	only for <= rows with b >= 0. Rows with >= or = are accepted, but the
//	result may then violate them; use WithRequireFeasibleStart to reject such
//	input with ErrInfeasibleStart and Verify to check a returned point.
//
// Numerics:
//
//	Pivot selection compares against exact zero. Tolerances (WithEpsilon)
//	apply to the feasible-start check and to Verify only. A pivot that
//	overflows or yields NaN stops the solver with ErrNumerical.
package simplex
