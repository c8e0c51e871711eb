// SPDX-License-Identifier: MIT

// Package simplex - one-call facade over NewTableau + NewSolver + Solve.
package simplex

import (
	"errors"
	"fmt"
)

// Solution is the outcome of a solve. On failure only Status, Iterations and
// DegeneratePivots are meaningful.
type Solution struct {
	Status           Status    `json:"status"`
	Value            float64   `json:"value"`
	X                []float64 `json:"x,omitempty"`
	Basis            []int     `json:"basis,omitempty"`
	Iterations       int       `json:"iterations"`
	DegeneratePivots int       `json:"degenerate_pivots"`
}

// Solve validates p, builds its tableau and runs the primal simplex.
// MAIN DESCRIPTION:
//   - Convenience entry point for callers that do not need Step-level control.
//
// Implementation:
//   - Stage 1: p.Validate (shapes, operators, finiteness, sense).
//   - Stage 2: NewTableau, NewSolver with opts.
//   - Stage 3: Solver.Solve; on success package Value/Primal/Basis.
//
// Behavior highlights:
//   - The returned Solution always carries a Status, also on error.
//
// Errors:
//   - Any builder error, ErrUnknownSense, ErrInfeasibleStart, ErrUnbounded,
//     ErrIterationLimit, ErrNumerical; all wrapped with "Solve: ".
//
// Complexity:
//   - Time O(k*(m+1)*(n+m+1)) for k pivots, Space O(m*(n+m)).
func Solve(p Problem, opts ...Option) (Solution, error) {
	if err := p.Validate(); err != nil {
		return Solution{Status: InvalidInput}, fmt.Errorf("Solve: %w", err)
	}

	t, err := p.Tableau()
	if err != nil {
		return Solution{Status: InvalidInput}, fmt.Errorf("Solve: %w", err)
	}

	s, err := NewSolver(t, p.Sense, opts...)
	if err != nil {
		return Solution{Status: StatusOf(err)}, fmt.Errorf("Solve: %w", err)
	}

	if err = s.Solve(); err != nil {
		return Solution{
			Status:           s.Status(),
			Iterations:       s.Iterations(),
			DegeneratePivots: s.DegeneratePivots(),
		}, fmt.Errorf("Solve: %w", err)
	}

	return s.Solution()
}

// StatusOf maps an error returned by this package to its terminal Status.
// A nil error maps to Optimal; unrecognized errors map to InvalidInput.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Optimal
	case errors.Is(err, ErrUnbounded):
		return Unbounded
	case errors.Is(err, ErrIterationLimit):
		return IterationLimit
	case errors.Is(err, ErrInfeasibleStart):
		return InfeasibleStart
	case errors.Is(err, ErrNumerical):
		return NumericalFailure
	default:
		return InvalidInput
	}
}
