// SPDX-License-Identifier: MIT

// Package simplex - the primal simplex driver.
//
// State machine:
//
//	Running --(no improving column)--> Optimal
//	Running --(no bounding row)------> Unbounded        (ErrUnbounded)
//	Running --(pivot budget spent)---> IterationLimit   (ErrIterationLimit)
//	Running --(non-finite pivot)-----> NumericalFailure (ErrNumerical)
//
// Every terminal state is sticky: further Step/Solve calls return the same
// outcome without touching the tableau.
package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlp/matrix"
)

// Solver owns a tableau and its basis for the duration of one solve.
// A Solver is not safe for concurrent use.
type Solver struct {
	tab        *Tableau
	basis      []int // basis[i] = variable basic in row i
	sense      Sense
	opts       Options
	status     Status
	err        error // terminal failure, replayed by Step/Solve
	iterations int
	degenerate int
}

// NewSolver takes ownership of t and prepares the all-slack basis.
// MAIN DESCRIPTION:
//   - Binds tableau, sense and options; performs no pivots.
//
// Implementation:
//   - Stage 1: validate t and sense.
//   - Stage 2: resolve options; when WithRequireFeasibleStart is set, check
//     the slack basis (unit columns, RHS >= -eps).
//   - Stage 3: basis[i] = n+i.
//
// Inputs:
//   - t: tableau from NewTableau; the caller must not use it afterwards.
//   - sense: Maximize or Minimize.
//   - opts: WithRule, WithMaxIterations, WithRequireFeasibleStart, ...
//
// Errors:
//   - ErrNilTableau, ErrUnknownSense, ErrInfeasibleStart.
//
// Complexity:
//   - Time O(m) (O(m²) with the feasibility check), Space O(m).
func NewSolver(t *Tableau, sense Sense, opts ...Option) (*Solver, error) {
	if t == nil || matrix.ValidateNotNil(t.mat) != nil {
		return nil, ErrNilTableau
	}
	if !sense.Valid() {
		return nil, fmt.Errorf("NewSolver: %s: %w", sense, ErrUnknownSense)
	}

	o := NewSolverOptions(opts...)
	if o.requireFeasibleStart {
		if err := t.checkFeasibleStart(o.eps); err != nil {
			return nil, fmt.Errorf("NewSolver: %w", err)
		}
	}

	return &Solver{
		tab:    t,
		basis:  t.slackBasis(),
		sense:  sense,
		opts:   o,
		status: Running,
	}, nil
}

// Step performs exactly one simplex iteration.
// MAIN DESCRIPTION:
//   - Select the entering column, run the ratio test, pivot, update the basis.
//
// Implementation:
//   - Stage 1: no improving column -> Optimal.
//   - Stage 2: no bounding row -> Unbounded.
//   - Stage 3: pivot budget spent -> IterationLimit. The budget is checked
//     only once a pivot is actually needed, so an optimal or unbounded
//     verdict reached at the cap is still reported as such.
//   - Stage 4: pivot; a non-finite result -> NumericalFailure.
//
// Returns:
//   - done == false: a pivot happened and the solver is still Running.
//   - done == true, err == nil: the solver is Optimal.
//   - done == true, err != nil: a terminal failure (ErrUnbounded,
//     ErrIterationLimit, ErrNumerical), also recorded in Status().
//
// Complexity:
//   - Time O((m+1)*(n+m+1)) per call.
func (s *Solver) Step() (bool, error) {
	if s.status.Terminal() {
		return true, s.err
	}

	obj, _ := s.tab.mat.Row(s.tab.m)
	cols := s.tab.n + s.tab.m
	var q int
	if s.opts.rule == Bland {
		q = enteringBland(obj, cols, s.sense)
	} else {
		q = enteringDantzig(obj, cols, s.sense)
	}
	if q == noIndex {
		s.status = Optimal
		return true, nil
	}

	p, ratio := s.leavingRow(q)
	if p == noIndex {
		return true, s.fail(Unbounded, fmt.Errorf("column %d has no bounding row: %w", q, ErrUnbounded))
	}

	if s.iterations >= s.opts.maxIterations {
		return true, s.fail(IterationLimit, fmt.Errorf("after %d pivots: %w", s.iterations, ErrIterationLimit))
	}

	if err := s.pivot(p, q); err != nil {
		return true, s.fail(NumericalFailure, err)
	}
	leaving := s.basis[p]
	s.basis[p] = q
	s.iterations++
	if ratio == 0 {
		s.degenerate++
	}

	if s.opts.onPivot != nil {
		s.opts.onPivot(PivotEvent{
			Iteration:  s.iterations,
			Row:        p,
			Entering:   q,
			Leaving:    leaving,
			Ratio:      ratio,
			Objective:  s.objective(),
			Degenerate: ratio == 0,
		})
	}

	return false, nil
}

// Solve runs Step until a terminal state.
// Errors: ErrUnbounded, ErrIterationLimit, ErrNumerical. Nil means Optimal.
func (s *Solver) Solve() error {
	for {
		done, err := s.Step()
		if done {
			return err
		}
	}
}

func (s *Solver) fail(st Status, err error) error {
	s.status = st
	s.err = err

	return err
}

// objective returns -T[m][n+m], normalizing -0 to 0.
func (s *Solver) objective() float64 {
	v, _ := s.tab.mat.At(s.tab.m, s.tab.RHSColumn())
	v = -v
	if v == 0 {
		return 0
	}

	return v
}

// Value returns the optimal objective value.
// Errors: ErrNotSolved unless Status() == Optimal.
func (s *Solver) Value() (float64, error) {
	if s.status != Optimal {
		return 0, fmt.Errorf("Value: status %s: %w", s.status, ErrNotSolved)
	}

	return s.objective(), nil
}

// Primal returns a fresh vector of length n: x[basis[i]] = RHS[i] for every
// structural basic variable, 0 for non-basic variables.
// Errors: ErrNotSolved unless Status() == Optimal.
// Complexity: O(n+m).
func (s *Solver) Primal() ([]float64, error) {
	if s.status != Optimal {
		return nil, fmt.Errorf("Primal: status %s: %w", s.status, ErrNotSolved)
	}

	x := make([]float64, s.tab.n)
	rhs := s.tab.RHSColumn()
	var i int
	for i = 0; i < s.tab.m; i++ {
		if s.basis[i] < s.tab.n {
			x[s.basis[i]], _ = s.tab.mat.At(i, rhs)
		}
	}

	return x, nil
}

// Solution packages the optimal result.
// Errors: ErrNotSolved unless Status() == Optimal.
func (s *Solver) Solution() (Solution, error) {
	v, err := s.Value()
	if err != nil {
		return Solution{}, err
	}
	x, _ := s.Primal()

	return Solution{
		Status:           s.status,
		Value:            v,
		X:                x,
		Basis:            s.Basis(),
		Iterations:       s.iterations,
		DegeneratePivots: s.degenerate,
	}, nil
}

// Basis returns a copy of the current basis.
func (s *Solver) Basis() []int {
	out := make([]int, len(s.basis))
	copy(out, s.basis)

	return out
}

// Status returns the current state.
func (s *Solver) Status() Status { return s.status }

// Sense returns the optimization direction.
func (s *Solver) Sense() Sense { return s.sense }

// Iterations returns the number of pivots performed so far.
func (s *Solver) Iterations() int { return s.iterations }

// DegeneratePivots returns how many pivots had a zero min-ratio.
func (s *Solver) DegeneratePivots() int { return s.degenerate }

// Tableau returns a deep copy of the current tableau.
// Complexity: O(m*(n+m)).
func (s *Solver) Tableau() *Tableau { return s.tab.Clone() }
