// SPDX-License-Identifier: MIT

// Package simplex - caller-facing problem model and result verification.
package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlp/matrix"
)

// Problem is a linear program in the form
//
//	optimize  c·x
//	s.t.      A[i]·x  Ops[i]  B[i]   for every constraint i
//	          x >= 0
//
// with Sense choosing max or min.
type Problem struct {
	A     [][]float64 // m×n constraint coefficients
	B     []float64   // m right-hand sides
	Ops   []Operator  // m relational operators
	C     []float64   // n objective coefficients
	Sense Sense       // Maximize or Minimize
}

// Validate checks the problem without building a tableau.
// Errors: ErrInvalidDimensions, ErrUnknownOperator, ErrNaNInf, ErrUnknownSense.
func (p Problem) Validate() error {
	if err := validateInputs(p.A, p.B, p.Ops, p.C); err != nil {
		return err
	}
	if !p.Sense.Valid() {
		return fmt.Errorf("%s: %w", p.Sense, ErrUnknownSense)
	}

	return nil
}

// Tableau builds the initial tableau for p (see NewTableau).
func (p Problem) Tableau() (*Tableau, error) {
	return NewTableau(p.A, p.B, p.Ops, p.C)
}

// Objective evaluates c·x.
// Errors: ErrInvalidDimensions when len(x) != len(c).
func (p Problem) Objective(x []float64) (float64, error) {
	if len(x) != len(p.C) {
		return 0, fmt.Errorf("Objective: %d values for %d variables: %w", len(x), len(p.C), ErrInvalidDimensions)
	}

	return dot(p.C, x), nil
}

// Verify checks that x is a feasible point of p: every structural variable is
// non-negative and every constraint holds under its operator.
//
// The tolerance is relative to the magnitude of the right-hand side:
// a row passes when it is violated by at most eps*max(1, |b_i|).
//
// Errors: ErrInvalidDimensions, ErrNegativeVariable, ErrConstraintViolated
// (the first violation found, scanning variables then rows in order).
// Complexity: O(m*n).
func Verify(p Problem, x []float64, eps float64) error {
	n := len(p.C)
	if err := matrix.ValidateVecLen(x, n); err != nil {
		return fmt.Errorf("Verify: point (%v): %w", err, ErrInvalidDimensions)
	}
	if len(p.A) != len(p.B) || len(p.Ops) != len(p.B) {
		return fmt.Errorf("Verify: %w", ErrInvalidDimensions)
	}

	var i int
	for i = 0; i < n; i++ {
		if x[i] < -eps {
			return fmt.Errorf("Verify: x[%d] = %g: %w", i, x[i], ErrNegativeVariable)
		}
	}

	var lhs, tol float64
	for i = 0; i < len(p.B); i++ {
		if len(p.A[i]) != n {
			return fmt.Errorf("Verify: row %d: %w", i, ErrInvalidDimensions)
		}
		lhs = dot(p.A[i], x)
		tol = eps * math.Max(1, math.Abs(p.B[i]))
		if !holds(lhs, p.Ops[i], p.B[i], tol) {
			return fmt.Errorf("Verify: row %d: %g %s %g: %w", i, lhs, p.Ops[i], p.B[i], ErrConstraintViolated)
		}
	}

	return nil
}

// holds reports whether lhs op rhs is satisfied within tol.
func holds(lhs float64, op Operator, rhs, tol float64) bool {
	switch op {
	case LessEqual:
		return lhs <= rhs+tol
	case GreaterEqual:
		return lhs >= rhs-tol
	case Equal:
		return math.Abs(lhs-rhs) <= tol
	default:
		return false
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}
