// SPDX-License-Identifier: MIT
// Package simplex: sentinel error set.
// Every failure surfaced by this package is one of these sentinels, possibly
// wrapped with call-site context via fmt.Errorf("...: %w", ErrX). Callers
// match with errors.Is. Recognized failures are terminal: nothing is retried
// and no partial result is returned.

package simplex

import "errors"

var (
	// ErrInvalidDimensions indicates that the constraint matrix, right-hand
	// sides, operators and objective disagree in length.
	ErrInvalidDimensions = errors.New("simplex: invalid dimensions")

	// ErrNaNInf indicates a NaN or ±Inf coefficient in the problem description.
	ErrNaNInf = errors.New("simplex: NaN or Inf coefficient")

	// ErrUnknownOperator indicates a constraint operator outside {<=, =, >=}.
	ErrUnknownOperator = errors.New("simplex: unknown constraint operator")

	// ErrUnknownSense indicates an optimization direction other than max/min.
	ErrUnknownSense = errors.New("simplex: unknown optimization sense")

	// ErrUnknownRule indicates a pivoting rule name that is not recognized.
	ErrUnknownRule = errors.New("simplex: unknown pivoting rule")

	// ErrNilTableau indicates that a nil *Tableau was handed to the solver.
	ErrNilTableau = errors.New("simplex: nil tableau")

	// ErrUnbounded is raised when an entering column has no bounding row.
	ErrUnbounded = errors.New("simplex: linear program is unbounded")

	// ErrIterationLimit is raised when the pivot budget is exhausted before
	// reaching optimality (typically a degenerate cycle under Dantzig's rule).
	ErrIterationLimit = errors.New("simplex: iteration limit exceeded")

	// ErrInfeasibleStart is raised when the all-slack starting basis is not a
	// feasible canonical basis and the caller asked for that precondition.
	ErrInfeasibleStart = errors.New("simplex: initial slack basis is not feasible")

	// ErrNumerical is raised when a pivot overflows or produces NaN. The
	// tableau is no longer trustworthy; no result is reported.
	ErrNumerical = errors.New("simplex: pivot produced a non-finite value")

	// ErrNotSolved is returned by result accessors before an optimal termination.
	ErrNotSolved = errors.New("simplex: no optimal solution available")

	// ErrConstraintViolated is returned by Verify when a constraint does not hold.
	ErrConstraintViolated = errors.New("simplex: constraint violated")

	// ErrNegativeVariable is returned by Verify when a structural variable is negative.
	ErrNegativeVariable = errors.New("simplex: negative variable")
)
