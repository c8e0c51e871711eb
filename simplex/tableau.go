// SPDX-License-Identifier: MIT

// Package simplex - tableau construction (the builder stage).
//
// Layout of the (m+1)×(n+m+1) tableau:
//
//	          structural (n)     slack (m)       RHS
//	row 0     a[0][0..n-1]       s0  0 ... 0     b[0]
//	...
//	row m-1   a[m-1][0..n-1]     0 ... 0 sm-1    b[m-1]
//	row m     c[0..n-1]          0 ... 0         -z
//
// where s_i is +1, 0 or -1 for <=, = and >= rows. The last row holds the
// reduced costs; its RHS cell holds the negated running objective.
package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlp/matrix"
)

// canonicalTol is the tolerance for structural unit-column probes when the
// caller wants the exact invariant.
const canonicalTol = 0.0

// Tableau is the augmented simplex matrix plus its derived dimensions.
// The solver that receives a Tableau becomes its only writer.
type Tableau struct {
	mat *matrix.Dense // (m+1)×(n+m+1), row-major
	m   int           // number of constraints
	n   int           // number of structural variables
}

// NewTableau builds the initial tableau from an LP description.
// MAIN DESCRIPTION:
//   - Pure, deterministic translation of (A, b, ops, c) into tableau form.
//
// Implementation:
//   - Stage 1: validate shapes, operators and finiteness (validateInputs).
//   - Stage 2: copy A into columns [0,n), write the slack coefficient of row i
//     into column n+i, write b into the RHS column.
//   - Stage 3: write c into the objective row; slack and RHS cells stay 0.
//
// Behavior highlights:
//   - No feasibility check: an all-slack basis that is not feasible (>= or =
//     rows) is accepted here; see WithRequireFeasibleStart.
//   - Inputs are copied; the caller keeps ownership of its slices.
//
// Inputs:
//   - a: m×n constraint coefficients (any finite reals).
//   - b: m right-hand sides.
//   - ops: m operators.
//   - c: n objective coefficients (n >= 1).
//
// Errors:
//   - ErrInvalidDimensions, ErrUnknownOperator, ErrNaNInf.
//
// Complexity:
//   - Time O(m*(n+m)), Space O(m*(n+m)).
func NewTableau(a [][]float64, b []float64, ops []Operator, c []float64) (*Tableau, error) {
	if err := validateInputs(a, b, ops, c); err != nil {
		return nil, fmt.Errorf("NewTableau: %w", err)
	}

	m, n := len(b), len(c)
	rhs := n + m
	mat, err := matrix.NewDense(m+1, n+m+1)
	if err != nil {
		return nil, fmt.Errorf("NewTableau: %w", ErrInvalidDimensions)
	}

	var i int
	var row []float64
	for i = 0; i < m; i++ {
		row, _ = mat.Row(i) // i < m+1: in range by construction
		copy(row[:n], a[i])
		row[n+i] = ops[i].Slack()
		row[rhs] = b[i]
	}
	row, _ = mat.Row(m)
	copy(row[:n], c)

	return &Tableau{mat: mat, m: m, n: n}, nil
}

// validateInputs enforces the builder preconditions in a fixed order:
// dimensions -> operators -> finiteness.
func validateInputs(a [][]float64, b []float64, ops []Operator, c []float64) error {
	m, n := len(b), len(c)
	if n == 0 {
		return fmt.Errorf("objective has no variables: %w", ErrInvalidDimensions)
	}
	if len(a) != m {
		return fmt.Errorf("%d constraint rows for %d right-hand sides: %w", len(a), m, ErrInvalidDimensions)
	}
	if len(ops) != m {
		return fmt.Errorf("%d operators for %d constraints: %w", len(ops), m, ErrInvalidDimensions)
	}
	if err := matrix.ValidateRect(a, n); err != nil {
		return fmt.Errorf("constraint matrix is not %d columns wide (%v): %w", n, err, ErrInvalidDimensions)
	}

	var i int
	for i = 0; i < m; i++ {
		if !ops[i].Valid() {
			return fmt.Errorf("row %d: %s: %w", i, ops[i], ErrUnknownOperator)
		}
	}

	if err := matrix.ValidateFinite(c); err != nil {
		return fmt.Errorf("objective (%v): %w", err, ErrNaNInf)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return fmt.Errorf("right-hand side (%v): %w", err, ErrNaNInf)
	}
	for i = 0; i < m; i++ {
		if err := matrix.ValidateFinite(a[i]); err != nil {
			return fmt.Errorf("row %d (%v): %w", i, err, ErrNaNInf)
		}
	}

	return nil
}

// Constraints returns m, the number of constraint rows.
func (t *Tableau) Constraints() int { return t.m }

// Variables returns n, the number of structural variables.
func (t *Tableau) Variables() int { return t.n }

// RHSColumn returns the index of the right-hand-side column (n+m).
func (t *Tableau) RHSColumn() int { return t.n + t.m }

// ObjectiveRow returns the index of the reduced-cost row (m).
func (t *Tableau) ObjectiveRow() int { return t.m }

// At returns the tableau entry at (i, j).
// Errors: matrix.ErrOutOfRange for indices outside the tableau.
func (t *Tableau) At(i, j int) (float64, error) { return t.mat.At(i, j) }

// Rows copies the tableau out as a 2-D slice.
// Complexity: O(m*(n+m)).
func (t *Tableau) Rows() [][]float64 { return t.mat.ToRows() }

// Clone returns an independent deep copy.
func (t *Tableau) Clone() *Tableau {
	return &Tableau{mat: t.mat.CloneDense(), m: t.m, n: t.n}
}

// String renders the tableau for diagnostics.
func (t *Tableau) String() string { return t.mat.String() }

// IsCanonical reports whether every basic column is exactly the unit vector
// of its basis row (objective row included).
//
// Returns false when basis has the wrong length or holds an index outside
// [0, n+m).
// Complexity: O(m²).
func (t *Tableau) IsCanonical(basis []int) bool {
	if len(basis) != t.m {
		return false
	}
	var i int
	for i = 0; i < t.m; i++ {
		if basis[i] < 0 || basis[i] >= t.n+t.m {
			return false
		}
		ok, err := t.mat.IsUnitColumn(basis[i], i, canonicalTol)
		if err != nil || !ok {
			return false
		}
	}

	return true
}

// slackBasis returns the starting basis: slack n+i is basic in row i.
func (t *Tableau) slackBasis() []int {
	basis := make([]int, t.m)
	var i int
	for i = 0; i < t.m; i++ {
		basis[i] = t.n + i
	}

	return basis
}

// checkFeasibleStart verifies that the slack basis is canonical and primal
// feasible (RHS >= -eps in every constraint row).
func (t *Tableau) checkFeasibleStart(eps float64) error {
	basis := t.slackBasis()
	var i int
	for i = 0; i < t.m; i++ {
		ok, _ := t.mat.IsUnitColumn(basis[i], i, eps)
		if !ok {
			return fmt.Errorf("row %d: slack column %d is not a unit column: %w", i, basis[i], ErrInfeasibleStart)
		}
		rhs, _ := t.mat.At(i, t.RHSColumn())
		if rhs < -eps {
			return fmt.Errorf("row %d: negative right-hand side %g: %w", i, rhs, ErrInfeasibleStart)
		}
	}

	return nil
}
