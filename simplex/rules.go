// SPDX-License-Identifier: MIT

// Package simplex - entering/leaving selection and the Gauss-Jordan pivot.
//
// All comparisons here are strict and against exact zero; tolerances apply
// only to preconditions and verification.
package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvlp/matrix"
)

// noIndex marks "no column" (optimal) or "no row" (unbounded).
const noIndex = -1

// improves reports whether reduced cost v can improve the objective.
func improves(sense Sense, v float64) bool {
	if sense == Maximize {
		return v > 0
	}

	return v < 0
}

// better reports whether reduced cost v beats the incumbent w under sense.
func better(sense Sense, v, w float64) bool {
	if sense == Maximize {
		return v > w
	}

	return v < w
}

// enteringDantzig scans columns 0..n+m-1 of the objective row. Column 0 is
// the initial incumbent; a later column replaces it only when strictly
// better, so the first index wins ties.
// Returns noIndex when the incumbent cannot improve the objective.
// Complexity: O(n+m).
func enteringDantzig(obj []float64, cols int, sense Sense) int {
	q := 0
	var j int
	for j = 1; j < cols; j++ {
		if better(sense, obj[j], obj[q]) {
			q = j
		}
	}
	if !improves(sense, obj[q]) {
		return noIndex
	}

	return q
}

// enteringBland returns the lowest column index with an improving reduced
// cost, or noIndex.
// Complexity: O(n+m).
func enteringBland(obj []float64, cols int, sense Sense) int {
	var j int
	for j = 0; j < cols; j++ {
		if improves(sense, obj[j]) {
			return j
		}
	}

	return noIndex
}

// leavingRow runs the minimum ratio test on column q.
// MAIN DESCRIPTION:
//   - Among rows with T[i][q] > 0, pick the smallest RHS[i]/T[i][q].
//
// Behavior highlights:
//   - Dantzig: the first row with a strictly smaller ratio wins.
//   - Bland: equal ratios are broken by the smallest basic variable index.
//
// Returns:
//   - (p, ratio) or (noIndex, 0) when no row bounds column q (unbounded).
//
// Complexity:
//   - Time O(m), Space O(1).
func (s *Solver) leavingRow(q int) (int, float64) {
	p := noIndex
	var best, r float64
	var i int
	rhs := s.tab.RHSColumn()
	for i = 0; i < s.tab.m; i++ {
		row, _ := s.tab.mat.Row(i)
		if row[q] <= 0 {
			continue
		}
		r = row[rhs] / row[q]
		switch {
		case p == noIndex, r < best:
			p, best = i, r
		case s.opts.rule == Bland && r == best && s.basis[i] < s.basis[p]:
			p = i
		}
	}

	return p, best
}

// pivot applies one Gauss-Jordan elimination on (p, q) in place.
// MAIN DESCRIPTION:
//   - Makes column q the unit vector e_p while keeping every row equivalent.
//
// Implementation:
//   - Stage 1: for every row i != p and column j != q:
//     T[i][j] -= T[p][j] * T[i][q] / T[p][q]; then T[i][q] = 0.
//   - Stage 2: divide row p by T[p][q]; then T[p][q] = 1.
//   - Stage 3: every touched row must still be finite.
//
// Behavior highlights:
//   - Rows whose column-q entry is already 0 are left untouched; the update
//     would subtract exact zeros.
//   - x/x == 1 exactly in IEEE arithmetic, so Stage 2 yields an exact 1.
//
// Errors:
//   - ErrNumerical when an update overflows or yields NaN (e.g. a tiny pivot
//     under a huge right-hand side). The tableau is left partially updated.
//
// Complexity:
//   - Time O((m+1)*(n+m+1)), Space O(1).
func (s *Solver) pivot(p, q int) error {
	pr, _ := s.tab.mat.Row(p)
	piv := pr[q]
	cols := len(pr)

	var i, j int
	var f float64
	for i = 0; i <= s.tab.m; i++ {
		if i == p {
			continue
		}
		ri, _ := s.tab.mat.Row(i)
		f = ri[q]
		if f == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			if j == q {
				continue
			}
			ri[j] -= pr[j] * f / piv
		}
		if err := s.tab.mat.Set(i, q, 0); err != nil {
			return fmt.Errorf("pivot (%d,%d): %v: %w", p, q, err, ErrNumerical)
		}
		if err := matrix.ValidateFinite(ri); err != nil {
			return fmt.Errorf("pivot (%d,%d): row %d: %v: %w", p, q, i, err, ErrNumerical)
		}
	}

	if err := s.tab.mat.DivideRow(p, piv); err != nil {
		return fmt.Errorf("pivot (%d,%d): %v: %w", p, q, err, ErrNumerical)
	}
	if err := s.tab.mat.Set(p, q, 1); err != nil {
		return fmt.Errorf("pivot (%d,%d): %v: %w", p, q, err, ErrNumerical)
	}
	if err := matrix.ValidateFinite(pr); err != nil {
		return fmt.Errorf("pivot (%d,%d): row %d: %v: %w", p, q, p, err, ErrNumerical)
	}

	return nil
}
