// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors wrapped with a validator tag so errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Nil vectors are rejected even when n == 0.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRect ensures every row of rows has exactly cols entries.
//
// Inputs: 2-D slice, expected column count.
// Errors: ErrDimensionMismatch naming the first offending row.
// Complexity: O(len(rows)).
func ValidateRect(rows [][]float64, cols int) error {
	var i int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return validatorErrorf(fmt.Sprintf("ValidateRect: row %d", i), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateFinite ensures every entry of x is finite.
//
// Errors: ErrNaNInf naming the first offending index.
// Complexity: O(len(x)).
func ValidateFinite(x []float64) error {
	var i int
	for i = 0; i < len(x); i++ {
		if isNonFinite(x[i]) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: index %d", i), ErrNaNInf)
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
