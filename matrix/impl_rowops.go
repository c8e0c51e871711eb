// SPDX-License-Identifier: MIT

// Package matrix - elementary row kernels for Gauss-Jordan style algorithms.
//
// Purpose:
//   - Keep row arithmetic on the flat buffer in one place.
//   - Provide structural probes (IsUnitColumn) used to assert canonical form.

package matrix

import "math"

const ctxUnitCol = "IsUnitColumn" // method tag for Dense.IsUnitColumn

// DivideRow divides every entry of row i by d in place.
// MAIN DESCRIPTION:
//   - Row normalization step of a pivot (x[j] = x[j] / d for all j).
//
// Implementation:
//   - Stage 1: bounds-check i; reject d == 0 (ErrZeroScale) and non-finite d
//     (ErrNaNInf).
//   - Stage 2: divide in fixed column order.
//
// Errors:
//   - ErrOutOfRange, ErrZeroScale, ErrNaNInf.
//
// Complexity:
//   - Time O(c), Space O(1).
//
// Notes:
//   - Division (not multiplication by 1/d) keeps results bit-identical to the
//     textbook update x / d.
func (m *Dense) DivideRow(i int, d float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScale, i, 0, ErrOutOfRange)
	}
	if d == 0 {
		return denseErrorf(ctxScale, i, 0, ErrZeroScale)
	}
	if isNonFinite(d) {
		return denseErrorf(ctxScale, i, 0, ErrNaNInf)
	}
	var j int
	base := i * m.c
	for j = 0; j < m.c; j++ {
		m.data[base+j] /= d
	}

	return nil
}

// IsUnitColumn reports whether column col is the unit vector e_row within eps:
// |a[row,col] - 1| <= eps and |a[i,col]| <= eps for all i != row.
//
// Errors: ErrOutOfRange when col or row is outside the matrix.
// Complexity: O(r).
func (m *Dense) IsUnitColumn(col, row int, eps float64) (bool, error) {
	if _, err := m.indexOf(row, col); err != nil {
		return false, denseErrorf(ctxUnitCol, row, col, err)
	}
	var i int
	var want float64
	for i = 0; i < m.r; i++ {
		want = 0
		if i == row {
			want = 1
		}
		if math.Abs(m.data[i*m.c+col]-want) > eps {
			return false, nil
		}
	}

	return true, nil
}
