// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage used by the simplex
// tableau.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - No-copy row access (Row), row normalization (DivideRow) and the
//     IsUnitColumn probe for Gauss-Jordan style kernels.
//   - Validators for 2-D slices and vectors supplied by callers.
//   - NaN/Inf rejection on every checked write.
//
// Complexity quicksheet:
//
//	NewDense, Clone, ToRows: O(r*c)
//	At, Set, Row:            O(1)
//	DivideRow:               O(c)
//	IsUnitColumn:            O(r)
package matrix
