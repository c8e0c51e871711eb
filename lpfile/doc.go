// SPDX-License-Identifier: MIT

// Package lpfile reads and writes linear programs as YAML or JSON documents.
//
// Document shape:
//
//	name: production          # optional
//	sense: max                # max|maximize|min|minimize
//	variables: [x1, x2]       # optional, one name per objective entry
//	objective: [3, 2]
//	constraints:
//	  - coefficients: [1, 1]
//	    operator: "<="        # <=, =, >= (also le, eq, ge, ≤, ≥)
//	    rhs: 4
//
// YAML is converted to JSON before decoding, so JSON documents are accepted
// verbatim. Decoding is strict: unknown fields and duplicate keys fail with
// ErrBadFormat.
//
// Result is the document-level view of a simplex.Solution: values keyed by
// variable name plus a feasibility verdict for the returned point.
package lpfile
