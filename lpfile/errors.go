// SPDX-License-Identifier: MIT
// Package lpfile: sentinel error set.

package lpfile

import "errors"

var (
	// ErrEmptyDocument indicates an empty or whitespace-only input.
	ErrEmptyDocument = errors.New("lpfile: empty document")

	// ErrBadFormat indicates input that is not a well-formed problem document,
	// or an unsupported output format.
	ErrBadFormat = errors.New("lpfile: malformed document")
)
