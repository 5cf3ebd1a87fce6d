// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and checked accessors return these sentinels (possibly
// wrapped with method context); callers match them via errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<0 or cols<0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")
)
