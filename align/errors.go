// SPDX-License-Identifier: MIT
// Package align: sentinel error set.
// Every failure of the public API is one of these sentinels, returned
// directly or wrapped with fmt.Errorf("ctx: %w", ErrX); match via errors.Is.
// The package never logs, never retries and never returns partial results.

package align

import "errors"

var (
	// ErrEmptyInput indicates one or both sequences are empty after trimming.
	ErrEmptyInput = errors.New("align: input sequences must be non-empty")

	// ErrSizeLimitExceeded indicates a sequence longer than the configured maximum.
	ErrSizeLimitExceeded = errors.New("align: sequence exceeds maximum length")

	// ErrCorruptMatrix indicates traceback met a cell with no valid predecessor,
	// or a matrix whose shape does not fit the sequences. It signals a matrix
	// built with a different Scoring or not built by BuildScoreMatrix at all:
	// a programming error, not a user input error.
	ErrCorruptMatrix = errors.New("align: score matrix inconsistent with sequences or scoring")

	// ErrReservedSymbol indicates an input contains the gap marker.
	ErrReservedSymbol = errors.New("align: input contains the reserved gap marker")

	// ErrMatrixNeedsFullMode indicates WithKeepMatrix was combined with LinearSpace.
	ErrMatrixNeedsFullMode = errors.New("align: KeepMatrix requires Mode=FullMatrix")

	// ErrLengthMismatch indicates two aligned rows of different lengths.
	ErrLengthMismatch = errors.New("align: aligned sequences differ in length")

	// ErrDoubleGap indicates a column pairing two gap markers.
	ErrDoubleGap = errors.New("align: column pairs two gap markers")
)
