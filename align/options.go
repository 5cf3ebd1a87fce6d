// SPDX-License-Identifier: MIT

// Package align: functional configuration for Align.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions helper (internal).
package align

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMatch is the score of a column with equal symbols.
	DefaultMatch = 1

	// DefaultMismatch is the score of a column with different symbols.
	DefaultMismatch = -1

	// DefaultGap is the score of a column holding a gap marker.
	DefaultGap = -2

	// DefaultMaxLength disables the in-core length check (0 ⇒ unlimited).
	// Callers are still expected to bound inputs before aligning.
	DefaultMaxLength = 0

	// DefaultMode materializes the full score matrix.
	DefaultMode = FullMatrix

	// DefaultKeepMatrix discards the score matrix after traceback.
	DefaultKeepMatrix = false
)

const (
	panicMaxLengthInvalid = "align: WithMaxLength: n must be >= 0"
	panicModeInvalid      = "align: WithMode: unknown mode %d"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	scoring    Scoring
	maxLength  int
	mode       Mode
	keepMatrix bool
}

// WithScoring sets the scoring scheme.
func WithScoring(sc Scoring) Option {
	return func(o *Options) { o.scoring = sc }
}

// WithMaxLength makes Align reject sequences longer than n symbols with
// ErrSizeLimitExceeded. n == 0 disables the check; n < 0 panics.
func WithMaxLength(n int) Option {
	if n < 0 {
		panic(panicMaxLengthInvalid)
	}

	return func(o *Options) { o.maxLength = n }
}

// WithMode selects FullMatrix or LinearSpace storage. Unknown modes panic.
func WithMode(m Mode) Option {
	if m != FullMatrix && m != LinearSpace {
		panic(fmt.Sprintf(panicModeInvalid, m))
	}

	return func(o *Options) { o.mode = m }
}

// WithKeepMatrix retains the score matrix in Result.Matrix for display.
// Requires FullMatrix mode.
func WithKeepMatrix() Option {
	return func(o *Options) { o.keepMatrix = true }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		scoring:    DefaultScoring(),
		maxLength:  DefaultMaxLength,
		mode:       DefaultMode,
		keepMatrix: DefaultKeepMatrix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
