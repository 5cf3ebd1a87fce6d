// Package guard bounds the input length of the quadratic alignment and
// dot-plot computations before they run.
//
// Two thresholds apply:
//
//   - MaxCompute — above it an alignment is refused outright, since the
//     score matrix costs O(N·M) time and memory;
//   - MaxVisual  — above it the alignment still runs, but the matrix table
//     and dot plot are not rendered.
//
// Limits load from the environment (SEQALIGN_MAX_COMPUTE, SEQALIGN_MAX_VISUAL).
package guard

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/seqalign/align"
)

// Defaults for Limits.
const (
	DefaultMaxCompute = 1500
	DefaultMaxVisual  = 300
)

// ErrBadLimits indicates non-positive limits or MaxVisual above MaxCompute.
var ErrBadLimits = errors.New("guard: invalid limits")

// Limits holds the size thresholds, in symbols per sequence.
type Limits struct {
	MaxCompute int `env:"SEQALIGN_MAX_COMPUTE" envDefault:"1500"`
	MaxVisual  int `env:"SEQALIGN_MAX_VISUAL" envDefault:"300"`
}

// Default returns the built-in limits.
func Default() Limits {
	return Limits{MaxCompute: DefaultMaxCompute, MaxVisual: DefaultMaxVisual}
}

// Load reads Limits from the environment over the defaults and validates them.
func Load() (Limits, error) {
	var l Limits
	if err := env.Parse(&l); err != nil {
		return Limits{}, fmt.Errorf("parse env: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Limits{}, err
	}

	return l, nil
}

// Validate checks 0 < MaxVisual <= MaxCompute.
func (l Limits) Validate() error {
	if l.MaxCompute <= 0 || l.MaxVisual <= 0 {
		return fmt.Errorf("%w: limits must be positive (compute=%d, visual=%d)", ErrBadLimits, l.MaxCompute, l.MaxVisual)
	}
	if l.MaxVisual > l.MaxCompute {
		return fmt.Errorf("%w: visual limit %d exceeds compute limit %d", ErrBadLimits, l.MaxVisual, l.MaxCompute)
	}

	return nil
}

// CheckCompute refuses lengths above MaxCompute with a wrapped
// align.ErrSizeLimitExceeded.
func (l Limits) CheckCompute(n, m int) error {
	if n > l.MaxCompute || m > l.MaxCompute {
		return fmt.Errorf("input too large: %s and %s symbols, max %s per sequence (%s matrix cells): %w",
			humanize.Comma(int64(n)), humanize.Comma(int64(m)), humanize.Comma(int64(l.MaxCompute)),
			humanize.Comma(int64(n+1)*int64(m+1)), align.ErrSizeLimitExceeded)
	}

	return nil
}

// Visual reports whether both lengths are small enough to render the
// matrix table and dot plot.
func (l Limits) Visual(n, m int) bool {
	return n <= l.MaxVisual && m <= l.MaxVisual
}

// AlignOption returns the matching in-core limit, so the aligner
// re-validates what the guard already checked.
func (l Limits) AlignOption() align.Option {
	return align.WithMaxLength(l.MaxCompute)
}
