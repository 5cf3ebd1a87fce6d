package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/sequence"
)

// Align computes an optimal global alignment of seq1 against seq2.
//
// Stages:
//  1. Normalize both inputs (trim, upper-case) via sequence.New.
//  2. Validate: KeepMatrix needs FullMatrix (ErrMatrixNeedsFullMode), both
//     sequences non-empty (ErrEmptyInput), within WithMaxLength
//     (ErrSizeLimitExceeded), free of the gap marker (ErrReservedSymbol).
//  3. FullMatrix: BuildScoreMatrix then Traceback with the same Scoring.
//     LinearSpace: Hirschberg divide & conquer.
//  4. Package score, aligned rows and path into a Result.
//
// Align holds no state between calls and is safe for concurrent use; every
// call owns its matrix exclusively.
//
// Example:
//
//	res, err := Align("GATTACA", "GCATGC")
//	// res.Score == -2, res.Aligned1 == "GATTACA", res.Aligned2 == "GCATGC-"
func Align(seq1, seq2 string, opts ...Option) (*Result, error) {
	return AlignSequences(sequence.New(seq1), sequence.New(seq2), opts...)
}

// AlignSequences is Align for already-constructed sequences.
func AlignSequences(s1, s2 sequence.Sequence, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validate(s1, s2, o); err != nil {
		return nil, err
	}

	res := &Result{Scoring: o.scoring, Mode: o.mode}
	switch o.mode {
	case LinearSpace:
		a1, a2 := linearSpace(s1, s2, o.scoring)
		res.Aligned1, res.Aligned2 = string(a1), string(a2)
		res.Score = lastRow(s1, s2, o.scoring)[s1.Len()]
		res.Path = pathOf(a1, a2)
	default:
		m := BuildScoreMatrix(s1, s2, o.scoring)
		aln, err := Traceback(m, s1, s2, o.scoring)
		if err != nil {
			return nil, err
		}
		res.Score = m.Score()
		res.Aligned1, res.Aligned2, res.Path = aln.Aligned1, aln.Aligned2, aln.Path
		if o.keepMatrix {
			res.Matrix = m
		}
	}

	return res, nil
}

// validate applies the engine preconditions in documented order.
func validate(s1, s2 sequence.Sequence, o Options) error {
	if o.keepMatrix && o.mode != FullMatrix {
		return ErrMatrixNeedsFullMode
	}
	if s1.IsEmpty() || s2.IsEmpty() {
		return ErrEmptyInput
	}
	if o.maxLength > 0 {
		for k, s := range [2]sequence.Sequence{s1, s2} {
			if s.Len() > o.maxLength {
				return fmt.Errorf("sequence %d has %d symbols, limit %d: %w", k+1, s.Len(), o.maxLength, ErrSizeLimitExceeded)
			}
		}
	}
	for k, s := range [2]sequence.Sequence{s1, s2} {
		if s.Contains(GapMarker) {
			return fmt.Errorf("sequence %d: %w %q", k+1, ErrReservedSymbol, GapMarker)
		}
	}

	return nil
}

// pathOf rebuilds the matrix path (0,0)→(m,n) from two aligned rows.
func pathOf(a1, a2 []rune) []Cell {
	path := make([]Cell, 0, len(a1)+1)
	c := Cell{}
	path = append(path, c)
	for k := range a1 {
		if a1[k] != GapMarker {
			c.Col++
		}
		if a2[k] != GapMarker {
			c.Row++
		}
		path = append(path, c)
	}

	return path
}
