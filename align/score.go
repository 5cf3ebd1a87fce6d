package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/sequence"
)

// ScoreMatrix is the read-only Needleman–Wunsch dynamic-programming matrix.
// It has m+1 rows (seq2 prefixes) and n+1 columns (seq1 prefixes); cell
// (i, j) holds the optimal score of aligning seq2[:i] with seq1[:j].
type ScoreMatrix struct {
	grid *matrix.Dense[int]
}

// BuildScoreMatrix fills the score matrix of seq1 (columns) against seq2 (rows).
//
// Algorithm Outline:
//  1. Let n = seq1.Len(), m = seq2.Len(). Allocate (m+1)x(n+1) grid M.
//  2. Initialize boundaries:
//     M[i][0] = i·Gap for i=0..m
//     M[0][j] = j·Gap for j=0..n
//  3. For i = 1..m, j = 1..n (row-major):
//     diag = M[i-1][j-1] + Score(seq1[j-1], seq2[i-1])
//     up   = M[i-1][j]   + Gap
//     left = M[i][j-1]   + Gap
//     M[i][j] = max(diag, up, left)
//
// Both sequences must already be normalized to a common case. No length
// limit is enforced here; n = 0 or m = 0 yields a pure-gap boundary.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func BuildScoreMatrix(seq1, seq2 sequence.Sequence, sc Scoring) *ScoreMatrix {
	n, m := seq1.Len(), seq2.Len()
	grid, _ := matrix.NewDense[int](m+1, n+1) // both dims >= 1, cannot fail

	for i := 0; i <= m; i++ {
		grid.MustSet(i, 0, i*sc.Gap)
	}
	for j := 1; j <= n; j++ {
		grid.MustSet(0, j, j*sc.Gap)
	}

	for i := 1; i <= m; i++ {
		b := seq2.At(i - 1)
		for j := 1; j <= n; j++ {
			diag := grid.MustAt(i-1, j-1) + sc.Score(seq1.At(j-1), b)
			up := grid.MustAt(i-1, j) + sc.Gap
			left := grid.MustAt(i, j-1) + sc.Gap
			grid.MustSet(i, j, max3(diag, up, left))
		}
	}

	return &ScoreMatrix{grid: grid}
}

// ScoreMatrixFromRows wraps an externally supplied grid, e.g. one loaded for
// display. Traceback validates it cell by cell; nothing is checked here
// beyond shape. Returns matrix.ErrBadShape for an empty grid and
// matrix.ErrNonRectangular for ragged rows.
func ScoreMatrixFromRows(rows [][]int) (*ScoreMatrix, error) {
	grid, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("score matrix: %w", err)
	}
	if grid.Rows() == 0 || grid.Cols() == 0 {
		return nil, fmt.Errorf("score matrix: %dx%d: %w", grid.Rows(), grid.Cols(), matrix.ErrBadShape)
	}

	return &ScoreMatrix{grid: grid}, nil
}

// Rows returns m+1.
func (s *ScoreMatrix) Rows() int { return s.grid.Rows() }

// Cols returns n+1.
func (s *ScoreMatrix) Cols() int { return s.grid.Cols() }

// At returns cell (i, j) or a wrapped matrix.ErrOutOfRange.
func (s *ScoreMatrix) At(i, j int) (int, error) { return s.grid.At(i, j) }

// Score returns the bottom-right cell, the optimal global score.
func (s *ScoreMatrix) Score() int {
	return s.grid.MustAt(s.grid.Rows()-1, s.grid.Cols()-1)
}

// ToRows returns a copy of the matrix as [][]int.
func (s *ScoreMatrix) ToRows() [][]int { return s.grid.ToRows() }

// String implements fmt.Stringer.
func (s *ScoreMatrix) String() string { return s.grid.String() }
