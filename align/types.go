package align

// GapMarker is the reserved symbol written opposite an unpaired symbol.
const GapMarker = '-'

// Scoring is the linear-gap scoring scheme.
//
//   - Match    — added when both symbols of a column are equal.
//   - Mismatch — added when they differ.
//   - Gap      — added for every column holding a gap marker.
//
// All values are signed integers; DefaultScoring() is {+1, −1, −2}.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring returns {Match: +1, Mismatch: −1, Gap: −2}.
func DefaultScoring() Scoring {
	return Scoring{Match: DefaultMatch, Mismatch: DefaultMismatch, Gap: DefaultGap}
}

// Score returns Match if a == b, Mismatch otherwise.
// Symbols outside any biological alphabet are ordinary symbols.
func (s Scoring) Score(a, b rune) int {
	if a == b {
		return s.Match
	}

	return s.Mismatch
}

// Mode selects how the aligner stores its dynamic-programming state.
//
//   - FullMatrix  — materialize the (m+1)×(n+1) matrix and trace back through it.
//     Memory: O(n·m). Required to retain the matrix for display.
//
//   - LinearSpace — Hirschberg divide & conquer over score rows.
//     Memory: O(n+m). Returns an optimal alignment with the same score,
//     though not necessarily the same co-optimal layout as FullMatrix.
type Mode int

const (
	// FullMatrix keeps the whole score matrix in memory.
	FullMatrix Mode = iota

	// LinearSpace keeps only O(n+m) score rows.
	LinearSpace
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case FullMatrix:
		return "full-matrix"
	case LinearSpace:
		return "linear-space"
	default:
		return "unknown"
	}
}

// Move is one traceback step.
type Move int

const (
	// Diagonal pairs seq1[j-1] with seq2[i-1].
	Diagonal Move = iota
	// Up pairs a gap with seq2[i-1].
	Up
	// Left pairs seq1[j-1] with a gap.
	Left
)

// String returns the move name.
func (mv Move) String() string {
	switch mv {
	case Diagonal:
		return "diagonal"
	case Up:
		return "up"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Cell addresses a score-matrix cell: Row indexes seq2 (0..m), Col indexes seq1 (0..n).
type Cell struct {
	Row, Col int
}

// Alignment is the output of Traceback.
type Alignment struct {
	Aligned1 string // seq1 with gap markers
	Aligned2 string // seq2 with gap markers
	Path     []Cell // visited cells from (0,0) to (m,n)
}

// Result is the output of Align.
type Result struct {
	Score    int          // optimal score, M[m][n]
	Aligned1 string       // seq1 with gap markers
	Aligned2 string       // seq2 with gap markers, same length as Aligned1
	Path     []Cell       // traceback path from (0,0) to (m,n)
	Matrix   *ScoreMatrix // nil unless WithKeepMatrix
	Scoring  Scoring      // scoring the result was computed with
	Mode     Mode         // storage mode used
}

// Stats summarizes the columns of an alignment.
type Stats struct {
	Length     int     // number of columns
	Matches    int     // columns with equal symbols
	Mismatches int     // columns with different symbols
	Gaps       int     // columns holding a gap marker
	Identity   float64 // Matches / Length, 0 for an empty alignment
}
