package align

import (
	"fmt"

	"github.com/katalvlaran/seqalign/sequence"
)

// tracebackOrder is the fixed priority in which predecessor moves are tried.
// Several moves may reproduce a cell's score; the first that does wins.
// Changing this order changes which co-optimal alignment is returned (the
// score never changes), so it is part of the package contract.
var tracebackOrder = [3]Move{Diagonal, Up, Left}

// TracebackOrder returns the predecessor priority used by Traceback:
// Diagonal, then Up, then Left.
func TracebackOrder() []Move {
	out := tracebackOrder
	return out[:]
}

// Traceback walks a completed score matrix from (m, n) back to (0, 0) and
// returns one optimal alignment.
//
// At each cell (i, j) the first move of TracebackOrder whose condition holds
// is taken:
//  1. Diagonal — i>0, j>0 and M[i][j] == M[i-1][j-1] + Score(seq1[j-1], seq2[i-1]);
//     emits (seq1[j-1], seq2[i-1]).
//  2. Up       — i>0 and M[i][j] == M[i-1][j] + Gap; emits ('-', seq2[i-1]).
//  3. Left     — j>0 and M[i][j] == M[i][j-1] + Gap; emits (seq1[j-1], '-').
//
// sc must be the Scoring the matrix was built with. If no move holds at some
// cell, or the matrix shape does not fit the sequences, Traceback returns
// ErrCorruptMatrix instead of guessing a move.
//
// Complexity: O(n+m) steps.
func Traceback(m *ScoreMatrix, seq1, seq2 sequence.Sequence, sc Scoring) (*Alignment, error) {
	n, rows := seq1.Len(), seq2.Len()
	if m == nil {
		return nil, fmt.Errorf("traceback: nil matrix: %w", ErrCorruptMatrix)
	}
	if m.Rows() != rows+1 || m.Cols() != n+1 {
		return nil, fmt.Errorf("traceback: %dx%d matrix for sequences of length %d and %d: %w",
			m.Rows(), m.Cols(), n, rows, ErrCorruptMatrix)
	}
	if origin := m.grid.MustAt(0, 0); origin != 0 {
		return nil, fmt.Errorf("traceback: origin cell is %d, want 0: %w", origin, ErrCorruptMatrix)
	}

	a1 := make([]rune, 0, n+rows)
	a2 := make([]rune, 0, n+rows)
	path := make([]Cell, 0, n+rows+1)

	i, j := rows, n
	path = append(path, Cell{Row: i, Col: j})
	for i > 0 || j > 0 {
		mv, ok := predecessor(m, seq1, seq2, sc, i, j)
		if !ok {
			return nil, fmt.Errorf("traceback: no predecessor reproduces cell (%d,%d)=%d: %w",
				i, j, m.grid.MustAt(i, j), ErrCorruptMatrix)
		}
		switch mv {
		case Diagonal:
			a1 = append(a1, seq1.At(j-1))
			a2 = append(a2, seq2.At(i-1))
			i--
			j--
		case Up:
			a1 = append(a1, GapMarker)
			a2 = append(a2, seq2.At(i-1))
			i--
		case Left:
			a1 = append(a1, seq1.At(j-1))
			a2 = append(a2, GapMarker)
			j--
		}
		path = append(path, Cell{Row: i, Col: j})
	}

	reverseRunes(a1)
	reverseRunes(a2)
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return &Alignment{Aligned1: string(a1), Aligned2: string(a2), Path: path}, nil
}

// predecessor returns the first move in tracebackOrder that reproduces M[i][j].
func predecessor(m *ScoreMatrix, seq1, seq2 sequence.Sequence, sc Scoring, i, j int) (Move, bool) {
	cur := m.grid.MustAt(i, j)
	for _, mv := range tracebackOrder {
		switch mv {
		case Diagonal:
			if i > 0 && j > 0 && cur == m.grid.MustAt(i-1, j-1)+sc.Score(seq1.At(j-1), seq2.At(i-1)) {
				return Diagonal, true
			}
		case Up:
			if i > 0 && cur == m.grid.MustAt(i-1, j)+sc.Gap {
				return Up, true
			}
		case Left:
			if j > 0 && cur == m.grid.MustAt(i, j-1)+sc.Gap {
				return Left, true
			}
		}
	}

	return 0, false
}
