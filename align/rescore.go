package align

import "fmt"

// Rescore sums the column scores of two aligned rows under sc: Match or
// Mismatch for paired symbols, Gap for any column holding a gap marker.
// For a Result r, Rescore(r.Aligned1, r.Aligned2, r.Scoring) == r.Score.
//
// Returns ErrLengthMismatch for rows of different length and ErrDoubleGap
// for a column pairing two gap markers.
// Complexity: O(columns).
func Rescore(aligned1, aligned2 string, sc Scoring) (int, error) {
	a1, a2 := []rune(aligned1), []rune(aligned2)
	if len(a1) != len(a2) {
		return 0, fmt.Errorf("rescore: %d vs %d columns: %w", len(a1), len(a2), ErrLengthMismatch)
	}
	total := 0
	for k := range a1 {
		switch {
		case a1[k] == GapMarker && a2[k] == GapMarker:
			return 0, fmt.Errorf("rescore: column %d: %w", k, ErrDoubleGap)
		case a1[k] == GapMarker || a2[k] == GapMarker:
			total += sc.Gap
		default:
			total += sc.Score(a1[k], a2[k])
		}
	}

	return total, nil
}

// Stats counts matches, mismatches and gap columns of the result.
func (r *Result) Stats() Stats {
	a1, a2 := []rune(r.Aligned1), []rune(r.Aligned2)
	st := Stats{Length: len(a1)}
	for k := range a1 {
		switch {
		case a1[k] == GapMarker || a2[k] == GapMarker:
			st.Gaps++
		case a1[k] == a2[k]:
			st.Matches++
		default:
			st.Mismatches++
		}
	}
	if st.Length > 0 {
		st.Identity = float64(st.Matches) / float64(st.Length)
	}

	return st
}
