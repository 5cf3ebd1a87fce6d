package align

import "github.com/katalvlaran/seqalign/sequence"

// linearSpace aligns a (columns) against b (rows) with Hirschberg's
// divide & conquer, keeping only O(a.Len()) score rows alive.
//
// Algorithm Outline:
//  1. If either side is empty, the other is aligned against gaps.
//  2. If either side has one symbol, solve directly with the full matrix
//     (its size is O(n+m)).
//  3. Otherwise split b at mid = b.Len()/2, score b[:mid] forward and
//     b[mid:] backward against every prefix/suffix of a, and cut a at the
//     smallest k maximizing fwd[k] + bwd[a.Len()-k]. Recurse on both halves.
//
// Complexity: O(n·m) time, O(n+m) memory.
func linearSpace(a, b sequence.Sequence, sc Scoring) (out1, out2 []rune) {
	out1 = make([]rune, 0, a.Len()+b.Len())
	out2 = make([]rune, 0, a.Len()+b.Len())
	hirschberg(a, b, sc, &out1, &out2)

	return out1, out2
}

func hirschberg(a, b sequence.Sequence, sc Scoring, out1, out2 *[]rune) {
	switch {
	case b.IsEmpty():
		for i := 0; i < a.Len(); i++ {
			*out1 = append(*out1, a.At(i))
			*out2 = append(*out2, GapMarker)
		}
	case a.IsEmpty():
		for i := 0; i < b.Len(); i++ {
			*out1 = append(*out1, GapMarker)
			*out2 = append(*out2, b.At(i))
		}
	case a.Len() == 1 || b.Len() == 1:
		aln, err := Traceback(BuildScoreMatrix(a, b, sc), a, b, sc)
		if err != nil {
			// a freshly built matrix always traces back
			panic(err)
		}
		*out1 = append(*out1, []rune(aln.Aligned1)...)
		*out2 = append(*out2, []rune(aln.Aligned2)...)
	default:
		n, mid := a.Len(), b.Len()/2
		fwd := lastRow(a, b.Slice(0, mid), sc)
		bwd := lastRow(a.Reverse(), b.Slice(mid, b.Len()).Reverse(), sc)

		split, best := 0, fwd[0]+bwd[n]
		for k := 1; k <= n; k++ {
			if v := fwd[k] + bwd[n-k]; v > best {
				split, best = k, v
			}
		}
		hirschberg(a.Slice(0, split), b.Slice(0, mid), sc, out1, out2)
		hirschberg(a.Slice(split, n), b.Slice(mid, b.Len()), sc, out1, out2)
	}
}

// lastRow returns the final row of the score matrix of a (columns) against
// b (rows) using two rolling rows: out[j] is the optimal score of aligning
// all of b with a[:j].
// Complexity: O(a.Len()·b.Len()) time, O(a.Len()) memory.
func lastRow(a, b sequence.Sequence, sc Scoring) []int {
	n := a.Len()
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := range prev {
		prev[j] = j * sc.Gap
	}
	for i := 1; i <= b.Len(); i++ {
		cur[0] = i * sc.Gap
		sym := b.At(i - 1)
		for j := 1; j <= n; j++ {
			cur[j] = max3(
				prev[j-1]+sc.Score(a.At(j-1), sym),
				prev[j]+sc.Gap,
				cur[j-1]+sc.Gap,
			)
		}
		prev, cur = cur, prev
	}

	return prev
}
