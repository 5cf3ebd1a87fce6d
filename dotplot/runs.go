package dotplot

// Runs returns every maximal straight run of at least minLen hits.
// minLen values below 1 are treated as 1.
//
// Ordering (deterministic):
//  1. Forward runs, by diagonal j−i from −(m−1) to n−1, then by row.
//  2. Reverse runs, by anti-diagonal i+j from 0 to m+n−2, then by row.
//
// Complexity: O(N·M) time, O(runs) memory.
func (p *Plot) Runs(minLen int) []Run {
	if minLen < 1 {
		minLen = 1
	}
	m, n := p.grid.Rows(), p.grid.Cols()
	var runs []Run

	// Forward diagonals: start cells along the left column, then the top row.
	for d := -(m - 1); d <= n-1; d++ {
		i, j := 0, d
		if d < 0 {
			i, j = -d, 0
		}
		runs = p.scan(runs, i, j, 1, minLen, Forward)
	}

	// Reverse anti-diagonals: walk down-left from the top/right edge.
	for s := 0; s <= m+n-2; s++ {
		i, j := 0, s
		if s > n-1 {
			i, j = s-(n-1), n-1
		}
		runs = p.scan(runs, i, j, -1, minLen, Reverse)
	}

	return runs
}

// scan walks one line from (i, j), stepping (+1, dj), and appends runs of
// consecutive hits with length >= minLen.
func (p *Plot) scan(runs []Run, i, j, dj, minLen int, dir Direction) []Run {
	m, n := p.grid.Rows(), p.grid.Cols()
	length, si, sj := 0, 0, 0
	for ; i < m && j >= 0 && j < n; i, j = i+1, j+dj {
		if p.grid.MustAt(i, j) {
			if length == 0 {
				si, sj = i, j
			}
			length++
			continue
		}
		if length >= minLen {
			runs = append(runs, Run{Row: si, Col: sj, Length: length, Direction: dir})
		}
		length = 0
	}
	if length >= minLen {
		runs = append(runs, Run{Row: si, Col: sj, Length: length, Direction: dir})
	}

	return runs
}

// Longest returns the longest run of the given direction, preferring the
// first in Runs order on ties. ok is false when the plot has no hits.
func (p *Plot) Longest(dir Direction) (best Run, ok bool) {
	for _, r := range p.Runs(1) {
		if r.Direction == dir && r.Length > best.Length {
			best, ok = r, true
		}
	}

	return best, ok
}
