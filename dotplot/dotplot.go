package dotplot

import (
	"github.com/katalvlaran/seqalign/matrix"
	"github.com/katalvlaran/seqalign/sequence"
)

// Plot is an immutable m×n hit grid: m = |seq2| rows, n = |seq1| columns.
type Plot struct {
	seq1, seq2 sequence.Sequence
	grid       *matrix.Dense[bool]
}

// Build normalizes both inputs (trim, upper-case) and builds their plot.
// Empty inputs are legal and give a plot with zero rows or columns.
// Complexity: O(N·M) time and memory.
func Build(seq1, seq2 string) *Plot {
	return BuildSequences(sequence.New(seq1), sequence.New(seq2))
}

// BuildSequences builds the plot of two already-normalized sequences.
// Complexity: O(N·M) time and memory.
func BuildSequences(seq1, seq2 sequence.Sequence) *Plot {
	m, n := seq2.Len(), seq1.Len()
	grid, _ := matrix.NewDense[bool](m, n) // non-negative dims, cannot fail
	for i := 0; i < m; i++ {
		b := seq2.At(i)
		for j := 0; j < n; j++ {
			if seq1.At(j) == b {
				grid.MustSet(i, j, true)
			}
		}
	}

	return &Plot{seq1: seq1, seq2: seq2, grid: grid}
}

// Rows returns |seq2|.
func (p *Plot) Rows() int { return p.grid.Rows() }

// Cols returns |seq1|.
func (p *Plot) Cols() int { return p.grid.Cols() }

// At reports whether seq2[i] == seq1[j], or a wrapped matrix.ErrOutOfRange.
func (p *Plot) At(i, j int) (bool, error) { return p.grid.At(i, j) }

// Seq1 returns the column sequence.
func (p *Plot) Seq1() sequence.Sequence { return p.seq1 }

// Seq2 returns the row sequence.
func (p *Plot) Seq2() sequence.Sequence { return p.seq2 }

// ToRows returns a copy of the grid.
func (p *Plot) ToRows() [][]bool { return p.grid.ToRows() }

// Matches returns the number of hits.
// Complexity: O(N·M).
func (p *Plot) Matches() int {
	count := 0
	p.each(func(i, j int) { count++ })

	return count
}

// Points lists every hit in row-major order with its shared symbol.
// Complexity: O(N·M).
func (p *Plot) Points() []Point {
	var pts []Point
	p.each(func(i, j int) {
		pts = append(pts, Point{Row: i, Col: j, Symbol: p.seq1.At(j)})
	})

	return pts
}

// each calls fn for every hit in row-major order.
func (p *Plot) each(fn func(i, j int)) {
	for i := 0; i < p.grid.Rows(); i++ {
		for j := 0; j < p.grid.Cols(); j++ {
			if p.grid.MustAt(i, j) {
				fn(i, j)
			}
		}
	}
}
