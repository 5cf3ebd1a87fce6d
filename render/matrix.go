package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/dotplot"
	"github.com/katalvlaran/seqalign/sequence"
)

// pathMark suffixes score-matrix cells on the traceback path.
const pathMark = "*"

// ScoreMatrix writes m as a table whose headers name each prefix symbol and
// its index ("- (0)", "G (1)", ...): seq1 across, seq2 down. Cells listed in
// path are suffixed with '*'.
func ScoreMatrix(w io.Writer, m *align.ScoreMatrix, seq1, seq2 sequence.Sequence, path []align.Cell) error {
	if m.Rows() != seq2.Len()+1 || m.Cols() != seq1.Len()+1 {
		return fmt.Errorf("render: %dx%d matrix for sequences of length %d and %d: %w",
			m.Rows(), m.Cols(), seq1.Len(), seq2.Len(), align.ErrCorruptMatrix)
	}
	onPath := make(map[align.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := make([]string, 0, m.Cols()+1)
	header = append(header, "")
	for j := 0; j < m.Cols(); j++ {
		header = append(header, prefixLabel(seq1, j))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	rows := m.ToRows()
	for i, row := range rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, prefixLabel(seq2, i))
		for j, v := range row {
			cell := fmt.Sprintf("%d", v)
			if onPath[align.Cell{Row: i, Col: j}] {
				cell += pathMark
			}
			cells = append(cells, cell)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}

	return tw.Flush()
}

// prefixLabel names prefix k of s: "- (0)" for the empty prefix, else the
// k-th symbol and k.
func prefixLabel(s sequence.Sequence, k int) string {
	sym := string(align.GapMarker)
	if k > 0 {
		sym = string(s.At(k - 1))
	}

	return fmt.Sprintf("%s (%d)", sym, k)
}

// dotMiss fills dot-plot cells without a hit.
const dotMiss = '.'

// DotPlot writes p as a character grid: seq1 across the top, seq2 down the
// left, and each hit drawn with the shared symbol so per-base structure
// stays visible.
func DotPlot(w io.Writer, p *dotplot.Plot) error {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(p.Seq1().String())
	sb.WriteByte('\n')

	rows := p.ToRows()
	for i, row := range rows {
		sb.WriteRune(p.Seq2().At(i))
		sb.WriteByte(' ')
		for j, hit := range row {
			if hit {
				sb.WriteRune(p.Seq1().At(j))
			} else {
				sb.WriteRune(dotMiss)
			}
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
