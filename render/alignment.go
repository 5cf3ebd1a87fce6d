package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/seqalign/align"
)

// DefaultWidth is the number of alignment columns per block.
const DefaultWidth = 60

// Midline symbols between the two aligned rows.
const (
	midMatch    = '|'
	midMismatch = '.'
	midGap      = ' '
)

// Alignment writes r as wrapped blocks of three lines: seq1, a match line
// ('|' match, '.' mismatch, blank for gaps) and seq2, each sequence line
// framed by the 1-based positions of its first and last symbol.
// width <= 0 selects DefaultWidth.
func Alignment(w io.Writer, r *align.Result, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	a1, a2 := []rune(r.Aligned1), []rune(r.Aligned2)
	if len(a1) != len(a2) {
		return align.ErrLengthMismatch
	}

	pos1, pos2 := 0, 0
	for start := 0; start < len(a1); start += width {
		end := min(start+width, len(a1))
		c1, c2 := a1[start:end], a2[start:end]

		if start > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		line1, next1 := seqLine("seq1", c1, pos1)
		line2, next2 := seqLine("seq2", c2, pos2)
		pos1, pos2 = next1, next2
		mid := strings.TrimRight(strings.Repeat(" ", 10)+midline(c1, c2), " ")
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n", line1, mid, line2); err != nil {
			return err
		}
	}

	return nil
}

// seqLine formats one block line and returns the symbol count after it.
func seqLine(label string, chunk []rune, pos int) (string, int) {
	first := pos + 1
	for _, r := range chunk {
		if r != align.GapMarker {
			pos++
		}
	}
	if pos < first {
		first = pos
	}

	return fmt.Sprintf("%-4s %4d %s %d", label, first, string(chunk), pos), pos
}

// midline marks each column as match, mismatch or gap.
func midline(c1, c2 []rune) string {
	out := make([]rune, len(c1))
	for k := range c1 {
		switch {
		case c1[k] == align.GapMarker || c2[k] == align.GapMarker:
			out[k] = midGap
		case c1[k] == c2[k]:
			out[k] = midMatch
		default:
			out[k] = midMismatch
		}
	}

	return string(out)
}

// Metrics writes the summary block: score, input lengths, alignment length,
// identity and gap count.
func Metrics(w io.Writer, r *align.Result, len1, len2 int) error {
	st := r.Stats()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Alignment score:\t%d\n", r.Score)
	fmt.Fprintf(tw, "Seq 1 length:\t%s\n", humanize.Comma(int64(len1)))
	fmt.Fprintf(tw, "Seq 2 length:\t%s\n", humanize.Comma(int64(len2)))
	fmt.Fprintf(tw, "Aligned length:\t%s\n", humanize.Comma(int64(st.Length)))
	fmt.Fprintf(tw, "Identity:\t%d/%d (%.1f%%)\n", st.Matches, st.Length, 100*st.Identity)
	fmt.Fprintf(tw, "Gaps:\t%d\n", st.Gaps)
	fmt.Fprintf(tw, "Scoring:\tmatch=%d mismatch=%d gap=%d (%s)\n",
		r.Scoring.Match, r.Scoring.Mismatch, r.Scoring.Gap, r.Mode)

	return tw.Flush()
}
