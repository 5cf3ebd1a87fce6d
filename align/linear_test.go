package align_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinearSpace_MatchesFullMatrixScore compares both modes on random input.
func TestLinearSpace_MatchesFullMatrixScore(t *testing.T) {
	rng := rand.New(rand.NewSource(31337))
	for _, tc := range scorings {
		t.Run(tc.name, func(t *testing.T) {
			for k := 0; k < 60; k++ {
				a, b := randomPair(t, rng, "ACGT", 25)
				full, err := align.Align(a, b, align.WithScoring(tc.sc))
				require.NoError(t, err)
				lin, err := align.Align(a, b, align.WithScoring(tc.sc), align.WithMode(align.LinearSpace))
				require.NoError(t, err)

				require.Equal(t, full.Score, lin.Score, "%q vs %q", a, b)
				require.Equal(t, align.LinearSpace, lin.Mode)
				require.Nil(t, lin.Matrix)
				require.Equal(t, len(lin.Aligned1), len(lin.Aligned2))
				require.Equal(t, a, strings.ReplaceAll(lin.Aligned1, "-", ""))
				require.Equal(t, b, strings.ReplaceAll(lin.Aligned2, "-", ""))

				got, err := align.Rescore(lin.Aligned1, lin.Aligned2, tc.sc)
				require.NoError(t, err)
				require.Equal(t, lin.Score, got)

				require.Len(t, lin.Path, len(lin.Aligned1)+1)
				require.Equal(t, align.Cell{Row: len(b), Col: len(a)}, lin.Path[len(lin.Path)-1])
			}
		})
	}
}

// TestLinearSpace_Gattaca checks the classic example end to end.
func TestLinearSpace_Gattaca(t *testing.T) {
	res, err := align.Align("GATTACA", "GCATGC", align.WithMode(align.LinearSpace))
	require.NoError(t, err)
	assert.Equal(t, -2, res.Score)
	assert.Equal(t, "GATTACA", res.Aligned1)
	assert.Equal(t, "GCATGC-", res.Aligned2)
}

// TestLinearSpace_Lopsided covers single-symbol splits and long gaps.
func TestLinearSpace_Lopsided(t *testing.T) {
	res, err := align.Align(strings.Repeat("AC", 40), "C", align.WithMode(align.LinearSpace))
	require.NoError(t, err)
	assert.Equal(t, 1+79*align.DefaultGap, res.Score)

	res, err = align.Align("G", strings.Repeat("TG", 30), align.WithMode(align.LinearSpace))
	require.NoError(t, err)
	assert.Equal(t, 1+59*align.DefaultGap, res.Score)
}

// TestMode_String covers the mode names.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "full-matrix", align.FullMatrix.String())
	assert.Equal(t, "linear-space", align.LinearSpace.String())
	assert.Equal(t, "unknown", align.Mode(9).String())
	assert.Equal(t, "up", align.Up.String())
}

// TestLinearSpace_SplitEdges covers splits that leave one half of seq1
// empty and symbols outside the DNA alphabet.
func TestLinearSpace_SplitEdges(t *testing.T) {
	cases := []struct {
		name, s1, s2 string
	}{
		{"PrefixOnly", "ACGT", "ACGTTTTTTT"},
		{"SuffixOnly", "ACGT", "TTTTTTACGT"},
		{"OddRows", "GATTACA", "GCATGCA"},
		{"Unicode", "ΑΒΓΔΕ", "ΒΓΖΔ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			full, err := align.Align(tc.s1, tc.s2)
			require.NoError(t, err)
			lin, err := align.Align(tc.s1, tc.s2, align.WithMode(align.LinearSpace))
			require.NoError(t, err)
			assert.Equal(t, full.Score, lin.Score)
			assert.Equal(t, []rune(tc.s1), []rune(strings.ReplaceAll(lin.Aligned1, "-", "")))
			assert.Equal(t, []rune(tc.s2), []rune(strings.ReplaceAll(lin.Aligned2, "-", "")))

			got, err := align.Rescore(lin.Aligned1, lin.Aligned2, align.DefaultScoring())
			require.NoError(t, err)
			assert.Equal(t, lin.Score, got)
		})
	}
}
