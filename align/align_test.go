package align_test

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/seqalign/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_Reference checks scores and layouts for fixed inputs.
func TestAlign_Reference(t *testing.T) {
	cases := []struct {
		name         string
		s1, s2       string
		sc           align.Scoring
		score        int
		want1, want2 string
	}{
		{"Gattaca", "GATTACA", "GCATGC", align.DefaultScoring(), -2, "GATTACA", "GCATGC-"},
		{"GattacaSwapped", "GCATGC", "GATTACA", align.DefaultScoring(), -2, "GCATGC-", "GATTACA"},
		{"GattacaLenient", "GATTACA", "GCATGC", align.Scoring{Match: 2, Mismatch: -1, Gap: -1}, 4, "G-ATTACA", "GCA-TGC-"},
		{"Identical", "ACGT", "ACGT", align.DefaultScoring(), 4, "ACGT", "ACGT"},
		{"LowerCase", "acgt", "AcGt", align.DefaultScoring(), 4, "ACGT", "ACGT"},
		{"Reversed", "ACGT", "TGCA", align.DefaultScoring(), -4, "ACGT", "TGCA"},
		{"SingleMismatch", "A", "T", align.DefaultScoring(), -1, "A", "T"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := align.Align(tc.s1, tc.s2, align.WithScoring(tc.sc))
			require.NoError(t, err)
			assert.Equal(t, tc.score, res.Score)
			assert.Equal(t, tc.want1, res.Aligned1)
			assert.Equal(t, tc.want2, res.Aligned2)
			assert.Equal(t, tc.sc, res.Scoring)
			assert.Equal(t, align.FullMatrix, res.Mode)
			assert.Nil(t, res.Matrix, "matrix is discarded unless WithKeepMatrix")
		})
	}
}

// TestAlign_GattacaMatrix verifies the retained matrix of the classic example.
func TestAlign_GattacaMatrix(t *testing.T) {
	res, err := align.Align("GATTACA", "GCATGC", align.WithKeepMatrix())
	require.NoError(t, err)
	require.NotNil(t, res.Matrix)
	assert.Equal(t, 7, res.Matrix.Rows())
	assert.Equal(t, 8, res.Matrix.Cols())
	v, err := res.Matrix.At(6, 7)
	require.NoError(t, err)
	assert.Equal(t, -2, v)
	assert.Equal(t, res.Score, res.Matrix.Score())
	assert.GreaterOrEqual(t, len(res.Aligned1), 7)
}

// TestAlign_Errors covers every engine precondition.
func TestAlign_Errors(t *testing.T) {
	cases := []struct {
		name   string
		s1, s2 string
		opts   []align.Option
		err    error
	}{
		{"EmptyFirst", "", "ACGT", nil, align.ErrEmptyInput},
		{"EmptySecond", "ACGT", "", nil, align.ErrEmptyInput},
		{"BlankFirst", "  \n", "ACGT", nil, align.ErrEmptyInput},
		{"TooLongFirst", "ACGTA", "ACG", []align.Option{align.WithMaxLength(4)}, align.ErrSizeLimitExceeded},
		{"TooLongSecond", "ACG", "ACGTA", []align.Option{align.WithMaxLength(4)}, align.ErrSizeLimitExceeded},
		{"GapMarker", "AC-GT", "ACGT", nil, align.ErrReservedSymbol},
		{"KeepMatrixLinear", "ACGT", "ACGT", []align.Option{align.WithKeepMatrix(), align.WithMode(align.LinearSpace)}, align.ErrMatrixNeedsFullMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := align.Align(tc.s1, tc.s2, tc.opts...)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, res, "no partial result on failure")
		})
	}
}

// TestAlign_MaxLengthBoundary accepts sequences exactly at the limit.
func TestAlign_MaxLengthBoundary(t *testing.T) {
	_, err := align.Align("ACGT", "ACGT", align.WithMaxLength(4))
	require.NoError(t, err)

	_, err = align.Align(strings.Repeat("A", 50), "A", align.WithMaxLength(0))
	require.NoError(t, err, "0 disables the limit")
}

// TestAlign_OptionPanics verifies nonsensical option values panic.
func TestAlign_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { align.WithMaxLength(-1) })
	assert.Panics(t, func() { align.WithMode(align.Mode(42)) })
}

// TestAlign_Properties checks the laws every result must satisfy:
// equal row lengths, rescoring round-trip, symbols preserved, score symmetry.
func TestAlign_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for _, tc := range scorings {
		t.Run(tc.name, func(t *testing.T) {
			for k := 0; k < 50; k++ {
				a, b := randomPair(t, rng, "ACGT", 20)

				res, err := align.Align(a, b, align.WithScoring(tc.sc), align.WithKeepMatrix())
				require.NoError(t, err)
				require.Equal(t, len(res.Aligned1), len(res.Aligned2))
				require.Equal(t, a, strings.ReplaceAll(res.Aligned1, "-", ""))
				require.Equal(t, b, strings.ReplaceAll(res.Aligned2, "-", ""))
				require.Equal(t, res.Matrix.Score(), res.Score)

				got, err := align.Rescore(res.Aligned1, res.Aligned2, tc.sc)
				require.NoError(t, err)
				require.Equal(t, res.Score, got, "rescoring %q/%q", res.Aligned1, res.Aligned2)

				swapped, err := align.Align(b, a, align.WithScoring(tc.sc))
				require.NoError(t, err)
				require.Equal(t, res.Score, swapped.Score, "score symmetry for %q/%q", a, b)

				require.Len(t, res.Path, len(res.Aligned1)+1)
				require.Equal(t, align.Cell{}, res.Path[0])
				require.Equal(t, align.Cell{Row: len(b), Col: len(a)}, res.Path[len(res.Path)-1])
			}
		})
	}
}

// TestAlign_Deterministic repeats one alignment and expects identical output.
func TestAlign_Deterministic(t *testing.T) {
	first, err := align.Align("TTGACCA", "TGACTCA")
	require.NoError(t, err)
	for k := 0; k < 10; k++ {
		again, err := align.Align("TTGACCA", "TGACTCA")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestAlign_Concurrent runs independent alignments in parallel; each call
// owns its matrix, so results must match the sequential ones.
func TestAlign_Concurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	type pair struct{ a, b string }
	pairs := make([]pair, 32)
	want := make([]*align.Result, len(pairs))
	for k := range pairs {
		a, b := randomPair(t, rng, "ACGTN", 30)
		pairs[k] = pair{a, b}
		res, err := align.Align(a, b)
		require.NoError(t, err)
		want[k] = res
	}

	got := make([]*align.Result, len(pairs))
	var wg sync.WaitGroup
	for k := range pairs {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			got[k], _ = align.Align(pairs[k].a, pairs[k].b)
		}(k)
	}
	wg.Wait()
	assert.Equal(t, want, got)
}

// TestResult_Stats counts column kinds.
func TestResult_Stats(t *testing.T) {
	res, err := align.Align("GATTACA", "GCATGC")
	require.NoError(t, err)
	st := res.Stats()
	// GATTACA / GCATGC-: G=G, A≠C, T≠A, T=T, A≠G, C=C, A/-
	assert.Equal(t, align.Stats{Length: 7, Matches: 3, Mismatches: 3, Gaps: 1, Identity: 3.0 / 7.0}, st)

	assert.Equal(t, align.Stats{}, (&align.Result{}).Stats())
}
