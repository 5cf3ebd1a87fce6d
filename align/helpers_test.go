package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/align"
)

// randomPair returns two deterministic pseudo-random sequences over alphabet.
func randomPair(t testing.TB, rng *rand.Rand, alphabet string, maxLen int) (string, string) {
	t.Helper()
	gen := func() string {
		n := 1 + rng.Intn(maxLen)
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(b)
	}

	return gen(), gen()
}

// scorings covers the default scheme and a few unusual but legal ones.
var scorings = []struct {
	name string
	sc   align.Scoring
}{
	{"Default", align.DefaultScoring()},
	{"Lenient", align.Scoring{Match: 2, Mismatch: -1, Gap: -1}},
	{"Harsh", align.Scoring{Match: 5, Mismatch: -4, Gap: -3}},
	{"FreeGaps", align.Scoring{Match: 1, Mismatch: 0, Gap: 0}},
	{"PositiveGap", align.Scoring{Match: 3, Mismatch: -3, Gap: 1}},
}
