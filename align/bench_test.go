package align_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/align"
)

// benchLengths are the sequence lengths to benchmark.
var benchLengths = []int{100, 500, 1500}

// sink defeats dead-code elimination.
var sink *align.Result

func benchAlign(b *testing.B, opts ...align.Option) {
	b.ReportAllocs()
	for _, n := range benchLengths {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(int64(n)))
			s1, s2 := randomPair(b, rng, "ACGT", n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := align.Align(s1, s2, opts...)
				if err != nil {
					b.Fatal(err)
				}
				sink = res
			}
		})
	}
}

func BenchmarkAlign_FullMatrix(b *testing.B) {
	benchAlign(b)
}

func BenchmarkAlign_LinearSpace(b *testing.B) {
	benchAlign(b, align.WithMode(align.LinearSpace))
}
