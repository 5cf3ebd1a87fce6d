package align_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/align"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAlign
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Align the textbook pair GATTACA / GCATGC with the default scheme
//	{match: +1, mismatch: -1, gap: -2}.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign() {
	res, err := align.Align("GATTACA", "GCATGC")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("score=%d\n%s\n%s\n", res.Score, res.Aligned1, res.Aligned2)
	// Output:
	// score=-2
	// GATTACA
	// GCATGC-
}

// ExampleAlign_keepMatrix retains the score matrix for display.
func ExampleAlign_keepMatrix() {
	res, err := align.Align("AC", "AGC", align.WithKeepMatrix())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(res.Matrix)
	fmt.Println(res.Aligned1)
	fmt.Println(res.Aligned2)
	// Output:
	// [0, -2, -4]
	// [-2, 1, -1]
	// [-4, -1, 0]
	// [-6, -3, 0]
	// A-C
	// AGC
}

// ExampleAlign_linearSpace trades the matrix for O(N+M) memory.
func ExampleAlign_linearSpace() {
	res, err := align.Align("GATTACA", "GCATGC",
		align.WithScoring(align.Scoring{Match: 2, Mismatch: -1, Gap: -1}),
		align.WithMode(align.LinearSpace),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("score:", res.Score)
	// Output:
	// score: 4
}

// ExampleRescore verifies an alignment column by column.
func ExampleRescore() {
	score, err := align.Rescore("A-C", "AGC", align.DefaultScoring())
	fmt.Println(score, err)
	// Output:
	// 0 <nil>
}
