// Package align computes optimal global (Needleman–Wunsch) alignments of two
// symbol sequences under a linear gap penalty and reconstructs one optimal
// alignment by deterministic traceback.
//
// 🚀 What is global alignment?
//
//	A global alignment pairs every symbol of both sequences end to end,
//	inserting gap markers ('-') where one sequence has no counterpart.
//	Each column scores Match, Mismatch or Gap; the aligner finds a column
//	layout with the maximal total score. It is the standard tool for:
//	  • comparing homologous genes or proteins of similar length
//	  • checking a read against its expected reference
//	  • teaching dynamic programming on a real problem
//
// ✨ Key features:
//   - full-matrix mode: (m+1)×(n+1) score matrix, retained on request for display
//   - linear-space mode: Hirschberg divide & conquer, O(n+m) memory, same score
//   - explicit traceback priority Diagonal > Up > Left, so the returned
//     alignment is a pure function of the inputs and the scoring
//   - exact integer arithmetic throughout, no floating-point ties
//   - Rescore to verify any alignment column by column
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/align"
//
//	res, err := align.Align("GATTACA", "GCATGC",
//	  align.WithScoring(align.Scoring{Match: 1, Mismatch: -1, Gap: -2}),
//	  align.WithKeepMatrix(),
//	)
//	fmt.Println(res.Score)    // -2
//	fmt.Println(res.Aligned1) // GATTACA
//	fmt.Println(res.Aligned2) // GCATGC-
//
// Performance:
//
//   - Time:   O(n·m)
//   - Memory: O(n·m) (FullMatrix) or O(n+m) (LinearSpace)
//
// Both modes grow quadratically in time; callers must bound input length
// before aligning (see package guard, or WithMaxLength).
package align
