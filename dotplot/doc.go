// Package dotplot builds the pairwise identity grid ("dot plot") of two
// sequences and extracts the diagonal runs that make it readable.
//
// Cell (i, j) is set iff seq2[i] == seq1[j] after the same normalization the
// aligner applies, so seq1 runs along the columns and seq2 down the rows:
//
//   - long forward diagonals are identity stretches,
//   - parallel off-diagonals are repeats,
//   - anti-diagonals (Reverse runs) are inversion signatures,
//   - a diagonal that jumps sideways marks an insertion or deletion.
//
// The plot is independent of the alignment score matrix and costs
// O(N·M) time and memory; bound input length before building one.
package dotplot
