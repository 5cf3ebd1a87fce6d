// Package seqalign is a small toolkit for comparing two sequences: global
// alignment under a linear gap model and pairwise dot plots.
//
// 🚀 What is seqalign?
//
//	A pure-Go library (plus a CLI) that brings together:
//		• Score matrix: Needleman–Wunsch fill with exact integer scores
//		• Traceback: one optimal alignment, Diagonal > Up > Left on ties
//		• Linear space: Hirschberg mode for long inputs, same score
//		• Dot plots: identity grid, forward and reverse diagonal runs
//		• FASTA input, size limits, text/JSON rendering
//
// ✨ Why choose seqalign?
//
//   - Deterministic – the same inputs always give the same alignment
//   - Stateless – every call is reentrant, safe from many goroutines
//   - Honest errors – a corrupt matrix is reported, never papered over
//
// Packages:
//
//	sequence/     — normalized Sequence type, FASTA records
//	matrix/       — generic dense grid backing scores and plots
//	align/        — score matrix, traceback, alignment engine, rescoring
//	dotplot/      — match grid and diagonal runs
//	guard/        — compute and display limits from the environment
//	render/       — text blocks, matrix table, ASCII dot plot, JSON
//	internal/cli/ — cobra commands behind cmd/seqalign
//
// Quick example (seq1 across, seq2 down):
//
//	res, _ := align.Align("GATTACA", "GCATGC")
//	// res.Score == -2
//	// GATTACA
//	// GCATGC-
//
//	go install github.com/katalvlaran/seqalign/cmd/seqalign@latest
package seqalign
