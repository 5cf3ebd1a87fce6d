// Package sequence holds the immutable symbol sequence consumed by the
// aligner and the record extractor that feeds it from FASTA-style files.
//
// 🚀 What is a Sequence?
//
//	An ordered run of symbols over an unrestricted alphabet (DNA, RNA,
//	protein, or anything else). Sequences are normalized once, at
//	construction: surrounding whitespace is trimmed and every symbol is
//	upper-cased, so "gattaca" and "GATTACA " compare equal symbol by symbol.
//
// ✨ Record extraction:
//
//   - ReadRecords / ReadFile parse multi-record files where header lines
//     start with '>' and the following lines carry the symbols.
//   - SelectPair hands the first one or two records to the aligner and
//     reports whether records were dropped or missing, so callers can
//     print their own diagnostics.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/sequence"
//
//	recs, err := sequence.ReadFile("pair.fasta")
//	sel, err := sequence.SelectPair(recs)
//	s1 := sequence.New(sel.First.Seq)
package sequence
