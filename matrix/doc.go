// Package matrix provides the dense row-major grid shared by the alignment
// score matrix and the dot plot.
//
// What & Why:
//
//	Both artefacts of a pairwise comparison are rectangular grids: the score
//	matrix holds signed integers, the dot plot holds booleans. Dense[T] stores
//	either in one flat slice, bounds-checks the public accessors and offers
//	panicking Must* accessors for hot loops whose indices are already proven.
//
// Complexity:
//
//	Rows(), Cols(), At(), Set() run in O(1).
//	ToRows() and FromRows() are O(rows*cols) time and memory.
package matrix
