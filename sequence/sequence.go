package sequence

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sequence is an immutable, case-normalized run of symbols.
// The zero value is the empty sequence.
type Sequence struct {
	symbols []rune
}

// New trims raw and upper-cases it into a Sequence.
// A fresh Caser is built per call: cases.Caser keeps internal state and
// must not be shared between goroutines.
// Complexity: O(len(raw)).
func New(raw string) Sequence {
	norm := cases.Upper(language.Und).String(strings.TrimSpace(raw))

	return Sequence{symbols: []rune(norm)}
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.symbols) }

// IsEmpty reports whether the sequence has no symbols.
func (s Sequence) IsEmpty() bool { return len(s.symbols) == 0 }

// At returns the i-th symbol. It panics if i is out of range, like slice indexing.
func (s Sequence) At(i int) rune { return s.symbols[i] }

// Symbols returns a copy of the symbols.
func (s Sequence) Symbols() []rune {
	out := make([]rune, len(s.symbols))
	copy(out, s.symbols)

	return out
}

// Contains reports whether r occurs anywhere in the sequence.
func (s Sequence) Contains(r rune) bool {
	for _, x := range s.symbols {
		if x == r {
			return true
		}
	}

	return false
}

// Slice returns the sub-sequence [from, to). It shares storage with s,
// which is safe because Sequence exposes no setters.
func (s Sequence) Slice(from, to int) Sequence {
	return Sequence{symbols: s.symbols[from:to:to]}
}

// Reverse returns the symbols in reverse order.
func (s Sequence) Reverse() Sequence {
	n := len(s.symbols)
	out := make([]rune, n)
	for i, r := range s.symbols {
		out[n-1-i] = r
	}

	return Sequence{symbols: out}
}

// String returns the symbols as a string.
func (s Sequence) String() string { return string(s.symbols) }
