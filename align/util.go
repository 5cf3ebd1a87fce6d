package align

import "golang.org/x/exp/constraints"

// max3 returns the maximum of three values.
func max3[T constraints.Ordered](a, b, c T) T {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}

// reverseRunes reverses s in place.
func reverseRunes(s []rune) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
