package dotplot

// Direction tells which way a run of hits travels across the plot.
type Direction int

const (
	// Forward runs go down-right: (i, j), (i+1, j+1), ...
	Forward Direction = iota
	// Reverse runs go down-left: (i, j), (i+1, j-1), ...
	Reverse
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}

	return "forward"
}

// Point is one hit of the plot with the symbol both sequences share there.
type Point struct {
	Row, Col int  // Row indexes seq2, Col indexes seq1
	Symbol   rune // the shared symbol
}

// Run is a maximal straight line of consecutive hits.
// (Row, Col) is the end with the smaller row index.
type Run struct {
	Row, Col  int
	Length    int
	Direction Direction
}
