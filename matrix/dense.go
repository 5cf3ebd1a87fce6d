// Package matrix provides the dense grid primitive used by the aligner.
// Dense is a row-major grid storing elements in a flat slice for
// cache-friendly row scans.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major grid of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Cell] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c
}

// NewDense creates an rows×cols Dense grid initialized to the zero value of T.
// Zero-sized grids are legal (an empty sequence yields an empty dot plot).
// Stage 1 (Validate): ensure rows and cols >= 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T Cell](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a Dense grid by deep-copying a rectangular [][]T.
// Returns ErrNonRectangular if any row length differs from the first.
// Complexity: O(r*c).
func FromRows[T Cell](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	d, err := NewDense[T](r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), c, ErrNonRectangular)
		}
		copy(d.data[i*c:(i+1)*c], row)
	}

	return d, nil
}

// Rows returns the number of rows in the grid.
// Complexity: O(1).
func (m *Dense[T]) Rows() int {
	return m.r
}

// Cols returns the number of columns in the grid.
// Complexity: O(1).
func (m *Dense[T]) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// MustAt is At for indices the caller has already proven valid.
// It panics on out-of-range access (programmer error).
func (m *Dense[T]) MustAt(row, col int) T {
	v, err := m.At(row, col)
	if err != nil {
		panic(err)
	}

	return v
}

// MustSet is Set for indices the caller has already proven valid.
// It panics on out-of-range access (programmer error).
func (m *Dense[T]) MustSet(row, col int, v T) {
	if err := m.Set(row, col, v); err != nil {
		panic(err)
	}
}

// ToRows returns the grid as a freshly allocated [][]T.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
