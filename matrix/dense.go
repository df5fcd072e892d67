package matrix

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
// or that input rows differ in length.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0 and rectangular")

// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

// ErrBadFold indicates a fold line that cannot be applied.
var ErrBadFold = errors.New("matrix: bad fold line")

// Number is the set of element types a Dense may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T Number] struct {
	r, c int
	data []T
}

// NewDense creates an r×c matrix initialized to zeros.
// Complexity: O(r*c) time and memory.
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// FromRows builds a matrix by copying a non-empty rectangular slice of rows.
func FromRows[T Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, _ := NewDense[T](len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), m.c, ErrInvalidDimensions)
		}
		copy(m.data[i*m.c:], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// InBounds reports whether (row, col) addresses an element.
func (m *Dense[T]) InBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	if !m.InBounds(row, col) {
		var zero T
		return zero, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v to the element at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	if !m.InBounds(row, col) {
		return denseErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense[T]) Clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data}
}

// Equal reports whether o has the same shape and elements as m.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Fill sets every element to v.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Apply replaces every element with fn(row, col, value), in row-major order.
func (m *Dense[T]) Apply(fn func(row, col int, v T) T) {
	for i, v := range m.data {
		m.data[i] = fn(i/m.c, i%m.c, v)
	}
}

// Count returns how many elements satisfy pred.
func (m *Dense[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range m.data {
		if pred(v) {
			n++
		}
	}

	return n
}

// ToRows returns the matrix as a freshly allocated slice of rows.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders one line per row with space-separated elements.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
	}

	return sb.String()
}
