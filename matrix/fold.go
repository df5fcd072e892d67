package matrix

import "fmt"

// FoldUp folds the rows below line up onto the rows above it, like folding a
// sheet of paper along a horizontal line. Row line itself is discarded.
// Row line+k lands on row line-k and the two values are combined with
// merge(kept, folded). The result has line rows.
//
// Returns ErrBadFold if line is outside [1, Rows()) or if the part below
// the line has more rows than the part above it.
// Complexity: O(r·c).
func (m *Dense[T]) FoldUp(line int, merge func(kept, folded T) T) (*Dense[T], error) {
	below := m.r - line - 1
	if line <= 0 || line >= m.r || below > line {
		return nil, fmt.Errorf("FoldUp(%d) on %d rows: %w", line, m.r, ErrBadFold)
	}

	out, _ := NewDense[T](line, m.c)
	copy(out.data, m.data[:line*m.c])
	for k := 1; k <= below; k++ {
		src, dst := (line+k)*m.c, (line-k)*m.c
		for j := 0; j < m.c; j++ {
			out.data[dst+j] = merge(out.data[dst+j], m.data[src+j])
		}
	}

	return out, nil
}

// FoldLeft folds the columns right of line onto the columns left of it.
// Column line itself is discarded; column line+k lands on column line-k.
// The result has line columns.
//
// Returns ErrBadFold if line is outside [1, Cols()) or if the right part
// is wider than the left one.
// Complexity: O(r·c).
func (m *Dense[T]) FoldLeft(line int, merge func(kept, folded T) T) (*Dense[T], error) {
	right := m.c - line - 1
	if line <= 0 || line >= m.c || right > line {
		return nil, fmt.Errorf("FoldLeft(%d) on %d cols: %w", line, m.c, ErrBadFold)
	}

	out, _ := NewDense[T](m.r, line)
	for i := 0; i < m.r; i++ {
		copy(out.data[i*line:(i+1)*line], m.data[i*m.c:i*m.c+line])
		for k := 1; k <= right; k++ {
			dst := i*line + line - k
			out.data[dst] = merge(out.data[dst], m.data[i*m.c+line+k])
		}
	}

	return out, nil
}
