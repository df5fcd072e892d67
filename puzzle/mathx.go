package puzzle

import "golang.org/x/exp/constraints"

// Number is any signed or unsigned integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of n.
func Abs[T constraints.Signed | constraints.Float](n T) T {
	if n < 0 {
		return -n
	}
	return n
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed | constraints.Float](n T) T {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Sum adds all values.
func Sum[T Number](vs []T) T {
	var s T
	for _, v := range vs {
		s += v
	}
	return s
}

// MinMax returns the smallest and largest value. Both are zero for an empty slice.
func MinMax[T constraints.Ordered](vs []T) (lo, hi T) {
	if len(vs) == 0 {
		return lo, hi
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
