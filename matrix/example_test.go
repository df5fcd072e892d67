package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/matrix"
)

// ExampleDense_FoldLeft folds a strip of dots in half.
func ExampleDense_FoldLeft() {
	m, _ := matrix.FromRows([][]int{
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1},
	})
	folded, _ := m.FoldLeft(2, func(a, b int) int { return a | b })
	fmt.Println(folded)
	// Output:
	// 1 0
	// 1 0
}
