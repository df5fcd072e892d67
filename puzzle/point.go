package puzzle

import "fmt"

// Point is an integer 2D coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// String renders "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }
