// Package matrix provides a generic dense, row-major matrix with the handful of
// whole-matrix operations grid puzzles need: element access with bounds
// checking, bulk apply/fill/count, and folding along a row or column.
//
// Elements are stored in a flat slice for cache friendliness. The element type
// is any integer or floating-point type (Number).
//
// Errors:
//
//   - ErrInvalidDimensions  rows or cols ≤ 0, or ragged input rows
//   - ErrIndexOutOfBounds   row or column outside the matrix
//   - ErrBadFold            fold line outside the matrix, or the folded part
//     larger than the part it folds onto
//
// Complexity: At/Set O(1); Clone, Equal, Fill, Apply, Count and folds O(r·c).
package matrix
