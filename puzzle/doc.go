// Package puzzle defines the contract every day's solution implements and the
// helpers they share.
//
// A day registers itself from its package init:
//
//	func init() {
//		puzzle.Register(puzzle.Day{Number: 1, Title: "Sonar Sweep", Solve: Solve})
//	}
//
// and a runner picks days from the registry with Lookup or All. Days never
// import each other.
//
// Input helpers (Lines, Blocks, Ints, CommaInts, DigitGrid) report malformed
// input as *ParseError wrapping ErrMalformedInput, so callers can match with
// errors.Is and still print the offending line.
package puzzle
