// Package aoc2021 collects solutions to the Advent of Code 2021 puzzles and
// the small graph toolkit they share.
//
// Layout
//
//	core/        in-memory graph: vertices, weighted or directed edges
//	bfs/         breadth-first search, generic and over core.Graph
//	dfs/         depth-first traversal and path counting with a revisit budget
//	dijkstra/    shortest paths, generic and over core.Graph
//	gridgraph/   2D integer grids as graphs: neighbours, components, tiling
//	matrix/      generic dense matrices with folding
//	puzzle/      the Day registry, Answer, input helpers and parse errors
//	days/dayNN/  one package per puzzle; each registers itself in init
//	internal/    configuration, logging, inputs, history store, runner,
//	             reports and the input watcher behind cmd/aoc
//	cmd/aoc/     the command-line runner
//
// Each day parses a text input and returns two answers. Days never import
// each other; they share only the toolkit packages.
//
//	aoc run 1 2 3
//	aoc run --all --format markdown
//	aoc history 15
package aoc2021
