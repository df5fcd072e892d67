package puzzle

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Answer holds both parts of a day's result as text.
type Answer struct {
	Part1 string `json:"part1"`
	Part2 string `json:"part2"`
}

// NewAnswer formats two results with fmt's default formatting.
func NewAnswer(part1, part2 any) Answer {
	return Answer{Part1: fmt.Sprint(part1), Part2: fmt.Sprint(part2)}
}

// SolveFunc parses input and computes both parts.
type SolveFunc func(ctx context.Context, input []byte) (Answer, error)

// Day describes one registered puzzle.
type Day struct {
	Number int
	Title  string
	Solve  SolveFunc
	// Input is the puzzle input shipped with the solution, nil if none.
	Input []byte
}

var (
	registryMu sync.RWMutex
	registry   = make(map[int]Day)
)

// Register makes a day available to Lookup and All. It panics if the number
// is not positive, if Solve is nil, or if the number is already registered.
func Register(d Day) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if d.Number <= 0 {
		panic(fmt.Sprintf("puzzle: Register day %d: number must be positive", d.Number))
	}
	if d.Solve == nil {
		panic(fmt.Sprintf("puzzle: Register day %d: Solve is nil", d.Number))
	}
	if _, dup := registry[d.Number]; dup {
		panic(fmt.Sprintf("puzzle: Register called twice for day %d", d.Number))
	}
	registry[d.Number] = d
}

// Lookup returns the registered day n.
func Lookup(n int) (Day, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}

	return d, nil
}

// All returns every registered day sorted by number.
func All() []Day {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Day, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out
}

// Numbers returns the registered day numbers in ascending order.
func Numbers() []int {
	days := All()
	out := make([]int, len(days))
	for i, d := range days {
		out[i] = d.Number
	}

	return out
}

// unregister removes day n; tests only.
func unregister(n int) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, n)
}
