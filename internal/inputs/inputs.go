// Package inputs resolves the puzzle input for a day: an explicit file, a file
// in the inputs directory, or the input embedded in the day's package.
package inputs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/katalvlaran/aoc2021/internal/checksum"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// Source tells where an input came from.
type Source string

const (
	SourceExplicit Source = "file"
	SourceDir      Source = "inputs_dir"
	SourceEmbedded Source = "embedded"
)

// Input is a resolved puzzle input.
type Input struct {
	Day      int
	Data     []byte
	Source   Source
	Path     string // empty for embedded inputs
	Checksum string
}

// Loader finds inputs under Dir.
type Loader struct {
	Dir string
}

// NewLoader returns a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// Candidates returns the paths tried for day, in lookup order.
func (l *Loader) Candidates(day int) []string {
	if l.Dir == "" {
		return nil
	}
	name := fmt.Sprintf("day%02d", day)
	return []string{
		filepath.Join(l.Dir, name+".txt"),
		filepath.Join(l.Dir, fmt.Sprintf("%02d.txt", day)),
		filepath.Join(l.Dir, name, "input.txt"),
	}
}

// Load resolves the input for d. A non-empty explicit path must exist; other
// candidates are skipped when missing. When nothing is found the embedded
// input is used, and puzzle.ErrNoInput is returned if there is none.
func (l *Loader) Load(d puzzle.Day, explicit string) (*Input, error) {
	if explicit != "" {
		data, err := os.ReadFile(explicit) //nolint:gosec // user-supplied input path
		if err != nil {
			return nil, fmt.Errorf("inputs: read %s: %w", explicit, err)
		}
		return newInput(d.Number, data, SourceExplicit, explicit), nil
	}

	for _, path := range l.Candidates(d.Number) {
		data, err := os.ReadFile(path) //nolint:gosec // path built from the inputs dir
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("inputs: read %s: %w", path, err)
		}
		return newInput(d.Number, data, SourceDir, path), nil
	}

	if d.Input != nil {
		return newInput(d.Number, d.Input, SourceEmbedded, ""), nil
	}

	return nil, fmt.Errorf("%w: day %d", puzzle.ErrNoInput, d.Number)
}

// DayForFile maps a file path inside the inputs directory back to the day it
// feeds. It returns false for files that match no day pattern.
func (l *Loader) DayForFile(path string) (int, bool) {
	base := filepath.Base(path)
	var n int
	if _, err := fmt.Sscanf(base, "day%02d.txt", &n); err == nil && base == fmt.Sprintf("day%02d.txt", n) {
		return n, true
	}
	if _, err := fmt.Sscanf(base, "%02d.txt", &n); err == nil && base == fmt.Sprintf("%02d.txt", n) {
		return n, true
	}
	if base == "input.txt" {
		dir := filepath.Base(filepath.Dir(path))
		if _, err := fmt.Sscanf(dir, "day%02d", &n); err == nil && dir == fmt.Sprintf("day%02d", n) {
			return n, true
		}
	}
	return 0, false
}

func newInput(day int, data []byte, src Source, path string) *Input {
	return &Input{Day: day, Data: data, Source: src, Path: path, Checksum: checksum.Sum(data)}
}
