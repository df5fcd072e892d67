// Package report renders run results, day listings and answer history as
// plain text, Markdown or JSON.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/aoc2021/internal/checksum"
	"github.com/katalvlaran/aoc2021/internal/runner"
	"github.com/katalvlaran/aoc2021/internal/store"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Writer renders reports.
type Writer interface {
	WriteResults(results []runner.Result) error
	WriteDays(days []puzzle.Day) error
	WriteHistory(day int, runs []store.Run) error
}

// New returns the writer for format: "text", "markdown" or "json".
func New(format string, output io.Writer) (Writer, error) {
	switch format {
	case "text", "":
		return NewTextWriter(output), nil
	case "markdown", "md":
		return NewMarkdownWriter(output), nil
	case "json":
		return NewJSONWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// Status values shown per result.
const (
	StatusOK      = "ok"
	StatusChanged = "changed"
	StatusFailed  = "failed"
)

// Status summarizes a result in one word.
func Status(r runner.Result) string {
	switch {
	case r.Err != nil:
		return StatusFailed
	case r.Changed:
		return StatusChanged
	default:
		return StatusOK
	}
}

// Failed counts failed results.
func Failed(results []runner.Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

func multiline(s string) bool {
	return strings.Contains(s, "\n")
}

func roundDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}

func shortSum(sum string) string {
	return checksum.Short(sum)
}
