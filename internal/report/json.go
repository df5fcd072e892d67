package report

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/aoc2021/internal/runner"
	"github.com/katalvlaran/aoc2021/internal/store"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// JSONWriter writes indented JSON documents.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter returns a JSONWriter writing to output.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

type jsonResult struct {
	Day        int        `json:"day"`
	Title      string     `json:"title,omitempty"`
	Part1      string     `json:"part1,omitempty"`
	Part2      string     `json:"part2,omitempty"`
	DurationNS int64      `json:"duration_ns"`
	Source     string     `json:"source,omitempty"`
	Path       string     `json:"path,omitempty"`
	Checksum   string     `json:"checksum,omitempty"`
	Status     string     `json:"status"`
	Error      string     `json:"error,omitempty"`
	Previous   *store.Run `json:"previous,omitempty"`
}

type jsonDay struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Embedded bool   `json:"embedded_input"`
}

type jsonHistory struct {
	Day  int         `json:"day"`
	Runs []store.Run `json:"runs"`
}

// WriteResults writes {"results": [...], "failed": n}.
func (w *JSONWriter) WriteResults(results []runner.Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		jr := jsonResult{
			Day:        r.Day,
			Title:      r.Title,
			DurationNS: r.Duration.Nanoseconds(),
			Source:     string(r.Source),
			Path:       r.Path,
			Checksum:   r.Checksum,
			Status:     Status(r),
			Previous:   r.Previous,
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		} else {
			jr.Part1, jr.Part2 = r.Answer.Part1, r.Answer.Part2
		}
		out[i] = jr
	}

	return w.encode(struct {
		Results []jsonResult `json:"results"`
		Failed  int          `json:"failed"`
	}{out, Failed(results)})
}

// WriteDays writes the list of registered days.
func (w *JSONWriter) WriteDays(days []puzzle.Day) error {
	out := make([]jsonDay, len(days))
	for i, d := range days {
		out[i] = jsonDay{Day: d.Number, Title: d.Title, Embedded: d.Input != nil}
	}
	return w.encode(out)
}

// WriteHistory writes stored runs of day.
func (w *JSONWriter) WriteHistory(day int, runs []store.Run) error {
	if runs == nil {
		runs = []store.Run{}
	}
	return w.encode(jsonHistory{Day: day, Runs: runs})
}

func (w *JSONWriter) encode(v any) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
