package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/aoc2021/internal/runner"
	"github.com/katalvlaran/aoc2021/internal/store"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// TextWriter writes aligned plain-text tables for terminals.
type TextWriter struct {
	baseWriter
}

// NewTextWriter returns a TextWriter writing to output.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

func (w *TextWriter) table() *tabwriter.Writer {
	return tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
}

// WriteResults writes one row per result. Multi-line answers are printed in
// full below the table.
func (w *TextWriter) WriteResults(results []runner.Result) error {
	tw := w.table()
	fmt.Fprintln(tw, "DAY\tTITLE\tPART 1\tPART 2\tTIME\tINPUT\tSTATUS")

	var pictures []runner.Result
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t%s\t%s\t%s: %v\n",
				r.Day, r.Title, roundDuration(r.Duration), r.Source, StatusFailed, r.Err)
			continue
		}
		p1, p2 := r.Answer.Part1, r.Answer.Part2
		if multiline(p1) || multiline(p2) {
			pictures = append(pictures, r)
		}
		if multiline(p1) {
			p1 = "(below)"
		}
		if multiline(p2) {
			p2 = "(below)"
		}
		status := Status(r)
		if r.Changed {
			status += fmt.Sprintf(" (was %s / %s)", oneLine(r.Previous.Part1), oneLine(r.Previous.Part2))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Day, r.Title, p1, p2, roundDuration(r.Duration), r.Source, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, r := range pictures {
		for part, ans := range []string{r.Answer.Part1, r.Answer.Part2} {
			if multiline(ans) {
				if _, err := fmt.Fprintf(w.output, "\nDay %d part %d:\n%s\n", r.Day, part+1, ans); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// WriteDays lists registered days.
func (w *TextWriter) WriteDays(days []puzzle.Day) error {
	tw := w.table()
	fmt.Fprintln(tw, "DAY\tTITLE\tEMBEDDED INPUT")
	for _, d := range days {
		embedded := "no"
		if d.Input != nil {
			embedded = "yes"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", d.Number, d.Title, embedded)
	}
	return tw.Flush()
}

// WriteHistory lists stored runs of day, newest first.
func (w *TextWriter) WriteHistory(day int, runs []store.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintf(w.output, "no stored runs for day %d\n", day)
		return err
	}
	tw := w.table()
	fmt.Fprintln(tw, "SOLVED AT\tPART 1\tPART 2\tTIME\tINPUT")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.SolvedAt.Format("2006-01-02 15:04:05"), oneLine(r.Part1), oneLine(r.Part2),
			roundDuration(r.Duration), shortSum(r.InputSum))
	}
	return tw.Flush()
}

func oneLine(s string) string {
	if !multiline(s) {
		return s
	}
	return strings.SplitN(s, "\n", 2)[0] + "…"
}
