package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/katalvlaran/aoc2021/internal/runner"
	"github.com/katalvlaran/aoc2021/internal/store"
	"github.com/katalvlaran/aoc2021/puzzle"
)

// MarkdownWriter writes GitHub-flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter returns a MarkdownWriter writing to output.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteResults writes a results table followed by code blocks for
// multi-line answers.
func (w *MarkdownWriter) WriteResults(results []runner.Result) error {
	md := markdown.NewMarkdown(w.output)
	md.H1("Advent of Code 2021")
	md.PlainText("")

	rows := make([][]string, 0, len(results))
	var pictures []runner.Result
	for _, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{
				strconv.Itoa(r.Day), r.Title, "-", "-", roundDuration(r.Duration), string(r.Source),
				"❌ " + r.Err.Error(),
			})
			continue
		}
		p1, p2 := "`"+r.Answer.Part1+"`", "`"+r.Answer.Part2+"`"
		if multiline(r.Answer.Part1) {
			p1 = "see below"
		}
		if multiline(r.Answer.Part2) {
			p2 = "see below"
		}
		if multiline(r.Answer.Part1) || multiline(r.Answer.Part2) {
			pictures = append(pictures, r)
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Day), r.Title, p1, p2, roundDuration(r.Duration), string(r.Source), statusText(r),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Day", "Title", "Part 1", "Part 2", "Time", "Input", "Status"},
		Rows:   escapeRows(rows),
	})
	md.PlainText("")

	if failed := Failed(results); failed > 0 {
		md.Warningf("%d of %d days failed.", failed, len(results))
		md.PlainText("")
	}

	for _, r := range pictures {
		for part, ans := range []string{r.Answer.Part1, r.Answer.Part2} {
			if !multiline(ans) {
				continue
			}
			md.H2f("Day %d, part %d", r.Day, part+1)
			md.CodeBlocks(markdown.SyntaxHighlightText, ans)
			md.PlainText("")
		}
	}

	return md.Build()
}

func statusText(r runner.Result) string {
	if r.Changed {
		return fmt.Sprintf("⚠️ changed (was `%s` / `%s`)", oneLine(r.Previous.Part1), oneLine(r.Previous.Part2))
	}
	return "✅"
}

// cellEscaper keeps a value inside one table cell: pipes are escaped and line
// breaks become <br>.
var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>", "\r", "")

func escapeRows(rows [][]string) [][]string {
	for _, row := range rows {
		for i, cell := range row {
			row[i] = cellEscaper.Replace(cell)
		}
	}
	return rows
}

// WriteDays writes the list of registered days.
func (w *MarkdownWriter) WriteDays(days []puzzle.Day) error {
	md := markdown.NewMarkdown(w.output)
	md.H1("Days")
	md.PlainText("")

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		embedded := ""
		if d.Input != nil {
			embedded = "✓"
		}
		rows = append(rows, []string{strconv.Itoa(d.Number), d.Title, embedded})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Day", "Title", "Embedded input"},
		Rows:   escapeRows(rows),
	})

	return md.Build()
}

// WriteHistory writes stored runs of day.
func (w *MarkdownWriter) WriteHistory(day int, runs []store.Run) error {
	md := markdown.NewMarkdown(w.output)
	md.H1f("Day %d history", day)
	md.PlainText("")

	if len(runs) == 0 {
		md.Note("No stored runs.")
		return md.Build()
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.SolvedAt.Format("2006-01-02 15:04:05"),
			"`" + oneLine(r.Part1) + "`",
			"`" + oneLine(r.Part2) + "`",
			roundDuration(r.Duration),
			"`" + shortSum(r.InputSum) + "`",
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Solved at", "Part 1", "Part 2", "Time", "Input"},
		Rows:   escapeRows(rows),
	})

	return md.Build()
}
