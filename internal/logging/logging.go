// Package logging builds the zerolog logger shared by the runner and the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// New returns a logger writing to w at the given level. Unknown levels fall
// back to info. Format "json" emits raw JSON lines, anything else a
// human-readable console format.
func New(w io.Writer, level, format string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// isTerminal reports whether w is a file attached to a terminal, in which
// case console output is colored.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
