package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/inputs"
	"github.com/katalvlaran/aoc2021/internal/logging"
	"github.com/katalvlaran/aoc2021/internal/report"
	"github.com/katalvlaran/aoc2021/internal/runner"
	"github.com/katalvlaran/aoc2021/internal/store"
)

// app carries global flags and the state derived from them.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	verbose    bool

	cfg     *config.Config
	cfgFile string
	log     zerolog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code 2021 puzzles",
		Long: `aoc solves the Advent of Code 2021 puzzles, one package per day.

Inputs are read from the inputs directory (dayNN.txt, NN.txt or dayNN/input.txt)
and fall back to the input embedded in the day's package. Answers are recorded
so that a change in a solver's result for the same input is reported.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "configuration file (default: $AOC_CONFIG, ./aoc.yaml, XDG config)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: console or json")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newHistoryCmd(a))
	cmd.AddCommand(newWatchCmd(a))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup resolves the configuration and builds the logger. Flags override
// the file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}

	a.cfg, a.cfgFile = cfg, path
	a.log = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)

	if path != "" {
		a.log.Debug().Str("file", path).Msg("configuration loaded")
	} else {
		a.log.Debug().Msg("no configuration file, using defaults")
	}

	return nil
}

// reportWriter returns the writer for format, or the configured one when
// format is empty.
func (a *app) reportWriter(cmd *cobra.Command, format string) (report.Writer, error) {
	if format == "" {
		format = a.cfg.Report.Format
	}
	return report.New(format, cmd.OutOrStdout())
}

// openStore opens the history database unless storing is disabled.
func (a *app) openStore(disabled bool) (*store.Store, error) {
	if disabled || !a.cfg.Store.Enabled {
		return nil, nil
	}
	s, err := store.Open(a.cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return s, nil
}

// newRunner builds a runner from the configuration. s may be nil.
func (a *app) newRunner(s *store.Store) *runner.Runner {
	opts := []runner.Option{
		runner.WithConcurrency(a.cfg.Runner.Concurrency),
		runner.WithTimeout(a.cfg.Runner.Timeout),
		runner.WithLogger(a.log),
	}
	if s != nil {
		opts = append(opts, runner.WithHistory(s))
	}
	return runner.New(inputs.NewLoader(a.cfg.InputsDir), opts...)
}
