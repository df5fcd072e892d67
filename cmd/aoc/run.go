package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/internal/report"
	"github.com/katalvlaran/aoc2021/internal/runner"
	"github.com/katalvlaran/aoc2021/puzzle"
)

var (
	errNoDays        = errors.New("no days given (pass day numbers or --all)")
	errInputManyDays = errors.New("--input needs exactly one day")
)

type runOptions struct {
	all     bool
	input   string
	format  string
	noStore bool
}

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run [days...]",
		Short: "Solve one or more days",
		Long: `Solve the given days concurrently and print both answers for each.

Days are numbers or ranges (1 3 5-7). Each day runs under the configured
timeout. Answers are recorded unless --no-store is given; an answer that
differs from the last one recorded for the same input is flagged.

Examples:
  aoc run 1
  aoc run 9-12 --format markdown
  aoc run 6 --input ~/aoc/lanternfish.txt
  aoc run --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, a, o, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&o.all, "all", "a", false, "solve every registered day")
	f.StringVarP(&o.input, "input", "i", "", "input file (single day only)")
	f.StringVarP(&o.format, "format", "f", "", "output format: text, markdown or json")
	f.BoolVar(&o.noStore, "no-store", false, "do not read or record answer history")

	return cmd
}

func runRun(cmd *cobra.Command, a *app, o *runOptions, args []string) error {
	if err := a.setup(cmd); err != nil {
		return err
	}

	days, err := selectDays(args, o.all)
	if err != nil {
		return err
	}
	if o.input != "" && len(days) != 1 {
		return errInputManyDays
	}

	w, err := a.reportWriter(cmd, o.format)
	if err != nil {
		return err
	}

	s, err := a.openStore(o.noStore)
	if err != nil {
		return err
	}
	if s != nil {
		defer s.Close()
	}

	results, err := a.newRunner(s).Run(cmd.Context(), runner.Requests(days, o.input))
	if werr := w.WriteResults(results); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}
	if failed := report.Failed(results); failed > 0 {
		return fmt.Errorf("%d of %d days failed", failed, len(results))
	}

	return nil
}

// selectDays turns arguments like "3" or "5-7" into registered day numbers,
// keeping the order given and dropping repeats.
func selectDays(args []string, all bool) ([]int, error) {
	if all {
		if len(args) > 0 {
			return nil, errors.New("--all cannot be combined with day numbers")
		}
		return puzzle.Numbers(), nil
	}
	if len(args) == 0 {
		return nil, errNoDays
	}

	var days []int
	seen := make(map[int]bool)
	add := func(n int) error {
		if _, err := puzzle.Lookup(n); err != nil {
			return err
		}
		if !seen[n] {
			seen[n] = true
			days = append(days, n)
		}
		return nil
	}

	for _, arg := range args {
		lo, hi, isRange := strings.Cut(arg, "-")
		from, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("bad day %q", arg)
		}
		to := from
		if isRange {
			if to, err = strconv.Atoi(hi); err != nil || to < from {
				return nil, fmt.Errorf("bad day range %q", arg)
			}
		}
		for n := from; n <= to; n++ {
			if err := add(n); err != nil {
				return nil, err
			}
		}
	}

	return days, nil
}
