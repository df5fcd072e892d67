package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/internal/inputs"
	"github.com/katalvlaran/aoc2021/internal/runner"
	"github.com/katalvlaran/aoc2021/internal/watch"
	"github.com/katalvlaran/aoc2021/puzzle"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		format  string
		noStore bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-solve days when their input files change",
		Long: `Watch the inputs directory and re-solve a day whenever its input file
is created or written. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			if err := os.MkdirAll(a.cfg.InputsDir, 0o750); err != nil {
				return fmt.Errorf("create inputs dir: %w", err)
			}
			w, err := a.reportWriter(cmd, format)
			if err != nil {
				return err
			}
			s, err := a.openStore(noStore)
			if err != nil {
				return err
			}
			if s != nil {
				defer s.Close()
			}

			r := a.newRunner(s)
			loader := inputs.NewLoader(a.cfg.InputsDir)
			resolve := func(path string) (int, bool) {
				day, ok := loader.DayForFile(path)
				if !ok {
					return 0, false
				}
				_, err := puzzle.Lookup(day)
				return day, err == nil
			}

			watcher := watch.New(a.cfg.InputsDir, resolve, watch.WithLogger(a.log))
			return watcher.Run(cmd.Context(), func(ctx context.Context, days []int) {
				results, _ := r.Run(ctx, runner.Requests(days, ""))
				if err := w.WriteResults(results); err != nil {
					a.log.Error().Err(err).Msg("write report")
				}
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, markdown or json")
	cmd.Flags().BoolVar(&noStore, "no-store", false, "do not read or record answer history")

	return cmd
}
