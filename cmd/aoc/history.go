package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func newHistoryCmd(a *app) *cobra.Command {
	var (
		format string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history <day>",
		Short: "Show recorded answers for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad day %q", args[0])
			}
			if _, err := puzzle.Lookup(day); err != nil {
				return err
			}
			w, err := a.reportWriter(cmd, format)
			if err != nil {
				return err
			}

			s, err := a.openStore(false)
			if err != nil {
				return err
			}
			if s == nil {
				return errors.New("answer history is disabled (store.enabled: false)")
			}
			defer s.Close()

			runs, err := s.History(cmd.Context(), day, limit)
			if err != nil {
				return err
			}
			return w.WriteHistory(day, runs)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, markdown or json")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum runs to show (0 for all)")

	return cmd
}
