package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/puzzle"
)

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the available days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			w, err := a.reportWriter(cmd, format)
			if err != nil {
				return err
			}
			return w.WriteDays(puzzle.All())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text, markdown or json")

	return cmd
}
