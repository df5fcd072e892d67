package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2021/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		output string
		force  bool
		xdg    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		Long: `Write a commented configuration file.

Examples:
  # Create ./aoc.yaml
  aoc init

  # Create the per-user configuration
  aoc init --xdg

  # Overwrite an existing file
  aoc init -f`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := output
			if xdg {
				path = filepath.Join(config.XDGConfigDir(), "config.yaml")
			}
			if err := config.WriteTemplate(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultConfigFile, "output file path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().BoolVar(&xdg, "xdg", false, "write to the XDG config directory")
	cmd.MarkFlagsMutuallyExclusive("output", "xdg")

	return cmd
}
