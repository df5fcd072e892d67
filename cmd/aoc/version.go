package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X main.version=...".
var (
	version = ""
	commit  = ""
	date    = ""
)

func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

func buildSetting(key, fallback string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fallback
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return fallback
}

func getCommit() string {
	if commit != "" {
		return commit
	}
	c := buildSetting("vcs.revision", "unknown")
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func getDate() string {
	if date != "" {
		return date
	}
	return buildSetting("vcs.time", "unknown")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aoc version %s\n", getVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", getCommit())
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", getDate())
		},
	}
}
