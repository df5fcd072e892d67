// Package main provides the aoc command, which solves Advent of Code 2021
// puzzles and keeps a history of the answers.
//
// Usage:
//
//	aoc run 1 2 3
//	aoc run --all --format markdown
//	aoc watch
//
// See --help for all available options.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/katalvlaran/aoc2021/days/all"
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "aoc:", err)
		cancel()
		os.Exit(1)
	}
}
