// Package config loads the runner configuration: where inputs live, where the
// answer history is kept, logging, concurrency and report format.
//
// Configuration is YAML with ${ENV} expansion. Missing keys keep their
// defaults. The file is looked up in this order:
//
//  1. the --config flag
//  2. the AOC_CONFIG environment variable
//  3. ./aoc.yaml
//  4. $XDG_CONFIG_HOME/aoc2021/config.yaml
//
// When no file is found, defaults apply.
package config
