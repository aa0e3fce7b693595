// Command aoc runs the Advent of Code 2019 wire and orbit solutions.
//
// Usage:
//
//	aoc list
//	aoc run day3-1 [--input URL]
//	aoc run day6-2 --from YOU --to SAN
//	aoc all [--config aoc.yaml]
//
// Answers go to stdout, logs to stderr. Any load, parse or configuration
// failure prints "error: <msg>" to stderr and exits with status 1.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
