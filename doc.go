// Package aoc2019 solves two Advent of Code 2019 puzzles: crossed wires
// (day 3) and the universal orbit map (day 6).
//
// Layout:
//
//	wire/    - grid geometry: parse move lists, find crossings, fold them
//	           with a Metric (closest to the origin, fewest combined steps)
//	core/    - directed graph store with insertion-ordered adjacency
//	dfs/     - explicit-stack depth-first walk with pre/post-order hooks
//	orbit/   - orbit trees: parse "A)B" edges, count orbits, count the
//	           transfers between two objects
//	puzzle/  - input loading (github.com/viant/afs), input format checks,
//	           the solution registry and the Runner
//	config/  - YAML settings validated with go-playground/validator
//	cmd/aoc  - the cobra command line: list, run, all
//
// The wire and orbit packages are pure: no I/O, no logging. Everything
// that touches storage, flags or logs lives in puzzle, config and cmd/aoc.
package aoc2019
