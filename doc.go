// Package aoc2024 collects daily puzzle solvers built around a small
// grid-analysis core.
//
// Layout:
//
//	gridgraph/  rune grids: loading, same-symbol regions, filtered reachability
//	garden/     region perimeter, straight-side counting and fence pricing
//	core/       string-keyed graph for non-grid relations
//	dfs/        topological sort over core graphs
//	puzzle/     day registry, input loading, parsing and numeric helpers
//	days/       one package per solved day, plus Register
//	config/     YAML settings for the command
//	cmd/aoc/    command-line entry point
//
// Quick ASCII example (garden regions):
//
//	AAAA    A: area 4, perimeter 10, 4 sides
//	BBCD    B: area 4, perimeter  8, 4 sides
//	BBCC    C: area 4, perimeter 10, 8 sides
//	EEEC
//
// Run a day:
//
//	go run ./cmd/aoc -day 12 -input inputs/day12.txt
package aoc2024
