// Package days groups the daily solvers. Each dayNN subpackage exposes
// Part1 and Part2 as puzzle.Solver values; Register wires them into a
// puzzle.Registry for the command-line front end.
package days
