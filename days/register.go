package days

import (
	"github.com/katalvlaran/aoc2024/days/day01"
	"github.com/katalvlaran/aoc2024/days/day02"
	"github.com/katalvlaran/aoc2024/days/day03"
	"github.com/katalvlaran/aoc2024/days/day04"
	"github.com/katalvlaran/aoc2024/days/day05"
	"github.com/katalvlaran/aoc2024/days/day06"
	"github.com/katalvlaran/aoc2024/days/day07"
	"github.com/katalvlaran/aoc2024/days/day08"
	"github.com/katalvlaran/aoc2024/days/day09"
	"github.com/katalvlaran/aoc2024/days/day10"
	"github.com/katalvlaran/aoc2024/days/day11"
	"github.com/katalvlaran/aoc2024/days/day12"
	"github.com/katalvlaran/aoc2024/days/day13"
	"github.com/katalvlaran/aoc2024/puzzle"
)

// Register adds every implemented day to r.
func Register(r *puzzle.Registry) {
	r.MustRegister(1, day01.Part1, day01.Part2)
	r.MustRegister(2, day02.Part1, day02.Part2)
	r.MustRegister(3, day03.Part1, day03.Part2)
	r.MustRegister(4, day04.Part1, day04.Part2)
	r.MustRegister(5, day05.Part1, day05.Part2)
	r.MustRegister(6, day06.Part1, day06.Part2)
	r.MustRegister(7, day07.Part1, day07.Part2)
	r.MustRegister(8, day08.Part1, day08.Part2)
	r.MustRegister(9, day09.Part1, day09.Part2)
	r.MustRegister(10, day10.Part1, day10.Part2)
	r.MustRegister(11, day11.Part1, day11.Part2)
	r.MustRegister(12, day12.Part1, day12.Part2)
	r.MustRegister(13, day13.Part1, day13.Part2)
}
