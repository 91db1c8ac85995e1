package day11_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/days/day11"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func TestCount(t *testing.T) {
	cases := []struct {
		input  string
		blinks int
		want   int
	}{
		{"0 1 10 99 999", 1, 7},
		{"125 17", 1, 3},
		{"125 17", 6, 22},
		{"125 17", 25, 55312},
		{"7", 0, 1},
	}
	for _, tc := range cases {
		got, err := day11.Count(tc.input, tc.blinks)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q after %d blinks", tc.input, tc.blinks)
	}
}

func TestPart1(t *testing.T) {
	got, err := day11.Part1("125 17\n")
	require.NoError(t, err)
	assert.Equal(t, 55312, got)
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"", "1 x", "-3"} {
		_, err := day11.Part2(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
