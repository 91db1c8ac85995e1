package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `190: 10 19
3267: 81 40 27
83: 17 5
156: 15 6
7290: 6 8 6 15
161011: 16 10 13
192: 17 8 14
21037: 9 7 18 13
292: 11 6 16 20
`

func TestParts(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 3749, got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 11387, got)
}

func TestSolvable(t *testing.T) {
	assert.True(t, solvable(12, []int{1, 2}, true), "1||2")
	assert.False(t, solvable(12, []int{1, 2}, false))
	assert.True(t, solvable(7290, []int{6, 8, 6, 15}, true), "6*8||6*15")
	assert.True(t, solvable(0, []int{5, 0}, false), "5*0")
	assert.True(t, solvable(5, []int{5}, false))
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"190 10 19", "x: 1 2", "5:", "5: 1 y", "5: -1 6"} {
		_, err := Part1(in)
		assert.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
