package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/dfs"
	"github.com/katalvlaran/aoc2024/puzzle"
)

const sample = `47|53
97|13
97|61
97|47
75|29
61|13
75|53
29|13
97|29
53|29
61|53
97|53
61|29
47|13
75|47
97|75
47|61
75|61
47|29
75|13
53|13

75,47,61,53,29
97,61,53,29,13
75,29,13
75,97,47,61,53
61,13,29
97,13,75,29,47
`

func TestParts(t *testing.T) {
	got, err := Part1(sample)
	require.NoError(t, err)
	assert.Equal(t, 143, got)

	got, err = Part2(sample)
	require.NoError(t, err)
	assert.Equal(t, 123, got)
}

func TestOrdered(t *testing.T) {
	m, err := parse(sample)
	require.NoError(t, err)
	want := []bool{true, true, true, false, false, false}
	require.Len(t, m.updates, len(want))
	for i, u := range m.updates {
		assert.Equal(t, want[i], m.ordered(u), "update %v", u)
	}
}

func TestReorder(t *testing.T) {
	m, err := parse(sample)
	require.NoError(t, err)
	cases := []struct {
		pages []int
		want  []int
	}{
		{[]int{75, 97, 47, 61, 53}, []int{97, 75, 47, 61, 53}},
		{[]int{61, 13, 29}, []int{61, 29, 13}},
		{[]int{97, 13, 75, 29, 47}, []int{97, 75, 47, 29, 13}},
	}
	for _, tc := range cases {
		got, err := m.reorder(tc.pages)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
		assert.True(t, m.ordered(got))
	}
}

func TestMalformed(t *testing.T) {
	cases := map[string]string{
		"no separator": "1|2\n1,2\n",
		"bad rule":     "1-2\n\n1,2\n",
		"bad page":     "1|2\n\n1,x\n",
		"self rule":    "1|1\n2|1\n\n1,2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Part2(in)
			assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
		})
	}
}

func TestCycle(t *testing.T) {
	in := "1|2\n2|3\n3|1\n\n1,2,3\n"
	_, err := Part2(in)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)

	// a cycle in rules is harmless while no update needs reordering
	got, err := Part1("1|2\n2|3\n3|1\n\n1,2\n")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}
