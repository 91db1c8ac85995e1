// Package day09 compacts an amphipod disk map and computes its checksum.
//
// The dense map alternates file lengths and free-space lengths, one digit
// each; files are numbered from 0 in order of appearance.
package day09

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/puzzle"
)

const free = -1

// span is a contiguous run of blocks.
type span struct {
	start, size int
}

// diskMap holds the file spans indexed by file ID and the free spans
// in ascending position.
type diskMap struct {
	files []span
	gaps  []span
}

func parse(input string) (*diskMap, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, fmt.Errorf("%w: empty disk map", puzzle.ErrMalformedInput)
	}
	m := &diskMap{}
	pos := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q at offset %d", puzzle.ErrMalformedInput, r, i)
		}
		n := int(r - '0')
		if i%2 == 0 {
			m.files = append(m.files, span{pos, n})
		} else if n > 0 {
			m.gaps = append(m.gaps, span{pos, n})
		}
		pos += n
	}
	return m, nil
}

// blocks expands the map into one file ID (or free) per block.
func (m *diskMap) blocks() []int {
	end := 0
	if len(m.files) > 0 {
		last := m.files[len(m.files)-1]
		end = last.start + last.size
	}
	disk := make([]int, end)
	for i := range disk {
		disk[i] = free
	}
	for id, f := range m.files {
		for b := f.start; b < f.start+f.size; b++ {
			disk[b] = id
		}
	}
	return disk
}

func checksum(disk []int) int {
	sum := 0
	for pos, id := range disk {
		if id != free {
			sum += pos * id
		}
	}
	return sum
}

// Part1 moves blocks one at a time from the end of the disk into the
// leftmost free block until no gaps remain, and returns the checksum.
func Part1(input string) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	disk := m.blocks()
	for l, r := 0, len(disk)-1; ; {
		for l < r && disk[l] != free {
			l++
		}
		for l < r && disk[r] == free {
			r--
		}
		if l >= r {
			break
		}
		disk[l], disk[r] = disk[r], free
	}
	return checksum(disk), nil
}

// Part2 moves whole files, highest ID first and each at most once, into the
// leftmost free span to their left that can hold them, and returns the
// checksum.
func Part2(input string) (int, error) {
	m, err := parse(input)
	if err != nil {
		return 0, err
	}
	for id := len(m.files) - 1; id >= 0; id-- {
		f := &m.files[id]
		for g := range m.gaps {
			gap := &m.gaps[g]
			if gap.start >= f.start {
				break
			}
			if gap.size < f.size {
				continue
			}
			f.start = gap.start
			gap.start += f.size
			gap.size -= f.size
			break
		}
	}
	sum := 0
	for id, f := range m.files {
		for b := f.start; b < f.start+f.size; b++ {
			sum += b * id
		}
	}
	return sum, nil
}
