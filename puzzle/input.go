package puzzle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// InputPath returns the conventional input file for day inside dir.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// ReadInput reads the input of day from dir.
func ReadInput(dir string, day int) (string, error) {
	b, err := os.ReadFile(InputPath(dir, day))
	if err != nil {
		return "", fmt.Errorf("puzzle: reading day %d input: %w", day, err)
	}
	return string(b), nil
}

// ReadAll reads an input from r, e.g. standard input.
func ReadAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("puzzle: reading input: %w", err)
	}
	return string(b), nil
}

// Lines splits input into lines, dropping carriage returns and any
// trailing blank lines.
func Lines(input string) []string {
	lines := strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Ints parses the whitespace-separated integers of s.
// Any non-integer field yields ErrMalformedInput.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, f)
		}
		nums[i] = n
	}
	return nums, nil
}
