package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gardenMap = "AAAA\nBBCD\nBBCC\nEEEC\n"

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	args = append([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, args...)
	code = run(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestRun_Stdin(t *testing.T) {
	code, out, _ := runCmd(t, gardenMap, "-day", "12", "-input", "-")
	require.Equal(t, 0, code)
	assert.Equal(t, "140\n80\n", out)
}

func TestRun_SinglePartFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("125 17\n"), 0o644))

	code, out, _ := runCmd(t, "", "-day", "11", "-part", "1", "-input", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "55312\n", out)
}

func TestRun_InputDirFromConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("3 4\n4 3\n2 5\n1 3\n3 9\n3 3\n"), 0o644))
	cfgPath := filepath.Join(dir, "aoc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input_dir: "+dir+"\nlog_format: json\n"), 0o644))

	var out, errb bytes.Buffer
	code := run([]string{"-config", cfgPath, "-day", "1"}, strings.NewReader(""), &out, &errb)
	require.Equal(t, 0, code, errb.String())
	assert.Equal(t, "11\n31\n", out.String())
	assert.Contains(t, errb.String(), `"answer":31`)
}

func TestRun_DebugPlots(t *testing.T) {
	code, _, logs := runCmd(t, gardenMap, "-day", "12", "-part", "2", "-input", "-", "-v")
	require.Equal(t, 0, code)
	assert.Contains(t, logs, "symbol=C")
	assert.Contains(t, logs, "sides=8")
}

func TestRun_Failures(t *testing.T) {
	code, _, _ := runCmd(t, "", "-day", "14", "-input", "-")
	assert.Equal(t, 1, code, "unregistered day")

	code, _, _ = runCmd(t, "", "-day", "12", "-part", "3", "-input", "-")
	assert.Equal(t, 1, code, "unknown part")

	code, _, logs := runCmd(t, "AB\nA\n", "-day", "12", "-input", "-")
	assert.Equal(t, 1, code, "malformed input")
	assert.Contains(t, logs, "malformed input")

	code, _, logs = runCmd(t, "1|2\n2|3\n3|1\n\n1,2,3\n", "-day", "5", "-part", "2", "-input", "-")
	assert.Equal(t, 1, code, "cyclic page rules")
	assert.Contains(t, logs, "cycle detected")

	code, _, _ = runCmd(t, "", "-day", "1", "-input", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code, "missing file")

	code, _, _ = runCmd(t, "", "-bogus")
	assert.Equal(t, 2, code, "bad flag")
}
