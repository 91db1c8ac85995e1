// Command aoc runs the daily puzzle solvers.
//
// Usage:
//
//	aoc [-day N] [-part P] [-input PATH] [-config PATH] [-v]
//
// With no -day the latest registered day runs; with no -part both parts
// run. Each answer is printed on its own line; logs go to stderr.
// -input - reads the puzzle input from standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aoc2024/config"
	"github.com/katalvlaran/aoc2024/days"
	"github.com/katalvlaran/aoc2024/garden"
	"github.com/katalvlaran/aoc2024/gridgraph"
	"github.com/katalvlaran/aoc2024/puzzle"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns its exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		day        = fs.Int("day", 0, "day to run; 0 means the latest registered day")
		part       = fs.Int("part", 0, "part to run (1 or 2); 0 runs every part")
		inputPath  = fs.String("input", "", "input file; '-' reads stdin; empty uses <input_dir>/dayNN.txt")
		configPath = fs.String("config", "aoc.yaml", "optional YAML settings file")
		verbose    = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Error("loading config")
		return 1
	}
	setupLogger(log, cfg, *verbose)

	reg := puzzle.NewRegistry()
	days.Register(reg)
	if *day == 0 {
		*day = reg.Latest()
	}
	parts := []int{*part}
	if *part == 0 {
		parts = nil
		for p := 1; p <= reg.Parts(*day); p++ {
			parts = append(parts, p)
		}
		if len(parts) == 0 {
			log.WithField("day", *day).Error(puzzle.ErrUnknownDay)
			return 1
		}
	}

	input, err := readInput(*inputPath, stdin, cfg.InputDir, *day)
	if err != nil {
		log.WithError(err).WithField("day", *day).Error("reading input")
		return 1
	}

	for _, p := range parts {
		solve, err := reg.Lookup(*day, p)
		if err != nil {
			log.WithError(err).Error("looking up solver")
			return 1
		}
		start := time.Now()
		answer, err := solve(input)
		fields := logrus.Fields{"day": *day, "part": p, "elapsed": time.Since(start)}
		if err != nil {
			log.WithFields(fields).WithError(err).Error("solving")
			return 1
		}
		log.WithFields(fields).WithField("answer", answer).Info("solved")
		fmt.Fprintln(stdout, answer)
	}

	if *day == 12 && log.IsLevelEnabled(logrus.DebugLevel) {
		logPlots(log, input)
	}
	return 0
}

// setupLogger applies cfg, which config.Load has already validated.
func setupLogger(log *logrus.Logger, cfg config.Config, verbose bool) {
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == config.FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
}

func readInput(path string, stdin io.Reader, dir string, day int) (string, error) {
	switch path {
	case "":
		return puzzle.ReadInput(dir, day)
	case "-":
		return puzzle.ReadAll(stdin)
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return string(b), nil
	}
}

// logPlots reports each garden region's measurements at debug level.
func logPlots(log *logrus.Logger, input string) {
	gg, err := gridgraph.Parse(input, gridgraph.DefaultGridOptions())
	if err != nil {
		return
	}
	for _, p := range garden.Survey(gg) {
		log.WithFields(logrus.Fields{
			"symbol":    string(p.Symbol),
			"area":      p.Area(),
			"perimeter": p.Perimeter,
			"sides":     p.Sides,
		}).Debug("plot")
	}
}
