// Command advent runs the Advent of Code 2023 solutions.
//
// With no arguments it runs every registered solution in order and prints
// one answer per line:
//
//	day1 part1 -> 142
//
// Any failure aborts the run.
package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/cespare/advent2023/aoc"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	logLevel    string
	profilePath string
	sampleMode  bool

	cfg         = aoc.DefaultConfig()
	stopProfile = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "advent [solution...]",
	Short: "Solve Advent of Code 2023 puzzles",
	Long: `Solve Advent of Code 2023 puzzles.

Solutions are named by day and part: 1a, 1b, 2a, ... With no solution
arguments, all of them run in order.

Input files are read from the input directory (inputs/ by default; see
advent.ini and $ADVENT_INPUT_DIR).`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRun,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Configuration file (default $ADVENT_CONFIG or advent.ini)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&profilePath, "fgprof", "", "Write a wall-clock profile to this file")
	pf.BoolVar(&sampleMode, "sample", false, "Use the embedded sample inputs and verify their answers")

	rootCmd.AddCommand(runCmd, listCmd, checkCmd, dumpCmd, replCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	err := rootCmd.Execute()
	if perr := stopProfile(); perr != nil && err == nil {
		err = perr
	}
	if err != nil {
		log.Fatal().Err(err).Msg("advent failed")
	}
}

func setup(cmd *cobra.Command, args []string) error {
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("bad log level %q", logLevel)
	}
	zerolog.SetGlobalLevel(lvl)

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg, err = aoc.LoadConfig(configPath)
	if err != nil {
		return err
	}
	log.Debug().Str("dir", cfg.InputDir).Msg("configured input directory")

	if profilePath != "" {
		stop, err := startProfile(profilePath)
		if err != nil {
			return err
		}
		stopProfile = stop
	}
	return nil
}

// solution is one part of one day's puzzle.
type solution struct {
	input  string // default input file name
	sample string
	want   int // answer on sample
	solve  func(cfg *aoc.Config, input string) (int, error)
	parse  func(input string) (any, error)
}

var solutions = make(map[string]solution)

func register(name string, s solution) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	aoc.SplitName(name) // panics on a malformed name
	solutions[name] = s
}

func solutionNames() []string {
	names := make([]string, 0, len(solutions))
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return aoc.NameLess(names[i], names[j]) })
	return names
}

func lookup(name string) (solution, error) {
	s, ok := solutions[name]
	if !ok {
		return solution{}, fmt.Errorf("unknown solution %q", name)
	}
	return s, nil
}

// selectNames returns names if non-empty, and all solutions otherwise.
func selectNames(names []string) ([]string, error) {
	if len(names) == 0 {
		return solutionNames(), nil
	}
	for _, name := range names {
		if _, err := lookup(name); err != nil {
			return nil, err
		}
	}
	return names, nil
}

// label renders "3b" as "day3 part2".
func label(name string) string {
	day, part := aoc.SplitName(name)
	return fmt.Sprintf("day%d part%d", day, aoc.PartNumber(part))
}
