package main

import (
	"fmt"
	"io"
	"time"

	"github.com/cespare/advent2023/aoc"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [solution...]",
	Short: "Run solutions and print their answers",
	Long: `Run the named solutions, or all of them, and print their answers.

Examples:
  advent run
  advent run 3a 3b
  advent run --sample 1b`,
	RunE: runRun,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered solutions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listSolutions(cmd.OutOrStdout())
		return nil
	},
}

func runRun(cmd *cobra.Command, args []string) error {
	return runSolutions(cmd.OutOrStdout(), args, sampleMode)
}

func runSolutions(w io.Writer, names []string, sample bool) error {
	names, err := selectNames(names)
	if err != nil {
		return err
	}
	for _, name := range names {
		ans, err := solve(name, sample)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s -> %d\n", label(name), ans)
	}
	return nil
}

func listSolutions(w io.Writer) {
	for _, name := range solutionNames() {
		s := solutions[name]
		fmt.Fprintf(w, "%-3s %-11s %s\n", name, label(name), cfg.InputPath(name, s.input))
	}
}

// solve runs one solution. In sample mode the answer must match the
// sample's known answer.
func solve(name string, sample bool) (int, error) {
	s, err := lookup(name)
	if err != nil {
		return 0, err
	}
	in, err := loadInput(name, s, sample)
	if err != nil {
		return 0, err
	}
	start := time.Now()
	ans, err := s.solve(cfg, in.Text)
	if err != nil {
		return 0, fmt.Errorf("%s (%s): %w", name, in.Path, err)
	}
	log.Debug().
		Str("solution", name).
		Int("answer", ans).
		Dur("elapsed", time.Since(start)).
		Msg("solved")
	if sample && ans != s.want {
		return 0, fmt.Errorf("%s sample: got %d; want %d", name, ans, s.want)
	}
	return ans, nil
}

func loadInput(name string, s solution, sample bool) (*aoc.Input, error) {
	if sample {
		return aoc.SampleInput(name, s.sample), nil
	}
	in, err := aoc.ReadInput(cfg.InputPath(name, s.input))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	log.Debug().
		Str("path", in.Path).
		Str("size", humanize.Bytes(uint64(in.Size()))).
		Int("lines", in.Lines()).
		Msg("read input")
	return in, nil
}
