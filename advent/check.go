package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/advent2023/aoc"
	"github.com/spf13/cobra"
)

var answersPath string

var checkCmd = &cobra.Command{
	Use:   "check [solution...]",
	Short: "Compare answers against the recorded ones",
	Long: `Run the named solutions, or all of them, and compare each answer with
the one recorded in the answers file. Solutions without a recorded answer
are reported and skipped; a wrong answer fails the check.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, err := aoc.LoadAnswers(answersPath)
		if err != nil {
			return err
		}
		return checkSolutions(cmd.OutOrStdout(), args, answers)
	},
}

func init() {
	checkCmd.Flags().StringVar(&answersPath, "answers", "answers.yaml", "Recorded answers file")
}

func checkSolutions(w io.Writer, names []string, answers aoc.Answers) error {
	names, err := selectNames(names)
	if err != nil {
		return err
	}
	for _, name := range names {
		ans, err := solve(name, sampleMode)
		if err != nil {
			return err
		}
		err = answers.Check(name, ans)
		switch {
		case err == nil:
			fmt.Fprintf(w, "ok   %s -> %d\n", label(name), ans)
		case errors.Is(err, aoc.ErrNoAnswer):
			fmt.Fprintf(w, "?    %s -> %d (no recorded answer)\n", label(name), ans)
		default:
			return err
		}
	}
	return nil
}
