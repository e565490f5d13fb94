package main

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <solution>",
	Short: "Print the parsed input of a solution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return dumpSolution(cmd.OutOrStdout(), args[0], sampleMode)
	},
}

func dumpSolution(w io.Writer, name string, sample bool) error {
	s, err := lookup(name)
	if err != nil {
		return err
	}
	in, err := loadInput(name, s, sample)
	if err != nil {
		return err
	}
	v, err := s.parse(in.Text)
	if err != nil {
		return fmt.Errorf("%s (%s): %w", name, in.Path, err)
	}
	_, err = pretty.Fprintf(w, "%# v\n", v)
	return err
}
