package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run solutions interactively",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

const replHelp = `commands:
  <solution>...     run solutions (e.g. 1a 3b)
  sample <solution> run solutions on their samples
  dump <solution>   print parsed input
  all               run everything
  list              list solutions
  quit              exit`

func runRepl(cmd *cobra.Command, args []string) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: filepath.Join(os.TempDir(), "advent_history"),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		quit, err := replExec(l.Stdout(), line)
		if err != nil {
			log.Error().Err(err).Msg("command failed")
		}
		if quit {
			return nil
		}
	}
}

// replExec runs one line of input from the prompt.
func replExec(w io.Writer, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprintln(w, replHelp)
		return false, nil
	case "list":
		listSolutions(w)
		return false, nil
	case "all":
		return false, runSolutions(w, nil, sampleMode)
	case "sample":
		if len(fields) == 1 {
			return false, runSolutions(w, nil, true)
		}
		return false, runSolutions(w, fields[1:], true)
	case "dump":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: dump <solution>")
		}
		return false, dumpSolution(w, fields[1], sampleMode)
	}
	return false, runSolutions(w, fields, sampleMode)
}
