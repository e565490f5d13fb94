package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/advent2023/aoc"
	"github.com/cespare/cp"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const wantAll = `day1 part1 -> 142
day1 part2 -> 281
day2 part1 -> 8
day2 part2 -> 2286
day3 part1 -> 4361
day3 part2 -> 467835
day4 part1 -> 13
day4 part2 -> 30
`

// stageInputs copies the sample files into a fresh input directory and
// points cfg at it.
func stageInputs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for dst, src := range map[string]string{
		"day1.txt":   "../day1/sample1.txt",
		"day1_2.txt": "../day1/sample2.txt",
		"day2.txt":   "../day2/sample.txt",
		"day3.txt":   "../day3/sample.txt",
		"day4.txt":   "../day4/sample.txt",
	} {
		require.NoError(t, cp.CopyFile(filepath.Join(dir, dst), src))
	}
	old := cfg
	t.Cleanup(func() { cfg = old })
	cfg = aoc.DefaultConfig()
	cfg.InputDir = dir
	cfg.Inputs["1b"] = "day1_2.txt"
	return dir
}

func TestSolutionNames(t *testing.T) {
	want := []string{"1a", "1b", "2a", "2b", "3a", "3b", "4a", "4b"}
	if diff := cmp.Diff(want, solutionNames()); diff != "" {
		t.Errorf("solutionNames mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	require.Panics(t, func() { register("1a", solution{}) })
}

func TestRunSamples(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runSolutions(&buf, nil, true))
	if diff := cmp.Diff(wantAll, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunInputs(t *testing.T) {
	stageInputs(t)
	var buf bytes.Buffer
	require.NoError(t, runSolutions(&buf, nil, false))
	if diff := cmp.Diff(wantAll, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSelected(t *testing.T) {
	stageInputs(t)
	var buf bytes.Buffer
	require.NoError(t, runSolutions(&buf, []string{"4b", "2a"}, false))
	want := "day4 part2 -> 30\nday2 part1 -> 8\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestRunCubeLimits(t *testing.T) {
	stageInputs(t)
	cfg.Cubes["red"] = 20
	cfg.Cubes["blue"] = 15
	ans, err := solve("2a", false)
	require.NoError(t, err)
	// Games 3 and 4 become possible.
	if want := 15; ans != want {
		t.Errorf("got %d; want %d", ans, want)
	}
}

func TestRunFailsFast(t *testing.T) {
	dir := stageInputs(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day2.txt"), []byte("Game 1: 3 purple\n"), 0644))
	var buf bytes.Buffer
	err := runSolutions(&buf, nil, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown color")
	// Nothing after the failing solution is printed.
	if got, want := buf.String(), "day1 part1 -> 142\nday1 part2 -> 281\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestRunMissingInput(t *testing.T) {
	old := cfg
	t.Cleanup(func() { cfg = old })
	cfg = aoc.DefaultConfig()
	cfg.InputDir = t.TempDir()
	_, err := solve("3a", false)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := runSolutions(&buf, []string{"9z"}, true)
	require.Error(t, err)
	if buf.Len() != 0 {
		t.Errorf("got output %q; want none", buf.String())
	}
}

func TestCheck(t *testing.T) {
	stageInputs(t)
	answers := aoc.Answers{"1a": 142, "4b": 30}

	var buf bytes.Buffer
	require.NoError(t, checkSolutions(&buf, []string{"1a", "4a", "4b"}, answers))
	want := `ok   day1 part1 -> 142
?    day4 part1 -> 13 (no recorded answer)
ok   day4 part2 -> 30
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	answers["4a"] = 14
	require.Error(t, checkSolutions(&buf, []string{"4a"}, answers))
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dumpSolution(&buf, "4a", true))
	out := buf.String()
	for _, want := range []string{"day4.Card", "ID:", "Winning:", "41"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	require.NoError(t, dumpSolution(&buf, "1b", true))
	if !strings.Contains(buf.String(), "eightwothree") {
		t.Errorf("dump output missing line text:\n%s", buf.String())
	}
}

func TestReplExec(t *testing.T) {
	for _, tt := range []struct {
		line     string
		want     string
		wantQuit bool
		wantErr  bool
	}{
		{line: ""},
		{line: "sample 3b", want: "day3 part2 -> 467835\n"},
		{line: "sample 1a 2b", want: "day1 part1 -> 142\nday2 part2 -> 2286\n"},
		{line: "list", want: "1a  day1 part1"},
		{line: "help", want: "commands:"},
		{line: "bogus", wantErr: true},
		{line: "dump", wantErr: true},
		{line: "quit", wantQuit: true},
	} {
		var buf bytes.Buffer
		quit, err := replExec(&buf, tt.line)
		if (err != nil) != tt.wantErr {
			t.Errorf("replExec(%q): got err %v; want error: %t", tt.line, err, tt.wantErr)
		}
		if quit != tt.wantQuit {
			t.Errorf("replExec(%q): got quit %t; want %t", tt.line, quit, tt.wantQuit)
		}
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("replExec(%q): got output %q; want prefix %q", tt.line, buf.String(), tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got, want := label("3b"), "day3 part2"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestStartProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advent.pprof")
	stop, err := startProfile(path)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, runSolutions(&buf, []string{"3a"}, true))
	require.NoError(t, stop())
	fi, err := os.Stat(path)
	require.NoError(t, err)
	if fi.Size() == 0 {
		t.Error("profile is empty")
	}
}
