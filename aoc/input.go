package aoc

import (
	"fmt"
	"os"
	"strings"
)

// An Input is a puzzle input held entirely in memory.
type Input struct {
	Path string
	Text string
}

func ReadInput(path string) (*Input, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return &Input{Path: path, Text: string(b)}, nil
}

// SampleInput wraps an embedded sample.
func SampleInput(name, text string) *Input {
	return &Input{Path: "sample:" + name, Text: text}
}

func (in *Input) Size() int { return len(in.Text) }

// Lines counts the non-empty lines.
func (in *Input) Lines() int {
	var n int
	for _, line := range strings.Split(in.Text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
