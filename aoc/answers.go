package aoc

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoAnswer = errors.New("no recorded answer")

// Answers maps solution names to known-correct answers.
type Answers map[string]int

func LoadAnswers(path string) (Answers, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Answers
	if err := yaml.Unmarshal(b, &a); err != nil {
		return nil, fmt.Errorf("error parsing answers (%s): %w", path, err)
	}
	if a == nil {
		a = make(Answers)
	}
	return a, nil
}

// Check compares got with the recorded answer for name.
func (a Answers) Check(name string, got int) error {
	want, ok := a[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrNoAnswer)
	}
	if got != want {
		return fmt.Errorf("%s: got %d; want %d", name, got, want)
	}
	return nil
}
