// Package day4 scores scratchcards. Each card lists winning numbers and the
// numbers the holder owns; matches between the two drive the scoring.
package day4

import (
	"bufio"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed sample.txt
var Sample string

type Card struct {
	ID      int
	Winning []int
	Owned   []int
}

// Matches counts the owned numbers that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	var m int
	for _, n := range c.Owned {
		if _, ok := winning[n]; ok {
			m++
		}
	}
	return m
}

// Points is 1 for the first match, doubled for each match after it.
func (c Card) Points() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// Cascade returns how many copies of each card end up being held when card i,
// having matches[i] matches, wins one more copy of each of the next
// matches[i] cards for every copy of card i held. Wins past the last card
// are dropped.
func Cascade(matches []int) []int {
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	for i, m := range matches {
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}

// Part1 totals the points of every card in input.
func Part1(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, c := range cards {
		sum += c.Points()
	}
	return sum, nil
}

// Part2 counts the cards held once all won copies are collected.
func Part2(input string) (int, error) {
	cards, err := Parse(input)
	if err != nil {
		return 0, err
	}
	matches := make([]int, len(cards))
	for i, c := range cards {
		matches[i] = c.Matches()
	}
	var sum int
	for _, n := range Cascade(matches) {
		sum += n
	}
	return sum, nil
}

// Parse reads one card per line in the form
//
//	Card 1: 41 48 83 | 83 86  6
func Parse(input string) ([]Card, error) {
	var cards []Card
	scanner := bufio.NewScanner(strings.NewReader(strings.TrimSpace(input)))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := parseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		cards = append(cards, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cards, nil
}

func parseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' in %q", line)
	}
	fields := strings.Fields(head)
	if len(fields) != 2 || fields[0] != "Card" {
		return Card{}, fmt.Errorf("malformed card header %q", head)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return Card{}, fmt.Errorf("bad card id %q: %w", fields[1], err)
	}
	winning, owned, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("card %d: missing '|'", id)
	}
	c := Card{ID: id}
	if c.Winning, err = parseNumbers(winning); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	if c.Owned, err = parseNumbers(owned); err != nil {
		return Card{}, fmt.Errorf("card %d: %w", id, err)
	}
	return c, nil
}

func parseNumbers(s string) ([]int, error) {
	fields := strings.Fields(s)
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", f)
		}
		nums[i] = n
	}
	return nums, nil
}
