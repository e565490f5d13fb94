// Package day2 evaluates the cube game: a bag holds red, green and blue
// cubes, and each game records handfuls drawn from it.
package day2

import (
	"bufio"
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//go:embed sample.txt
var Sample string

type Color string

const (
	Red   Color = "red"
	Green Color = "green"
	Blue  Color = "blue"
)

var colors = []Color{Red, Green, Blue}

func parseColor(s string) (Color, error) {
	for _, c := range colors {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown color %q", s)
}

type Draw struct {
	Count int
	Color Color
}

// A Round is one handful of cubes shown during a game.
type Round []Draw

type Game struct {
	ID     int
	Rounds []Round
}

// Limits caps the number of cubes of each color in the bag.
type Limits map[Color]int

// DefaultLimits is the bag from the puzzle statement.
var DefaultLimits = Limits{Red: 12, Green: 13, Blue: 14}

// Possible reports whether g could have been played with a bag holding at
// most limits cubes of each color. A color missing from limits allows none.
func (g Game) Possible(limits Limits) bool {
	for _, r := range g.Rounds {
		for _, d := range r {
			if d.Count > limits[d.Color] {
				return false
			}
		}
	}
	return true
}

// Minimum returns the fewest cubes of each color that make g possible.
// Colors that never appear have a minimum of 1.
func (g Game) Minimum() map[Color]int {
	m := map[Color]int{Red: 1, Green: 1, Blue: 1}
	for _, r := range g.Rounds {
		for _, d := range r {
			if d.Count > m[d.Color] {
				m[d.Color] = d.Count
			}
		}
	}
	return m
}

// Power is the product of the counts in g's minimum set.
func (g Game) Power() int {
	p := 1
	for _, n := range g.Minimum() {
		p *= n
	}
	return p
}

// Part1 sums the IDs of the games in input that are possible under limits.
func Part1(input string, limits Limits) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, g := range games {
		if g.Possible(limits) {
			sum += g.ID
		}
	}
	return sum, nil
}

// Part2 sums the power of the minimum set of every game in input.
func Part2(input string) (int, error) {
	games, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, g := range games {
		sum += g.Power()
	}
	return sum, nil
}

var gameRx = regexp.MustCompile(`^Game ([0-9]+): (.+)$`)

// Parse reads one game per line. Blank lines are ignored.
func Parse(input string) ([]Game, error) {
	var games []Game
	scanner := bufio.NewScanner(strings.NewReader(input))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		g, err := parseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		games = append(games, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

func parseGame(line string) (Game, error) {
	m := gameRx.FindStringSubmatch(line)
	if m == nil {
		return Game{}, fmt.Errorf("malformed game %q", line)
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Game{}, fmt.Errorf("bad game id %q: %w", m[1], err)
	}
	g := Game{ID: id}
	for _, part := range strings.Split(m[2], ";") {
		var r Round
		for _, field := range strings.Split(part, ",") {
			d, err := parseDraw(strings.TrimSpace(field))
			if err != nil {
				return Game{}, fmt.Errorf("game %d: %w", id, err)
			}
			r = append(r, d)
		}
		g.Rounds = append(g.Rounds, r)
	}
	return g, nil
}

func parseDraw(s string) (Draw, error) {
	count, color, ok := strings.Cut(s, " ")
	if !ok {
		return Draw{}, fmt.Errorf("malformed draw %q", s)
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 0 {
		return Draw{}, fmt.Errorf("bad count in draw %q", s)
	}
	c, err := parseColor(color)
	if err != nil {
		return Draw{}, err
	}
	return Draw{Count: n, Color: c}, nil
}
