// Package day3 reads an engine schematic: a grid of digits, symbols and '.'
// filler. Numbers touching a symbol are part numbers; a '*' touching exactly
// two numbers is a gear.
package day3

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"strings"
)

//go:embed sample.txt
var Sample string

const filler = '.'

var ErrEmpty = errors.New("empty schematic")

type Schematic struct {
	rows   [][]byte
	width  int
	height int
}

// Parse reads a rectangular grid, one row per line. Trailing blank lines are
// ignored.
func Parse(input string) (*Schematic, error) {
	s := new(Schematic)
	scanner := bufio.NewScanner(strings.NewReader(strings.TrimRight(input, "\n")))
	for scanner.Scan() {
		row := []byte(scanner.Text())
		if len(s.rows) == 0 {
			s.width = len(row)
		} else if len(row) != s.width {
			return nil, fmt.Errorf("row %d has width %d; want %d", len(s.rows)+1, len(row), s.width)
		}
		s.rows = append(s.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(s.rows) == 0 || s.width == 0 {
		return nil, ErrEmpty
	}
	s.height = len(s.rows)
	return s, nil
}

func (s *Schematic) Width() int  { return s.width }
func (s *Schematic) Height() int { return s.height }

func (s *Schematic) in(row, col int) bool {
	return row >= 0 && row < s.height && col >= 0 && col < s.width
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != filler && !isDigit(c) }

// A Run is a maximal horizontal sequence of digits in columns [Start, End).
type Run struct {
	Row, Start, End int
	Value           int
}

// adjacent reports whether (row, col) is one of the 8-connected neighbors of
// r (or a cell of r itself).
func (r Run) adjacent(row, col int) bool {
	return row >= r.Row-1 && row <= r.Row+1 && col >= r.Start-1 && col <= r.End
}

// Runs returns every digit run in the grid, in reading order.
func (s *Schematic) Runs() []Run {
	var runs []Run
	for row, line := range s.rows {
		for col := 0; col < len(line); {
			if !isDigit(line[col]) {
				col++
				continue
			}
			r := Run{Row: row, Start: col}
			for ; col < len(line) && isDigit(line[col]); col++ {
				r.Value = 10*r.Value + int(line[col]-'0')
			}
			r.End = col
			runs = append(runs, r)
		}
	}
	return runs
}

// touchesSymbol checks the box around r, clipped to the grid.
func (s *Schematic) touchesSymbol(r Run) bool {
	for row := r.Row - 1; row <= r.Row+1; row++ {
		for col := r.Start - 1; col <= r.End; col++ {
			if !s.in(row, col) {
				continue
			}
			if isSymbol(s.rows[row][col]) {
				return true
			}
		}
	}
	return false
}

// PartNumbers returns the runs adjacent to at least one symbol.
func (s *Schematic) PartNumbers() []Run {
	var parts []Run
	for _, r := range s.Runs() {
		if s.touchesSymbol(r) {
			parts = append(parts, r)
		}
	}
	return parts
}

type Gear struct {
	Row, Col int
	Parts    [2]Run
}

func (g Gear) Ratio() int { return g.Parts[0].Value * g.Parts[1].Value }

// Gears returns every '*' adjacent to exactly two runs.
func (s *Schematic) Gears() []Gear {
	byRow := make([][]Run, s.height)
	for _, r := range s.Runs() {
		byRow[r.Row] = append(byRow[r.Row], r)
	}
	var gears []Gear
	for row, line := range s.rows {
		for col, c := range line {
			if c != '*' {
				continue
			}
			var near []Run
			for rr := row - 1; rr <= row+1; rr++ {
				if rr < 0 || rr >= s.height {
					continue
				}
				for _, r := range byRow[rr] {
					if r.adjacent(row, col) {
						near = append(near, r)
					}
				}
			}
			if len(near) == 2 {
				gears = append(gears, Gear{Row: row, Col: col, Parts: [2]Run{near[0], near[1]}})
			}
		}
	}
	return gears
}

// Part1 sums the part numbers in the schematic.
func Part1(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, r := range s.PartNumbers() {
		sum += r.Value
	}
	return sum, nil
}

// Part2 sums the gear ratios in the schematic.
func Part2(input string) (int, error) {
	s, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum int
	for _, g := range s.Gears() {
		sum += g.Ratio()
	}
	return sum, nil
}
