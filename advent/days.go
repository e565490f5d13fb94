package main

import (
	"strings"

	"github.com/cespare/advent2023/aoc"
	"github.com/cespare/advent2023/day1"
	"github.com/cespare/advent2023/day2"
	"github.com/cespare/advent2023/day3"
	"github.com/cespare/advent2023/day4"
)

func init() {
	register("1a", solution{
		input:  "day1.txt",
		sample: day1.Sample1,
		want:   142,
		solve:  ignoreConfig(day1.Part1),
		parse:  parseLines,
	})
	register("1b", solution{
		input:  "day1.txt",
		sample: day1.Sample2,
		want:   281,
		solve:  ignoreConfig(day1.Part2),
		parse:  parseLines,
	})

	parseGames := func(input string) (any, error) { return day2.Parse(input) }
	register("2a", solution{
		input:  "day2.txt",
		sample: day2.Sample,
		want:   8,
		solve: func(cfg *aoc.Config, input string) (int, error) {
			return day2.Part1(input, cubeLimits(cfg))
		},
		parse: parseGames,
	})
	register("2b", solution{
		input:  "day2.txt",
		sample: day2.Sample,
		want:   2286,
		solve:  ignoreConfig(day2.Part2),
		parse:  parseGames,
	})

	parseSchematic := func(input string) (any, error) {
		s, err := day3.Parse(input)
		if err != nil {
			return nil, err
		}
		return struct {
			Width, Height int
			Parts         []day3.Run
			Gears         []day3.Gear
		}{s.Width(), s.Height(), s.PartNumbers(), s.Gears()}, nil
	}
	register("3a", solution{
		input:  "day3.txt",
		sample: day3.Sample,
		want:   4361,
		solve:  ignoreConfig(day3.Part1),
		parse:  parseSchematic,
	})
	register("3b", solution{
		input:  "day3.txt",
		sample: day3.Sample,
		want:   467835,
		solve:  ignoreConfig(day3.Part2),
		parse:  parseSchematic,
	})

	parseCards := func(input string) (any, error) { return day4.Parse(input) }
	register("4a", solution{
		input:  "day4.txt",
		sample: day4.Sample,
		want:   13,
		solve:  ignoreConfig(day4.Part1),
		parse:  parseCards,
	})
	register("4b", solution{
		input:  "day4.txt",
		sample: day4.Sample,
		want:   30,
		solve:  ignoreConfig(day4.Part2),
		parse:  parseCards,
	})
}

func ignoreConfig(fn func(string) (int, error)) func(*aoc.Config, string) (int, error) {
	return func(_ *aoc.Config, input string) (int, error) { return fn(input) }
}

func cubeLimits(cfg *aoc.Config) day2.Limits {
	limits := make(day2.Limits, len(cfg.Cubes))
	for color, n := range cfg.Cubes {
		limits[day2.Color(color)] = n
	}
	return limits
}

// parseLines shows each calibration line next to its values with and without
// spelled-out digits.
func parseLines(input string) (any, error) {
	type line struct {
		Text          string
		Digits, Words int
	}
	var lines []line
	for _, text := range splitLines(input) {
		d, _ := day1.Calibration(text, false)
		w, _ := day1.Calibration(text, true)
		lines = append(lines, line{text, d, w})
	}
	return lines, nil
}

func splitLines(input string) []string {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
