// Package day1 recovers trebuchet calibration values: the first and last
// digit on each line of a document, read as a two-digit number.
package day1

import (
	"bufio"
	_ "embed"
	"strings"
)

var (
	//go:embed sample1.txt
	Sample1 string
	//go:embed sample2.txt
	Sample2 string
)

var spellings = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// reversed holds the spellings with their characters reversed ("eno", "owt",
// ...) so the last digit of a line can be found by scanning it backwards.
var reversed = reverseKeys(spellings)

func reverseKeys(m map[string]int) map[string]int {
	r := make(map[string]int, len(m))
	for k, v := range m {
		r[reverse(k)] = v
	}
	return r
}

// Part1 sums the calibration values of input counting literal digits only.
func Part1(input string) (int, error) {
	return sum(input, false)
}

// Part2 sums the calibration values of input where digits may also be
// spelled out as words.
func Part2(input string) (int, error) {
	return sum(input, true)
}

func sum(input string, words bool) (int, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	var total int
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		n, _ := Calibration(line, words)
		total += n
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return total, nil
}

// Calibration returns 10*first + last for the first and last digit in line.
// If words is set, spelled-out digits ("one" through "nine") count too.
// Spellings may overlap: "eightwo" has first digit 8 and last digit 2.
// If line contains no digit, Calibration returns (0, false).
func Calibration(line string, words bool) (int, bool) {
	var fwd, rev map[string]int
	if words {
		fwd, rev = spellings, reversed
	}
	first, ok := firstDigit(line, fwd)
	if !ok {
		return 0, false
	}
	last, _ := firstDigit(reverse(line), rev)
	return 10*first + last, true
}

// firstDigit scans s one character at a time and returns the first digit,
// either a numeral or a key of words starting at that position.
func firstDigit(s string, words map[string]int) (int, bool) {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			return int(c - '0'), true
		}
		for w, n := range words {
			if strings.HasPrefix(s[i:], w) {
				return n, true
			}
		}
	}
	return 0, false
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
