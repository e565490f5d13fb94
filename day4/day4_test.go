package day4

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPart1(t *testing.T) {
	got, err := Part1(Sample)
	if err != nil {
		t.Fatal(err)
	}
	if want := 13; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(Sample)
	if err != nil {
		t.Fatal(err)
	}
	if want := 30; got != want {
		t.Errorf("got %d; want %d", got, want)
	}
}

func TestParse(t *testing.T) {
	cards, err := Parse("Card   3:  1 21 | 69  1\n")
	if err != nil {
		t.Fatal(err)
	}
	want := []Card{{ID: 3, Winning: []int{1, 21}, Owned: []int{69, 1}}}
	if diff := cmp.Diff(want, cards); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		input   string
		errText string
	}{
		{"Card 1 41 48 | 83", "missing ':'"},
		{"Card 1: 41 48 83", "missing '|'"},
		{"Card x: 1 | 2", "bad card id"},
		{"Ticket 1: 1 | 2", "malformed card header"},
		{"Card 1: 1 | 2\nCard 2: 1 | z", "line 2"},
	} {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q): got nil error", tt.input)
			continue
		}
		if !strings.Contains(err.Error(), tt.errText) {
			t.Errorf("Parse(%q): got error %q; want it to mention %q", tt.input, err, tt.errText)
		}
	}
}

func TestMatchesAndPoints(t *testing.T) {
	cards, err := Parse(Sample)
	if err != nil {
		t.Fatal(err)
	}
	wantMatches := []int{4, 2, 2, 1, 0, 0}
	wantPoints := []int{8, 2, 2, 1, 0, 0}
	for i, c := range cards {
		if got := c.Matches(); got != wantMatches[i] {
			t.Errorf("card %d matches: got %d; want %d", c.ID, got, wantMatches[i])
		}
		if got := c.Points(); got != wantPoints[i] {
			t.Errorf("card %d points: got %d; want %d", c.ID, got, wantPoints[i])
		}
	}
}

func TestCascade(t *testing.T) {
	for _, tt := range []struct {
		matches []int
		want    []int
	}{
		{nil, []int{}},
		{[]int{0, 0, 0}, []int{1, 1, 1}},
		{[]int{4, 2, 2, 1, 0, 0}, []int{1, 2, 4, 8, 14, 1}},
		{[]int{1, 1, 1}, []int{1, 2, 3}},
		{[]int{0, 5}, []int{1, 1}},
	} {
		in := append([]int(nil), tt.matches...)
		got := Cascade(tt.matches)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Cascade(%v) mismatch (-want +got):\n%s", tt.matches, diff)
		}
		if diff := cmp.Diff(in, tt.matches); diff != "" {
			t.Errorf("Cascade modified its argument (-before +after):\n%s", diff)
		}
	}
}

func TestNoMatchesScoreZero(t *testing.T) {
	got, err := Part1("Card 1: 1 2 3 | 4 5 6\nCard 2: 7 | 8")
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("got %d; want 0", got)
	}
}

func TestPartsIndependent(t *testing.T) {
	for i := 0; i < 2; i++ {
		p2, err := Part2(Sample)
		if err != nil {
			t.Fatal(err)
		}
		p1, err := Part1(Sample)
		if err != nil {
			t.Fatal(err)
		}
		if p1 != 13 || p2 != 30 {
			t.Errorf("run %d: got (%d, %d); want (13, 30)", i, p1, p2)
		}
	}
}
