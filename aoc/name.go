package aoc

import (
	"fmt"
	"strconv"
)

// NameLess orders solution names by day number, then by part suffix, so
// that "2a" sorts before "10a".
func NameLess(name0, name1 string) bool {
	n0, s0 := SplitName(name0)
	n1, s1 := SplitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

// SplitName splits a name like "3b" into its day and part. It panics if the
// name does not start with a number.
func SplitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(fmt.Sprintf("bad solution name %q", name))
	}
	return n, name[i:]
}

// PartNumber maps a part suffix ("a", "b") to its 1-based number.
func PartNumber(part string) int {
	if len(part) != 1 || part[0] < 'a' || part[0] > 'z' {
		return 0
	}
	return int(part[0]-'a') + 1
}
