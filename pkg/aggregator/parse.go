package aggregator

import (
	"strconv"
	"strings"
)

// ParseLeadingInt parses the leading base-10 integer of s, ignoring leading
// whitespace and any trailing text ("3 people" is 3). Returns 0 when s does
// not start with a number.
func ParseLeadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\f\v")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
