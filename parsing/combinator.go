// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parsing

import (
	"strings"

	"github.com/z5labs/timefmt/description"
)

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// digits consumes between min and max ASCII digits.
func digits(input string, min, max int) (n int, rest string, ok bool) {
	i := 0
	for i < len(input) && i < max && isDigit(input[i]) {
		n = n*10 + int(input[i]-'0')
		i++
	}
	if i < min {
		return 0, input, false
	}
	return n, input[i:], true
}

// padded consumes a number which occupies width bytes when padded.
func padded(input string, width int, padding description.Padding) (int, string, bool) {
	switch padding {
	case description.PaddingNone:
		return digits(input, 1, width)
	case description.PaddingSpace:
		spaces := 0
		for spaces < width-1 && spaces < len(input) && input[spaces] == ' ' {
			spaces++
		}
		n := width - spaces
		return digits(input[spaces:], n, n)
	default:
		return digits(input, width, width)
	}
}

// sign consumes an optional '+' or '-'.
func sign(input string) (negative bool, present bool, rest string) {
	if input == "" {
		return false, false, input
	}
	switch input[0] {
	case '+':
		return false, true, input[1:]
	case '-':
		return true, true, input[1:]
	}
	return false, false, input
}

// oneOf consumes the longest of names which prefixes input,
// returning its index in names.
func oneOf(input string, names []string, caseInsensitive bool) (index int, rest string, ok bool) {
	best := -1
	for i, name := range names {
		if len(name) > len(input) {
			continue
		}
		prefix := input[:len(name)]
		match := prefix == name || (caseInsensitive && strings.EqualFold(prefix, name))
		if match && (best < 0 || len(name) > len(names[best])) {
			best = i
		}
	}
	if best < 0 {
		return 0, input, false
	}
	return best, input[len(names[best]):], true
}
