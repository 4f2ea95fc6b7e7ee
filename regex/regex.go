// Package regex is a small backtracking regex engine.
//
// Supported syntax:
//
//	c        literal character
//	.        any character
//	\d \D    digit, non-digit
//	\w \W    ASCII letter, non-letter (no digits, no '_')
//	\s       space or tab
//	\\       backslash, any other escaped character stands for itself
//	[...]    any of the characters and escape classes between the brackets
//	? + *    zero or one, one or more, zero or more of the preceding unit
//
// Patterns are not compiled, they are interpreted while matching. There are
// no groups, no alternation and no anchors.
package regex

import "strings"

// Location is where a match starts and ends in the searched line.
type Location struct {
	Start int
	End   int
}

// Match returns the start of the leftmost match of pattern in line.
func Match(pattern string, line string) (int, bool) {
	loc, ok := Find(pattern, line)
	return loc.Start, ok
}

// Find is like Match, but also returns where the match ends.
// Among the matches starting at the same position the quantifiers decide the
// end, each one consuming as much as it can.
func Find(pattern string, line string) (Location, bool) {
	// a malformed pattern can never match
	if Check(pattern) != nil {
		return Location{}, false
	}

	for i := 0; i <= len(line); i++ {
		end, match := matchHere(pattern, line, i)
		if match {
			return Location{Start: i, End: end}, true
		}
	}
	return Location{}, false
}

// Check reports the first syntax error in pattern, it returns a *SyntaxError.
func Check(pattern string) error {
	for i := 0; i < len(pattern); {
		tok, err := scanToken(pattern[i:])
		if err != nil {
			se := err.(*SyntaxError)
			se.Offset += i
			return se
		}
		i += tok.width()
	}
	return nil
}

// IsLiteral reports whether pattern is a non-empty plain string without any
// meta characters, in which case matching is the same as a substring search.
func IsLiteral(pattern string) bool {
	return pattern != "" && !strings.ContainsAny(pattern, `.\[?+*`)
}
