package regex

import "slices"

type charRange struct {
	from byte
	to   byte
}

func (r charRange) inRange(c byte) bool {
	return c >= r.from && c <= r.to
}

// class is a set of characters a single line character is tested against.
// A negated class matches every character outside of its ranges.
type class struct {
	negate bool
	ranges []charRange
}

func (cl class) matches(c byte) bool {
	return slices.ContainsFunc(cl.ranges, func(r charRange) bool { return r.inRange(c) }) != cl.negate
}

func (cl class) negated() class {
	return class{negate: !cl.negate, ranges: cl.ranges}
}

var (
	digits     = class{ranges: []charRange{{from: '0', to: '9'}}}
	letters    = class{ranges: []charRange{{from: 'a', to: 'z'}, {from: 'A', to: 'Z'}}}
	whitespace = class{ranges: []charRange{{from: ' ', to: ' '}, {from: '\t', to: '\t'}}}
	// the line terminator is never part of a line
	anyChar = class{negate: true, ranges: []charRange{{from: '\n', to: '\n'}}}
)

func literal(c byte) class {
	return class{ranges: []charRange{{from: c, to: c}}}
}

// supported: \d, \D, \w, \W, \s
// every other escaped character stands for itself, see escapedChar
func escapeClass(c byte) class {
	switch c {
	case 'd':
		return digits
	case 'D':
		return digits.negated()
	case 'w':
		return letters
	case 'W':
		return letters.negated()
	case 's':
		return whitespace
	}
	return literal(escapedChar(c))
}

// parse an ASCII escape sequence from c if there is one (e.g. '\t', '\n', ...)
// if c isn't an ASCII escape sequence, return c
// should be called if the character preceding c in the pattern is '\'
// https://en.wikipedia.org/wiki/Escape_sequences_in_C
func escapedChar(c byte) byte {
	switch c {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'e':
		return 0x1b
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	}
	return c
}
