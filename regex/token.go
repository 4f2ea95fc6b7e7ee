package regex

import "fmt"

// SyntaxError describes a malformed pattern. Match and Find treat a malformed
// pattern as one that matches nothing, Check reports it.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Offset, e.Message)
}

func newSyntaxError(i int, msg string) *SyntaxError {
	return &SyntaxError{Offset: i, Message: msg}
}

type quantifier byte

const (
	exactlyOne quantifier = 0
	zeroOrOne  quantifier = '?'
	oneOrMore  quantifier = '+'
	zeroOrMore quantifier = '*'
)

// token is one unit of a pattern as it is encountered during matching.
// Tokens are scanned on demand and never stored beyond a single step.
type token struct {
	// group holds what is between '[' and ']', only set if isGroup
	group   string
	isGroup bool
	class   class
	quant   quantifier
	// number of pattern bytes taken by the unit itself, without quantifier
	unitWidth int
}

// width is how far the pattern cursor jumps past this token.
func (t token) width() int {
	if t.quant == exactlyOne {
		return t.unitWidth
	}
	return t.unitWidth + 1
}

func (t token) matches(c byte) bool {
	if t.isGroup {
		return groupContains(t.group, c)
	}
	return t.class.matches(c)
}

// scanToken reads the token at the start of re.
func scanToken(re string) (token, error) {
	var tok token
	switch re[0] {
	case '[':
		// the first ']' closes the group, there is no way to escape it
		end := 1
		for end < len(re) && re[end] != ']' {
			end++
		}
		if end >= len(re) {
			return token{}, newSyntaxError(0, "did not find closing ']'")
		}
		tok = token{group: re[1:end], isGroup: true, unitWidth: end + 1}
	case '\\':
		if len(re) < 2 {
			return token{}, newSyntaxError(0, "unexpected end of pattern after '\\'")
		}
		tok = token{class: escapeClass(re[1]), unitWidth: 2}
	case '.':
		tok = token{class: anyChar, unitWidth: 1}
	default:
		// this also covers a quantifier with nothing in front of it
		tok = token{class: literal(re[0]), unitWidth: 1}
	}

	tok.quant = scanQuantifier(re, tok.unitWidth)
	return tok, nil
}

// ? and * and +
func scanQuantifier(re string, i int) quantifier {
	if i >= len(re) {
		return exactlyOne
	}

	switch q := quantifier(re[i]); q {
	case zeroOrOne, oneOrMore, zeroOrMore:
		return q
	}
	return exactlyOne
}

// groupContains reports whether c is matched by any element of a group body.
// The body is walked again on every call and the walk stops at the first
// element that matches.
func groupContains(body string, c byte) bool {
	for j := 0; j < len(body); {
		var cl class
		switch {
		case body[j] == '\\' && j+1 < len(body):
			cl = escapeClass(body[j+1])
			j += 2
		case body[j] == '.':
			cl = anyChar
			j++
		default:
			// includes a trailing '\' right before ']'
			cl = literal(body[j])
			j++
		}

		if cl.matches(c) {
			return true
		}
	}
	return false
}
