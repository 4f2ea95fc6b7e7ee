package regex

// matchHere matches re against in, anchored at i.
// It returns the position in `in` the match ended at.
func matchHere(re string, in string, i int) (int, bool) {
	if re == "" {
		return i, true
	}

	tok, err := scanToken(re)
	if err != nil {
		return i, false
	}
	rest := re[tok.width():]

	switch tok.quant {
	case zeroOrOne:
		return matchZeroOrOne(tok, rest, in, i)
	case oneOrMore:
		if tok.isGroup {
			return matchGroupMore(tok.group, rest, in, i, false)
		}
		return matchOneOrMore(tok.class, rest, in, i)
	case zeroOrMore:
		if tok.isGroup {
			return matchGroupMore(tok.group, rest, in, i, true)
		}
		return matchZeroOrMore(tok.class, rest, in, i)
	}

	if i >= len(in) || !tok.matches(in[i]) {
		return i, false
	}
	return matchHere(rest, in, i+1)
}

// matchZeroOrOne is shared by single characters and groups, both only ever
// test one character.
func matchZeroOrOne(tok token, rest string, in string, i int) (int, bool) {
	if i < len(in) && tok.matches(in[i]) {
		end, match := matchHere(rest, in, i+1)
		if match {
			return end, match
		}
	}

	// nothing consumed
	return matchHere(rest, in, i)
}

func matchOneOrMore(cl class, rest string, in string, i int) (int, bool) {
	n := 0
	for i+n < len(in) && cl.matches(in[i+n]) {
		n++
	}
	if n == 0 {
		return i, false
	}
	return backtrack(rest, in, i, n, 1)
}

func matchZeroOrMore(cl class, rest string, in string, i int) (int, bool) {
	n := 0
	for i+n < len(in) && cl.matches(in[i+n]) {
		n++
	}
	return backtrack(rest, in, i, n, 0)
}

// matchGroupMore handles [...]+ and [...]*. The alternatives of the group are
// evaluated again for every character of the run.
func matchGroupMore(group string, rest string, in string, i int, isZeroOrMore bool) (int, bool) {
	n := 0
	for i+n < len(in) && groupContains(group, in[i+n]) {
		n++
	}

	if n > 0 {
		end, match := backtrack(rest, in, i, n, 1)
		if match {
			return end, match
		}
	}

	if isZeroOrMore {
		return matchHere(rest, in, i)
	}
	return i, false
}

// backtrack tries to match rest after consuming count characters, starting
// with count n and going down to count mi (greedy).
func backtrack(rest string, in string, i, n, mi int) (int, bool) {
	for count := n; count >= mi; count-- {
		end, match := matchHere(rest, in, i+count)
		if match {
			return end, match
		}
	}
	return i, false
}
