package lexer

import "strconv"

// token tries each category recogniser in turn: literal-shaped tokens
// first, then keywords, then operators and symbols, then identifiers, with
// the unknown fallback last since it never fails while input remains.
func token(c *cursor) (Token, bool) {
	return oneOf(c,
		backtrackable(recognizeNumber),
		recognizeString,
		backtrackable(recognizeKeyword),
		recognizeComment,
		backtrackable(recognizeOperator),
		backtrackable(recognizeSymbol),
		backtrackable(recognizeIdentifier),
		recognizeUnknown,
	)
}

// recognizeNumber scans an integer or float literal, widening both to
// float64. Hex, octal and binary forms are not recognised; a leading "0x"
// scans the "0" as a Number and leaves "x..." for the next token.
func recognizeNumber(c *cursor) (Token, bool) {
	text, ok := getChompedString(c, func(c *cursor) bool {
		if !chompIf(c, isDigit) {
			return false
		}
		chompWhile(c, isDigit)
		if ch, ok := c.peek(); ok && ch == '.' {
			if next, ok2 := c.peekAt(1); ok2 && isDigit(next) {
				c.pos++ // consume '.'
				chompWhile(c, isDigit)
			}
		}
		return true
	})
	if !ok {
		return Token{}, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, false
	}
	return numberToken(v), true
}

// recognizeString scans a double-quoted literal. \n, \t and \r are the
// only recognised escapes; any other backslash sequence fails the whole
// recogniser, since string is not backtrackable.
func recognizeString(c *cursor) (Token, bool) {
	if !literal(c, `"`) {
		return Token{}, false
	}

	var buf []rune
	closed := loop(true, func(continuing bool) loopOutcome[bool, bool] {
		ch, has := c.peek()
		if !has {
			return loopDone[bool, bool](false) // unterminated string
		}
		if ch == '"' {
			c.pos++
			return loopDone[bool, bool](true)
		}
		if ch == '\\' {
			esc, hasEsc := c.peekAt(1)
			if !hasEsc {
				return loopDone[bool, bool](false)
			}
			switch esc {
			case 'n':
				buf = append(buf, '\n')
			case 't':
				buf = append(buf, '\t')
			case 'r':
				buf = append(buf, '\r')
			default:
				return loopDone[bool, bool](false)
			}
			c.pos += 2
			return loopContinue[bool, bool](true)
		}
		buf = append(buf, ch)
		c.pos++
		return loopContinue[bool, bool](true)
	})

	if !closed {
		return Token{}, false
	}
	return stringToken(string(buf)), true
}

// recognizeKeyword tries each reserved word longest-first so a 4-letter
// keyword is preferred over a 2-letter prefix of it, and rejects a match
// that is actually a prefix of a longer identifier ("let" must not match
// the first three characters of "lets").
func recognizeKeyword(c *cursor) (Token, bool) {
	for _, kw := range keywordsByLength {
		start := c.pos
		if !literal(c, kw) {
			continue
		}
		if next, ok := c.peek(); ok && isLowerIdentContinue(next) {
			c.pos = start
			continue
		}
		return keywordToken(kw), true
	}
	return Token{}, false
}

// recognizeComment scans "//" followed by everything up to end of line or
// end of input. The payload excludes the leading "//".
func recognizeComment(c *cursor) (Token, bool) {
	if !literal(c, "//") {
		return Token{}, false
	}
	text, _ := getChompedString(c, func(c *cursor) bool {
		chompUntilEndOr(c, "\n")
		return true
	})
	return commentToken(text), true
}

// recognizeOperator tries the operator table longest-first.
func recognizeOperator(c *cursor) (Token, bool) {
	for _, op := range operatorsByLength {
		if literal(c, op) {
			return operatorToken(op), true
		}
	}
	return Token{}, false
}

// recognizeSymbol tries the symbol table longest-first.
func recognizeSymbol(c *cursor) (Token, bool) {
	for _, sym := range symbolsByLength {
		if literal(c, sym) {
			return symbolToken(sym), true
		}
	}
	return Token{}, false
}

// recognizeIdentifier scans an uppercase-initial name, a lowercase-initial
// name, or a '#'/'@'-prefixed variant, then classifies it with idOf. A
// reserved word reaching here (which should not happen since keyword is
// tried first) or a malformed prefixed form fails the recogniser.
func recognizeIdentifier(c *cursor) (Token, bool) {
	start := c.pos
	first, ok := c.peek()
	if !ok {
		return Token{}, false
	}

	switch {
	case first == '#' || first == '@':
		c.pos++
		chompWhile(c, isIdentContinue)
	case first >= 'a' && first <= 'z':
		c.pos++
		chompWhile(c, isLowerIdentContinue)
	case isAlpha(first):
		c.pos++
		chompWhile(c, isIdentContinue)
	default:
		return Token{}, false
	}

	name := string(c.src[start:c.pos])
	kind, ok := idOf(name)
	if !ok {
		c.pos = start
		return Token{}, false
	}

	return identifierToken(kind, name), true
}

// recognizeUnknown consumes exactly one character and wraps it as Unknown.
// It never fails while input remains, which is what guarantees token
// always makes progress and Lex is total over any UTF-8 input.
func recognizeUnknown(c *cursor) (Token, bool) {
	ch, ok := c.peek()
	if !ok {
		return Token{}, false
	}
	c.pos++
	return unknownToken(string(ch)), true
}
