package lexer

import "strings"

// cursor is the lowest-level piece of scanner state: a read-only view over
// the source runes and a position within it. Primitives take a *cursor and
// advance c.pos; nothing else in this package holds scanner state.
type cursor struct {
	src []rune
	pos int
}

func newCursor(source string) *cursor {
	return &cursor{src: []rune(source)}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() (rune, bool) {
	if c.atEnd() {
		return 0, false
	}
	return c.src[c.pos], true
}

func (c *cursor) peekAt(offset int) (rune, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.src) {
		return 0, false
	}
	return c.src[i], true
}

// literal consumes exactly the string s or fails without advancing.
func literal(c *cursor, s string) bool {
	start := c.pos
	for _, want := range s {
		got, ok := c.peek()
		if !ok || got != want {
			c.pos = start
			return false
		}
		c.pos++
	}
	return true
}

// chompIf consumes one character satisfying pred, failing otherwise.
func chompIf(c *cursor, pred func(rune) bool) bool {
	ch, ok := c.peek()
	if !ok || !pred(ch) {
		return false
	}
	c.pos++
	return true
}

// chompWhile consumes zero or more characters satisfying pred. It never
// fails.
func chompWhile(c *cursor, pred func(rune) bool) {
	for {
		ch, ok := c.peek()
		if !ok || !pred(ch) {
			return
		}
		c.pos++
	}
}

// chompUntilEndOr consumes until the next occurrence of s or end of input,
// whichever comes first. It never fails.
func chompUntilEndOr(c *cursor, s string) {
	target := []rune(s)
	for !c.atEnd() {
		if runesStartWith(c.src[c.pos:], target) {
			return
		}
		c.pos++
	}
}

func runesStartWith(haystack, needle []rune) bool {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return false
	}
	for i, r := range needle {
		if haystack[i] != r {
			return false
		}
	}
	return true
}

// getChompedString runs p starting at the cursor's current position and
// returns the exact text it consumed, whatever p's own outcome was. Callers
// combine this with oneOf/backtrackable to decide whether a partial
// consumption should be kept or undone.
func getChompedString(c *cursor, p func(*cursor) bool) (string, bool) {
	start := c.pos
	ok := p(c)
	return string(c.src[start:c.pos]), ok
}

// recognizer is a single token-producing attempt: it may consume input and
// either succeed with a Token or fail.
type recognizer func(c *cursor) (Token, bool)

// backtrackable wraps a recognizer so that, on failure, any input it
// consumed is undone before oneOf tries the next alternative. Number,
// keyword, operator, symbol and identifier are backtrackable; string,
// comment and the unknown fallback are not, because their leading
// character unambiguously commits to that category.
func backtrackable(fn recognizer) recognizer {
	return func(c *cursor) (Token, bool) {
		start := c.pos
		tok, ok := fn(c)
		if !ok {
			c.pos = start
		}
		return tok, ok
	}
}

// oneOf tries alternatives left to right. If an alternative fails without
// consuming input, the next alternative is tried. If an alternative fails
// after consuming input, oneOf fails outright (committing to that
// alternative's partial match) unless that alternative was wrapped in
// backtrackable, in which case its consumption was already undone and this
// case never triggers.
func oneOf(c *cursor, alts ...recognizer) (Token, bool) {
	start := c.pos
	for _, alt := range alts {
		tok, ok := alt(c)
		if ok {
			return tok, true
		}
		if c.pos != start {
			return Token{}, false
		}
	}
	return Token{}, false
}

// loopOutcome is the value a loop step function returns: either Continue
// with the next state, or Done with a final result.
type loopOutcome[S, T any] struct {
	state S
	value T
	done  bool
}

func loopContinue[S, T any](state S) loopOutcome[S, T] {
	return loopOutcome[S, T]{state: state}
}

func loopDone[S, T any](value T) loopOutcome[S, T] {
	return loopOutcome[S, T]{value: value, done: true}
}

// loop is fixed-point iteration: step is applied to the current state until
// it returns Done, at which point loop returns the final value.
func loop[S, T any](init S, step func(S) loopOutcome[S, T]) T {
	state := init
	for {
		out := step(state)
		if out.done {
			return out.value
		}
		state = out.state
	}
}

// spaces consumes any run of whitespace. It never fails.
func spaces(c *cursor) {
	chompWhile(c, isSpace)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// end succeeds only at end of input.
func end(c *cursor) bool {
	return c.atEnd()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentContinue(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}

// isLowerIdentContinue is the continuation class for a lowercase-initial
// identifier: unlike isIdentContinue, it excludes uppercase letters, so
// "aB" scans as identifier "a" followed by identifier "B" rather than one
// malformed token.
func isLowerIdentContinue(r rune) bool {
	return (r >= 'a' && r <= 'z') || isDigit(r) || r == '_'
}

// joinComments and concatUnknown implement the coalesce pass's two merge
// rules; kept here alongside the primitives they're built from since both
// are trivial string operations rather than scanner logic.
func joinComments(earlier, later string) string {
	var b strings.Builder
	b.Grow(len(earlier) + len(later) + 1)
	b.WriteString(earlier)
	b.WriteByte('\n')
	b.WriteString(later)
	return b.String()
}

func concatUnknown(earlier, later string) string {
	return earlier + later
}
