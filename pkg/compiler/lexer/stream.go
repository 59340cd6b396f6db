package lexer

// stream is: optional leading whitespace, then zero or more (token then
// trailing whitespace), then end of input. Whitespace between tokens is
// discarded; no whitespace tokens are ever produced.
func stream(c *cursor) ([]Token, bool) {
	var tokens []Token

	spaces(c)
	for !end(c) {
		tok, ok := token(c)
		if !ok {
			return nil, false
		}
		tokens = append(tokens, tok)
		spaces(c)
	}

	return tokens, true
}
