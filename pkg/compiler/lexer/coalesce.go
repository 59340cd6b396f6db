package lexer

// coalesce merges every maximal run of adjacent Comment tokens and every
// maximal run of adjacent Unknown tokens, leaving all other tokens
// untouched and in their original relative order.
//
// Walking forward, "pending" always holds the earlier of two tokens being
// merged and the current token t is the later one, which is why joining
// reads pending.Text first, then t.Text.
func coalesce(tokens []Token) []Token {
	if len(tokens) == 0 {
		return tokens
	}

	result := make([]Token, 0, len(tokens))
	var pending *Token

	flush := func() {
		if pending != nil {
			result = append(result, *pending)
			pending = nil
		}
	}

	for _, t := range tokens {
		switch t.Kind {
		case Comment:
			if pending != nil && pending.Kind == Comment {
				merged := commentToken(joinComments(pending.Text, t.Text))
				pending = &merged
			} else {
				flush()
				tok := t
				pending = &tok
			}
		case Unknown:
			if pending != nil && pending.Kind == Unknown {
				merged := unknownToken(concatUnknown(pending.Text, t.Text))
				pending = &merged
			} else {
				flush()
				tok := t
				pending = &tok
			}
		default:
			flush()
			result = append(result, t)
		}
	}
	flush()

	return result
}
