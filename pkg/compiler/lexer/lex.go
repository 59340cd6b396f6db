package lexer

import "errors"

// ErrLex is the opaque failure value Lex returns when source cannot be
// tokenized. Position information, if a surrounding pipeline needs it, is
// the concern of that pipeline, not of this package.
var ErrLex = errors.New("lexer: failed to tokenize source")

// Lex threads source through the scanner and the coalesce pass. Lexing is
// effectively total for any UTF-8 input: the unknown-fallback recogniser
// always succeeds while input remains, so the only way to reach ErrLex is
// an unterminated or badly escaped string literal, whose recogniser is not
// backtrackable and therefore commits to failure rather than falling
// through to a later alternative.
func Lex(source string) ([]Token, error) {
	tokens, ok := stream(newCursor(source))
	if !ok {
		return nil, ErrLex
	}
	return coalesce(tokens), nil
}
