package lexer

import "sort"

// keywords, symbols and operators are the three disjoint finite sets of
// fixed lexemes the language reference defines. Each is stored as a
// source-of-truth slice and exposed through a longest-first ordering so
// recognisers enforce maximal munch (e.g. "=>" must be tried before "=",
// ".." before ".").
var keywords = []string{
	"let", "mut", "fn", "if", "then", "else", "match", "with",
	"type", "import", "as", "exposing", "pub", "use", "test",
	"extern", "todo", "and", "or", "not", "true", "false",
}

var symbols = []string{
	"(", ")", "{", "}", "[", "]", ",", ":", ";", "|", ".",
}

var operators = []string{
	"=>", "->", "..", "==", "!=", "<=", ">=", "++", "<>", "|>",
	"=", "+", "-", "*", "/", "<", ">",
}

// keywordsByLength, symbolsByLength and operatorsByLength hold the same
// entries as the tables above, longest-first, so a recogniser trying
// alternatives in order always prefers the longer lexeme at a given
// position (maximal munch).
var (
	keywordsByLength  = sortedByLengthDesc(keywords)
	symbolsByLength   = sortedByLengthDesc(symbols)
	operatorsByLength = sortedByLengthDesc(operators)
)

func sortedByLengthDesc(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// keywordSet supports the O(1) "is this identifier actually reserved"
// check idOf and the identifier recogniser both need.
var keywordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[k] = struct{}{}
	}
	return set
}()

// kwOf reports whether s is exactly one of the reserved keywords.
func kwOf(s string) (string, bool) {
	_, ok := keywordSet[s]
	if !ok {
		return "", false
	}
	return s, true
}

// symOf reports whether s is exactly one of the punctuation symbols.
func symOf(s string) (string, bool) {
	for _, sym := range symbols {
		if sym == s {
			return sym, true
		}
	}
	return "", false
}

// opOf reports whether s is exactly one of the operator lexemes.
func opOf(s string) (string, bool) {
	for _, op := range operators {
		if op == s {
			return op, true
		}
	}
	return "", false
}

// idOf classifies an already-scanned identifier-shaped string into one of
// the identifier variants, or rejects it if it is a reserved keyword.
// The first character decides lowercase vs. uppercase vs. the #/@ prefixed
// forms; keywords never reach here classified, since the keyword
// recogniser is tried first and wins on an exact reserved word.
func idOf(s string) (IdentKind, bool) {
	if s == "" {
		return 0, false
	}
	if _, reserved := kwOf(s); reserved {
		return 0, false
	}
	switch {
	case s[0] == '#':
		return IdentHash, len(s) > 1
	case s[0] == '@':
		return IdentAt, len(s) > 1
	case s[0] >= 'A' && s[0] <= 'Z':
		return IdentUpper, true
	case s[0] >= 'a' && s[0] <= 'z':
		return IdentLower, true
	default:
		return 0, false
	}
}
