package lexer

import (
	"reflect"
	"testing"
)

func TestCoalesceMergesAdjacentComments(t *testing.T) {
	in := []Token{
		commentToken(" a"),
		commentToken(" b"),
		commentToken(" c"),
		keywordToken("let"),
	}
	want := []Token{
		commentToken(" a\n b\n c"),
		keywordToken("let"),
	}
	got := coalesce(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("coalesce(%#v) = %#v, want %#v", in, got, want)
	}
}

func TestCoalesceMergesAdjacentUnknowns(t *testing.T) {
	in := []Token{
		unknownToken("$"),
		unknownToken("€"),
		numberToken(1),
	}
	want := []Token{
		unknownToken("$€"),
		numberToken(1),
	}
	got := coalesce(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("coalesce(%#v) = %#v, want %#v", in, got, want)
	}
}

func TestCoalesceLeavesNonMergeableTokensInOrder(t *testing.T) {
	in := []Token{
		keywordToken("let"),
		identifierToken(IdentLower, "x"),
		operatorToken("="),
		numberToken(10),
	}
	got := coalesce(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("coalesce(%#v) = %#v, want unchanged", in, got)
	}
}

func TestCoalesceDoesNotMergeAcrossOtherTokens(t *testing.T) {
	in := []Token{
		commentToken(" a"),
		keywordToken("let"),
		commentToken(" b"),
	}
	got := coalesce(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("coalesce(%#v) = %#v, want unchanged (comments are not adjacent)", in, got)
	}
}

func TestCoalesceIsIdempotent(t *testing.T) {
	in := []Token{
		commentToken(" a"),
		commentToken(" b"),
		unknownToken("$"),
		unknownToken("€"),
		keywordToken("let"),
	}
	once := coalesce(in)
	twice := coalesce(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("coalesce is not idempotent: once=%#v twice=%#v", once, twice)
	}
}
