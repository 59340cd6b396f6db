// Package parser recognises the import declaration, the one piece of Ren
// syntax built on top of the lexer's token stream here. A full Ren parser
// is an external collaborator's concern.
package parser

import (
	"fmt"

	"github.com/agenthands/renlex/pkg/compiler/ast"
	"github.com/agenthands/renlex/pkg/compiler/lexer"
)

// Parser walks a token slice with one token of lookahead.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser creates a Parser over an already-lexed token stream.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) cur() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) atKeyword(tag string) bool {
	tok, ok := p.cur()
	return ok && tok.Kind == lexer.Keyword && tok.KeywordTag == tag
}

func (p *Parser) atSymbol(tag string) bool {
	tok, ok := p.cur()
	return ok && tok.Kind == lexer.Symbol && tok.SymbolTag == tag
}

// ParseImport consumes a single `import "<path>" [as Dotted.Namespace]
// [exposing { name, ... }]` declaration from the front of the token stream.
func (p *Parser) ParseImport() (*ast.Import, error) {
	kw, ok := p.cur()
	if !ok || !p.atKeyword("import") {
		return nil, fmt.Errorf("parser: expected 'import', got %s", describe(kw, ok))
	}
	p.advance()

	path, ok := p.cur()
	if !ok || path.Kind != lexer.String {
		return nil, fmt.Errorf("parser: expected a string literal after 'import', got %s", describe(path, ok))
	}
	p.advance()

	imp := &ast.Import{Token: kw, Path: path}

	if p.atKeyword("as") {
		p.advance()
		for {
			name, ok := p.cur()
			if !ok || name.Kind != lexer.Identifier || name.IdentKind != lexer.IdentUpper {
				return nil, fmt.Errorf("parser: expected an uppercase namespace component after 'as', got %s", describe(name, ok))
			}
			p.advance()
			imp.As = append(imp.As, name)

			if !p.atSymbol(".") {
				break
			}
			p.advance()
		}
	}

	if p.atKeyword("exposing") {
		p.advance()
		if !p.atSymbol("{") {
			tok, ok := p.cur()
			return nil, fmt.Errorf("parser: expected '{' after 'exposing', got %s", describe(tok, ok))
		}
		p.advance()

		for !p.atSymbol("}") {
			name, ok := p.cur()
			if !ok || name.Kind != lexer.Identifier || name.IdentKind != lexer.IdentLower {
				return nil, fmt.Errorf("parser: expected an exposed name, got %s", describe(name, ok))
			}
			p.advance()
			imp.Exposing = append(imp.Exposing, name)

			if p.atSymbol(",") {
				p.advance()
			}
		}
		p.advance() // consume '}'
	}

	return imp, nil
}

func describe(tok lexer.Token, ok bool) string {
	if !ok {
		return "end of input"
	}
	return tok.Kind.String()
}
