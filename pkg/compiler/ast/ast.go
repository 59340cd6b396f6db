// Package ast defines the small slice of Ren's syntax tree this repository
// builds: the import declaration. A full Ren AST is an external
// collaborator's concern.
package ast

import "github.com/agenthands/renlex/pkg/compiler/lexer"

// Node is any node in the (partial) syntax tree.
type Node interface {
	Pos() lexer.Token
}

// Import is `import "<path>" [as Dotted.Namespace] [exposing { name, ... }]`.
type Import struct {
	Token    lexer.Token   // the `import` keyword token
	Path     lexer.Token   // the string literal token
	As       []lexer.Token // dotted namespace components, if `as` was present
	Exposing []lexer.Token // exposed names, if `exposing { ... }` was present
}

func (i *Import) Pos() lexer.Token { return i.Token }
