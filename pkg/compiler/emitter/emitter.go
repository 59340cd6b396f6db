// Package emitter would turn a parsed Ren AST into JavaScript. It does
// not yet: every call reports ErrCodeGenOutOfScope so callers have one
// documented error to check for rather than a missing package.
package emitter

import (
	"errors"

	"github.com/agenthands/renlex/pkg/compiler/ast"
)

// ErrCodeGenOutOfScope is returned by every Emit call.
var ErrCodeGenOutOfScope = errors.New("emitter: javascript code generation is out of scope")

// Emitter has the shape of a Ren-to-JavaScript emitter; it generates no
// code, and its Emit method always fails with ErrCodeGenOutOfScope.
type Emitter struct{}

// NewEmitter returns a new, stateless Emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit always fails with ErrCodeGenOutOfScope.
func (e *Emitter) Emit(*ast.Import) (string, error) {
	return "", ErrCodeGenOutOfScope
}
