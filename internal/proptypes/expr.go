// Package proptypes generates a JavaScript PropTypes validator module from a
// type graph: one composable shape validator per named type, hoisted
// declarations so mutually recursive types can reference each other, and an
// exported binding per top-level type.
package proptypes

import (
	"strings"

	"github.com/quickshape/quickshape/internal/namer"
)

// Token is one emit unit of a validator expression: either literal source
// text or a reference to a named definition. References are how the orderer
// discovers dependencies between definitions, and they stay symbolic until
// rendering so the same body can be emitted after names are finalized.
type Token struct {
	Text string
	Ref  namer.Name
}

// text creates a literal token.
func text(s string) Token {
	return Token{Text: s}
}

// ref creates a reference token.
func ref(n namer.Name) Token {
	return Token{Ref: n}
}

// Expr is an ordered token sequence forming one validator expression.
type Expr []Token

// render flattens the expression to source text. Referenced definitions are
// emitted with the underscore prefix used by the hoisted declarations.
func (e Expr) render() string {
	var sb strings.Builder
	for _, tok := range e {
		if tok.Ref != "" {
			sb.WriteString("_")
			sb.WriteString(string(tok.Ref))
		} else {
			sb.WriteString(tok.Text)
		}
	}
	return sb.String()
}

// Definition pairs a named type's identity with its synthesized body.
type Definition struct {
	Name namer.Name
	Body Expr
}
