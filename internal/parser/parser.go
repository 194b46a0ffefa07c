package parser

import (
	"nyanfmt/internal/ast"
	"nyanfmt/internal/stream"
	"nyanfmt/internal/token"
)

// Parse builds the syntax tree of a whole program. Either every token is
// consumed or a single *Error is returned.
func Parse(tokens []token.Token) (ast.Root, error) {
	_, root, err := g.root(stream.New(tokens))
	if err != nil {
		return ast.Root{}, err
	}
	return root, nil
}
