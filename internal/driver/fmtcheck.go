package driver

import (
	"bytes"
	"fmt"

	"nyanfmt/internal/format"
	"nyanfmt/internal/lexer"
	"nyanfmt/internal/parser"
	"nyanfmt/internal/testkit"
)

// verifyStable re-parses formatted output, checks tree invariants and prints
// it again; the second print must be byte-identical.
func verifyStable(formatted []byte) error {
	toks, err := lexer.TokenizeString(string(formatted))
	if err != nil {
		return fmt.Errorf("fmt-check: output does not lex: %w", err)
	}
	root, err := parser.Parse(toks)
	if err != nil {
		return fmt.Errorf("fmt-check: output does not parse: %w", err)
	}
	if err := testkit.CheckTreeInvariants(root); err != nil {
		return fmt.Errorf("fmt-check: %w", err)
	}
	again := format.Print(root)
	if !bytes.Equal(formatted, []byte(again)) {
		return fmt.Errorf("fmt-check: second pass changed the output")
	}
	return nil
}
