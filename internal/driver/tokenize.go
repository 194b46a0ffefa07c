package driver

import (
	"context"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/lexer"
	"nyanfmt/internal/source"
	"nyanfmt/internal/token"
	"nyanfmt/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it. A lexical error is reported in Bag, not
// as the returned error; that one is for I/O only.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, 0)
	tokens, err := lexer.Tokenize(file)
	if err != nil {
		bag.Add(errorToDiagnostic(err, file, diag.LexInfo))
		span.End(err.Error())
	} else {
		span.End("")
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
