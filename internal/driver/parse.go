package driver

import (
	"context"

	"nyanfmt/internal/ast"
	"nyanfmt/internal/diag"
	"nyanfmt/internal/observ"
	"nyanfmt/internal/source"
	"nyanfmt/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Root    ast.Root
	Bag     *diag.Bag
}

// Parse loads path and runs the full pipeline over it. As with Tokenize,
// syntax errors go to Bag.
func Parse(ctx context.Context, path string, maxDiagnostics int, timer *observ.Timer) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, 0)
	out, err := RunPipeline(ctx, file, timer, nil, span.ID())
	if err != nil {
		bag.Add(errorToDiagnostic(err, file, diag.SynInfo))
		span.End(err.Error())
	} else {
		span.End("")
	}

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Root:    out.Root,
		Bag:     bag,
	}, nil
}
