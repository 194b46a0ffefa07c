package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fortio.org/safecast"

	"nyanfmt/internal/ast"
	"nyanfmt/internal/diag"
	"nyanfmt/internal/format"
	"nyanfmt/internal/lexer"
	"nyanfmt/internal/observ"
	"nyanfmt/internal/parser"
	"nyanfmt/internal/source"
	"nyanfmt/internal/token"
	"nyanfmt/internal/trace"
)

// Output is what the core pipeline produced for one file.
type Output struct {
	Tokens    []token.Token
	Root      ast.Root
	Formatted []byte
}

// phaseRunner оборачивает фазу трассировкой, таймером и событием прогресса.
type phaseRunner struct {
	tracer trace.Tracer
	parent uint64
	timer  *observ.Timer
	sink   ProgressSink
	path   string
}

func (r phaseRunner) run(stage Stage, fn func() error) error {
	emit(r.sink, Event{File: r.path, Stage: stage, Status: StatusWorking})
	span := trace.Begin(r.tracer, trace.ScopePhase, string(stage), r.parent)
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	r.timer.Record(string(stage), elapsed)
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	span.End(detail)
	return err
}

// RunPipeline lexes, parses and prints sf, one traced phase each. The error is
// a *lexer.Error or *parser.Error, unchanged.
func RunPipeline(ctx context.Context, sf *source.File, timer *observ.Timer, sink ProgressSink, parent uint64) (Output, error) {
	r := phaseRunner{
		tracer: trace.FromContext(ctx),
		parent: parent,
		timer:  timer,
		sink:   sink,
		path:   sf.Path,
	}
	var out Output
	err := r.run(StageLex, func() error {
		var err error
		out.Tokens, err = lexer.Tokenize(sf)
		return err
	})
	if err != nil {
		return out, err
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	err = r.run(StageParse, func() error {
		var err error
		out.Root, err = parser.Parse(out.Tokens)
		return err
	})
	if err != nil {
		return out, err
	}
	err = r.run(StagePrint, func() error {
		out.Formatted = []byte(format.Print(out.Root))
		return nil
	})
	return out, err
}

// diagnosable is implemented by the core error types.
type diagnosable interface {
	error
	Diagnostic() diag.Diagnostic
}

// errorToDiagnostic turns a pipeline error for sf into a diagnostic. Errors
// without a position (e.g. I/O) point at the start of the file.
func errorToDiagnostic(err error, sf *source.File, code diag.Code) diag.Diagnostic {
	var de diagnosable
	if errors.As(err, &de) {
		d := de.Diagnostic()
		var pe *parser.Error
		if errors.As(err, &pe) && pe.Position.Len() == 0 {
			// парсер упал на конце ввода: указываем на конец файла
			end := endOffset(sf)
			d.Primary = source.Span{File: sf.ID, Start: end, End: end}
		}
		d.Primary.File = sf.ID
		for i := range d.Notes {
			d.Notes[i].Span.File = sf.ID
		}
		return d
	}
	return diag.NewError(code, source.Span{File: sf.ID}, err.Error())
}

func endOffset(sf *source.File) uint32 {
	n, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}
