package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/observ"
	"nyanfmt/internal/project"
	"nyanfmt/internal/source"
	"nyanfmt/internal/trace"
)

// Mode selects what FormatPaths does with formatted text.
type Mode uint8

const (
	// ModeStdout returns formatted text without touching files.
	ModeStdout Mode = iota
	// ModeCheck only reports whether files would change.
	ModeCheck
	// ModeWrite rewrites changed files in place.
	ModeWrite
)

func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeWrite:
		return "write"
	default:
		return "stdout"
	}
}

// FormatOptions configures code formatting.
type FormatOptions struct {
	Mode           Mode
	MaxDiagnostics int
	Config         project.Config
	// Jobs overrides Config when > 0.
	Jobs int
	// Verify re-formats the output and fails the file if it is not stable.
	Verify   bool
	Cache    *DiskCache
	Progress ProgressSink
	Timer    *observ.Timer
}

// FileError is a per-file failure without a source position: I/O or an
// unstable result. Lex and parse failures keep their own types and also land
// in FormatResult.Bag.
type FileError struct {
	Path string
	Code diag.Code
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Code.ID(), e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	FileID    source.FileID
	Loaded    bool
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	Bag       *diag.Bag
}

// FormatRun is the outcome of FormatPaths. FileSet holds every loaded file
// so diagnostics in the results can be rendered.
type FormatRun struct {
	FileSet *source.FileSet
	Results []FormatResult
}

// HasErrors reports whether any file failed.
func (r *FormatRun) HasErrors() bool {
	for i := range r.Results {
		if r.Results[i].Err != nil {
			return true
		}
	}
	return false
}

// Changed returns the results whose content differs from canonical form.
func (r *FormatRun) Changed() []FormatResult {
	var out []FormatResult
	for _, res := range r.Results {
		if res.Changed {
			out = append(out, res)
		}
	}
	return out
}

// Diagnostics merges per-file bags, sorted by file and position.
func (r *FormatRun) Diagnostics(maxItems int) *diag.Bag {
	bag := diag.NewBag(maxItems)
	for _, res := range r.Results {
		if res.Bag != nil {
			bag.Merge(res.Bag)
		}
	}
	bag.Sort()
	return bag
}

// FormatPaths formats provided files or directories (recursively collecting
// files with the configured extensions). Files are loaded up front into one
// FileSet, then formatted by a bounded pool of workers. A per-file failure is
// recorded in its result; only collection errors and cancellation abort the run.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*FormatRun, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer := trace.FromContext(ctx)
	runSpan := trace.Begin(tracer, trace.ScopeDriver, "fmt", 0)
	defer runSpan.End(opts.Mode.String())

	collectIdx := opts.Timer.Begin("collect")
	files, err := CollectSourceFiles(ctx, paths, opts.Config)
	opts.Timer.End(collectIdx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	fileSet := source.NewFileSet()
	results := make([]FormatResult, len(files))
	raws := make([][]byte, len(files))
	for i, path := range files {
		results[i] = FormatResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}
		start := time.Now()
		// #nosec G304 -- path comes from the user's arguments
		raw, err := os.ReadFile(path)
		opts.Timer.Record(string(StageRead), time.Since(start))
		if err != nil {
			results[i].Err = &FileError{Path: path, Code: diag.IOLoadFileError, Err: err}
			continue
		}
		content, flags := source.Normalize(raw)
		results[i].FileID = fileSet.Add(path, content, flags)
		results[i].Loaded = true
		raws[i] = raw
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = opts.Config.Jobs()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))

	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := &results[i]
			if !res.Loaded {
				emit(opts.Progress, Event{File: res.Path, Status: StatusError, Err: res.Err})
				return nil
			}
			formatOne(gctx, fileSet.Get(res.FileID), raws[i], res, opts, runSpan.ID())
			return nil
		})
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return &FormatRun{FileSet: fileSet, Results: results}, err
	}
	runSpan.WithExtra("files", fmt.Sprint(len(files)))
	return &FormatRun{FileSet: fileSet, Results: results}, nil
}

func formatOne(ctx context.Context, sf *source.File, raw []byte, res *FormatResult, opts FormatOptions, parent uint64) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, sf.Path, parent)
	start := time.Now()
	defer func() {
		status := StatusDone
		detail := ""
		if res.Err != nil {
			status = StatusError
			detail = res.Err.Error()
		}
		span.WithExtra("changed", fmt.Sprint(res.Changed)).WithExtra("cached", fmt.Sprint(res.Cached)).End(detail)
		emit(opts.Progress, Event{
			File:    res.Path,
			Status:  status,
			Changed: res.Changed,
			Cached:  res.Cached,
			Err:     res.Err,
			Elapsed: time.Since(start),
		})
	}()

	key := contentKey(raw)
	if _, hit, err := opts.Cache.Get(key); err == nil && hit {
		// содержимое уже каноническое: форматировать нечего
		res.Cached = true
		res.Formatted = raw
		trace.Point(tracer, trace.ScopePhase, "cache", "hit", span.ID())
		return
	}

	out, err := RunPipeline(ctx, sf, opts.Timer, opts.Progress, span.ID())
	if err != nil {
		res.Err = err
		res.Bag.Add(errorToDiagnostic(err, sf, diag.UnknownCode))
		return
	}
	if opts.Verify {
		if err := verifyStable(out.Formatted); err != nil {
			res.Err = &FileError{Path: res.Path, Code: diag.FmtNotIdempotent, Err: err}
			return
		}
	}

	res.Formatted = out.Formatted
	res.Changed = !bytes.Equal(raw, out.Formatted)

	if opts.Mode == ModeWrite && res.Changed {
		werr := phaseRunner{tracer: tracer, parent: span.ID(), timer: opts.Timer, sink: opts.Progress, path: res.Path}.
			run(StageWrite, func() error { return writePreservingMode(res.Path, out.Formatted) })
		if werr != nil {
			res.Err = &FileError{Path: res.Path, Code: diag.IOWriteFileError, Err: werr}
			return
		}
	}

	// запоминаем каноническую форму: при следующем запуске файл будет пропущен
	if opts.Cache != nil && (!res.Changed || opts.Mode == ModeWrite) {
		rec := &CanonicalRecord{Path: res.Path, Size: len(out.Formatted), Checked: time.Now()}
		if err := opts.Cache.Put(contentKey(out.Formatted), rec); err != nil {
			trace.Point(tracer, trace.ScopePhase, "cache", "put failed: "+err.Error(), span.ID())
		}
	}
}

func writePreservingMode(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}
