package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/lexer"
	"nyanfmt/internal/observ"
	"nyanfmt/internal/project"
)

const (
	messySource     = "\"hi\"냥냥!?"
	canonicalSource = "\"hi\"\n냥냥!?\n"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestCollectSourceFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.nyan":          "",
		"sub/b.nyan":      "",
		"sub/c.txt":       "",
		"vendor/d.nyan":   "",
		"deep/x/y/e.nyan": "",
	})
	cfg := project.Default()
	cfg.Format.Exclude = []string{"vendor"}

	files, err := CollectSourceFiles(context.Background(), []string{root, filepath.Join(root, "a.nyan"), filepath.Join(root, "sub/c.txt")}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(root, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	want := "a.nyan,deep/x/y/e.nyan,sub/b.nyan,sub/c.txt"
	if got := strings.Join(rel, ","); got != want {
		t.Fatalf("files = %s, want %s", got, want)
	}
}

func TestFormatPathsModes(t *testing.T) {
	tests := []struct {
		name        string
		mode        Mode
		wantChanged bool
		wantOnDisk  string
		wantOutput  string
	}{
		{"stdout", ModeStdout, true, messySource, canonicalSource},
		{"check", ModeCheck, true, messySource, canonicalSource},
		{"write", ModeWrite, true, canonicalSource, canonicalSource},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := writeTree(t, map[string]string{"a.nyan": messySource})
			path := filepath.Join(root, "a.nyan")

			run, err := FormatPaths(context.Background(), []string{root}, FormatOptions{
				Mode:           tt.mode,
				MaxDiagnostics: 10,
				Config:         project.Default(),
				Jobs:           2,
				Verify:         true,
			})
			if err != nil {
				t.Fatal(err)
			}
			if len(run.Results) != 1 || run.HasErrors() {
				t.Fatalf("results = %+v", run.Results)
			}
			res := run.Results[0]
			if res.Changed != tt.wantChanged {
				t.Fatalf("Changed = %v", res.Changed)
			}
			if string(res.Formatted) != tt.wantOutput {
				t.Fatalf("Formatted = %q", res.Formatted)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.wantOnDisk {
				t.Fatalf("on disk = %q, want %q", data, tt.wantOnDisk)
			}
			if len(run.Changed()) != 1 {
				t.Fatalf("Changed() = %+v", run.Changed())
			}
		})
	}
}

func TestFormatPathsWritePreservesMode(t *testing.T) {
	root := writeTree(t, map[string]string{"a.nyan": messySource})
	path := filepath.Join(root, "a.nyan")
	if err := os.Chmod(path, 0o640); err != nil {
		t.Fatal(err)
	}
	if _, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Mode: ModeWrite, Config: project.Default()}); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Fatalf("mode = %v", info.Mode().Perm())
	}
}

func TestFormatPathsCanonicalAndCRLF(t *testing.T) {
	root := writeTree(t, map[string]string{
		"ok.nyan":    canonicalSource,
		"crlf.nyan":  "\"hi\"\r\n냥냥!?\r\n",
		"empty.nyan": "",
	})
	run, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Mode: ModeCheck, Config: project.Default()})
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, res := range run.Results {
		if res.Err != nil {
			t.Fatalf("%s: %v", res.Path, res.Err)
		}
		got[filepath.Base(res.Path)] = res.Changed
	}
	if got["ok.nyan"] || got["empty.nyan"] || !got["crlf.nyan"] {
		t.Fatalf("changed map = %v", got)
	}
}

func TestFormatPathsReportsDiagnostics(t *testing.T) {
	root := writeTree(t, map[string]string{
		"bad.nyan":  "냥 \"open",
		"good.nyan": "냥",
		"odd.nyan":  "냥 x",
	})
	run, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Mode: ModeCheck, MaxDiagnostics: 10, Config: project.Default()})
	if err != nil {
		t.Fatal(err)
	}
	if !run.HasErrors() {
		t.Fatal("expected errors")
	}

	bag := run.Diagnostics(10)
	if bag.Len() != 2 {
		t.Fatalf("diagnostics = %+v", bag.Items())
	}
	codes := map[diag.Code]bool{}
	for _, d := range bag.Items() {
		codes[d.Code] = true
		f := run.FileSet.Get(d.Primary.File)
		if !strings.HasSuffix(f.Path, ".nyan") || strings.HasSuffix(f.Path, "good.nyan") {
			t.Fatalf("diagnostic points at %s", f.Path)
		}
	}
	if !codes[diag.LexUnterminatedComment] || !codes[diag.LexUnknownChar] {
		t.Fatalf("codes = %v", codes)
	}

	for _, res := range run.Results {
		if filepath.Base(res.Path) == "bad.nyan" {
			var lexErr *lexer.Error
			if !errors.As(res.Err, &lexErr) {
				t.Fatalf("bad.nyan err = %T %v", res.Err, res.Err)
			}
		}
	}
}

func TestFormatPathsNoFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": ""})
	if _, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Config: project.Default()}); err == nil {
		t.Fatal("expected error for empty file set")
	}
	if _, err := FormatPaths(context.Background(), []string{filepath.Join(root, "missing")}, FormatOptions{Config: project.Default()}); err == nil {
		t.Fatal("expected error for missing path")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FormatPaths(ctx, []string{root}, FormatOptions{Config: project.Default()}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func TestFormatPathsProgressAndTimings(t *testing.T) {
	root := writeTree(t, map[string]string{"a.nyan": messySource, "b.nyan": "냥"})
	sink := &recordingSink{}
	timer := observ.NewTimer()

	if _, err := FormatPaths(context.Background(), []string{root}, FormatOptions{
		Mode:     ModeCheck,
		Config:   project.Default(),
		Progress: sink,
		Timer:    timer,
	}); err != nil {
		t.Fatal(err)
	}

	counts := map[Status]int{}
	stages := map[Stage]int{}
	for _, e := range sink.events {
		counts[e.Status]++
		if e.Status == StatusWorking {
			stages[e.Stage]++
		}
	}
	if counts[StatusQueued] != 2 || counts[StatusDone] != 2 {
		t.Fatalf("status counts = %v", counts)
	}
	if stages[StageLex] != 2 || stages[StageParse] != 2 || stages[StagePrint] != 2 {
		t.Fatalf("stage counts = %v", stages)
	}

	names := map[string]int{}
	for _, p := range timer.Report().Phases {
		names[p.Name] = p.Count
	}
	if names["lex"] != 2 || names["parse"] != 2 || names["print"] != 2 || names["read"] != 2 {
		t.Fatalf("timer phases = %v", names)
	}
	payload := BuildTimingPayload("fmt", root, 2, timer)
	if payload.Kind != "fmt" || len(payload.Phases) == 0 {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestFormatPathsCache(t *testing.T) {
	root := writeTree(t, map[string]string{"a.nyan": messySource})
	cache, err := OpenDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := FormatOptions{Mode: ModeWrite, Config: project.Default(), Cache: cache}

	first, err := FormatPaths(context.Background(), []string{root}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Results[0].Cached || !first.Results[0].Changed {
		t.Fatalf("first run = %+v", first.Results[0])
	}

	opts.Mode = ModeCheck
	second, err := FormatPaths(context.Background(), []string{root}, opts)
	if err != nil {
		t.Fatal(err)
	}
	res := second.Results[0]
	if !res.Cached || res.Changed || string(res.Formatted) != canonicalSource {
		t.Fatalf("second run = %+v", res)
	}
}
