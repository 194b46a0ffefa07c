package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.nyan", []byte("냥냥"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.nyan", []byte("냐냐"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	// GetLatest указывает на последнюю версию
	latestID, exists := fs.GetLatest("test.nyan")
	if !exists {
		t.Fatal("Expected file to exist after Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "냥냥" {
		t.Errorf("Expected first file content %q, got %q", "냥냥", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.nyan", []byte("?\n!\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("Expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("Expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	// "냥" занимает 3 байта
	id := fs.AddVirtual("r.nyan", []byte("냥?\n.!"))

	tests := []struct {
		name  string
		span  Span
		start LineCol
		end   LineCol
	}{
		{"first rune", Span{File: id, Start: 0, End: 3}, LineCol{1, 1}, LineCol{1, 4}},
		{"newline", Span{File: id, Start: 4, End: 5}, LineCol{1, 5}, LineCol{2, 1}},
		{"second line", Span{File: id, Start: 5, End: 7}, LineCol{2, 1}, LineCol{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := fs.Resolve(tt.span)
			if start != tt.start || end != tt.end {
				t.Errorf("Resolve(%v) = %+v, %+v; want %+v, %+v", tt.span, start, end, tt.start, tt.end)
			}
		})
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("l.nyan", []byte("\"a\"\n냥?\n\n.")))

	cases := map[uint32]string{
		0: "",
		1: "\"a\"",
		2: "냥?",
		3: "",
		4: ".",
		5: "",
	}
	for line, want := range cases {
		if got := file.GetLine(line); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.nyan")
	content := []byte("\xEF\xBB\xBF냥?\r\n.!\r\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if got := string(file.Content); got != "냥?\n.!\n" {
		t.Errorf("content = %q", got)
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF")
	}
	if file.Flags&FileVirtual != 0 {
		t.Error("loaded file must not be virtual")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.nyan")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
