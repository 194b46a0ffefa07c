package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeComposesHangul(t *testing.T) {
	// ᄂ + ᅣ + ᆼ: разложенный "냥"
	decomposed := []byte("\u1102\u1163\u11bc?")
	got, flags := Normalize(decomposed)
	if string(got) != "\ub0e5?" {
		t.Fatalf("Normalize = %q, want %q", got, "\ub0e5?")
	}
	if flags&FileNormalizedNFC == 0 {
		t.Error("expected FileNormalizedNFC flag")
	}
}

func TestNormalizeKeepsCanonicalInput(t *testing.T) {
	in := []byte("\"hi\"\n냥냥!?\n")
	got, flags := Normalize(in)
	if string(got) != string(in) {
		t.Errorf("Normalize changed canonical input: %q", got)
	}
	if flags != 0 {
		t.Errorf("flags = %b, want 0", flags)
	}
}

func TestNormalizeCRLFKeepsLoneCR(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\rb\r\nc"))
	if !changed {
		t.Error("expected change")
	}
	if string(got) != "a\rb\nc" {
		t.Errorf("got %q", got)
	}
}

func TestToLineColEmptyIndex(t *testing.T) {
	if got := toLineCol(nil, 4); got != (LineCol{Line: 1, Col: 5}) {
		t.Errorf("got %+v", got)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	for _, d := range []string{baseDir, otherDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	target := filepath.Join(otherDir, "file.nyan")
	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "file.nyan")

	got, err := RelativePath(target, tmp)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if got != "nested/file.nyan" {
		t.Fatalf("got %q", got)
	}
}
