package format

import "testing"

func TestWriterSeparators(t *testing.T) {
	w := NewWriter(8)
	w.BlankLine() // в начале игнорируется
	w.WriteString("a")
	w.Space()
	w.Newline()
	w.WriteString("b")
	w.BlankLine()
	w.Newline()
	w.WriteString("c")
	w.Space()
	w.WriteString("")
	w.WriteString("d")
	w.BlankLine()
	w.Finish()

	if got, want := w.String(), "a\nb\n\nc d\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriterEmptyFinish(t *testing.T) {
	w := NewWriter(-1)
	w.Newline()
	w.Finish()
	if len(w.Bytes()) != 0 {
		t.Fatalf("empty output must stay empty, got %q", w.String())
	}
}
