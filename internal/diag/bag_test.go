package diag

import (
	"testing"

	"nyanfmt/internal/source"
)

func TestBagRespectsLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(NewError(SynUnexpectedToken, source.Span{Start: uint32(i)}, "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	b := NewBag(8)
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 2, Start: 0, End: 1}, "c"))
	b.Add(NewError(LexUnknownChar, source.Span{File: 1, Start: 5, End: 6}, "b"))
	b.Add(New(SevWarning, LexInfo, source.Span{File: 1, Start: 0, End: 1}, "a2"))
	b.Add(NewError(LexUnknownChar, source.Span{File: 1, Start: 0, End: 1}, "a1"))
	b.Sort()

	want := []string{"a1", "a2", "b", "c"}
	for i, d := range b.Items() {
		if d.Message != want[i] {
			t.Fatalf("item %d: got %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestBagHasErrorsAndNotes(t *testing.T) {
	b := NewBag(4)
	b.Add(New(SevInfo, LexInfo, source.Span{}, "info"))
	if b.HasErrors() {
		t.Fatal("info must not count as error")
	}
	base := NewError(LexUnterminatedComment, source.Span{}, "boom")
	b.Add(base.WithNote(source.Span{Start: 1}, "opened here"))
	if !b.HasErrors() {
		t.Fatal("expected an error")
	}
	if got := b.Items()[1].Notes; len(got) != 1 || got[0].Msg != "opened here" {
		t.Fatalf("notes lost: %+v", got)
	}
	if len(base.Notes) != 0 {
		t.Fatal("WithNote must not modify the receiver")
	}
}

func TestBagMergeRaisesCap(t *testing.T) {
	a, other := NewBag(1), NewBag(2)
	a.Add(NewError(LexUnknownChar, source.Span{}, "a"))
	other.Add(NewError(LexUnknownChar, source.Span{Start: 1}, "b"))
	other.Add(NewError(LexUnknownChar, source.Span{Start: 2}, "c"))
	a.Merge(other)
	a.Merge(nil)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("len=%d cap=%d, want 3/3", a.Len(), a.Cap())
	}
	if NewBag(-5).Cap() != 0 || NewBag(1<<20).Cap() != 65535 {
		t.Fatal("limit clamping")
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(4)
	d := NewError(SynExpectConstruct, source.Span{Start: 3, End: 4}, "x")
	b.Add(d)
	b.Add(d)
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("expected 1 item after dedup, got %d", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:         "LEX1001",
		LexUnterminatedComment: "LEX1002",
		SynUnexpectedToken:     "SYN2001",
		SynExpectConstruct:     "SYN2002",
		IOLoadFileError:        "IO4001",
		ProjInvalidConfig:      "PRJ5001",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Error("unknown code must fall back to the generic title")
	}
}
