package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"nyanfmt/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan driver.Event)
	m, ok := NewProgressModel("fmt --check", []string{"a.nyan", "b.nyan", "c.nyan"}, events).(*progressModel)
	if !ok {
		t.Fatal("unexpected model type")
	}

	steps := []struct {
		ev         driver.Event
		file       int
		wantStatus string
	}{
		{driver.Event{File: "a.nyan", Stage: driver.StageLex, Status: driver.StatusWorking}, 0, "lexing"},
		{driver.Event{File: "a.nyan", Status: driver.StatusDone, Changed: true}, 0, "changed"},
		{driver.Event{File: "b.nyan", Status: driver.StatusDone, Cached: true}, 1, "cached"},
		{driver.Event{File: "c.nyan", Status: driver.StatusError, Err: errors.New("boom")}, 2, "error"},
		{driver.Event{File: "unknown.nyan", Status: driver.StatusDone}, 0, "changed"},
	}
	for _, st := range steps {
		m.applyEvent(st.ev)
		if got := m.states[st.file].String(); got != st.wantStatus {
			t.Fatalf("after %+v: status = %q, want %q", st.ev, got, st.wantStatus)
		}
	}
	if m.finished != 3 {
		t.Fatalf("finished = %d", m.finished)
	}

	view := m.View()
	for _, want := range []string{"fmt --check [3/3]", "a.nyan", "changed", "cached"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		width    int
		wantSame bool
	}{
		{"short.nyan", 20, true},
		{"very/long/path/to/file.nyan", 10, false},
		{"냥냥냥냥.nyan", 7, false},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.width)
		if tt.wantSame {
			if got != tt.in {
				t.Errorf("truncate(%q, %d) = %q, want unchanged", tt.in, tt.width, got)
			}
			continue
		}
		if !strings.HasSuffix(got, "...") || runewidth.StringWidth(got) > tt.width {
			t.Errorf("truncate(%q, %d) = %q, want at most %d cells ending in ...", tt.in, tt.width, got, tt.width)
		}
	}
}
