package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}
	if got := m.Document().ViewportHeight(); got != 1 {
		t.Fatalf("viewport height: got %d, want 1", got)
	}

	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.SetSize(20, 4)

	got := viewLines(m)
	if len(got) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(got))
	}

	want := []string{
		"  1 one",
		"  2 two",
		"  3 three",
	}
	if fmt.Sprintf("%q", got[:3]) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got[:3], want)
	}
}

func TestView_ScrolledToBottom(t *testing.T) {
	m := New(Config{Text: numberedLines(10), ShowLineNums: true})
	m = m.SetSize(50, 4)
	for i := 0; i < 9; i++ {
		m, _ = press(m, runes("j"))
	}

	got := viewLines(m)
	want := []string{
		"  8 line 8",
		"  9 line 9",
		" 10 line 10",
	}
	if fmt.Sprintf("%q", got[:3]) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got[:3], want)
	}
	if !strings.Contains(got[3], "Ln 10, Col 1") {
		t.Fatalf("status: %q", got[3])
	}
}

func TestModel_DocumentIsShared(t *testing.T) {
	doc := NewDocumentFromText("shared")
	m := New(Config{Document: doc, Text: "ignored"})
	if m.Document() != doc {
		t.Fatalf("model did not use the supplied document")
	}
	if got := m.Document().Text(); got != "shared" {
		t.Fatalf("text: got %q", got)
	}
}

func TestModel_CustomKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	km.Quit.SetKeys("Q")
	m := New(Config{KeyMap: &km})

	m, cmd := press(m, runes("q"))
	if isQuit(cmd) {
		t.Fatalf("q still quits after rebinding")
	}
	_, cmd = press(m, runes("Q"))
	if !isQuit(cmd) {
		t.Fatalf("Q does not quit after rebinding")
	}
}
