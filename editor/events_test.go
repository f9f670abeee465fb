package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/patina/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	// Left at column 0 changes nothing.
	m, _ = press(m, keyType(tea.KeyLeft))
	if len(events) != 0 {
		t.Fatalf("no-op move fired %d events", len(events))
	}

	m, _ = press(m, keyType(tea.KeyRight))
	if len(events) != 1 {
		t.Fatalf("move: got %d events, want 1", len(events))
	}
	if got := events[0].Cursor; got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("event cursor: got %v", got)
	}
	if events[0].Dirty {
		t.Fatalf("move reported dirty")
	}

	m, _ = press(m, runes("i"))
	if len(events) != 2 || events[1].Mode != ModeInsertion {
		t.Fatalf("mode switch: events=%+v", events)
	}

	m, _ = press(m, runes("X"))
	if len(events) != 3 {
		t.Fatalf("insert: got %d events, want 3", len(events))
	}
	last := events[2]
	if !last.Dirty || last.LineCount != 1 || last.Version == events[1].Version {
		t.Fatalf("insert event: %+v", last)
	}

	_, _ = press(m, keyType(tea.KeyF5))
	if len(events) != 3 {
		t.Fatalf("unbound key fired an event")
	}
}

func TestOnChange_ReportsScrollOffset(t *testing.T) {
	var last ChangeEvent
	m := New(Config{
		Text:     numberedLines(10),
		OnChange: func(ev ChangeEvent) { last = ev },
	})
	m = m.SetSize(20, 4)
	for i := 0; i < 9; i++ {
		m, _ = press(m, runes("j"))
	}
	if last.Cursor.Row != 9 || last.ScrollOffset != 7 {
		t.Fatalf("event: %+v", last)
	}
}
