package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
	"github.com/vovakirdan/bullet-frenzy/internal/storage"
)

func newTestRecordings(t *testing.T, ids ...string) (*storage.Store, RecordingsModel) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "rec.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for i, id := range ids {
		rec := storage.Recording{
			ID:     id,
			GameID: "frenzy",
			Seed:   int64(i),
			Ticks:  uint64(100 * (i + 1)),
			Life:   5,
			Events: []core.InputEvent{{Tick: 0, Action: core.ActionFire}},
		}
		if _, err := store.SaveRecording(rec); err != nil {
			t.Fatalf("SaveRecording() failed: %v", err)
		}
	}
	return store, NewRecordingsModel(store, 120, 30)
}

func TestRecordingsLoad(t *testing.T) {
	_, m := newTestRecordings(t, "aaaa1111", "bbbb2222")

	if n := len(m.Recordings()); n != 2 {
		t.Fatalf("loaded %d recordings, want 2", n)
	}
	view := m.View()
	if !strings.Contains(view, "RECORDINGS (2)") || !strings.Contains(view, "bbbb2222") {
		t.Error("view should list the recordings")
	}
}

func TestRecordingsWatch(t *testing.T) {
	_, m := newTestRecordings(t, "aaaa1111", "bbbb2222")
	want := m.Recordings()[0].ID

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(RecordingsModel)
	if m.Selected() != want || cmd == nil {
		t.Errorf("Selected() = %q, want %q and a quit command", m.Selected(), want)
	}
}

func TestRecordingsDelete(t *testing.T) {
	store, m := newTestRecordings(t, "aaaa1111", "bbbb2222")
	gone := m.Recordings()[0].ID

	next, _ := m.Update(runeKey("d"))
	m = next.(RecordingsModel)

	if n := len(m.Recordings()); n != 1 {
		t.Fatalf("%d recordings after delete, want 1", n)
	}
	if _, err := store.LoadRecording(gone); err == nil {
		t.Error("deleted recording still in the store")
	}
	if !strings.Contains(m.View(), "deleted") {
		t.Error("view should confirm the delete")
	}
}

func TestRecordingsEmpty(t *testing.T) {
	_, m := newTestRecordings(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(RecordingsModel)
	if m.Selected() != "" {
		t.Error("enter on an empty list should select nothing")
	}
	if !strings.Contains(m.View(), "No recordings yet") {
		t.Error("empty view should say there are no recordings")
	}
}

func TestRecordingsWithoutStore(t *testing.T) {
	m := NewRecordingsModel(nil, 80, 24)

	next, _ := m.Update(runeKey("d"))
	m = next.(RecordingsModel)
	if !strings.Contains(m.View(), "no recordings database") {
		t.Error("view should report the missing database")
	}
}
