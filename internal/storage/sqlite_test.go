package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/bullet-frenzy/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file and its parent directory were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveRecording(Recording{GameID: "frenzy", Seed: 1, Config: "x: 1\n"})
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.LoadRecording(id); err != nil {
		t.Errorf("recording should survive reopen: %v", err)
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	rec := Recording{
		GameID: "frenzy",
		Seed:   -42,
		Config: "player:\n  start_life: 5\n",
		Ticks:  1234,
		Score:  17,
		Missed: 3,
		Life:   -1,
		Events: []core.InputEvent{
			{Tick: 0, Action: core.ActionFire},
			{Tick: 0, Action: core.ActionRotateLeft},
			{Tick: 99, Action: core.ActionPause},
			{Tick: 120, Action: core.ActionPause},
			{Tick: 500, Action: core.ActionRestart},
		},
	}

	id, err := store.SaveRecording(rec)
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("expected a UUID, got %q", id)
	}

	got, err := store.LoadRecording(id)
	if err != nil {
		t.Fatalf("LoadRecording() failed: %v", err)
	}

	if got.ID != id || got.GameID != "frenzy" || got.Seed != -42 || got.Config != rec.Config {
		t.Errorf("header mismatch: %+v", got)
	}
	if got.Ticks != 1234 || got.Score != 17 || got.Missed != 3 || got.Life != -1 {
		t.Errorf("summary mismatch: %+v", got)
	}
	if len(got.Events) != len(rec.Events) {
		t.Fatalf("expected %d events, got %d", len(rec.Events), len(got.Events))
	}
	for i, e := range rec.Events {
		if got.Events[i] != e {
			t.Errorf("event %d: got %+v, expected %+v", i, got.Events[i], e)
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRecording(Recording{ID: "fixed-id", GameID: "frenzy", Config: ""})
	if err != nil {
		t.Fatalf("SaveRecording() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("expected fixed-id, got %q", id)
	}

	if _, err := store.SaveRecording(Recording{ID: "fixed-id", GameID: "frenzy"}); err == nil {
		t.Error("duplicate ID should fail")
	}
}

func TestStoreLoadByPrefix(t *testing.T) {
	store := openTestStore(t)

	store.SaveRecording(Recording{ID: "aaaa1111", GameID: "frenzy"})
	store.SaveRecording(Recording{ID: "aaaa2222", GameID: "frenzy"})
	store.SaveRecording(Recording{ID: "bbbb3333", GameID: "frenzy_demo"})

	tests := []struct {
		prefix   string
		expected string
		err      error
	}{
		{"bbbb", "bbbb3333", nil},
		{"aaaa1", "aaaa1111", nil},
		{"aaaa2222", "aaaa2222", nil},
		{"aaaa", "", ErrAmbiguous},
		{"cccc", "", ErrNotFound},
		{"", "", ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.prefix, func(t *testing.T) {
			got, err := store.LoadRecording(tc.prefix)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Errorf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadRecording() failed: %v", err)
			}
			if got.ID != tc.expected {
				t.Errorf("expected %s, got %s", tc.expected, got.ID)
			}
		})
	}
}

func TestStoreListRecordings(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveRecording(Recording{
			GameID: "frenzy",
			Seed:   int64(i),
			Score:  i * 10,
			Events: []core.InputEvent{{Tick: 1, Action: core.ActionFire}},
		})
		if err != nil {
			t.Fatalf("SaveRecording() failed: %v", err)
		}
	}

	recs, err := store.ListRecordings(3)
	if err != nil {
		t.Fatalf("ListRecordings() failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recordings with limit, got %d", len(recs))
	}

	// Newest first
	if recs[0].Seed != 4 || recs[1].Seed != 3 || recs[2].Seed != 2 {
		t.Errorf("recordings not in expected order: %d %d %d", recs[0].Seed, recs[1].Seed, recs[2].Seed)
	}
	for _, r := range recs {
		if len(r.Events) != 0 {
			t.Error("listings should not carry events")
		}
	}

	all, err := store.ListRecordings(0)
	if err != nil {
		t.Fatalf("ListRecordings() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 recordings with default limit, got %d", len(all))
	}
}

func TestStoreDeleteRecording(t *testing.T) {
	store := openTestStore(t)

	keep, _ := store.SaveRecording(Recording{GameID: "frenzy"})
	drop, _ := store.SaveRecording(Recording{
		GameID: "frenzy",
		Events: []core.InputEvent{{Tick: 3, Action: core.ActionFire}},
	})

	if err := store.DeleteRecording(drop); err != nil {
		t.Fatalf("DeleteRecording() failed: %v", err)
	}

	if _, err := store.LoadRecording(drop); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted recording should be gone, got %v", err)
	}
	if _, err := store.LoadRecording(keep); err != nil {
		t.Errorf("other recording should be untouched: %v", err)
	}
	if err := store.DeleteRecording(drop); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting twice should report not found, got %v", err)
	}

	var orphans int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM recording_events").Scan(&orphans); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if orphans != 0 {
		t.Errorf("events of the deleted recording should be removed, %d left", orphans)
	}
}

func TestRecordingShortID(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"0b5c2a9e-1f4d-4c59-9a57-3e0f6b1c2d3e", "0b5c2a9e"},
		{"abc", "abc"},
		{"", ""},
	}

	for _, tc := range tests {
		if got := (Recording{ID: tc.id}).ShortID(); got != tc.expected {
			t.Errorf("ShortID(%q) = %q, expected %q", tc.id, got, tc.expected)
		}
	}
}
