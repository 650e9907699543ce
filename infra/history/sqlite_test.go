package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/coursegrid/coursegrid/core/timetable"
)

func record(id string, at time.Time) timetable.ParseRecord {
	return timetable.ParseRecord{
		SnapshotID: id,
		Source:     "timetable.csv",
		Format:     "delimited-text",
		LoadedAt:   at,
		Rows:       10,
		Courses:    8,
		Skipped:    2,
	}
}

func TestSQLiteStore_AddAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = store.Close() }()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	if err := store.Add(record("a", base)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add(record("b", base.Add(time.Hour))); err != nil {
		t.Fatalf("add: %v", err)
	}

	got, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("records = %d, want 2", len(got))
	}
	if got[0].SnapshotID != "b" || got[1].SnapshotID != "a" {
		t.Errorf("order = %s, %s, want newest first", got[0].SnapshotID, got[1].SnapshotID)
	}
	if got[0].Skipped != 2 || !got[0].LoadedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("record = %+v", got[0])
	}
}

func TestSQLiteStore_DuplicateSnapshot(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = store.Close() }()

	r := record("a", time.Now().UTC())
	if err := store.Add(r); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Add(r); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	got, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Add(record("a", time.Now().UTC())); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	store, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = store.Close() }()
	got, err := store.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
}
