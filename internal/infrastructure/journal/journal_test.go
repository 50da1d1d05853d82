package journal

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	base := time.Now().UTC()
	for i, op := range []string{"create", "update", "delete"} {
		err := store.Append(Event{
			UserID:     "u1",
			Entity:     EntityTask,
			Operation:  op,
			RecordedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	events, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// newest first
	if events[0].Operation != "delete" || events[2].Operation != "create" {
		t.Fatalf("unexpected order: %s .. %s", events[0].Operation, events[2].Operation)
	}
}

func TestRecent_HonorsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if err := store.Append(Event{UserID: "u1", Entity: EntityProfile, Operation: "update"}); err != nil {
			t.Fatalf("Append error: %v", err)
		}
	}

	events, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
}

func TestPrune_RemovesOnlyExpired(t *testing.T) {
	store := openTestStore(t)

	old := time.Now().UTC().Add(-48 * time.Hour)
	if err := store.Append(Event{UserID: "u1", Entity: EntityTask, Operation: "create", RecordedAt: old}); err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := store.Append(Event{UserID: "u1", Entity: EntityTask, Operation: "update"}); err != nil {
		t.Fatalf("Append error: %v", err)
	}

	removed, err := store.Prune(time.Now().UTC().Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("Prune error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	size, err := store.Size()
	if err != nil {
		t.Fatalf("Size error: %v", err)
	}
	if size != 1 {
		t.Fatalf("expected 1 remaining, got %d", size)
	}
}

func TestSize_Empty(t *testing.T) {
	store := openTestStore(t)

	size, err := store.Size()
	if err != nil {
		t.Fatalf("Size error: %v", err)
	}
	if size != 0 {
		t.Fatalf("expected empty journal, got %d", size)
	}
}
