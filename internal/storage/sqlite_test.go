package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pong-engine/internal/games/pong"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	r := pong.NewRand(1)
	state := pong.New(r)
	for i := 0; i < 150; i++ {
		state = pong.Advance(r, state, 2, -2)
	}

	saved, err := store.SaveCheckpoint("rally", state)
	if err != nil {
		t.Fatalf("SaveCheckpoint() failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("SaveCheckpoint() returned empty ID")
	}
	if saved.Step != 150 {
		t.Errorf("Step = %d, expected 150", saved.Step)
	}

	loaded, err := store.Checkpoint(saved.ID)
	if err != nil {
		t.Fatalf("Checkpoint() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Checkpoint() returned nil for saved ID")
	}
	if loaded.State != state {
		t.Errorf("loaded state differs:\n got %+v\nwant %+v", loaded.State, state)
	}
	if loaded.Fingerprint != state.FingerprintHex() {
		t.Errorf("Fingerprint = %s, expected %s", loaded.Fingerprint, state.FingerprintHex())
	}
	if loaded.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreMissingCheckpoint(t *testing.T) {
	store := openTestStore(t)

	cp, err := store.Checkpoint("does-not-exist")
	if err != nil {
		t.Fatalf("Checkpoint() failed: %v", err)
	}
	if cp != nil {
		t.Errorf("expected nil for missing checkpoint, got %+v", cp)
	}

	latest, err := store.LatestCheckpoint("nothing")
	if err != nil {
		t.Fatalf("LatestCheckpoint() failed: %v", err)
	}
	if latest != nil {
		t.Error("expected nil for unknown label")
	}
}

func TestStoreListAndLatest(t *testing.T) {
	store := openTestStore(t)

	r := pong.NewRand(2)
	state := pong.New(r)
	var lastID string
	for i := 0; i < 5; i++ {
		state = pong.Advance(r, state, 0, 0)
		cp, err := store.SaveCheckpoint("tick", state)
		if err != nil {
			t.Fatalf("SaveCheckpoint() failed: %v", err)
		}
		lastID = cp.ID
	}
	if _, err := store.SaveCheckpoint("other", pong.New(r)); err != nil {
		t.Fatalf("SaveCheckpoint() failed: %v", err)
	}

	all, err := store.ListCheckpoints(10)
	if err != nil {
		t.Fatalf("ListCheckpoints() failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("Expected 6 checkpoints, got %d", len(all))
	}

	limited, err := store.ListCheckpoints(3)
	if err != nil {
		t.Fatalf("ListCheckpoints() failed: %v", err)
	}
	if len(limited) != 3 {
		t.Errorf("Expected 3 checkpoints with limit, got %d", len(limited))
	}

	latest, err := store.LatestCheckpoint("tick")
	if err != nil {
		t.Fatalf("LatestCheckpoint() failed: %v", err)
	}
	if latest == nil || latest.ID != lastID {
		t.Errorf("LatestCheckpoint() = %+v, expected ID %s", latest, lastID)
	}
	if latest != nil && latest.Step != 5 {
		t.Errorf("latest Step = %d, expected 5", latest.Step)
	}
}

func TestStoreDeleteCheckpoint(t *testing.T) {
	store := openTestStore(t)

	cp, err := store.SaveCheckpoint("gone", pong.New(pong.NewRand(3)))
	if err != nil {
		t.Fatalf("SaveCheckpoint() failed: %v", err)
	}

	if err := store.DeleteCheckpoint(cp.ID); err != nil {
		t.Fatalf("DeleteCheckpoint() failed: %v", err)
	}

	loaded, err := store.Checkpoint(cp.ID)
	if err != nil {
		t.Fatalf("Checkpoint() failed: %v", err)
	}
	if loaded != nil {
		t.Error("checkpoint should be gone after delete")
	}

	// Deleting again is a no-op
	if err := store.DeleteCheckpoint(cp.ID); err != nil {
		t.Errorf("second DeleteCheckpoint() failed: %v", err)
	}
}
