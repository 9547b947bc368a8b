package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	entry, err := store.Lookup("racer")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if entry != nil {
		t.Errorf("Lookup() on empty store = %+v, expected nil", entry)
	}
}

func TestStoreSetHighScoreReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore("racer", 50); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("racer", 70); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("other", 5); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	high, err := store.HighScore("racer")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 70 {
		t.Errorf("Expected high score of 70, got %d", high)
	}

	entry, err := store.Lookup("racer")
	if err != nil || entry == nil {
		t.Fatalf("Lookup() = %v, %v", entry, err)
	}
	if entry.Score != 70 || entry.GameID != "racer" {
		t.Errorf("Lookup() = %+v, expected racer/70", entry)
	}
}

func TestStoreRejectsNegative(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetHighScore("racer", -1); err == nil {
		t.Error("SetHighScore(-1) should fail")
	}
}

func TestStoreClearHighScore(t *testing.T) {
	store := openTestStore(t)

	store.SetHighScore("racer", 100)
	store.SetHighScore("other", 300)

	if err := store.ClearHighScore("racer"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}

	if high, _ := store.HighScore("racer"); high != 0 {
		t.Errorf("Expected 0 after clear, got %d", high)
	}
	if high, _ := store.HighScore("other"); high != 300 {
		t.Errorf("other game should not be affected by clearing racer, got %d", high)
	}
}

func TestGameScorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	if err := store.ForGame("racer").Save(42); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.ForGame("racer").Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != 42 {
		t.Errorf("Load() = %d, expected 42", got)
	}
}
