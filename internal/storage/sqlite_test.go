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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		score int
		cause string
		ticks int
	}{
		{100, "pipe", 900},
		{50, "ground", 400},
		{200, "pipe", 1800},
	}
	for _, r := range runs {
		if _, err := store.SaveRun("flappy", r.score, r.cause, r.ticks); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err := store.TopRuns("flappy", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Sorted by score descending
	if entries[0].Score != 200 || entries[1].Score != 100 || entries[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
	if entries[0].Cause != "pipe" || entries[0].Duration != 1800 {
		t.Errorf("Run metadata lost: %+v", entries[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun("flappy", (i+1)*100, "pipe", 100)
	}

	entries, err := store.TopRuns("flappy", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(entries))
	}
	if entries[0].Score != 500 || entries[1].Score != 400 || entries[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun("flappy", 100, "pipe", 900)
	store.SaveRun("flappy", 300, "ground", 2400)
	store.SaveRun("flappy", 200, "pipe", 1600)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("flappy", 100, "pipe", 900)
	store.SaveRun("flappy", 200, "pipe", 1700)
	store.SaveRun("other", 300, "", 0)

	if err := store.ClearRuns("flappy"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	flappyRuns, _ := store.TopRuns("flappy", 10)
	if len(flappyRuns) != 0 {
		t.Errorf("Expected 0 flappy runs after clear, got %d", len(flappyRuns))
	}

	otherRuns, _ := store.TopRuns("other", 10)
	if len(otherRuns) != 1 {
		t.Error("Other games' runs should not be affected by the clear")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun("flappy", 10, "pipe", 300)
	store.SaveRun("flappy", 30, "ground", 700)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
	if stats.TotalTicks != 1000 {
		t.Errorf("TotalTicks = %d, expected 1000", stats.TotalTicks)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
