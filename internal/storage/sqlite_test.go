package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/StevenRydell/littlespace/internal/core"
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("skirmish", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Different game
	if _, err := store.SaveScore("flight", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("skirmish", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	flightScores, err := store.TopScores("flight", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(flightScores) != 1 {
		t.Errorf("Expected 1 flight score, got %d", len(flightScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("skirmish")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("skirmish", 100)
	store.SaveScore("skirmish", 300)
	store.SaveScore("skirmish", 200)

	high, err = store.HighScore("skirmish")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("skirmish", 100)
	store.SaveScore("skirmish", 200)
	store.SaveRun("skirmish", 200, core.RunStats{Kills: 3, Shots: 10})
	store.SaveScore("flight", 300)

	if err := store.ClearScores("skirmish"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("skirmish", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 skirmish scores after clear, got %d", len(scores))
	}
	runs, _ := store.RecentRuns("skirmish", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 skirmish runs after clear, got %d", len(runs))
	}

	// Flight should still have scores
	flightScores, _ := store.TopScores("flight", 10)
	if len(flightScores) != 1 {
		t.Errorf("Flight scores should not be affected by clearing skirmish")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreTildePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.littlespace/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".littlespace", "scores.db")); err != nil {
		t.Errorf("Database file was not created under home: %v", err)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveRun("skirmish", 250, core.RunStats{Kills: 5, Shots: 20, Duration: 90 * time.Second})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	second, err := store.SaveRun("skirmish", 40, core.RunStats{Kills: 1, Shots: 0, Duration: 1500 * time.Millisecond})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if second <= first {
		t.Errorf("Expected increasing IDs, got %d then %d", first, second)
	}

	runs, err := store.RecentRuns("skirmish", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].ID != second || runs[0].Score != 40 {
		t.Errorf("Expected newest run first, got %+v", runs[0])
	}
	if runs[0].Duration != 1500*time.Millisecond {
		t.Errorf("Expected duration 1.5s, got %v", runs[0].Duration)
	}
	if runs[0].Accuracy() != 0 {
		t.Errorf("Expected zero accuracy without shots, got %v", runs[0].Accuracy())
	}
	if runs[1].Kills != 5 || runs[1].Shots != 20 {
		t.Errorf("Unexpected stats on first run: %+v", runs[1])
	}
	if runs[1].Accuracy() != 0.25 {
		t.Errorf("Expected accuracy 0.25, got %v", runs[1].Accuracy())
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		store.SaveRun("flight", i, core.RunStats{})
	}

	runs, err := store.RecentRuns("flight", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Fatalf("Expected 5 runs, got %d", len(runs))
	}
	if runs[0].Score != 29 {
		t.Errorf("Expected latest score 29, got %d", runs[0].Score)
	}

	// Non-positive limit falls back to the default
	runs, err = store.RecentRuns("flight", 0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected default limit of 20, got %d", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("skirmish")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.Runs != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("skirmish", 100)
	store.SaveScore("skirmish", 300)
	store.SaveRun("skirmish", 100, core.RunStats{Kills: 2, Shots: 8, Duration: 30 * time.Second})
	store.SaveRun("skirmish", 300, core.RunStats{Kills: 6, Shots: 8, Duration: 60 * time.Second})

	stats, err = store.GetGameStats("skirmish")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %v", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
	if stats.Runs != 2 || stats.TotalKills != 8 || stats.TotalShots != 16 {
		t.Errorf("Unexpected run totals: %+v", stats)
	}
	if stats.PlayTime != 90*time.Second {
		t.Errorf("Expected 90s of play, got %v", stats.PlayTime)
	}
	if stats.Accuracy() != 0.5 {
		t.Errorf("Expected accuracy 0.5, got %v", stats.Accuracy())
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("skirmish", 100)
	store.SaveScore("skirmish", 50)
	store.SaveScore("flight", 7)

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(all))
	}
	if all["skirmish"].HighScore != 100 || all["skirmish"].GamesCount != 2 {
		t.Errorf("Unexpected skirmish stats: %+v", all["skirmish"])
	}
	if all["flight"].TotalScore != 7 {
		t.Errorf("Unexpected flight stats: %+v", all["flight"])
	}
	if _, ok := all["circle"]; ok {
		t.Error("Unplayed games should not appear")
	}
}
