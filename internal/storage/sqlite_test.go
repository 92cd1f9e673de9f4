package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
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

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("pandas", "mei", 700); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if high, _ := store.HighScore("pandas"); high != 700 {
		t.Errorf("HighScore() after reopen = %d, expected 700", high)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []struct {
		game, player string
		score        int
	}{
		{"pandas", "mei", 300},
		{"pandas", "bao", 900},
		{"pandas", "lin", 600},
		{"pandas_blitz", "mei", 1200},
	} {
		if _, err := store.SaveScore(sc.game, sc.player, sc.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("pandas", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected 2 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 900 || scores[0].Player != "bao" || scores[1].Score != 600 {
		t.Errorf("scores not in expected order: %+v", scores)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	blitz, _ := store.TopScores("pandas_blitz", 10)
	if len(blitz) != 1 {
		t.Errorf("expected 1 blitz score, got %d", len(blitz))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pandas")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for an empty game, got %d", high)
	}

	store.SaveScore("pandas", "", 100)
	store.SaveScore("pandas", "", 300)
	if high, _ := store.HighScore("pandas"); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	run := Run{
		GameID:       "pandas",
		Player:       "mei",
		Score:        1500,
		Seed:         42,
		Duration:     61500 * time.Millisecond,
		Swaps:        9,
		InvalidSwaps: 2,
		Matches:      12,
		Cascades:     3,
		MaxCascade:   2,
		TilesCleared: 15,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	run.ID = id
	run.CreatedAt = got.CreatedAt
	if *got != run {
		t.Errorf("RunByID() = %+v\nexpected %+v", *got, run)
	}

	// The run's score lands on the scoreboard too.
	if high, _ := store.HighScore("pandas"); high != 1500 {
		t.Errorf("HighScore() = %d, expected 1500", high)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.NewString()
	got, err := store.SaveRun(Run{ID: id, GameID: "pandas", Score: 10})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != id {
		t.Errorf("SaveRun() = %q, expected %q", got, id)
	}
	if _, err := store.SaveRun(Run{ID: id, GameID: "pandas"}); err == nil {
		t.Error("expected an error for a duplicate run ID")
	}
	// The failed insert must not leave a stray score behind.
	scores, _ := store.TopScores("pandas", 10)
	if len(scores) != 1 {
		t.Errorf("expected 1 score after rollback, got %d", len(scores))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)
	for i := 1; i <= 4; i++ {
		game := "pandas"
		if i == 4 {
			game = "pandas_blitz"
		}
		if _, err := store.SaveRun(Run{GameID: game, Score: i * 100}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("pandas", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 300 || runs[1].Score != 200 {
		t.Errorf("RecentRuns(pandas, 2) = %+v", runs)
	}

	all, _ := store.RecentRuns("", 10)
	if len(all) != 4 || all[0].GameID != "pandas_blitz" {
		t.Errorf("RecentRuns(all) = %+v", all)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("pandas")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for an unplayed game = %+v", empty)
	}

	store.SaveRun(Run{GameID: "pandas", Score: 300, TilesCleared: 3, MaxCascade: 0})
	store.SaveRun(Run{GameID: "pandas", Score: 900, TilesCleared: 9, MaxCascade: 2})

	stats, err := store.GetGameStats("pandas")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 900 || stats.AvgScore != 600 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TilesCleared != 12 || stats.BestCascade != 2 {
		t.Errorf("tiles/cascade = %d/%d", stats.TilesCleared, stats.BestCascade)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveRun(Run{GameID: "pandas", Score: 100})
	store.SaveScore("pandas_blitz", "", 50)

	if err := store.ClearScores("pandas"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ := store.HighScore("pandas"); high != 0 {
		t.Errorf("pandas high score = %d after clear", high)
	}
	if runs, _ := store.RecentRuns("pandas", 10); len(runs) != 0 {
		t.Errorf("runs left after clear: %v", runs)
	}
	if high, _ := store.HighScore("pandas_blitz"); high != 50 {
		t.Error("clearing one game should not affect another")
	}
}

func TestStoreSaveRunKeepsCreatedAt(t *testing.T) {
	store := openTestStore(t)
	played := time.Date(2025, 3, 14, 9, 26, 53, 0, time.FixedZone("UTC+3", 3*60*60))

	id, err := store.SaveRun(Run{GameID: "pandas", Player: "mei", Score: 200, CreatedAt: played})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	got, err := store.RunByID(id)
	if err != nil || got == nil {
		t.Fatalf("RunByID() = %v, %v", got, err)
	}
	if !got.CreatedAt.Equal(played) {
		t.Errorf("run CreatedAt = %s, expected %s", got.CreatedAt, played)
	}

	scores, err := store.TopScores("pandas", 1)
	if err != nil || len(scores) != 1 {
		t.Fatalf("TopScores() = %v, %v", scores, err)
	}
	if !scores[0].CreatedAt.Equal(played) {
		t.Errorf("score CreatedAt = %s, expected %s", scores[0].CreatedAt, played)
	}

	// An older run sorts after a newer one even when saved later.
	if _, err := store.SaveRun(Run{GameID: "pandas", Score: 100, CreatedAt: played.Add(-time.Hour)}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	runs, err := store.RecentRuns("pandas", 10)
	if err != nil || len(runs) != 2 {
		t.Fatalf("RecentRuns() = %v, %v", runs, err)
	}
	if runs[0].ID != id {
		t.Errorf("newest run = %s, expected %s", runs[0].ID, id)
	}
}
