package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kids-arcade/internal/scores"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenClose(t *testing.T) {
	store, dbPath := openTemp(t)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	version, err := store.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() failed: %v", err)
	}
	if version != 2 {
		t.Errorf("schema version = %d, expected 2", version)
	}
}

func TestStoreReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 2; i++ {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i+1, err)
		}
		if _, err := store.SaveScore("runner", 3, 0); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		store.Close()
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	entries, _ := store.RecentScores("runner", 10)
	if len(entries) != 2 {
		t.Errorf("expected 2 rows after reopening, got %d", len(entries))
	}
}

func TestKVGetPut(t *testing.T) {
	store, _ := openTemp(t)

	got, err := store.Get("missing")
	if err != nil || got != nil {
		t.Fatalf("Get(missing) = %q, %v; expected nil, nil", got, err)
	}

	if err := store.Put("k", []byte("one")); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := store.Put("k", []byte("two")); err != nil {
		t.Fatalf("Put() overwrite failed: %v", err)
	}
	got, err = store.Get("k")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("Get() = %q, expected %q", got, "two")
	}
}

func TestBookOverStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	logger := log.New(io.Discard)

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	book := scores.NewBook(store, logger)
	book.Submit("snake", 7, 1, scores.HigherIsBetter)
	book.Submit("snake", 4, 2, scores.HigherIsBetter)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	rec := scores.NewBook(store, logger).Get("snake")
	if rec != (scores.Record{BestScore: 7, BestStars: 2}) {
		t.Errorf("record after reopen = %+v, expected {7 2}", rec)
	}
}

func TestTopScoresOrdering(t *testing.T) {
	store, _ := openTemp(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("maze", score, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	for _, moves := range []int{18, 12, 30} {
		if _, err := store.SaveScore("memory", moves, 2); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	top, err := store.TopScores("maze", 10, false)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 || top[0].Score != 200 || top[2].Score != 50 {
		t.Errorf("maze top = %+v, expected 200..50", top)
	}

	fewest, err := store.TopScores("memory", 2, true)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(fewest) != 2 || fewest[0].Score != 12 || fewest[1].Score != 18 {
		t.Errorf("memory top = %+v, expected 12, 18", fewest)
	}
	if fewest[0].Stars != 2 {
		t.Errorf("stars = %d, expected 2", fewest[0].Stars)
	}
}

func TestRecentScores(t *testing.T) {
	store, _ := openTemp(t)
	for _, score := range []int{1, 2, 3} {
		store.SaveScore("jump", score, 0)
	}

	recent, err := store.RecentScores("jump", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 3 || recent[1].Score != 2 {
		t.Errorf("recent = %+v, expected 3, 2", recent)
	}
}

func TestGameStats(t *testing.T) {
	store, _ := openTemp(t)

	empty, err := store.GameStats("runner")
	if err != nil {
		t.Fatalf("GameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	for _, row := range [][2]int{{5, 1}, {15, 2}, {10, 1}} {
		store.SaveScore("runner", row[0], row[1])
	}
	store.SaveScore("snake", 4, 1)

	stats, err := store.GameStats("runner")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 15 || stats.LowScore != 5 || stats.BestStars != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 10 {
		t.Errorf("AvgScore = %v, expected 10", stats.AvgScore)
	}

	all, err := store.AllGamesStats()
	if err != nil {
		t.Fatalf("AllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["snake"].GamesCount != 1 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestClearScores(t *testing.T) {
	store, _ := openTemp(t)
	store.SaveScore("maze", 10, 0)
	store.SaveScore("snake", 3, 1)

	if err := store.ClearScores("maze"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	maze, _ := store.RecentScores("maze", 10)
	snake, _ := store.RecentScores("snake", 10)
	if len(maze) != 0 || len(snake) != 1 {
		t.Errorf("after clear: maze=%d snake=%d rows", len(maze), len(snake))
	}
}
