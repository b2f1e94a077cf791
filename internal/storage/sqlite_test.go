package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
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
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

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

	rounds := []RoundRecord{
		{GameID: "treats", Outcome: "won", Points: 30, Lives: 3, Seconds: 41, TreatsX3: 4, TreatsX2: 3},
		{GameID: "treats", Outcome: "lost", Points: 5, Lives: 0, Seconds: 80, Mines: 3},
		{GameID: "treats", Outcome: "won", Points: 30, Lives: 2, Seconds: 25},
		{GameID: "other", Outcome: "won", Points: 99, Seconds: 1},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	top, err := store.TopRounds("treats", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(top))
	}

	// Ties on points go to the faster round.
	if top[0].Points != 30 || top[0].Seconds != 25 {
		t.Errorf("Expected 30 points in 25s first, got %d in %ds", top[0].Points, top[0].Seconds)
	}
	if top[1].Seconds != 41 || top[1].TreatsX3 != 4 || top[1].TreatsX2 != 3 {
		t.Errorf("Second round not stored intact: %+v", top[1])
	}
	if top[2].Outcome != "lost" || top[2].Mines != 3 {
		t.Errorf("Third round not stored intact: %+v", top[2])
	}
	for _, r := range top {
		if r.ID == "" {
			t.Error("Round without ID")
		}
		if r.CreatedAt.IsZero() {
			t.Error("Round without timestamp")
		}
	}

	limited, err := store.TopRounds("treats", 1)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 round with limit, got %d", len(limited))
	}
}

func TestStoreRoundByID(t *testing.T) {
	store := openTestStore(t)

	created := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	id, err := store.SaveRound(RoundRecord{GameID: "treats", Outcome: "won", Points: 12, Seconds: 9, CreatedAt: created})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	r, err := store.RoundByID(id)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if r.Points != 12 || r.Outcome != "won" {
		t.Errorf("Unexpected round: %+v", r)
	}
	if !r.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, expected %v", r.CreatedAt, created)
	}

	if _, err := store.RoundByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("RoundByID(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("treats")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	for _, p := range []int{-4, 18, 7} {
		if _, err := store.SaveRound(RoundRecord{GameID: "treats", Outcome: "lost", Points: p}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	high, err = store.HighScore("treats")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 18 {
		t.Errorf("Expected high score 18, got %d", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("treats")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty store: %+v", empty)
	}

	rounds := []RoundRecord{
		{GameID: "treats", Outcome: "won", Points: 20, Seconds: 50, Mines: 1},
		{GameID: "treats", Outcome: "won", Points: 10, Seconds: 30},
		{GameID: "treats", Outcome: "lost", Points: 0, Seconds: 10, Mines: 3},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	stats, err := store.Stats("treats")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 3 || stats.Wins != 2 {
		t.Errorf("rounds=%d wins=%d, expected 3 and 2", stats.Rounds, stats.Wins)
	}
	if stats.HighScore != 20 || stats.AvgScore != 10 {
		t.Errorf("high=%d avg=%v, expected 20 and 10", stats.HighScore, stats.AvgScore)
	}
	if stats.BestTime != 30 {
		t.Errorf("best time = %d, expected 30 (losses excluded)", stats.BestTime)
	}
	if stats.Mines != 4 {
		t.Errorf("mines = %d, expected 4", stats.Mines)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound(RoundRecord{GameID: "treats", Outcome: "won", Points: 1}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(RoundRecord{GameID: "other", Outcome: "won", Points: 1}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	if err := store.ClearRounds("treats"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	treats, _ := store.TopRounds("treats", 10)
	if len(treats) != 0 {
		t.Errorf("Expected no treats rounds after clear, got %d", len(treats))
	}
	other, _ := store.TopRounds("other", 10)
	if len(other) != 1 {
		t.Errorf("Expected other game untouched, got %d", len(other))
	}
}
