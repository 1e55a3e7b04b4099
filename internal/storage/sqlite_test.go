package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/flapfight/internal/core"
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
	if _, err := store.SaveScore("flappy", 12); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected 12 after reopen, got %d", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("flappy2", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, s.Score, want[i])
		}
		if s.GameID != "flappy" {
			t.Errorf("scores[%d].GameID = %q", i, s.GameID)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("flappy", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("flappy", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected highest score 190, got %d", scores[0].Score)
	}

	// Non-positive limits fall back to 10
	scores, err = store.TopScores("flappy", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.SaveScore("flappy", 30)
	store.SaveScore("flappy", 80)
	store.SaveScore("flappy", 40)

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 80 {
		t.Errorf("Expected 80, got %d", high)
	}
}

func TestStoreMatches(t *testing.T) {
	store := openTestStore(t)

	outcomes := []core.MatchOutcome{
		{Score1: 40, Score2: 0, Winner: core.Player1, Ticks: 600},
		{Score1: 0, Score2: 0, Ticks: 900},
		{Score1: 0, Score2: 10, Winner: core.Player2, Ticks: 300},
	}
	for _, o := range outcomes {
		if _, err := store.SaveMatch(MatchFromOutcome("fight", o)); err != nil {
			t.Fatalf("SaveMatch() failed: %v", err)
		}
	}
	if _, err := store.SaveMatch(MatchFromOutcome("flappy2", core.MatchOutcome{Score1: 3, Score2: 1, Winner: core.Player1})); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	recent, err := store.RecentMatches("fight", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 fight matches, got %d", len(recent))
	}
	// Newest first
	if recent[0].Winner != 2 || recent[0].Score2 != 10 || recent[0].Ticks != 300 {
		t.Errorf("recent[0] = %+v", recent[0])
	}
	if recent[1].WinnerLabel() != "draw" || recent[0].WinnerLabel() != "P2" {
		t.Errorf("labels = %q, %q", recent[0].WinnerLabel(), recent[1].WinnerLabel())
	}

	all, err := store.RecentMatches("", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(all) != 4 || all[0].GameID != "flappy2" {
		t.Errorf("Expected 4 matches with flappy2 newest, got %+v", all)
	}

	stats, err := store.GetMatchStats("fight")
	if err != nil {
		t.Fatalf("GetMatchStats() failed: %v", err)
	}
	if stats.Matches != 3 || stats.P1Wins != 1 || stats.P2Wins != 1 || stats.Draws != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestMatchResultSeconds(t *testing.T) {
	m := MatchResult{Ticks: 150}
	tests := []struct {
		rate int
		want int
	}{
		{60, 2},
		{30, 5},
		{0, 2},
		{-1, 2},
	}
	for _, tt := range tests {
		if got := m.Seconds(tt.rate); got != tt.want {
			t.Errorf("Seconds(%d) = %d, want %d", tt.rate, got, tt.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 100)
	store.SaveScore("flappy2", 200)
	store.SaveMatch(MatchResult{GameID: "flappy", Score1: 1})

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappy, _ := store.TopScores("flappy", 10)
	if len(flappy) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappy))
	}
	matches, _ := store.RecentMatches("flappy", 10)
	if len(matches) != 0 {
		t.Errorf("Expected 0 flappy matches after clear, got %d", len(matches))
	}
	other, _ := store.TopScores("flappy2", 10)
	if len(other) != 1 {
		t.Errorf("Expected flappy2 scores to survive, got %d", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("flappy", 10)
	store.SaveScore("flappy", 30)

	stats, err := store.GetGameStats("flappy")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("fight")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.flapfight/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".flapfight", "test.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
