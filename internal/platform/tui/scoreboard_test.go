package tui

import (
	"testing"

	"github.com/vovakirdan/flapfight/internal/core"
	"github.com/vovakirdan/flapfight/internal/registry"
	"github.com/vovakirdan/flapfight/internal/storage"
)

func TestScoreboardMatchTimeUsesTickRate(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveMatch(storage.MatchResult{GameID: "fight", Score1: 40, Winner: 1, Ticks: 120}); err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}

	tests := []struct {
		tickRate int
		want     string
	}{
		{60, "2s"},
		{30, "4s"},
		{0, "2s"},
	}
	for _, tt := range tests {
		m := NewScoreboardModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: tt.tickRate})
		m.games = []registry.GameInfo{{ID: "fight", Title: "Fight", Players: 2}}
		m.gameCursor = 0
		m.load()

		rows := m.table.Rows()
		if len(rows) != 1 {
			t.Fatalf("tick rate %d: got %d rows, want 1", tt.tickRate, len(rows))
		}
		if got := rows[0][3]; got != tt.want {
			t.Errorf("tick rate %d: time column = %q, want %q", tt.tickRate, got, tt.want)
		}
	}
}
