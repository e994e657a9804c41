package loop

import (
	"testing"
	"time"
)

func TestSnapshotText(t *testing.T) {
	s := Snapshot{
		Score:      -15,
		Misses:     4,
		Remaining:  12*time.Second + 900*time.Millisecond,
		Difficulty: "Hard",
		Selected:   "Easy",
	}

	if got := s.ScoreText(); got != "Score: -15" {
		t.Errorf("ScoreText = %q", got)
	}
	if got := s.MissesText(); got != "Misses: 4" {
		t.Errorf("MissesText = %q", got)
	}
	if got := s.TimeText(); got != "Time: 12s" {
		t.Errorf("TimeText = %q, want whole seconds rounded down", got)
	}

	stats := s.StatsLines()
	if len(stats) != 3 || stats[0] != "Final Score: -15" || stats[2] != "Difficulty: Hard" {
		t.Errorf("StatsLines = %q", stats)
	}

	if got := s.DifficultyLabel(0, "Easy"); got != "> 1. Easy  " {
		t.Errorf("selected label = %q", got)
	}
	if got := s.DifficultyLabel(2, "Hard"); got != "  3. Hard  " {
		t.Errorf("label = %q", got)
	}
}
