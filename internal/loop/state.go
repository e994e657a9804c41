package loop

import (
	"time"

	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/object"
)

// GameState represents the current game phase.
type GameState int

const (
	StateMenu     GameState = iota // Title screen with difficulty selector
	StatePlaying                   // Active gameplay
	StateGameOver                  // Timer ran out, show final score
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session holds the values of one play-through. It is created when a game
// starts and stays readable on the game over screen.
type Session struct {
	Score      int               // May go negative
	Misses     int               // Apples that hit the ground
	StartedAt  time.Time         // Session clock origin
	LastSpawn  time.Time         // Next spawn is due one interval after this
	Entities   []object.Entity   // Active (pending) falling objects
	Difficulty config.Difficulty // Fixed for the whole session
}

// newSession creates a fresh session starting at now.
func newSession(now time.Time, d config.Difficulty) *Session {
	return &Session{
		StartedAt:  now,
		LastSpawn:  now,
		Entities:   []object.Entity{},
		Difficulty: d,
	}
}

// Elapsed returns the session time at now.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// Remaining returns the time left at now, never negative.
func (s *Session) Remaining(now time.Time) time.Duration {
	left := config.SessionDuration - s.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	State        GameState
	Selected     string   // Difficulty highlighted in the menu
	Difficulties []string // Menu order
	Difficulty   string   // Difficulty of the current or last session
	Score        int
	Misses       int
	Remaining    time.Duration
	Basket       object.Basket
	Entities     []object.Entity
	Screen       object.Screen
}

// RemainingSeconds returns the whole seconds left, as shown on the HUD.
func (s Snapshot) RemainingSeconds() int {
	return int(s.Remaining / time.Second)
}
