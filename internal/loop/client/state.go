package client

import (
	"time"

	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
)

// ClientState holds presentation state that is not part of the game itself:
// what the terminal currently shows, idle tracking and the shutdown notice.
type ClientState struct {
	drawn         bool           // At least one frame was rendered
	prevGameState loop.GameState // State shown by the previous frame
	lastPointer   int            // Pointer x seen by the previous poll
	lastInput     time.Time      // Last key press or pointer move
	isInactive    bool           // Showing the inactivity warning
	wasInactive   bool
	shuttingDown  bool      // Host announced shutdown
	shutdownAt    time.Time // When the session closes itself
	wasShutdown   bool
}

// NewClientState creates a new initialized client state.
func NewClientState(now time.Time) *ClientState {
	return &ClientState{
		lastInput: now,
	}
}

// needsClear reports whether the screen changed mode since the previous frame
// and records the new mode.
func (s *ClientState) needsClear(state loop.GameState) bool {
	changed := !s.drawn ||
		state != s.prevGameState ||
		s.isInactive != s.wasInactive ||
		s.shuttingDown != s.wasShutdown

	s.drawn = true
	s.prevGameState = state
	s.wasInactive = s.isInactive
	s.wasShutdown = s.shuttingDown
	return changed
}
