// Package audio defines the sound cues the game emits and the players that
// can voice them.
package audio

import (
	"io"

	"github.com/charmbracelet/log"
)

// Cue names a sound effect.
type Cue string

const (
	CueCatch    Cue = "catch"     // Apple caught
	CueMiss     Cue = "miss"      // Apple hit the ground
	CueBadCatch Cue = "bad_catch" // Rock caught
)

// Cues lists every cue the game emits.
func Cues() []Cue {
	return []Cue{CueCatch, CueMiss, CueBadCatch}
}

// Player voices cues. Play is fire-and-forget: it must not block the frame
// and never reports failure to the caller.
type Player interface {
	Play(cue Cue)
}

// Nop is a Player that discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Bell rings the terminal bell for every cue. It is the only sound a remote
// terminal session can make.
type Bell struct {
	w      io.Writer
	logger *log.Logger
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer, logger *log.Logger) *Bell {
	if logger == nil {
		logger = log.Default()
	}
	return &Bell{w: w, logger: logger}
}

// Play writes BEL. Write failures are logged and otherwise ignored.
func (b *Bell) Play(cue Cue) {
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.logger.Debug("bell failed", "cue", cue, "err", err)
	}
}

// Recorder keeps every cue it is asked to play, in order.
type Recorder struct {
	Played []Cue
}

// Play appends the cue.
func (r *Recorder) Play(cue Cue) {
	r.Played = append(r.Played, cue)
}
