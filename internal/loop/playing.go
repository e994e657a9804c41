package loop

import (
	"time"

	"github.com/aisha947/amazon-q-game-challenge/internal/audio"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/object"
	"github.com/aisha947/amazon-q-game-challenge/internal/physics"
)

// updatePlaying runs one gameplay tick: timer, basket, spawn, fall, resolve.
func (m *Machine) updatePlaying(now time.Time, pointerX int) {
	s := m.session

	// Timer is checked first so an expired session is frozen as-is.
	if s.Elapsed(now) >= config.SessionDuration {
		m.endSession()
		return
	}

	dt := now.Sub(m.lastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	m.lastTick = now

	m.basket.MoveTo(pointerX, m.screen)

	if e, ok := m.spawner.MaybeSpawn(now, &s.LastSpawn, s.Difficulty); ok {
		s.Entities = append(s.Entities, e)
	}

	m.updateEntities(dt)
}

// updateEntities moves every entity, settles the ones that were caught or
// missed, applies their effects, and drops them from the active set.
func (m *Machine) updateEntities(dt float64) {
	s := m.session

	kept := s.Entities[:0] // reuse backing array
	for i := range s.Entities {
		e := s.Entities[i]
		e.Update(dt)

		if outcome := physics.Resolve(e, m.basket, m.screen); outcome != object.Pending && e.Settle(outcome) {
			m.applyOutcome(e)
			continue
		}
		kept = append(kept, e)
	}
	s.Entities = kept
}

// applyOutcome applies the score, miss and sound effects of a settled entity.
func (m *Machine) applyOutcome(e object.Entity) {
	s := m.session

	switch {
	case e.Outcome == object.Caught && e.Category == object.Beneficial:
		s.Score += config.ScoreCatch
		m.audio.Play(audio.CueCatch)
	case e.Outcome == object.Caught && e.Category == object.Harmful:
		s.Score += config.ScoreBadCatch
		m.audio.Play(audio.CueBadCatch)
	case e.Outcome == object.Missed && e.Category == object.Beneficial:
		s.Misses++
		m.audio.Play(audio.CueMiss)
	default:
		// Missed harmful objects leave silently.
		return
	}

	m.logger.Debug("entity settled",
		"category", e.Category,
		"outcome", e.Outcome,
		"score", s.Score,
		"misses", s.Misses,
	)
}

// endSession freezes the session and shows the game over screen.
func (m *Machine) endSession() {
	m.state = StateGameOver
	m.logger.Info("game over",
		"difficulty", m.session.Difficulty.Name,
		"score", m.session.Score,
		"misses", m.session.Misses,
	)
}
