package loop

import (
	"time"

	"github.com/aisha947/amazon-q-game-challenge/internal/input"
)

// applyEvents dispatches the frame's events to the handler of the current
// state. Quit is honored in every state; any other event that arrives after
// a transition in the same frame is dropped.
func (m *Machine) applyEvents(now time.Time, events []input.Event) {
	from := m.state
	for _, ev := range events {
		if ev.Kind == input.EventQuit {
			m.logger.Info("quit requested", "state", m.state)
			m.Quit()
			return
		}
		if m.state != from {
			continue
		}

		switch m.state {
		case StateMenu:
			m.updateMenuState(now, ev)
		case StateGameOver:
			m.updateGameOverState(ev)
		}
	}
}

// updateMenuState handles the title screen: difficulty selection and start.
func (m *Machine) updateMenuState(now time.Time, ev input.Event) {
	switch ev.Kind {
	case input.EventSelectDifficulty:
		if err := m.SelectDifficulty(ev.Difficulty); err != nil {
			m.logger.Debug("difficulty rejected", "name", ev.Difficulty, "err", err)
		}
	case input.EventStartGame:
		_ = m.Start(now) // cannot fail from the menu
	}
}

// updateGameOverState handles the final score screen.
func (m *Machine) updateGameOverState(ev input.Event) {
	if ev.Kind == input.EventReturnToMenu {
		_ = m.ReturnToMenu()
	}
}
