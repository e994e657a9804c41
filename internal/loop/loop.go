// Package loop provides the main game loop and state management.
package loop

import (
	"context"
	"time"

	"github.com/aisha947/amazon-q-game-challenge/internal/input"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
)

// Frontend is the presentation side of the game. Poll returns the input
// gathered since the previous frame without blocking; Render draws a frame.
type Frontend interface {
	Poll() input.Frame
	Render(Snapshot) error
}

// Run starts the main game loop with the standard Input → Update → Draw cycle.
// It returns when the machine quits, the context is done, or rendering fails.
func Run(ctx context.Context, fe Frontend, m *Machine) error {
	for m.Running() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frameStart := time.Now()

		// ===== INPUT PHASE =====
		frame := fe.Poll()

		// ===== UPDATE PHASE =====
		m.Update(frameStart, frame)

		// ===== DRAW PHASE =====
		if err := fe.Render(m.Snapshot(frameStart)); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}
	return nil
}
