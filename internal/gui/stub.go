//go:build !ebiten

package gui

import (
	"github.com/charmbracelet/log"

	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
)

// Run reports ErrUnavailable; window support needs the ebiten build tag.
func Run(m *loop.Machine, logger *log.Logger) error {
	return ErrUnavailable
}
