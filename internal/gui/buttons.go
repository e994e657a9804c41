// Package gui is a desktop window frontend built on ebiten. It draws the
// playfield at its native 800x600 resolution. Builds without the ebiten tag
// get a stub Run that reports ErrUnavailable.
package gui

import (
	"errors"

	"github.com/aisha947/amazon-q-game-challenge/internal/input"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
)

// ErrUnavailable is returned by Run in builds without window support.
var ErrUnavailable = errors.New("gui not built: rebuild with -tags ebiten")

// button is a clickable rectangle in playfield coordinates.
type button struct {
	X, Y, W, H int
	Label      string
	Event      input.Event
	Selected   bool
}

func (b button) contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

const (
	buttonW = 300
	buttonH = 60
	buttonX = config.ScreenWidth/2 - buttonW/2
)

// buttonsFor returns the clickable buttons of the snapshot's screen.
func buttonsFor(s loop.Snapshot) []button {
	switch s.State {
	case loop.StateMenu:
		buttons := []button{{X: buttonX, Y: 150, W: buttonW, H: buttonH, Label: "Start Game", Event: input.Start()}}
		for i, name := range s.Difficulties {
			buttons = append(buttons, button{
				X: buttonX, Y: 300 + i*80, W: buttonW, H: buttonH,
				Label:    name,
				Event:    input.Select(name),
				Selected: name == s.Selected,
			})
		}
		return buttons
	case loop.StateGameOver:
		return []button{{X: buttonX, Y: 400, W: buttonW, H: buttonH, Label: "Main Menu", Event: input.Menu()}}
	}
	return nil
}

// clickEvent returns the event of the button under (x, y), if any.
func clickEvent(s loop.Snapshot, x, y int) (input.Event, bool) {
	for _, b := range buttonsFor(s) {
		if b.contains(x, y) {
			return b.Event, true
		}
	}
	return input.Event{}, false
}
