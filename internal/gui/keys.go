//go:build ebiten

package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aisha947/amazon-q-game-challenge/internal/input"
)

// keyBytes maps window keys to the terminal bytes the input decoder
// understands, so every frontend shares one key map.
var keyBytes = []struct {
	key ebiten.Key
	seq string
}{
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEnter, "\r"},
	{ebiten.KeySpace, " "},
	{ebiten.KeyDigit1, "1"},
	{ebiten.KeyDigit2, "2"},
	{ebiten.KeyDigit3, "3"},
	{ebiten.KeyE, "e"},
	{ebiten.KeyM, "m"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyB, "b"},
	{ebiten.KeyBackspace, "\x7f"},
	{ebiten.KeyLeft, "\x1b[D"},
	{ebiten.KeyRight, "\x1b[C"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
}

// keyEvents decodes the keys pressed this tick. Escape has no byte form
// (a lone ESC waits for a follow-up), so it maps straight to the menu event.
func keyEvents(d *input.Decoder, justPressed func(ebiten.Key) bool) []input.Event {
	var seq []byte
	for _, k := range keyBytes {
		if justPressed(k.key) {
			seq = append(seq, k.seq...)
		}
	}

	var events []input.Event
	if justPressed(ebiten.KeyEscape) {
		events = append(events, input.Menu())
	}
	if len(seq) > 0 {
		events = append(events, d.Decode(seq).Events...)
	}
	return events
}
