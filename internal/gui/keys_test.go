//go:build ebiten

package gui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aisha947/amazon-q-game-challenge/internal/input"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
)

func pressed(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, p := range keys {
			if p == k {
				return true
			}
		}
		return false
	}
}

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want []input.Event
	}{
		{"none", nil, nil},
		{"start", []ebiten.Key{ebiten.KeyEnter}, []input.Event{input.Start()}},
		{"hard", []ebiten.Key{ebiten.KeyDigit3}, []input.Event{input.Select(config.Hard.Name)}},
		{"escape", []ebiten.Key{ebiten.KeyEscape}, []input.Event{input.Menu()}},
		{"quit", []ebiten.Key{ebiten.KeyQ}, []input.Event{input.Quit()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := input.NewDecoder(config.ScreenWidth)
			got := keyEvents(d, pressed(tt.keys...))
			if len(got) != len(tt.want) {
				t.Fatalf("events = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestArrowKeysNudgePointer(t *testing.T) {
	d := input.NewDecoder(config.ScreenWidth)
	keyEvents(d, pressed(ebiten.KeyRight))
	if got := d.PointerX(); got != config.ScreenWidth/2+config.KeyboardNudge {
		t.Fatalf("pointer = %d after right arrow", got)
	}
	keyEvents(d, pressed(ebiten.KeyLeft, ebiten.KeyA))
	if got := d.PointerX(); got != config.ScreenWidth/2-config.KeyboardNudge {
		t.Fatalf("pointer = %d after left arrow and A", got)
	}
}
