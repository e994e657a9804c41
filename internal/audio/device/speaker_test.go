package device

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/aisha947/amazon-q-game-challenge/internal/audio"
)

func TestOpenOrNopMuted(t *testing.T) {
	p, closeFn := OpenOrNop(true, log.New(io.Discard))
	defer closeFn()

	if _, ok := p.(audio.Nop); !ok {
		t.Fatalf("muted player = %T, want audio.Nop", p)
	}
	p.Play(audio.CueCatch)
}

func TestUninitializedSpeakerIsSilent(t *testing.T) {
	s := &Speaker{logger: log.New(io.Discard)}
	s.Play(audio.CueMiss) // must not touch the device
	s.Close()
}
