package audio

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestToneStreamerLengthAndGain(t *testing.T) {
	for _, cue := range Cues() {
		tone := Tones[cue]
		s, err := Streamer(cue, SampleRate)
		if err != nil {
			t.Fatalf("Streamer(%s): %v", cue, err)
		}

		total := 0
		peak := 0.0
		buf := make([][2]float64, 512)
		for {
			n, ok := s.Stream(buf)
			for _, sample := range buf[:n] {
				peak = math.Max(peak, math.Abs(sample[0]))
			}
			total += n
			if !ok {
				break
			}
		}

		if want := SampleRate.N(tone.Duration); total != want {
			t.Errorf("%s: %d samples, want %d", cue, total, want)
		}
		if peak > tone.Volume+1e-9 || peak < tone.Volume*0.9 {
			t.Errorf("%s: peak %.3f, want about %.2f", cue, peak, tone.Volume)
		}
	}
}

func TestStreamerUnknownCue(t *testing.T) {
	if _, err := Streamer(Cue("fanfare"), SampleRate); err == nil {
		t.Fatal("expected error for unknown cue")
	}
}

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, nil)
	b.Play(CueCatch)
	b.Play(CueMiss)
	if buf.String() != "\a\a" {
		t.Fatalf("bell wrote %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBellIgnoresWriteErrors(t *testing.T) {
	b := NewBell(failingWriter{}, nil)
	b.Play(CueBadCatch) // must not panic
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var p Player = &r
	p.Play(CueCatch)
	p.Play(CueBadCatch)
	if len(r.Played) != 2 || r.Played[1] != CueBadCatch {
		t.Fatalf("played = %v", r.Played)
	}
	Nop{}.Play(CueMiss)
}
