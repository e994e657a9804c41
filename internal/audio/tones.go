package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is used for synthesized tones and exported WAV files.
const SampleRate = beep.SampleRate(44100)

// Tone is a plain sine beep.
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Volume    float64 // 0..1 linear gain
}

// Tones maps each cue to its sound.
var Tones = map[Cue]Tone{
	CueCatch:    {Frequency: 600, Duration: 150 * time.Millisecond, Volume: 0.8},
	CueMiss:     {Frequency: 200, Duration: 200 * time.Millisecond, Volume: 0.5},
	CueBadCatch: {Frequency: 300, Duration: 300 * time.Millisecond, Volume: 0.7},
}

// Streamer renders the cue's tone at the given sample rate.
func Streamer(cue Cue, sr beep.SampleRate) (beep.Streamer, error) {
	tone, ok := Tones[cue]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %q", cue)
	}
	return tone.Streamer(sr)
}

// Streamer renders the tone at the given sample rate.
func (t Tone) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, t.Frequency)
	if err != nil {
		return nil, fmt.Errorf("sine %vHz: %w", t.Frequency, err)
	}
	return newVolume(beep.Take(sr.N(t.Duration), sine), t.Volume), nil
}

// newVolume scales a stream by a linear gain.
// math.Log2(0) is -Inf, so zero volume is made silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
