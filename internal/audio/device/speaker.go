// Package device plays audio cues on the local sound card through beep's speaker.
package device

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/aisha947/amazon-q-game-challenge/internal/audio"
)

// ErrUnavailable reports that no audio output could be opened.
var ErrUnavailable = errors.New("audio device unavailable")

// Speaker voices cues on the default output device.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	logger      *log.Logger
	initialized bool
}

// Open initializes the speaker. The error wraps ErrUnavailable when the
// backend cannot be opened (no sound card, no ALSA, headless host).
func Open(logger *log.Logger) (*Speaker, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   audio.SampleRate,
		logger: logger,
	}

	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// OpenOrNop opens the speaker, falling back to a silent player when audio is
// muted or unavailable. The returned close function is always safe to call.
func OpenOrNop(muted bool, logger *log.Logger) (audio.Player, func()) {
	if logger == nil {
		logger = log.Default()
	}
	if muted {
		logger.Info("audio muted")
		return audio.Nop{}, func() {}
	}
	s, err := Open(logger)
	if err != nil {
		logger.Warn("continuing without sound", "err", err)
		return audio.Nop{}, func() {}
	}
	return s, s.Close
}

// Play queues the cue's tone on the mixer and returns immediately.
func (s *Speaker) Play(cue audio.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	streamer, err := audio.Streamer(cue, s.rate)
	if err != nil {
		s.logger.Debug("cue skipped", "cue", cue, "err", err)
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops all sounds and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Ensure Speaker satisfies audio.Player.
var _ audio.Player = (*Speaker)(nil)
