package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// WAVFormat is the format of exported sound files: mono, 16 bit.
var WAVFormat = beep.Format{SampleRate: SampleRate, NumChannels: 1, Precision: 2}

// WriteWAV encodes the cue's tone as a WAV stream.
func WriteWAV(w io.WriteSeeker, cue Cue) error {
	s, err := Streamer(cue, WAVFormat.SampleRate)
	if err != nil {
		return err
	}
	if err := wav.Encode(w, s, WAVFormat); err != nil {
		return fmt.Errorf("encode %s: %w", cue, err)
	}
	return nil
}

// ExportWAVs writes <cue>.wav for every cue into dir and returns the paths.
func ExportWAVs(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sound dir: %w", err)
	}

	var paths []string
	for _, cue := range Cues() {
		path := filepath.Join(dir, string(cue)+".wav")
		f, err := os.Create(path)
		if err != nil {
			return paths, fmt.Errorf("create %s: %w", path, err)
		}
		err = WriteWAV(f, cue)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
