package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/wav"
)

func TestExportWAVs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sounds")
	paths, err := ExportWAVs(dir)
	if err != nil {
		t.Fatalf("ExportWAVs: %v", err)
	}
	if len(paths) != len(Cues()) {
		t.Fatalf("wrote %d files, want %d", len(paths), len(Cues()))
	}

	for i, cue := range Cues() {
		if filepath.Base(paths[i]) != string(cue)+".wav" {
			t.Errorf("path %d = %s", i, paths[i])
		}
		f, err := os.Open(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		s, format, err := wav.Decode(f)
		if err != nil {
			f.Close()
			t.Fatalf("decode %s: %v", cue, err)
		}
		if format.SampleRate != SampleRate || format.NumChannels != 1 {
			t.Errorf("%s format = %+v", cue, format)
		}
		if want := SampleRate.N(Tones[cue].Duration); s.Len() != want {
			t.Errorf("%s has %d samples, want %d", cue, s.Len(), want)
		}
		s.Close()
	}
}

func TestWriteWAVUnknownCue(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := WriteWAV(f, Cue("boom")); err == nil {
		t.Fatal("unknown cue encoded")
	}
}
