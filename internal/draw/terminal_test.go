package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestChunkWriterWriteAt(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)

	cw.WriteAt(1, 1, "\033[1m", "Score")
	cw.WriteAt(5, 4, "", "x")
	if out.Len() != 0 {
		t.Fatalf("wrote %q before Flush", out.String())
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "\033[3;4H\033[1mScore\033[0m" + "\033[6;8Hx"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}

	out.Reset()
	cw.SetOffset(0, 0)
	cw.Clear()
	cw.WriteAt(1, 1, "", "y")
	cw.Flush()
	if got := out.String(); got != seqClear+"\033[1;1Hy" {
		t.Fatalf("after SetOffset output = %q", got)
	}
}

func TestChunkWriterFlushLargeFrame(t *testing.T) {
	w := &bytes.Buffer{}
	cw := NewChunkWriter(w, 0, 0)

	frame := strings.Repeat("#", 20000)
	cw.Write([]byte(frame))
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if w.String() != frame {
		t.Fatalf("flushed %d bytes, want %d", w.Len(), len(frame))
	}

	// Nothing is left for the next frame.
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if w.Len() != len(frame) {
		t.Fatalf("second flush wrote %d extra bytes", w.Len()-len(frame))
	}
}
