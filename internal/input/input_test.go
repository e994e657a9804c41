package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func kinds(f Frame) []EventKind {
	var out []EventKind
	for _, ev := range f.Events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		in   string
		want []Event
	}{
		{"\r", []Event{Start()}},
		{" ", []Event{Start()}},
		{"1", []Event{Select("Easy")}},
		{"m", []Event{Select("Medium")}},
		{"H", []Event{Select("Hard")}},
		{"b", []Event{Menu()}},
		{"\x7f", []Event{Menu()}},
		{"q", []Event{Quit()}},
		{"\x03", []Event{Quit()}},
		{"x", nil},
		{"e\r", []Event{Select("Easy"), Start()}},
	}
	for _, tt := range tests {
		d := NewDecoder(800)
		got := d.Decode([]byte(tt.in)).Events
		if len(got) != len(tt.want) {
			t.Fatalf("Decode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Decode(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDecodeKeyboardNudge(t *testing.T) {
	d := NewDecoder(800)
	if got := d.Decode(nil).PointerX; got != 400 {
		t.Fatalf("initial pointer = %d, want 400", got)
	}
	if got := d.Decode([]byte("\x1b[C\x1b[C")).PointerX; got != 450 {
		t.Errorf("after two right arrows pointer = %d, want 450", got)
	}
	if got := d.Decode([]byte("aaa")).PointerX; got != 375 {
		t.Errorf("after three 'a' pointer = %d, want 375", got)
	}
	for i := 0; i < 40; i++ {
		d.Decode([]byte("d"))
	}
	if got := d.PointerX(); got != 800 {
		t.Errorf("pointer = %d, want clamped to 800", got)
	}
}

func TestDecodeSGRMouse(t *testing.T) {
	d := NewDecoder(800)
	d.SetColumnMapper(func(col int) int { return col * 10 })

	f := d.Decode([]byte("\x1b[<35;21;5M"))
	if f.PointerX != 200 {
		t.Fatalf("pointer = %d, want 200", f.PointerX)
	}
	if len(f.Events) != 0 {
		t.Fatalf("mouse report produced events %v", f.Events)
	}

	// Out-of-range columns are clamped.
	f = d.Decode([]byte("\x1b[<0;500;5m"))
	if f.PointerX != 800 {
		t.Fatalf("pointer = %d, want 800", f.PointerX)
	}
}

func TestDecodeSplitSequence(t *testing.T) {
	d := NewDecoder(800)

	f := d.Decode([]byte("\x1b[<35;1"))
	if len(f.Events) != 0 || f.PointerX != 400 {
		t.Fatalf("partial sequence decoded early: %+v", f)
	}
	f = d.Decode([]byte("1;3M"))
	if f.PointerX != 10 {
		t.Fatalf("pointer = %d, want 10", f.PointerX)
	}
	if len(f.Events) != 0 {
		t.Fatalf("split mouse report produced events %v", f.Events)
	}
}

func TestDecodeLoneEscape(t *testing.T) {
	d := NewDecoder(800)

	f := d.Decode([]byte("\x1b"))
	if len(f.Events) != 0 {
		t.Fatalf("lone ESC decoded immediately: %v", kinds(f))
	}
	f = d.Decode(nil)
	if got := kinds(f); len(got) != 1 || got[0] != EventReturnToMenu {
		t.Fatalf("held ESC = %v, want [return_to_menu]", got)
	}

	// ESC followed by a plain key in the same read.
	f = d.Decode([]byte("\x1bq"))
	if got := kinds(f); len(got) != 2 || got[0] != EventReturnToMenu || got[1] != EventQuit {
		t.Fatalf("ESC q = %v, want [return_to_menu quit]", got)
	}
}

func TestReadInputClosedStreamQuits(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("2")), 800)

	deadline := time.Now().Add(time.Second)
	var events []Event
	for time.Now().Before(deadline) {
		f := ReadInput(s)
		events = append(events, f.Events...)
		if f.Has(EventQuit) {
			break
		}
		time.Sleep(time.Millisecond)
	}

	if len(events) != 2 || events[0] != Select("Medium") || events[1] != Quit() {
		t.Fatalf("events = %v, want [select Medium, quit]", events)
	}
}

func TestEventKindString(t *testing.T) {
	if EventSelectDifficulty.String() != "select_difficulty" {
		t.Errorf("got %q", EventSelectDifficulty.String())
	}
}

func TestSetPointerClamps(t *testing.T) {
	d := NewDecoder(800)
	d.SetPointer(120)
	if d.PointerX() != 120 {
		t.Fatalf("pointer = %d, want 120", d.PointerX())
	}
	d.SetPointer(-40)
	if d.PointerX() != 0 {
		t.Fatalf("pointer = %d, want 0", d.PointerX())
	}
	d.SetPointer(9000)
	if got := d.Decode(nil).PointerX; got != 800 {
		t.Fatalf("pointer = %d, want 800", got)
	}
}
