// Package input turns raw terminal bytes into per-frame game input.
package input

import (
	"bufio"
	"strconv"

	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
)

// EventKind identifies a discrete input event.
type EventKind int

const (
	EventStartGame EventKind = iota + 1
	EventSelectDifficulty
	EventReturnToMenu
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventStartGame:
		return "start_game"
	case EventSelectDifficulty:
		return "select_difficulty"
	case EventReturnToMenu:
		return "return_to_menu"
	case EventQuit:
		return "quit"
	default:
		return "none"
	}
}

// Event is a named input event. Difficulty is set for EventSelectDifficulty.
type Event struct {
	Kind       EventKind
	Difficulty string
}

// Start returns a start_game event.
func Start() Event { return Event{Kind: EventStartGame} }

// Select returns a select_difficulty event for the named profile.
func Select(difficulty string) Event {
	return Event{Kind: EventSelectDifficulty, Difficulty: difficulty}
}

// Menu returns a return_to_menu event.
func Menu() Event { return Event{Kind: EventReturnToMenu} }

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// Frame is the input for one tick: the pointer's horizontal position in
// logical screen coordinates plus the events seen since the last frame.
type Frame struct {
	PointerX int
	Events   []Event
}

// Has reports whether the frame contains an event of the given kind.
func (f Frame) Has(kind EventKind) bool {
	for _, ev := range f.Events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

// Decoder parses terminal bytes. It keeps the pointer position between
// frames and holds back escape sequences split across reads.
type Decoder struct {
	pointerX int
	width    int
	toX      func(col int) int
	carry    []byte
}

// NewDecoder creates a decoder for a playfield of the given logical width.
// The pointer starts at the center.
func NewDecoder(width int) *Decoder {
	return &Decoder{
		pointerX: width / 2,
		width:    width,
		toX:      func(col int) int { return col },
	}
}

// SetColumnMapper sets the conversion from 0-based terminal column to
// logical x used for mouse reports.
func (d *Decoder) SetColumnMapper(fn func(col int) int) {
	if fn != nil {
		d.toX = fn
	}
}

// PointerX returns the last known pointer position.
func (d *Decoder) PointerX() int {
	return d.pointerX
}

// SetPointer moves the pointer to logical x, clamped to the playfield. Used by
// frontends that receive mouse positions already decoded.
func (d *Decoder) SetPointer(x int) {
	d.pointerX = d.clamp(x)
}

// Decode parses the bytes received since the last frame.
func (d *Decoder) Decode(in []byte) Frame {
	var events []Event

	buf := in
	if len(d.carry) > 0 {
		held := d.carry
		d.carry = nil
		if len(held) == 1 && (len(in) == 0 || in[0] != '[') {
			// Nothing followed the held ESC: it was the Escape key.
			events = append(events, Menu())
		} else {
			buf = append(held, in...)
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n, ok := d.parseEscape(buf[i:], &events)
			if !ok {
				// Incomplete sequence: wait for the rest next frame.
				d.carry = append([]byte(nil), buf[i:]...)
				break
			}
			i += n - 1
			continue
		}

		if ev, ok := d.applyByte(b); ok {
			events = append(events, ev)
		}
	}

	return Frame{PointerX: d.pointerX, Events: events}
}

// maxSequence bounds how long an unterminated escape sequence is held.
const maxSequence = 32

// parseEscape handles a sequence starting with ESC. It returns the number of
// bytes consumed, or ok=false when more bytes are needed.
func (d *Decoder) parseEscape(buf []byte, events *[]Event) (int, bool) {
	if len(buf) == 1 {
		return 0, false
	}
	if buf[1] != '[' {
		*events = append(*events, Menu())
		return 1, true
	}
	if len(buf) < 3 {
		return 0, false
	}

	switch buf[2] {
	case 'C': // Right arrow
		d.nudge(config.KeyboardNudge)
		return 3, true
	case 'D': // Left arrow
		d.nudge(-config.KeyboardNudge)
		return 3, true
	case 'A', 'B': // Up/down arrows are unused
		return 3, true
	case '<':
		return d.parseSGRMouse(buf)
	}

	// Unknown CSI: skip to its final byte.
	for j := 2; j < len(buf) && j < maxSequence; j++ {
		if buf[j] >= 0x40 && buf[j] <= 0x7e {
			return j + 1, true
		}
	}
	if len(buf) >= maxSequence {
		return 2, true
	}
	return 0, false
}

// parseSGRMouse parses ESC [ < Btn ; X ; Y M/m. Any report moves the pointer.
func (d *Decoder) parseSGRMouse(buf []byte) (int, bool) {
	end := 3
	for end < len(buf) && end < maxSequence {
		if buf[end] == 'M' || buf[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(buf) {
		if end >= maxSequence {
			// Garbage: drop the introducer and move on.
			return 3, true
		}
		return 0, false
	}

	params := splitParams(buf[3:end])
	if len(params) == 3 {
		if col, err := strconv.Atoi(params[1]); err == nil && col >= 1 {
			d.pointerX = d.clamp(d.toX(col - 1)) // Convert to 0-indexed
		}
	}
	return end + 1, true
}

// applyByte maps a single key byte to an event or pointer movement.
func (d *Decoder) applyByte(b byte) (Event, bool) {
	switch b {
	case 'q', 'Q', 0x03: // Ctrl-C
		return Quit(), true
	case '\r', '\n', ' ':
		return Start(), true
	case '1', 'e', 'E':
		return Select(config.Easy.Name), true
	case '2', 'm', 'M':
		return Select(config.Medium.Name), true
	case '3', 'h', 'H':
		return Select(config.Hard.Name), true
	case 'b', 'B', '\b', 0x7f:
		return Menu(), true
	case 'a', 'A':
		d.nudge(-config.KeyboardNudge)
	case 'd', 'D':
		d.nudge(config.KeyboardNudge)
	}
	return Event{}, false
}

func (d *Decoder) nudge(dx int) {
	d.pointerX = d.clamp(d.pointerX + dx)
}

func (d *Decoder) clamp(x int) int {
	if x < 0 {
		return 0
	}
	if x > d.width {
		return d.width
	}
	return x
}

func splitParams(b []byte) []string {
	var out []string
	start := 0
	for i, c := range b {
		if c == ';' {
			out = append(out, string(b[start:i]))
			start = i + 1
		}
	}
	return append(out, string(b[start:]))
}

// Stream delivers input bytes via a channel and decodes them once per frame.
type Stream struct {
	*Decoder
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader, width int) *Stream {
	s := &Stream{
		Decoder: NewDecoder(width),
		ch:      make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// decodes them. A closed input yields a quit event.
func ReadInput(s *Stream) Frame {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	frame := s.Decode(buf)
	if s.closed && !frame.Has(EventQuit) {
		frame.Events = append(frame.Events, Quit())
	}
	return frame
}
