// Package tui is a terminal frontend built on tcell. It draws the playfield
// one character per object and takes the pointer from tcell's mouse events.
package tui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/aisha947/amazon-q-game-challenge/internal/input"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/object"
)

// Glyphs
const (
	glyphApple  = '●'
	glyphStem   = '\''
	glyphRock   = '◆'
	glyphBasket = '▀'
	glyphGround = '▄'
)

// Styles
var (
	styleDefault = tcell.StyleDefault
	styleApple   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleRock    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBasket  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBold    = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Dim(true)
	styleSelect  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Frontend renders snapshots on a tcell screen and turns tcell events into
// input frames.
type Frontend struct {
	screen  tcell.Screen
	events  chan tcell.Event
	decoder *input.Decoder

	// Playfield area in cells
	cols, rows     int
	offCol, offRow int
}

// Ensure Frontend satisfies loop.Frontend.
var _ loop.Frontend = (*Frontend)(nil)

// New initializes the screen, enables the mouse and starts reading events.
// Close releases the screen.
func New(screen tcell.Screen) (*Frontend, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	f := &Frontend{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		decoder: input.NewDecoder(config.ScreenWidth),
	}
	f.layout()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(f.events) // screen finalized
				return
			}
			f.events <- ev
		}
	}()
	return f, nil
}

// Close restores the terminal.
func (f *Frontend) Close() {
	f.screen.DisableMouse()
	f.screen.Fini()
}

// layout fits the 4:3 playfield into the screen; a cell is twice as tall as
// it is wide, so the area is 8 columns per 3 rows.
func (f *Frontend) layout() {
	w, h := f.screen.Size()
	cols, rows := max(w, 8), max(h, 3)
	if cols*3 > rows*8 {
		cols = rows * 8 / 3
	} else {
		rows = cols * 3 / 8
	}
	f.cols, f.rows = cols, rows
	f.offCol = max((w-cols)/2, 0)
	f.offRow = max((h-rows)/2, 0)
}

// Poll drains pending tcell events without blocking.
func (f *Frontend) Poll() input.Frame {
	var events []input.Event

drain:
	for {
		select {
		case ev, ok := <-f.events:
			if !ok {
				events = append(events, input.Quit())
				break drain
			}
			events = append(events, f.translate(ev)...)
		default:
			break drain
		}
	}

	return input.Frame{PointerX: f.decoder.PointerX(), Events: events}
}

// translate maps one tcell event onto game events, moving the pointer as a
// side effect. Keys go through the same decoder as the ANSI frontend.
func (f *Frontend) translate(ev tcell.Event) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if seq, ok := keySequence(ev.Key(), ev.Rune()); ok {
			return f.decoder.Decode(seq).Events
		}
		if ev.Key() == tcell.KeyEscape {
			return []input.Event{input.Menu()}
		}
	case *tcell.EventMouse:
		x, _ := ev.Position()
		f.decoder.SetPointer(f.columnToLogical(x))
	case *tcell.EventResize:
		f.layout()
		f.screen.Sync()
	}
	return nil
}

// keySequence returns the terminal bytes for a tcell key.
func keySequence(key tcell.Key, r rune) ([]byte, bool) {
	if key == tcell.KeyBackspace || key == tcell.KeyBackspace2 {
		return []byte{0x7f}, true
	}
	switch key {
	case tcell.KeyRune:
		if r < utf8.RuneSelf {
			return []byte{byte(r)}, true
		}
	case tcell.KeyEnter:
		return []byte{'\r'}, true
	case tcell.KeyCtrlC:
		return []byte{0x03}, true
	case tcell.KeyLeft:
		return []byte("\x1b[D"), true
	case tcell.KeyRight:
		return []byte("\x1b[C"), true
	}
	return nil, false
}

// columnToLogical converts a screen column to the logical x at its center.
func (f *Frontend) columnToLogical(col int) int {
	return int((float64(col-f.offCol) + 0.5) * config.ScreenWidth / float64(f.cols))
}

// toCell converts logical coordinates to a screen cell.
func (f *Frontend) toCell(x, y float64) (col, row int) {
	col = f.offCol + int(x*float64(f.cols)/config.ScreenWidth)
	row = f.offRow + int(y*float64(f.rows)/config.ScreenHeight)
	return col, row
}

// inside reports whether the cell lies in the playfield area.
func (f *Frontend) inside(col, row int) bool {
	return col >= f.offCol && col < f.offCol+f.cols && row >= f.offRow && row < f.offRow+f.rows
}

func (f *Frontend) set(col, row int, r rune, style tcell.Style) {
	if f.inside(col, row) {
		f.screen.SetContent(col, row, r, nil, style)
	}
}

// Render draws the snapshot.
func (f *Frontend) Render(s loop.Snapshot) error {
	f.screen.Clear()

	// Ground
	for c := 0; c < f.cols; c++ {
		f.set(f.offCol+c, f.offRow+f.rows-1, glyphGround, styleGround)
	}

	switch s.State {
	case loop.StateMenu:
		f.drawMenu(s)
	case loop.StatePlaying:
		f.drawPlayfield(s)
		f.drawHUD(s)
	case loop.StateGameOver:
		f.drawPlayfield(s)
		f.drawGameOver(s)
	}

	f.screen.Show()
	return nil
}

func (f *Frontend) drawPlayfield(s loop.Snapshot) {
	for _, e := range s.Entities {
		col, row := f.toCell(e.X, e.Y)
		switch e.Category {
		case object.Beneficial:
			f.set(col, row, glyphApple, styleApple)
			f.set(col, row-1, glyphStem, styleGround)
		case object.Harmful:
			f.set(col, row, glyphRock, styleRock)
		}
	}

	left, row := f.toCell(s.Basket.Left(), s.Basket.Y)
	right, _ := f.toCell(s.Basket.Right(), s.Basket.Y)
	for c := left; c <= right; c++ {
		f.set(c, row, glyphBasket, styleBasket)
	}
}

func (f *Frontend) drawHUD(s loop.Snapshot) {
	f.text(f.offCol+1, f.offRow, styleBold, s.ScoreText())
	f.centered(f.offRow, styleBold, s.TimeText())
	misses := s.MissesText()
	f.text(f.offCol+f.cols-len(misses)-1, f.offRow, styleBold, misses)
}

func (f *Frontend) drawMenu(s loop.Snapshot) {
	f.centered(f.rowAt(70), styleTitle, loop.Title)
	f.centered(f.rowAt(150), styleBold, loop.MenuHint)
	f.centered(f.rowAt(250), styleBold, loop.DifficultyCue)
	for i, name := range s.Difficulties {
		style := styleDefault
		if name == s.Selected {
			style = styleSelect
		}
		f.centered(f.rowAt(300+i*60), style, s.DifficultyLabel(i, name))
	}
	for i, line := range loop.Instructions {
		f.centered(f.rowAt(470+i*30), styleDim, line)
	}
}

func (f *Frontend) drawGameOver(s loop.Snapshot) {
	f.centered(f.rowAt(70), styleTitle, loop.GameOverTitle)
	for i, line := range s.StatsLines() {
		f.centered(f.rowAt(200+i*50), styleBold, line)
	}
	f.centered(f.rowAt(420), styleDim, loop.GameOverHint)
}

// rowAt maps a logical y to a screen row.
func (f *Frontend) rowAt(y int) int {
	_, row := f.toCell(0, float64(y))
	return row
}

func (f *Frontend) centered(row int, style tcell.Style, s string) {
	col := f.offCol + (f.cols-utf8.RuneCountInString(s))/2
	f.text(col, row, style, s)
}

// text writes s from (col, row), clipped to the screen rather than the
// playfield so long lines stay readable on narrow terminals.
func (f *Frontend) text(col, row int, style tcell.Style, s string) {
	for _, r := range s {
		f.screen.SetContent(col, row, r, nil, style)
		col++
	}
}
