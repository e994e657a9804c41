package loop

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/aisha947/amazon-q-game-challenge/internal/audio"
	"github.com/aisha947/amazon-q-game-challenge/internal/input"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/object"
)

// ErrInvalidTransition is returned when an operation is not allowed in the
// current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// Options configures a Machine.
type Options struct {
	Screen     object.Screen     // Zero value means the default 800x600 playfield
	Difficulty config.Difficulty // Initial menu selection; zero value means config.DefaultDifficulty
	Seed       int64             // Spawner seed; 0 draws one from the clock
	Audio      audio.Player      // nil means no sound
	Logger     *log.Logger       // nil means log.Default()
}

// Machine is the game state machine. It owns the session and the entity
// set exclusively; all mutation happens inside Update and the transition
// methods, called from a single goroutine.
type Machine struct {
	state    GameState
	selected config.Difficulty
	session  *Session
	basket   object.Basket
	screen   object.Screen
	spawner  *object.Spawner
	audio    audio.Player
	logger   *log.Logger
	lastTick time.Time
	running  bool
}

// NewMachine creates a machine in the menu state.
func NewMachine(opts Options) *Machine {
	screen := opts.Screen
	if screen.Width == 0 || screen.Height == 0 {
		screen = object.NewScreen(config.ScreenWidth, config.ScreenHeight)
	}
	selected := opts.Difficulty
	if selected.Name == "" {
		selected = config.DefaultDifficulty
	}
	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Machine{
		state:    StateMenu,
		selected: selected,
		basket:   object.NewBasket(screen, config.BasketWidth, config.BasketHeight, config.BasketOffset),
		screen:   screen,
		spawner:  object.NewSpawner(screen, opts.Seed),
		audio:    player,
		logger:   logger,
		running:  true,
	}
}

// State returns the current game phase.
func (m *Machine) State() GameState {
	return m.state
}

// Selected returns the difficulty the next session will use.
func (m *Machine) Selected() config.Difficulty {
	return m.selected
}

// Session returns a copy of the current session. ok is false in the menu.
func (m *Machine) Session() (s Session, ok bool) {
	if m.session == nil {
		return Session{}, false
	}
	s = *m.session
	s.Entities = append([]object.Entity(nil), m.session.Entities...)
	return s, true
}

// Running reports whether the machine still accepts updates.
func (m *Machine) Running() bool {
	return m.running
}

// Start begins a fresh session with the selected difficulty.
func (m *Machine) Start(now time.Time) error {
	if m.state != StateMenu {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, m.state)
	}
	m.session = newSession(now, m.selected)
	m.lastTick = now
	m.state = StatePlaying
	m.logger.Info("game started", "difficulty", m.selected.Name)
	return nil
}

// SelectDifficulty changes the menu selection. Unknown names are rejected
// with config.ErrUnknownDifficulty and leave the selection unchanged.
func (m *Machine) SelectDifficulty(name string) error {
	if m.state != StateMenu {
		return fmt.Errorf("%w: select difficulty in %s", ErrInvalidTransition, m.state)
	}
	d, err := config.LookupDifficulty(name)
	if err != nil {
		return err
	}
	m.selected = d
	return nil
}

// ReturnToMenu leaves the game over screen. The finished session is dropped.
func (m *Machine) ReturnToMenu() error {
	if m.state != StateGameOver {
		return fmt.Errorf("%w: return to menu from %s", ErrInvalidTransition, m.state)
	}
	m.session = nil
	m.state = StateMenu
	return nil
}

// Quit stops the machine from any state.
func (m *Machine) Quit() {
	m.running = false
}

// Update advances the game by one tick. Events are applied first; at most one
// state transition happens per tick, and a tick that transitions does no
// gameplay work.
func (m *Machine) Update(now time.Time, frame input.Frame) {
	if !m.running {
		return
	}

	from := m.state
	m.applyEvents(now, frame.Events)
	if !m.running || m.state != from {
		return
	}

	if m.state == StatePlaying {
		m.updatePlaying(now, frame.PointerX)
	}
}

// Snapshot returns a copy of the state for rendering at now.
func (m *Machine) Snapshot(now time.Time) Snapshot {
	snap := Snapshot{
		State:        m.state,
		Selected:     m.selected.Name,
		Difficulties: difficultyNames(),
		Basket:       m.basket,
		Screen:       m.screen,
	}
	if m.session != nil {
		snap.Difficulty = m.session.Difficulty.Name
		snap.Score = m.session.Score
		snap.Misses = m.session.Misses
		snap.Entities = append([]object.Entity(nil), m.session.Entities...)
		if m.state == StatePlaying {
			snap.Remaining = m.session.Remaining(now)
		}
	}
	return snap
}

func difficultyNames() []string {
	profiles := config.Difficulties()
	names := make([]string, len(profiles))
	for i, d := range profiles {
		names[i] = d.Name
	}
	return names
}
