package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	gameconfig "github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
)

// UI names accepted by the local game.
const (
	UIAnsi  = "ansi"
	UITcell = "tcell"
)

// ErrUnknownUI is returned for a UI name other than UIAnsi or UITcell.
var ErrUnknownUI = errors.New("unknown ui")

// Settings are the player's preferences for the local game.
type Settings struct {
	Difficulty string `toml:"difficulty"` // Initial menu selection
	Seed       int64  `toml:"seed"`       // Spawner seed, 0 for random
	Muted      bool   `toml:"muted"`
	LogFile    string `toml:"log_file"` // Empty discards logs
	UI         string `toml:"ui"`       // "ansi" or "tcell"
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Difficulty: gameconfig.DefaultDifficulty.Name,
		UI:         UIAnsi,
	}
}

// DefaultPath returns the settings file location under the user's config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "catch.toml"
	}
	return filepath.Join(dir, "catch", "config.toml")
}

// Path returns $CATCH_CONFIG, or DefaultPath when it is unset.
func Path() string {
	return GetEnv("CATCH_CONFIG", DefaultPath())
}

// Bind attaches the settings to the provided FlagSet. Flags override the
// file and environment once parsed.
func (s *Settings) Bind(fs *flag.FlagSet) {
	fs.StringVar(&s.Difficulty, "difficulty", s.Difficulty, "initial difficulty: Easy, Medium or Hard")
	fs.Int64Var(&s.Seed, "seed", s.Seed, "spawner seed, 0 for random")
	fs.BoolVar(&s.Muted, "mute", s.Muted, "disable sound")
	fs.StringVar(&s.LogFile, "log", s.LogFile, "log file, empty to discard logs")
	fs.StringVar(&s.UI, "ui", s.UI, "terminal frontend: ansi or tcell")
}

// Load reads settings from path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &s); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return s, fmt.Errorf("read settings %s: %w", path, err)
		}
	}
	s.ApplyEnv()
	return s, s.Validate()
}

// ApplyEnv overrides fields from CATCH_* environment variables.
func (s *Settings) ApplyEnv() {
	s.Difficulty = GetEnv("CATCH_DIFFICULTY", s.Difficulty)
	s.Seed = GetEnvInt("CATCH_SEED", s.Seed)
	s.Muted = GetEnvBool("CATCH_MUTED", s.Muted)
	s.LogFile = GetEnv("CATCH_LOG_FILE", s.LogFile)
	s.UI = GetEnv("CATCH_UI", s.UI)
}

// Validate checks the difficulty and UI names.
func (s Settings) Validate() error {
	if _, err := gameconfig.LookupDifficulty(s.Difficulty); err != nil {
		return err
	}
	if s.UI != UIAnsi && s.UI != UITcell {
		return fmt.Errorf("%w: %q", ErrUnknownUI, s.UI)
	}
	return nil
}

// DifficultyProfile returns the profile named by Difficulty.
func (s Settings) DifficultyProfile() (gameconfig.Difficulty, error) {
	return gameconfig.LookupDifficulty(s.Difficulty)
}

// Save writes the settings to path, creating its directory.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return f.Close()
}
