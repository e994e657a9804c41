package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gameconfig "github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CATCH_TEST_STR", "hello")
	t.Setenv("CATCH_TEST_INT", "42")
	t.Setenv("CATCH_TEST_BAD_INT", "forty")
	t.Setenv("CATCH_TEST_BOOL", "true")

	if got := GetEnv("CATCH_TEST_STR", "x"); got != "hello" {
		t.Errorf("GetEnv = %q", got)
	}
	if got := GetEnv("CATCH_TEST_UNSET", "x"); got != "x" {
		t.Errorf("GetEnv fallback = %q", got)
	}
	if got := GetEnvInt("CATCH_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d", got)
	}
	if got := GetEnvInt("CATCH_TEST_BAD_INT", 1); got != 1 {
		t.Errorf("GetEnvInt on garbage = %d, want fallback", got)
	}
	if got := GetEnvBool("CATCH_TEST_BOOL", false); !got {
		t.Error("GetEnvBool = false")
	}
	if got := GetEnvBool("CATCH_TEST_UNSET", true); !got {
		t.Error("GetEnvBool fallback = false")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CATCH_DOTENV_A=from-file\nCATCH_DOTENV_B=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CATCH_DOTENV_B", "from-env")
	t.Cleanup(func() { os.Unsetenv("CATCH_DOTENV_A") })

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("CATCH_DOTENV_A"); got != "from-file" {
		t.Errorf("A = %q", got)
	}
	if got := os.Getenv("CATCH_DOTENV_B"); got != "from-env" {
		t.Errorf("B = %q, existing variables must win", got)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
	if d, _ := s.DifficultyProfile(); d != gameconfig.Medium {
		t.Fatalf("default difficulty = %s", d.Name)
	}
}

func TestSaveLoadRoundTripWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Settings{Difficulty: "Hard", Seed: 99, Muted: true, LogFile: "/tmp/catch.log", UI: UITcell}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}

	t.Setenv("CATCH_DIFFICULTY", "Easy")
	t.Setenv("CATCH_MUTED", "false")
	got, err = Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Difficulty != "Easy" || got.Muted {
		t.Fatalf("env overrides not applied: %+v", got)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	os.WriteFile(bad, []byte("difficulty = \"Insane\"\n"), 0o600)
	if _, err := Load(bad); !errors.Is(err, gameconfig.ErrUnknownDifficulty) {
		t.Errorf("unknown difficulty: err = %v", err)
	}

	ui := filepath.Join(dir, "ui.toml")
	os.WriteFile(ui, []byte("ui = \"opengl\"\n"), 0o600)
	if _, err := Load(ui); !errors.Is(err, ErrUnknownUI) {
		t.Errorf("unknown ui: err = %v", err)
	}

	broken := filepath.Join(dir, "broken.toml")
	os.WriteFile(broken, []byte("difficulty = \n"), 0o600)
	if _, err := Load(broken); err == nil {
		t.Error("malformed file accepted")
	}
}

func TestBindFlagsOverrideSettings(t *testing.T) {
	s := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	s.Bind(fs)
	if err := fs.Parse([]string{"-difficulty", "Easy", "-seed", "7", "-mute", "-ui", "tcell"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Settings{Difficulty: "Easy", Seed: 7, Muted: true, UI: UITcell}
	if s != want {
		t.Fatalf("settings = %+v, want %+v", s, want)
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv("CATCH_CONFIG", "/tmp/other.toml")
	if got := Path(); got != "/tmp/other.toml" {
		t.Fatalf("Path = %q", got)
	}
}

func TestOpenLog(t *testing.T) {
	logger, closeFn, err := OpenLog("", "test")
	if err != nil || logger == nil {
		t.Fatalf("OpenLog discard: %v", err)
	}
	closeFn()

	path := filepath.Join(t.TempDir(), "catch.log")
	logger, closeFn, err = OpenLog(path, "test")
	if err != nil {
		t.Fatalf("OpenLog: %v", err)
	}
	logger.Info("hello", "key", "value")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") || !strings.Contains(string(data), "key=value") {
		t.Fatalf("log = %q", data)
	}

	if _, _, err := OpenLog(filepath.Join(t.TempDir(), "missing", "x.log"), "test"); err == nil {
		t.Fatal("OpenLog into a missing dir succeeded")
	}
}
