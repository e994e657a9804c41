package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/aisha947/amazon-q-game-challenge/internal/audio/device"
	"github.com/aisha947/amazon-q-game-challenge/internal/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/gui"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("failed to load env file", "err", err)
	}

	settings, err := config.Load(config.Path())
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	settings.Bind(flag.CommandLine)
	flag.Parse()
	if err := settings.Validate(); err != nil {
		log.Fatal("invalid settings", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "catch"})
	log.SetDefault(logger)

	player, closeAudio := device.OpenOrNop(settings.Muted, logger)
	defer closeAudio()

	difficulty, _ := settings.DifficultyProfile()
	m := loop.NewMachine(loop.Options{
		Difficulty: difficulty,
		Seed:       settings.Seed,
		Audio:      player,
		Logger:     logger,
	})

	if err := gui.Run(m, logger); err != nil {
		if errors.Is(err, gui.ErrUnavailable) {
			log.Error("window support missing", "hint", "go build -tags ebiten ./cmd/gui")
		}
		closeAudio()
		log.Fatal("game error", "err", err)
	}
}
