package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/aisha947/amazon-q-game-challenge/internal/audio/device"
	"github.com/aisha947/amazon-q-game-challenge/internal/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop"
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/client"
	"github.com/aisha947/amazon-q-game-challenge/internal/tui"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	settingsPath := config.Path()
	settings, err := config.Load(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}
	remember := flag.Bool("remember", false, "save the selected difficulty and flags as defaults")
	settings.Bind(flag.CommandLine)
	flag.Parse()
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid settings: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := config.OpenLog(settings.LogFile, "catch")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "ui", settings.UI, "difficulty", difficulty.Name, "seed", settings.Seed)
	if settings.UI == config.UITcell {
		err = runTcell(ctx, m)
	} else {
		err = runANSI(ctx, m)
	}
	if err != nil {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}

	if *remember {
		settings.Difficulty = m.Selected().Name
		if err := config.Save(settingsPath, settings); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save settings: %v\n", err)
			os.Exit(1)
		}
		logger.Info("settings saved", "path", settingsPath)
	}
}

// runANSI plays in the current terminal using the half-block canvas.
func runANSI(ctx context.Context, m *loop.Machine) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	c := client.NewClient(reader, os.Stdout, client.ClientOptions{})
	c.Open()
	defer c.Close()

	return loop.Run(ctx, c, m)
}

// runTcell plays on a tcell screen.
func runTcell(ctx context.Context, m *loop.Machine) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	fe, err := tui.New(screen)
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer fe.Close()

	return loop.Run(ctx, fe, m)
}
