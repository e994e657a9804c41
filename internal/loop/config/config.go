// Package config centralizes all tunable game parameters.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Playfield resolution - the logical coordinate space all game objects use.
// Frontends scale it to terminal cells or window pixels.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Basket
const (
	BasketWidth  = 100
	BasketHeight = 50
	BasketOffset = 50 // Distance of the basket center above the bottom edge
	CaptureBand  = 10 // Vertical tolerance around the basket center (±px)
)

// Falling objects
const (
	SpawnY           = -20.0 // Start just above the visible area
	SpawnMargin      = 50    // Horizontal spawn keep-out from each edge
	BeneficialChance = 0.7
	ObjectRadius     = 20
)

// Scoring
const (
	ScoreCatch    = 10
	ScoreBadCatch = -5
)

// Session
const (
	SessionDuration = 60 * time.Second
)

// Input
const (
	KeyboardNudge = 25 // Pointer movement per arrow key press (px)
)

// Frame rate
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal rendering. Half-block sub-pixels are square, so the render area
// keeps the playfield's 4:3 shape at 8 columns per 3 rows.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Inactivity (remote sessions only)
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)

// Shutdown
const (
	ShutdownDisplaySeconds = 3.0 // Seconds to show the shutdown notice before disconnecting
	ShutdownWait           = 15 * time.Second
)

// ErrUnknownDifficulty is returned when a difficulty name is not one of the profiles.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty is an immutable spawn/speed profile selected from the menu.
type Difficulty struct {
	Name          string
	SpawnInterval time.Duration
	SpeedMin      int // px/s, inclusive
	SpeedMax      int // px/s, inclusive
}

// Difficulty profiles
var (
	Easy   = Difficulty{Name: "Easy", SpawnInterval: 1500 * time.Millisecond, SpeedMin: 100, SpeedMax: 200}
	Medium = Difficulty{Name: "Medium", SpawnInterval: 1000 * time.Millisecond, SpeedMin: 150, SpeedMax: 250}
	Hard   = Difficulty{Name: "Hard", SpawnInterval: 700 * time.Millisecond, SpeedMin: 200, SpeedMax: 300}
)

// DefaultDifficulty is selected when the process starts.
var DefaultDifficulty = Medium

// Difficulties returns the profiles in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// LookupDifficulty returns the profile with the given name.
func LookupDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties() {
		if d.Name == name {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}
