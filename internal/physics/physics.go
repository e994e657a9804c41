// Package physics decides catch and miss outcomes for falling objects.
package physics

import (
	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
	"github.com/aisha947/amazon-q-game-challenge/internal/object"
)

// WithinBand checks if v lies within ±tolerance of center (inclusive).
func WithinBand(v, center, tolerance float64) bool {
	return v >= center-tolerance && v <= center+tolerance
}

// WithinSpan checks if v lies within [lo, hi] (inclusive).
func WithinSpan(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// Caught checks if the entity is inside the basket's capture band and
// horizontal extent.
func Caught(e object.Entity, b object.Basket) bool {
	return WithinBand(e.Y, b.Y, config.CaptureBand) &&
		WithinSpan(e.X, b.Left(), b.Right())
}

// Missed checks if the entity fell past the bottom of the screen.
func Missed(e object.Entity, screen object.Screen) bool {
	return e.Y > float64(screen.Height)
}

// Resolve returns the outcome an entity reaches this tick.
// The catch test runs before the miss test. Settled entities keep their outcome.
func Resolve(e object.Entity, b object.Basket, screen object.Screen) object.Outcome {
	if !e.Pending() {
		return e.Outcome
	}
	if Caught(e, b) {
		return object.Caught
	}
	if Missed(e, screen) {
		return object.Missed
	}
	return object.Pending
}
