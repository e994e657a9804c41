package object

import (
	"math/rand/v2"
	"time"

	"github.com/aisha947/amazon-q-game-challenge/internal/loop/config"
)

// Spawner drops new objects at the rate set by a difficulty profile.
type Spawner struct {
	rng    *rand.Rand
	screen Screen
}

// NewSpawner creates a spawner for the given playfield.
// A zero seed draws one from the clock.
func NewSpawner(screen Screen, seed int64) *Spawner {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Spawner{
		rng:    rand.New(rand.NewPCG(uint64(seed), 0)),
		screen: screen,
	}
}

// MaybeSpawn creates one entity once more than the profile's spawn interval has
// passed since *lastSpawn, and moves *lastSpawn to now. Missed intervals are not
// made up: however long the gap, a single call spawns at most one entity.
func (s *Spawner) MaybeSpawn(now time.Time, lastSpawn *time.Time, d config.Difficulty) (Entity, bool) {
	if now.Sub(*lastSpawn) <= d.SpawnInterval {
		return Entity{}, false
	}
	*lastSpawn = now
	return s.Spawn(d), true
}

// Spawn creates an entity above the screen at a random column with a random
// speed from the profile's range.
func (s *Spawner) Spawn(d config.Difficulty) Entity {
	x := s.intBetween(config.SpawnMargin, s.screen.Width-config.SpawnMargin)
	speed := s.intBetween(d.SpeedMin, d.SpeedMax)

	category := Harmful
	if s.rng.Float64() < config.BeneficialChance {
		category = Beneficial
	}

	return NewEntity(float64(x), config.SpawnY, float64(speed), category)
}

// intBetween returns a uniform integer in [lo, hi].
func (s *Spawner) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}
