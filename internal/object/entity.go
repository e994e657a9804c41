package object

// Entity is a single falling object.
// X is fixed at spawn; only Y changes while the entity is pending.
type Entity struct {
	X, Y     float64  // Position (center)
	Speed    float64  // Vertical speed in px/s
	Category Category // Apple or rock
	Outcome  Outcome  // Pending until caught or missed
}

// NewEntity creates a pending entity at (x, y).
func NewEntity(x, y, speed float64, category Category) Entity {
	return Entity{
		X:        x,
		Y:        y,
		Speed:    speed,
		Category: category,
	}
}

// Update advances the entity by dt seconds of constant-velocity fall.
// Settled entities do not move.
func (e *Entity) Update(dt float64) {
	if e.Outcome != Pending || dt <= 0 {
		return
	}
	e.Y += e.Speed * dt
}

// Pending reports whether the entity still takes part in physics and collision.
func (e *Entity) Pending() bool {
	return e.Outcome == Pending
}

// Settle records the entity's outcome. Only the first transition away from
// Pending is accepted; it returns false when the entity was already settled.
func (e *Entity) Settle(o Outcome) bool {
	if e.Outcome != Pending || o == Pending {
		return false
	}
	e.Outcome = o
	return true
}
