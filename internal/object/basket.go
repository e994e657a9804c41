package object

// Basket is the player-controlled catcher at the bottom of the screen.
// It has no physics of its own; X follows the input source every tick.
type Basket struct {
	X, Y          float64 // Center position
	Width, Height float64
}

// NewBasket creates a basket centered horizontally, offset above the bottom edge.
func NewBasket(screen Screen, width, height, bottomOffset float64) Basket {
	return Basket{
		X:      float64(screen.CenterX),
		Y:      float64(screen.Height) - bottomOffset,
		Width:  width,
		Height: height,
	}
}

// MoveTo places the basket center at the pointer x, clamped to the screen.
func (b *Basket) MoveTo(pointerX int, screen Screen) {
	b.X = float64(screen.ClampX(pointerX))
}

// Left returns the left edge of the capture extent.
func (b Basket) Left() float64 {
	return b.X - b.Width/2
}

// Right returns the right edge of the capture extent.
func (b Basket) Right() float64 {
	return b.X + b.Width/2
}
