// Package object holds the playfield entities: falling objects, the basket and the spawner.
package object

// Screen represents the logical playfield dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a Screen with precomputed center.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// ClampX limits a horizontal screen coordinate to [0, Width].
func (s Screen) ClampX(x int) int {
	if x < 0 {
		return 0
	}
	if x > s.Width {
		return s.Width
	}
	return x
}

// Category distinguishes objects worth catching from objects to avoid.
type Category int

const (
	Beneficial Category = iota // Apple
	Harmful                    // Rock
)

func (c Category) String() string {
	switch c {
	case Beneficial:
		return "beneficial"
	case Harmful:
		return "harmful"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a falling object.
type Outcome int

const (
	Pending Outcome = iota
	Caught
	Missed
)

func (o Outcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Caught:
		return "caught"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}
