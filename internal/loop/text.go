package loop

import "fmt"

// Screen text shared by all frontends.
const (
	Title         = "CATCH THE FALLING OBJECTS"
	GameOverTitle = "GAME OVER"
	DifficultyCue = "Select Difficulty:"
	MenuHint      = "ENTER/SPACE start   1/2/3 difficulty   Q quit"
	GameOverHint  = "ESC/B main menu   Q quit"
)

// Instructions are shown under the menu.
var Instructions = []string{
	"Catch the falling apples with your basket",
	"Avoid catching rocks",
	"Move the basket with your mouse or the arrow keys",
}

// ScoreText is the HUD score label.
func (s Snapshot) ScoreText() string {
	return fmt.Sprintf("Score: %d", s.Score)
}

// MissesText is the HUD miss counter label.
func (s Snapshot) MissesText() string {
	return fmt.Sprintf("Misses: %d", s.Misses)
}

// TimeText is the HUD countdown label in whole seconds.
func (s Snapshot) TimeText() string {
	return fmt.Sprintf("Time: %ds", s.RemainingSeconds())
}

// StatsLines are the lines of the game over panel.
func (s Snapshot) StatsLines() []string {
	return []string{
		fmt.Sprintf("Final Score: %d", s.Score),
		fmt.Sprintf("Misses: %d", s.Misses),
		fmt.Sprintf("Difficulty: %s", s.Difficulty),
	}
}

// DifficultyLabel returns the menu entry for name, marked when selected.
func (s Snapshot) DifficultyLabel(i int, name string) string {
	marker := " "
	if name == s.Selected {
		marker = ">"
	}
	return fmt.Sprintf("%s %d. %-6s", marker, i+1, name)
}
