// Package draw renders logical playfield coordinates onto an ANSI terminal
// using half-block characters.
package draw

import "strconv"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a terminal palette entry. The zero value is an unset pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBrown
	ColorGray
)

// fgCodes maps colors to SGR foreground parameters; background is +10.
var fgCodes = [...]int{
	ColorNone:   39,
	ColorWhite:  97,
	ColorRed:    91,
	ColorGreen:  32,
	ColorYellow: 93,
	ColorBrown:  33,
	ColorGray:   90,
}

// fg returns the SGR foreground parameter for c.
func (c Color) fg() int {
	if int(c) >= len(fgCodes) {
		return fgCodes[ColorNone]
	}
	return fgCodes[c]
}

// bg returns the SGR background parameter for c.
func (c Color) bg() int {
	if c == ColorNone {
		return 49
	}
	return c.fg() + 10
}

// sgr formats a "set graphic rendition" sequence for the cell's colors.
func sgr(buf []byte, fg, bg Color) []byte {
	buf = append(buf, "\033["...)
	buf = strconv.AppendInt(buf, int64(fg.fg()), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(bg.bg()), 10)
	return append(buf, 'm')
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
